// Package aemet snapshots the AEMET municipal forecast page into a
// standalone HTML document suitable for an unattended kiosk display.
// It fetches the forecast page, keeps only the forecast region, rewrites
// relative resource references to absolute URLs and writes the result
// to a single file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, template/).
package aemet
