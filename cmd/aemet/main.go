package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/manumora/aemet"
	"github.com/manumora/aemet/fs"
	"github.com/manumora/aemet/goquery"
	aemethttp "github.com/manumora/aemet/http"
	"github.com/manumora/aemet/publish"
	"github.com/manumora/aemet/rod"
	aemetslog "github.com/manumora/aemet/slog"
	"github.com/manumora/aemet/template"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Run has already reported the failure.
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Target describes the page and region to snapshot. The URL and user
	// agent are overridden by flags.
	Target aemet.Target

	// EnvFile holds KEY=value defaults for the flags' environment
	// variables. A missing file is ignored.
	EnvFile string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Target:  aemet.DefaultTarget(),
		EnvFile: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	envFile, err := readEnvFile(m.EnvFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("aemet"),
		kong.Description("Snapshot the AEMET forecast for Mérida into a standalone HTML page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		cliVars(),
		kong.Resolvers(envFileResolver(envFile)),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	if exited {
		// --help was printed
		return nil
	}

	logger := newLogger(stderr, cli.Verbose)

	target := m.Target
	target.URL = cli.URL
	target.UserAgent = cli.UserAgent

	fetcher, err := newFetcher(cli)
	if err != nil {
		if cli.Browser {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	defer fetcher.Close()

	extractor, err := goquery.NewExtractor(target)
	if err != nil {
		report(stderr, err)
		return err
	}

	p := &publish.Publisher{
		Fetcher:   aemetslog.NewLoggingFetcher(fetcher, logger, aemetslog.WithUserAgent(cli.UserAgent)),
		Extractor: aemetslog.NewLoggingExtractor(extractor, logger),
		Assembler: template.NewAssembler(),
		Writer:    aemetslog.NewLoggingWriter(fs.NewWriter(cli.OutputDir), logger),
		URL:       target.URL,
	}

	fmt.Fprintln(stdout, "Extracting AEMET content for Mérida...")

	path, err := p.Publish(ctx)
	if err != nil {
		report(stderr, err)
		return err
	}

	fmt.Fprintf(stdout, "HTML file successfully saved at: %s\n", path)
	fmt.Fprintln(stdout, "Process completed successfully.")
	return nil
}

// readEnvFile parses path with godotenv without touching the process
// environment.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}

func newFetcher(cli *CLI) (aemet.Fetcher, error) {
	if cli.Browser {
		opts := []rod.Option{rod.WithUserAgent(cli.UserAgent)}
		if cli.Timeout > 0 {
			opts = append(opts, rod.WithFetchTimeout(cli.Timeout))
		}
		return rod.NewFetcher(opts...)
	}
	return aemethttp.NewFetcher(
		aemethttp.WithUserAgent(cli.UserAgent),
		aemethttp.WithTimeout(cli.Timeout),
	), nil
}

// newLogger logs pipeline steps to stderr. Without verbose only warnings
// and errors get through.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// report prints a human-readable description of a failed run.
func report(w io.Writer, err error) {
	msg := aemet.ErrorMessage(err)
	var e *aemet.Error
	if !errors.As(err, &e) {
		msg = err.Error()
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	fmt.Fprintf(w, "error: %s\n", msg)

	switch aemet.ErrorCode(err) {
	case aemet.EFETCH, aemet.EPARSE:
		fmt.Fprintln(w, "Could not extract content from the page.")
	case aemet.ENOTFOUND:
		fmt.Fprintln(w, "Hint: the AEMET page layout may have changed")
	case aemet.EWRITE:
		fmt.Fprintln(w, "Could not save the HTML file.")
	}
}
