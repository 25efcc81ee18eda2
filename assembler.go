package aemet

// Assembler wraps an extraction into a complete standalone HTML document.
type Assembler interface {
	Assemble(ext *Extraction) (string, error)
}
