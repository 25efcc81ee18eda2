package mock

import "github.com/manumora/aemet"

var _ aemet.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of aemet.Assembler.
type Assembler struct {
	AssembleFn func(ext *aemet.Extraction) (string, error)
}

func (a *Assembler) Assemble(ext *aemet.Extraction) (string, error) {
	return a.AssembleFn(ext)
}
