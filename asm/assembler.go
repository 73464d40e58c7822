// Copyright 2025, The ch8asm Authors

package asm

import (
	"io"
	"log"
	"slices"

	"github.com/ch8tools/ch8asm/chip8"
)

// Assembler runs the two-pass pipeline over one source file. The zero
// value is ready to use; Assemble may be called repeatedly, each run
// starting from a clean state.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Labels  *AddrTable // Label table of the last run.
	Records []Record   // Record list of the last run.
}

// Assemble reads the full source text and runs lexing, parsing, both
// resolver passes and emission, strictly in that order. The first error
// aborts the run and no image is produced.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	parser := NewParser(NewLexer(string(text)))
	asm.Records, err = parser.Parse()
	if err != nil {
		return nil, err
	}

	resolver := NewResolver()
	if err = resolver.AssignAddresses(asm.Records); err != nil {
		return nil, err
	}
	if err = resolver.ResolveLabels(asm.Records); err != nil {
		return nil, err
	}
	asm.Labels = resolver.Table

	image := make([]byte, 0, chip8.MaxBinary)
	for n := range asm.Records {
		rec := &asm.Records[n]
		unit := rec.Encode()

		if asm.Verbose && len(unit) > 0 {
			log.Printf("%03X: % x", rec.Addr, unit)
		}

		image = append(image, unit...)
	}

	if len(image) > chip8.MaxBinary {
		return nil, ErrTooLarge{Size: len(image), Max: chip8.MaxBinary}
	}

	prog = &Program{
		Records: slices.Clone(asm.Records),
		Image:   image,
	}

	return prog, nil
}
