package asm

import (
	"io"
	"iter"

	"github.com/ch8tools/ch8asm/chip8"
)

// Program is the result of one successful assembly run: the resolved
// record list and the flat binary image, loadable at chip8.MemStart.
type Program struct {
	Records []Record
	Image   []byte
}

// Size returns the image length in bytes.
func (prog *Program) Size() int {
	return len(prog.Image)
}

// WriteTo writes the binary image to w.
func (prog *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(prog.Image)
	return int64(n), err
}

// Codes iterates the instruction words of the program with their load
// addresses, skipping literal data and label definitions.
func (prog *Program) Codes() iter.Seq2[uint16, chip8.Opcode] {
	return func(yield func(addr uint16, op chip8.Opcode) bool) {
		for n := range prog.Records {
			rec := &prog.Records[n]
			if !rec.isInstruction() {
				continue
			}
			if !yield(rec.Addr, rec.opcode()) {
				return
			}
		}
	}
}
