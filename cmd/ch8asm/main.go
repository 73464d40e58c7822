// Copyright 2025, The ch8asm Authors

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ch8tools/ch8asm/asm"
)

// outputName derives the binary path from the source path by replacing
// the extension with .ch8.
func outputName(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".ch8"
}

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "", "Output binary path (default: source with .ch8 extension)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [-o output] [-v] source.asm", os.Args[0], os.Args[0])
	}
	source := flag.Arg(0)

	if output == "" {
		output = outputName(source)
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	// The image is only written after the whole run has validated; a
	// failed run never leaves a partial binary behind.
	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	if _, err := prog.WriteTo(ouf); err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	log.Printf("%v: assembled %v (%d bytes)", source, output, prog.Size())
}
