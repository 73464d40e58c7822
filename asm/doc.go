// Package asm implements a two-pass assembler for the CHIP-8 virtual machine.
//
// The pipeline is strictly linear: the lexer turns source text into tokens,
// the parser groups tokens into instruction records, resolver pass 1 assigns
// each record its load address and collects label definitions, resolver pass 2
// substitutes label references with resolved addresses, and the emitter
// encodes every record into a flat binary image loadable at 0x200.
//
// The first error in any phase aborts the run; a failed run never produces
// a partial image.
package asm
