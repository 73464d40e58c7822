// Package chip8 describes the CHIP-8 instruction set architecture.
//
// The machine has sixteen 8-bit general purpose registers (V0-VF), a 12-bit
// index register (I), and 4096 bytes of memory. Programs are loaded at
// address 0x200 and every instruction is one big-endian 16-bit word.
//
// The package provides the opcode word type with bit-packing constructors
// for each instruction shape, field accessors for the X/Y/N/NN/NNN operand
// fields, and an assembly-like String() rendering.
package chip8
