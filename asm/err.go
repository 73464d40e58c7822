package asm

import (
	"github.com/ch8tools/ch8asm/translate"
)

var f = translate.From

// ErrUnknownChar reports a source character matching no lexical class.
type ErrUnknownChar struct {
	Char rune
	Line int
}

func (err ErrUnknownChar) Error() string {
	return f("line %d: unknown character %q", err.Line, err.Char)
}

// ErrUnknownInstruction reports a leading word that is not a mnemonic.
type ErrUnknownInstruction struct {
	Word string
	Line int
}

func (err ErrUnknownInstruction) Error() string {
	return f("line %d: unknown instruction '%v'", err.Line, err.Word)
}

// ErrBadArgument reports an operand list violating the mnemonic's signature.
type ErrBadArgument struct {
	Mnemonic string
	Line     int
}

func (err ErrBadArgument) Error() string {
	return f("line %d: bad argument for %v", err.Line, err.Mnemonic)
}

// ErrBadSkipType reports an unrecognized SKIP condition suffix.
type ErrBadSkipType struct {
	Cond string
	Line int
}

func (err ErrBadSkipType) Error() string {
	return f("line %d: bad skip condition '%v'", err.Line, err.Cond)
}

// ErrExpectedFound reports any other mismatch against the expected grammar.
type ErrExpectedFound struct {
	Expected string
	Found    string
	Line     int
}

func (err ErrExpectedFound) Error() string {
	return f("line %d: expected %v, found %v", err.Line, err.Expected, err.Found)
}

// ErrUnresolvedLabel reports a reference to a label that was never defined.
type ErrUnresolvedLabel struct {
	Name string
	Line int
}

func (err ErrUnresolvedLabel) Error() string {
	return f("line %d: unresolved label '%v'", err.Line, err.Name)
}

// ErrLabelDuplicate reports a label defined more than once.
type ErrLabelDuplicate struct {
	Name string
	Line int
}

func (err ErrLabelDuplicate) Error() string {
	return f("line %d: label '%v' already defined", err.Line, err.Name)
}

// ErrTooLarge reports an assembled image exceeding the memory bound.
type ErrTooLarge struct {
	Size int
	Max  int
}

func (err ErrTooLarge) Error() string {
	return f("binary too large: %d bytes, maximum %d", err.Size, err.Max)
}
