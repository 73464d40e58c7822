package asm

import (
	"strings"

	"github.com/ch8tools/ch8asm/chip8"
)

// Mnemonic is the tag of an instruction or pseudo-instruction record. The
// SKIP conditions are separate tags so that every tag has exactly one
// operand shape.
type Mnemonic int

const (
	MN_CLS = Mnemonic(iota)
	MN_DRAW
	MN_SCH
	MN_JMP
	MN_CALL
	MN_RET
	MN_SKIP_EQ
	MN_SKIP_NE
	MN_SKIP_KD
	MN_SKIP_KU
	MN_JPC
	MN_MOV
	MN_ADD
	MN_OR
	MN_AND
	MN_XOR
	MN_SUB
	MN_SUBN
	MN_SHR
	MN_SHL
	MN_RAND
	MN_GDL
	MN_KEY
	MN_SDL
	MN_SND
	MN_BCD
	MN_RDP
	MN_RLD

	// Pseudo-instructions.
	MN_LABEL // label definition, emits nothing
	MN_WORD  // 2-byte literal word
	MN_BYTE  // 1-byte literal
)

// mnemonics is the closed set of instruction words. SKIP is absent: its
// dot-suffixed forms are recognized separately.
var mnemonics = map[string]Mnemonic{
	"CLS":  MN_CLS,
	"DRAW": MN_DRAW,
	"SCH":  MN_SCH,
	"JMP":  MN_JMP,
	"CALL": MN_CALL,
	"RET":  MN_RET,
	"JPC":  MN_JPC,
	"MOV":  MN_MOV,
	"ADD":  MN_ADD,
	"OR":   MN_OR,
	"AND":  MN_AND,
	"XOR":  MN_XOR,
	"SUB":  MN_SUB,
	"SUBN": MN_SUBN,
	"SHR":  MN_SHR,
	"SHL":  MN_SHL,
	"RAND": MN_RAND,
	"GDL":  MN_GDL,
	"KEY":  MN_KEY,
	"SDL":  MN_SDL,
	"SND":  MN_SND,
	"BCD":  MN_BCD,
	"RDP":  MN_RDP,
	"RLD":  MN_RLD,
}

// skipConds maps the dot suffix of SKIP to its mnemonic tag.
var skipConds = map[string]Mnemonic{
	"EQ": MN_SKIP_EQ,
	"NE": MN_SKIP_NE,
	"KD": MN_SKIP_KD,
	"KU": MN_SKIP_KU,
}

// OperandKind classifies an instruction operand.
type OperandKind int

const (
	OPERAND_REG   = OperandKind(iota) // general register V0-VF
	OPERAND_INDEX                     // index register I
	OPERAND_IMM                       // immediate value 0-4095
	OPERAND_LABEL                     // label reference, resolved in pass 2
)

// Operand is one instruction operand. Label operands are rewritten to
// immediates by resolver pass 2.
type Operand struct {
	Kind  OperandKind
	Reg   chip8.Register
	Value uint16
	Label string
}

// Record is one instruction or pseudo-instruction in source order. Addr is
// unset until resolver pass 1 assigns it. Size depends only on the record's
// syntactic shape: 2 bytes for opcodes and literal words, 1 byte for a
// binary literal, 0 for a label definition.
type Record struct {
	Mn    Mnemonic
	Word  string // mnemonic as written, for diagnostics
	Args  []Operand
	Label string // label name for MN_LABEL
	Line  int
	Addr  uint16
	Size  int
}

// isInstruction reports whether the record emits an opcode word, as opposed
// to raw literal data or nothing.
func (rec *Record) isInstruction() bool {
	switch rec.Mn {
	case MN_LABEL, MN_WORD, MN_BYTE:
		return false
	}
	return true
}

// Parser groups the token stream into one Record per logical source line.
type Parser struct {
	lx  *Lexer
	tok Token
}

// NewParser creates a parser over the lexer's token stream.
func NewParser(lx *Lexer) *Parser {
	return &Parser{lx: lx}
}

func (p *Parser) next() (err error) {
	p.tok, err = p.lx.Next()
	return
}

// atLineEnd reports whether the current token terminates a statement.
func (p *Parser) atLineEnd() bool {
	return p.tok.Kind == KindNewline || p.tok.Kind == KindEOF
}

// Parse consumes the whole token stream and returns the record list.
func (p *Parser) Parse() (recs []Record, err error) {
	if err = p.next(); err != nil {
		return nil, err
	}

	for p.tok.Kind != KindEOF {
		switch p.tok.Kind {
		case KindNewline:
			if err = p.next(); err != nil {
				return nil, err
			}

		case KindLabelDef:
			// Label definitions are line prefixes; several may stack
			// before an instruction.
			recs = append(recs, Record{
				Mn:    MN_LABEL,
				Label: p.tok.Text,
				Line:  p.tok.Line,
			})
			if err = p.next(); err != nil {
				return nil, err
			}

		case KindDecLit, KindHexLit:
			recs = append(recs, Record{
				Mn:   MN_WORD,
				Args: []Operand{{Kind: OPERAND_IMM, Value: p.tok.Value}},
				Line: p.tok.Line,
				Size: 2,
			})
			if err = p.endOfLine(); err != nil {
				return nil, err
			}

		case KindBinLit:
			recs = append(recs, Record{
				Mn:   MN_BYTE,
				Args: []Operand{{Kind: OPERAND_IMM, Value: p.tok.Value}},
				Line: p.tok.Line,
				Size: 1,
			})
			if err = p.endOfLine(); err != nil {
				return nil, err
			}

		case KindWord:
			var rec Record
			rec, err = p.instruction()
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)

		default:
			return nil, ErrExpectedFound{
				Expected: "instruction, literal or label definition",
				Found:    p.tok.describe(),
				Line:     p.tok.Line,
			}
		}
	}

	return recs, nil
}

// endOfLine consumes the current statement's terminating newline.
func (p *Parser) endOfLine() error {
	if err := p.next(); err != nil {
		return err
	}
	if !p.atLineEnd() {
		return ErrExpectedFound{
			Expected: "end of line",
			Found:    p.tok.describe(),
			Line:     p.tok.Line,
		}
	}
	return nil
}

// instruction parses one mnemonic with its operand list.
func (p *Parser) instruction() (rec Record, err error) {
	word := p.tok.Text
	line := p.tok.Line

	mn, ok := mnemonics[word]
	if !ok {
		base, suffix, dotted := strings.Cut(word, ".")
		if dotted && base == "SKIP" {
			mn, ok = skipConds[suffix]
			if !ok {
				return rec, ErrBadSkipType{Cond: suffix, Line: line}
			}
		} else if base == "SKIP" {
			// SKIP with no condition at all.
			return rec, ErrBadSkipType{Cond: "", Line: line}
		} else {
			return rec, ErrUnknownInstruction{Word: word, Line: line}
		}
	}

	rec = Record{Mn: mn, Word: word, Line: line, Size: 2}

	if err = p.next(); err != nil {
		return rec, err
	}

	for !p.atLineEnd() {
		if len(rec.Args) > 0 {
			if p.tok.Kind != KindComma {
				return rec, ErrExpectedFound{
					Expected: "comma or end of line",
					Found:    p.tok.describe(),
					Line:     p.tok.Line,
				}
			}
			if err = p.next(); err != nil {
				return rec, err
			}
		}

		var arg Operand
		arg, err = p.operand()
		if err != nil {
			return rec, err
		}
		rec.Args = append(rec.Args, arg)

		if err = p.next(); err != nil {
			return rec, err
		}
	}

	if err = validate(&rec); err != nil {
		return rec, err
	}

	return rec, nil
}

// operand converts the current token into an operand.
func (p *Parser) operand() (Operand, error) {
	switch p.tok.Kind {
	case KindRegister:
		return Operand{Kind: OPERAND_REG, Reg: chip8.Register(p.tok.Value)}, nil
	case KindIndex:
		return Operand{Kind: OPERAND_INDEX}, nil
	case KindDecLit, KindHexLit, KindBinLit:
		return Operand{Kind: OPERAND_IMM, Value: p.tok.Value}, nil
	case KindLabel:
		return Operand{Kind: OPERAND_LABEL, Label: p.tok.Text}, nil
	}
	return Operand{}, ErrExpectedFound{
		Expected: "operand",
		Found:    p.tok.describe(),
		Line:     p.tok.Line,
	}
}

// Operand class predicates used by the signature checks.

func (arg Operand) isReg() bool   { return arg.Kind == OPERAND_REG }
func (arg Operand) isIndex() bool { return arg.Kind == OPERAND_INDEX }

// isAddr is a 12-bit address: an immediate or a label reference.
func (arg Operand) isAddr() bool {
	return arg.Kind == OPERAND_LABEL || arg.Kind == OPERAND_IMM
}

// isByte is an 8-bit immediate.
func (arg Operand) isByte() bool {
	return arg.Kind == OPERAND_IMM && arg.Value <= 0xff
}

// isNibble is a 4-bit immediate.
func (arg Operand) isNibble() bool {
	return arg.Kind == OPERAND_IMM && arg.Value <= 0xf
}

// validate checks the operand count and classes against the mnemonic's
// signature. Operand range checks happen here, never in the encoder.
func validate(rec *Record) error {
	bad := ErrBadArgument{Mnemonic: rec.Word, Line: rec.Line}
	args := rec.Args

	want := func(n int) bool { return len(args) == n }

	switch rec.Mn {
	case MN_CLS, MN_RET:
		if !want(0) {
			return bad
		}

	case MN_JMP, MN_CALL, MN_JPC:
		if !want(1) || !args[0].isAddr() {
			return bad
		}

	case MN_MOV:
		if !want(2) {
			return bad
		}
		switch {
		case args[0].isIndex():
			// The source must be a 12-bit address and cannot itself
			// be the index register.
			if !args[1].isAddr() {
				return bad
			}
		case args[0].isReg():
			if !args[1].isReg() && !args[1].isByte() {
				return bad
			}
		default:
			return bad
		}

	case MN_ADD:
		if !want(2) {
			return bad
		}
		switch {
		case args[0].isIndex():
			if !args[1].isReg() {
				return bad
			}
		case args[0].isReg():
			if !args[1].isReg() && !args[1].isByte() {
				return bad
			}
		default:
			return bad
		}

	case MN_OR, MN_AND, MN_XOR, MN_SUB, MN_SUBN:
		if !want(2) || !args[0].isReg() || !args[1].isReg() {
			return bad
		}

	case MN_SHR, MN_SHL, MN_SCH, MN_GDL, MN_KEY, MN_SDL, MN_SND, MN_BCD, MN_RDP, MN_RLD:
		if !want(1) || !args[0].isReg() {
			return bad
		}

	case MN_RAND:
		if !want(2) || !args[0].isReg() || !args[1].isByte() {
			return bad
		}

	case MN_DRAW:
		if !want(3) || !args[0].isReg() || !args[1].isReg() || !args[2].isNibble() {
			return bad
		}

	case MN_SKIP_EQ, MN_SKIP_NE:
		if !want(2) || !args[0].isReg() {
			return bad
		}
		if !args[1].isReg() && !args[1].isByte() {
			return bad
		}

	case MN_SKIP_KD, MN_SKIP_KU:
		if !want(1) || !args[0].isReg() {
			return bad
		}
	}

	return nil
}
