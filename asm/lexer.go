package asm

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ch8tools/ch8asm/chip8"
)

// maxWordValue is the largest value a decimal or hex literal may carry.
const maxWordValue = 0xfff

// Lexer converts assembly source text into a token stream in one forward
// pass, tracking 1-based line numbers.
type Lexer struct {
	src  string
	pos  int
	line int
}

// NewLexer creates a lexer over the full source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// peek returns the current character, or 0 at end of input.
func (lx *Lexer) peek() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) advance() {
	lx.pos++
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '.'
}

func isLabelChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// hexNibble converts a single uppercase hex digit to its value.
func hexNibble(c byte) uint16 {
	if c <= '9' {
		return uint16(c - '0')
	}
	return uint16(c-'A') + 10
}

// Next consumes and returns the next token from the input. After the end
// of input is reached, every call returns a KindEOF token.
func (lx *Lexer) Next() (tok Token, err error) {
	for {
		c := lx.peek()

		switch {
		case c == 0:
			return Token{Kind: KindEOF, Line: lx.line}, nil

		case c == '\n':
			tok = Token{Kind: KindNewline, Line: lx.line}
			lx.line++
			lx.advance()
			return tok, nil

		case c == ' ' || c == '\t' || c == '\r':
			lx.advance()

		case c == ';':
			for lx.peek() != '\n' && lx.peek() != 0 {
				lx.advance()
			}

		case c == ',':
			lx.advance()
			return Token{Kind: KindComma, Text: ",", Line: lx.line}, nil

		case c == '#':
			return lx.decLit()

		case c == '$':
			return lx.hexLit()

		case c == '%':
			return lx.binLit()

		case c == '_':
			return lx.label()

		case isAlpha(c):
			return lx.word()

		default:
			return Token{}, ErrUnknownChar{Char: rune(c), Line: lx.line}
		}
	}
}

// run collects the longest prefix of characters satisfying the class.
func (lx *Lexer) run(class func(byte) bool) string {
	start := lx.pos
	for lx.peek() != 0 && class(lx.peek()) {
		lx.advance()
	}
	return lx.src[start:lx.pos]
}

// decLit lexes a '#'-prefixed decimal literal word.
func (lx *Lexer) decLit() (Token, error) {
	lx.advance()
	digits := lx.run(isDigit)
	if len(digits) == 0 {
		return Token{}, ErrExpectedFound{
			Expected: "decimal digits after '#'",
			Found:    Token{Kind: KindNone, Line: lx.line}.describe(),
			Line:     lx.line,
		}
	}

	value, _ := strconv.ParseUint(digits, 10, 32)
	if value > maxWordValue {
		return Token{}, ErrExpectedFound{
			Expected: "value in range 0..4095",
			Found:    "#" + digits,
			Line:     lx.line,
		}
	}

	return Token{Kind: KindDecLit, Text: "#" + digits, Value: uint16(value), Line: lx.line}, nil
}

// hexLit lexes a '$'-prefixed hex literal word, or a '$(...)' constant
// expression evaluated at assembly time.
func (lx *Lexer) hexLit() (Token, error) {
	lx.advance()
	if lx.peek() == '(' {
		return lx.exprLit()
	}

	digits := lx.run(isHexDigit)
	if len(digits) == 0 {
		return Token{}, ErrExpectedFound{
			Expected: "hex digits after '$'",
			Found:    Token{Kind: KindNone, Line: lx.line}.describe(),
			Line:     lx.line,
		}
	}

	value, _ := strconv.ParseUint(digits, 16, 32)
	if value > maxWordValue {
		return Token{}, ErrExpectedFound{
			Expected: "value in range 0..4095",
			Found:    "$" + digits,
			Line:     lx.line,
		}
	}

	return Token{Kind: KindHexLit, Text: "$" + digits, Value: uint16(value), Line: lx.line}, nil
}

// binLit lexes a '%'-prefixed binary literal byte, exactly eight digits.
func (lx *Lexer) binLit() (Token, error) {
	lx.advance()
	digits := lx.run(func(c byte) bool { return c == '0' || c == '1' })
	if len(digits) != 8 {
		return Token{}, ErrExpectedFound{
			Expected: "eight binary digits after '%'",
			Found:    "%" + digits,
			Line:     lx.line,
		}
	}

	value, _ := strconv.ParseUint(digits, 2, 16)

	return Token{Kind: KindBinLit, Text: "%" + digits, Value: uint16(value), Line: lx.line}, nil
}

// exprLit lexes and evaluates a '$(...)' constant expression. The result
// is a literal word token, interchangeable with a hex or decimal literal.
func (lx *Lexer) exprLit() (Token, error) {
	lx.advance() // past '('

	depth := 1
	start := lx.pos
	for depth > 0 {
		c := lx.peek()
		switch c {
		case 0, '\n':
			found := KindNewline
			if c == 0 {
				found = KindEOF
			}
			return Token{}, ErrExpectedFound{
				Expected: "')' closing constant expression",
				Found:    found.String(),
				Line:     lx.line,
			}
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth > 0 {
			lx.advance()
		}
	}
	expr := lx.src[start:lx.pos]
	lx.advance() // past ')'

	value, err := lx.parenEval(expr)
	if err != nil {
		return Token{}, err
	}

	return Token{Kind: KindDecLit, Text: "$(" + expr + ")", Value: value, Line: lx.line}, nil
}

// parenEval does assembly-time $(...) evaluations.
func (lx *Lexer) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"MEM_START": starlark.MakeInt(chip8.MemStart),
		"MEM_TOP":   starlark.MakeInt(chip8.MemTop),
		"LINENO":    starlark.MakeInt(lx.line),
	}

	bad := func() error {
		return ErrExpectedFound{
			Expected: "integer constant expression",
			Found:    "$(" + expr + ")",
			Line:     lx.line,
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, bad()
	}
	st_rc, ok := dict["rc"]
	if !ok {
		return 0, bad()
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		return 0, bad()
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		return 0, bad()
	}
	if st_int64 < 0 || st_int64 > maxWordValue {
		return 0, ErrExpectedFound{
			Expected: "value in range 0..4095",
			Found:    "$(" + expr + ")",
			Line:     lx.line,
		}
	}

	return uint16(st_int64), nil
}

// label lexes a '_'-prefixed label reference, or a label definition when
// the name ends with a colon.
func (lx *Lexer) label() (Token, error) {
	start := lx.pos
	lx.advance() // past '_'
	lx.run(isLabelChar)
	name := lx.src[start:lx.pos]

	if lx.peek() == ':' {
		lx.advance()
		return Token{Kind: KindLabelDef, Text: name, Line: lx.line}, nil
	}

	return Token{Kind: KindLabel, Text: name, Line: lx.line}, nil
}

// word lexes an alphabetic run: a mnemonic (with optional dot-suffixed
// condition), a register name, or a bare label definition when followed
// by a colon.
func (lx *Lexer) word() (Token, error) {
	raw := lx.run(isWordChar)
	upper := strings.ToUpper(raw)

	if lx.peek() == ':' {
		lx.advance()
		return Token{Kind: KindLabelDef, Text: raw, Line: lx.line}, nil
	}

	if upper == "I" {
		return Token{Kind: KindIndex, Text: upper, Line: lx.line}, nil
	}
	if len(upper) == 2 && upper[0] == 'V' && isHexDigit(upper[1]) {
		return Token{Kind: KindRegister, Text: upper, Value: hexNibble(upper[1]), Line: lx.line}, nil
	}

	return Token{Kind: KindWord, Text: upper, Line: lx.line}, nil
}
