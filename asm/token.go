package asm

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	KindNone     = TokenKind(0)  // none
	KindWord     = TokenKind(1)  // word
	KindRegister = TokenKind(2)  // register
	KindIndex    = TokenKind(3)  // index register
	KindDecLit   = TokenKind(4)  // decimal literal
	KindHexLit   = TokenKind(5)  // hex literal
	KindBinLit   = TokenKind(6)  // binary literal
	KindLabel    = TokenKind(7)  // label
	KindLabelDef = TokenKind(8)  // label definition
	KindComma    = TokenKind(9)  // comma
	KindNewline  = TokenKind(10) // newline
	KindEOF      = TokenKind(11) // end of input
)

// Token is one lexical unit of assembly source. Text holds the uppercase
// normalized spelling for words, registers and labels; Value holds the
// numeric value of literal and register tokens. Line is 1-based.
type Token struct {
	Kind  TokenKind
	Text  string
	Value uint16
	Line  int
}

// describe renders a token for "expected X, found Y" diagnostics.
func (tok Token) describe() string {
	switch tok.Kind {
	case KindWord, KindRegister, KindLabel, KindLabelDef,
		KindDecLit, KindHexLit, KindBinLit:
		return tok.Kind.String() + " '" + tok.Text + "'"
	default:
		return tok.Kind.String()
	}
}
