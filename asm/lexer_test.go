package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lexAll collects every token up to end of input.
func lexAll(t *testing.T, src string) (toks []Token) {
	lx := NewLexer(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.Kind == KindEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerTokens(t *testing.T) {
	assert := assert.New(t)

	src := "MOV V1, V2\n" +
		"_hex:\n" +
		"$FC0\n" +
		"_bin:\n" +
		"%11111111\n" +
		"_dec:\n" +
		"#212\n" +
		"_start:\n" +
		"CLS\n" +
		"SKIP.NE V0, V1 ; compare\n" +
		"CALL _start\n" +
		"RET"

	expected := []Token{
		{KindWord, "MOV", 0, 1},
		{KindRegister, "V1", 1, 1},
		{KindComma, ",", 0, 1},
		{KindRegister, "V2", 2, 1},
		{KindNewline, "", 0, 1},
		{KindLabelDef, "_hex", 0, 2},
		{KindNewline, "", 0, 2},
		{KindHexLit, "$FC0", 0xfc0, 3},
		{KindNewline, "", 0, 3},
		{KindLabelDef, "_bin", 0, 4},
		{KindNewline, "", 0, 4},
		{KindBinLit, "%11111111", 0xff, 5},
		{KindNewline, "", 0, 5},
		{KindLabelDef, "_dec", 0, 6},
		{KindNewline, "", 0, 6},
		{KindDecLit, "#212", 212, 7},
		{KindNewline, "", 0, 7},
		{KindLabelDef, "_start", 0, 8},
		{KindNewline, "", 0, 8},
		{KindWord, "CLS", 0, 9},
		{KindNewline, "", 0, 9},
		{KindWord, "SKIP.NE", 0, 10},
		{KindRegister, "V0", 0, 10},
		{KindComma, ",", 0, 10},
		{KindRegister, "V1", 1, 10},
		{KindNewline, "", 0, 10},
		{KindWord, "CALL", 0, 11},
		{KindLabel, "_start", 0, 11},
		{KindNewline, "", 0, 11},
		{KindWord, "RET", 0, 12},
	}

	assert.Equal(expected, lexAll(t, src))
}

func TestLexerRegisters(t *testing.T) {
	assert := assert.New(t)

	toks := lexAll(t, "v0 Va VF I")
	assert.Equal([]Token{
		{KindRegister, "V0", 0x0, 1},
		{KindRegister, "VA", 0xa, 1},
		{KindRegister, "VF", 0xf, 1},
		{KindIndex, "I", 0, 1},
	}, toks)
}

func TestLexerUnknownChar(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer("MOV V1, @\n")
	var err error
	for range 4 {
		_, err = lx.Next()
	}
	assert.Equal(ErrUnknownChar{Char: '@', Line: 1}, err)
}

func TestLexerExpr(t *testing.T) {
	assert := assert.New(t)

	toks := lexAll(t, "$(2 * 0x100) $(MEM_START) $((1 + 2) * 3)")
	assert.Equal(uint16(0x200), toks[0].Value)
	assert.Equal(uint16(0x200), toks[1].Value)
	assert.Equal(uint16(9), toks[2].Value)

	lx := NewLexer(`$("nope")`)
	_, err := lx.Next()
	var ef ErrExpectedFound
	assert.ErrorAs(err, &ef)
}

func TestLexerLiteralBounds(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"#4096",
		"$1000",
		"$(4096)",
		"%0101", // too short
		"#",     // no digits
		"$xyz",  // no digits
		"$(1 +", // unterminated
	}

	for _, src := range table {
		lx := NewLexer(src)
		_, err := lx.Next()
		var ef ErrExpectedFound
		assert.ErrorAs(err, &ef, src)
	}

	// The bounds themselves are fine.
	toks := lexAll(t, "#4095 $FFF %00000000")
	assert.Equal(uint16(0xfff), toks[0].Value)
	assert.Equal(uint16(0xfff), toks[1].Value)
	assert.Equal(uint16(0), toks[2].Value)
}
