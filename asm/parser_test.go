package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ch8tools/ch8asm/chip8"
)

// parse runs lexer and parser over one source string.
func parse(src string) ([]Record, error) {
	return NewParser(NewLexer(src)).Parse()
}

func TestParserRecords(t *testing.T) {
	assert := assert.New(t)

	src := "_spr:\n" +
		"%01000010\n" +
		"$123\n" +
		"#212\n" +
		"mov I, _spr\n" +
		"draw V0, V1, #2\n"

	recs, err := parse(src)
	assert.NoError(err)

	expected := []Record{
		{Mn: MN_LABEL, Label: "_spr", Line: 1},
		{Mn: MN_BYTE, Args: []Operand{{Kind: OPERAND_IMM, Value: 0x42}}, Line: 2, Size: 1},
		{Mn: MN_WORD, Args: []Operand{{Kind: OPERAND_IMM, Value: 0x123}}, Line: 3, Size: 2},
		{Mn: MN_WORD, Args: []Operand{{Kind: OPERAND_IMM, Value: 212}}, Line: 4, Size: 2},
		{Mn: MN_MOV, Word: "MOV", Args: []Operand{
			{Kind: OPERAND_INDEX},
			{Kind: OPERAND_LABEL, Label: "_spr"},
		}, Line: 5, Size: 2},
		{Mn: MN_DRAW, Word: "DRAW", Args: []Operand{
			{Kind: OPERAND_REG, Reg: chip8.Register(0)},
			{Kind: OPERAND_REG, Reg: chip8.Register(1)},
			{Kind: OPERAND_IMM, Value: 2},
		}, Line: 6, Size: 2},
	}

	assert.Equal(expected, recs)
}

func TestParserLabelPrefix(t *testing.T) {
	assert := assert.New(t)

	// A definition may share a line with an instruction, and bare
	// identifier definitions are allowed.
	recs, err := parse("start: cls\n_loop: jmp _loop\n")
	assert.NoError(err)
	assert.Equal(4, len(recs))
	assert.Equal(MN_LABEL, recs[0].Mn)
	assert.Equal(MN_CLS, recs[1].Mn)
	assert.Equal(MN_LABEL, recs[2].Mn)
	assert.Equal(MN_JMP, recs[3].Mn)
}

func TestParserUnknownInstruction(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("cls\nfrob V0\n")
	assert.Equal(ErrUnknownInstruction{Word: "FROB", Line: 2}, err)
}

func TestParserSkipTypes(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("SKIP.BZ V0, #1\n")
	assert.Equal(ErrBadSkipType{Cond: "BZ", Line: 1}, err)

	_, err = parse("SKIP V0\n")
	assert.Equal(ErrBadSkipType{Cond: "", Line: 1}, err)

	recs, err := parse("skip.eq V0, #1\nskip.ne V0, V1\nskip.kd V2\nskip.ku V3\n")
	assert.NoError(err)
	assert.Equal(MN_SKIP_EQ, recs[0].Mn)
	assert.Equal(MN_SKIP_NE, recs[1].Mn)
	assert.Equal(MN_SKIP_KD, recs[2].Mn)
	assert.Equal(MN_SKIP_KU, recs[3].Mn)
}

func TestParserBadArguments(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
	}){
		{"mov I, I\n", 1},
		{"mov I, V0\n", 1},
		{"cls\nmov V0\n", 2},
		{"mov V0, #256\n", 1},
		{"mov #1, V0\n", 1},
		{"mov V0, V1, V2\n", 1},
		{"add I, #4\n", 1},
		{"add V0, _label\n", 1},
		{"or V0, #1\n", 1},
		{"sub V0\n", 1},
		{"shr V0, V1\n", 1},
		{"shl #1\n", 1},
		{"rand V0, $100\n", 1},
		{"draw V0, V1, #16\n", 1},
		{"draw V0, V1\n", 1},
		{"sch #1\n", 1},
		{"bcd I\n", 1},
		{"jmp V0\n", 1},
		{"call I\n", 1},
		{"ret V0\n", 1},
		{"cls #1\n", 1},
		{"skip.eq V0\n", 1},
		{"skip.eq #1, V0\n", 1},
		{"skip.kd V0, V1\n", 1},
		{"skip.ku #2\n", 1},
		{"jpc V0\n", 1},
	}

	for _, entry := range table {
		_, err := parse(entry.prog)
		var bad ErrBadArgument
		assert.ErrorAs(err, &bad, entry.prog)
		assert.Equal(entry.line, bad.Line, entry.prog)
	}
}

func TestParserExpectedFound(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
	}){
		{"mov V0 V1\n", 1},      // missing comma
		{"mov V0,, V1\n", 1},    // stray comma
		{"mov , V0\n", 1},       // operand expected
		{"cls\n$123 $456\n", 2}, // literals are newline-delimited
		{"mov V0, cls\n", 1},    // word in operand position
		{", cls\n", 1},          // stray token at line start
	}

	for _, entry := range table {
		_, err := parse(entry.prog)
		var ef ErrExpectedFound
		assert.ErrorAs(err, &ef, entry.prog)
		assert.Equal(entry.line, ef.Line, entry.prog)
	}
}
