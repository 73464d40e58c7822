package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ch8tools/ch8asm/chip8"
)

func TestAddrTable(t *testing.T) {
	assert := assert.New(t)

	table := NewAddrTable()
	assert.Equal(0, table.Len())
	assert.False(table.Has("_label"))

	table.Add("_label", 0x0fff)
	assert.Equal(1, table.Len())
	assert.True(table.Has("_label"))

	addr, ok := table.Get("_label")
	assert.True(ok)
	assert.Equal(uint16(0x0fff), addr)

	_, ok = table.Get("_other")
	assert.False(ok)
}

func TestAddrTableCanonical(t *testing.T) {
	assert := assert.New(t)

	// "_spr", "_SPR" and a bare "spr" definition share one name.
	table := NewAddrTable()
	table.Add("spr", 0x200)

	for _, name := range []string{"spr", "SPR", "_spr", "_SPR"} {
		addr, ok := table.Get(name)
		assert.True(ok, name)
		assert.Equal(uint16(0x200), addr, name)
	}
}

func TestResolverPasses(t *testing.T) {
	assert := assert.New(t)

	recs := []Record{
		{Mn: MN_LABEL, Label: "_data", Line: 1},
		{Mn: MN_BYTE, Args: []Operand{{Kind: OPERAND_IMM, Value: 0x42}}, Line: 2, Size: 1},
		{Mn: MN_WORD, Args: []Operand{{Kind: OPERAND_IMM, Value: 0x123}}, Line: 3, Size: 2},
		{Mn: MN_LABEL, Label: "_code", Line: 4},
		{Mn: MN_JMP, Word: "JMP", Args: []Operand{{Kind: OPERAND_LABEL, Label: "_data"}}, Line: 5, Size: 2},
	}

	resolver := NewResolver()
	assert.NoError(resolver.AssignAddresses(recs))

	// Label definitions advance the counter by zero.
	assert.Equal(uint16(chip8.MemStart), recs[0].Addr)
	assert.Equal(uint16(chip8.MemStart), recs[1].Addr)
	assert.Equal(uint16(0x201), recs[2].Addr)
	assert.Equal(uint16(0x203), recs[3].Addr)
	assert.Equal(uint16(0x203), recs[4].Addr)

	assert.NoError(resolver.ResolveLabels(recs))
	assert.Equal(OPERAND_IMM, recs[4].Args[0].Kind)
	assert.Equal(uint16(0x200), recs[4].Args[0].Value)
}

func TestResolverDuplicate(t *testing.T) {
	assert := assert.New(t)

	recs := []Record{
		{Mn: MN_LABEL, Label: "_dup", Line: 1},
		{Mn: MN_LABEL, Label: "_DUP", Line: 2},
	}

	err := NewResolver().AssignAddresses(recs)
	assert.Equal(ErrLabelDuplicate{Name: "_DUP", Line: 2}, err)
}

func TestResolverUnresolved(t *testing.T) {
	assert := assert.New(t)

	recs := []Record{
		{Mn: MN_JMP, Word: "JMP", Args: []Operand{{Kind: OPERAND_LABEL, Label: "_ghost"}}, Line: 3, Size: 2},
	}

	resolver := NewResolver()
	assert.NoError(resolver.AssignAddresses(recs))

	err := resolver.ResolveLabels(recs)
	assert.Equal(ErrUnresolvedLabel{Name: "_ghost", Line: 3}, err)
}
