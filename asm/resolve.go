package asm

import (
	"strings"

	"github.com/ch8tools/ch8asm/chip8"
)

// canonical returns the lookup key for a label name. Labels are case
// insensitive and the leading reference sigil is not part of the name, so
// "_spr", "_SPR" and a bare "spr:" definition all share one key.
func canonical(name string) string {
	return strings.TrimPrefix(strings.ToUpper(name), "_")
}

// AddrTable maps label names to resolved addresses. It is built during
// resolver pass 1 and read-only afterward; entries are never removed.
type AddrTable struct {
	entries map[string]uint16
}

// NewAddrTable creates an empty address table.
func NewAddrTable() *AddrTable {
	return &AddrTable{entries: make(map[string]uint16, 16)}
}

// Len returns the number of defined labels.
func (t *AddrTable) Len() int {
	return len(t.entries)
}

// Add inserts a label definition.
func (t *AddrTable) Add(name string, addr uint16) {
	t.entries[canonical(name)] = addr
}

// Has reports whether the label is defined.
func (t *AddrTable) Has(name string) bool {
	_, ok := t.entries[canonical(name)]
	return ok
}

// Get looks up a label's resolved address.
func (t *AddrTable) Get(name string) (addr uint16, ok bool) {
	addr, ok = t.entries[canonical(name)]
	return
}

// Resolver assigns addresses to records and resolves label references in
// two passes over the record list. A reference may precede its definition,
// so every definition must be collected before any reference is resolved.
type Resolver struct {
	Table *AddrTable
}

// NewResolver creates a resolver with an empty address table.
func NewResolver() *Resolver {
	return &Resolver{Table: NewAddrTable()}
}

// AssignAddresses is pass 1: it walks the records in source order with a
// running address counter starting at the load address, stores each
// record's address, and collects label definitions. A duplicate definition
// is rejected.
func (r *Resolver) AssignAddresses(recs []Record) error {
	addr := chip8.MemStart

	for n := range recs {
		rec := &recs[n]
		rec.Addr = uint16(addr)

		if rec.Mn == MN_LABEL {
			if r.Table.Has(rec.Label) {
				return ErrLabelDuplicate{Name: rec.Label, Line: rec.Line}
			}
			r.Table.Add(rec.Label, rec.Addr)
		}

		addr += rec.Size
	}

	return nil
}

// ResolveLabels is pass 2: it rewrites every label reference operand to
// the immediate address collected in pass 1.
func (r *Resolver) ResolveLabels(recs []Record) error {
	for n := range recs {
		rec := &recs[n]

		for i := range rec.Args {
			arg := &rec.Args[i]
			if arg.Kind != OPERAND_LABEL {
				continue
			}

			addr, ok := r.Table.Get(arg.Label)
			if !ok {
				return ErrUnresolvedLabel{Name: arg.Label, Line: rec.Line}
			}

			arg.Kind = OPERAND_IMM
			arg.Value = addr
		}
	}

	return nil
}
