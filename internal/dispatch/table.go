// Package dispatch implements the two pieces every bus class shares: the
// identity table that maps logical instances to vendor handles and back, and
// the per-instance callback slots the interrupt trampolines dispatch through.
package dispatch

import (
	"golang.org/x/exp/constraints"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
)

// Entry is one enabled instance.
type Entry[ID constraints.Unsigned] struct {
	ID     ID
	Base   uint32
	Handle *hal.Handle
}

// Entries converts a board table into typed entries. The board instance number
// is the identity value (USART2 -> 2).
func Entries[ID constraints.Unsigned](insts []board.Instance) []Entry[ID] {
	out := make([]Entry[ID], 0, len(insts))
	for _, in := range insts {
		out = append(out, Entry[ID]{ID: ID(in.Num), Base: in.Base, Handle: in.Handle})
	}
	return out
}

// Table resolves identities in both directions. It is built once and is
// read-only afterwards, so lookups need no synchronisation.
type Table[ID constraints.Unsigned] struct {
	entries []Entry[ID]
	index   []int8 // ID -> position in entries, -1 when not enabled
}

// NewTable panics on duplicate identities or base addresses; both indicate a
// broken board file.
func NewTable[ID constraints.Unsigned](entries []Entry[ID]) *Table[ID] {
	t := &Table[ID]{entries: append([]Entry[ID](nil), entries...)}
	max := -1
	for _, e := range t.entries {
		if int(e.ID) > max {
			max = int(e.ID)
		}
	}
	t.index = make([]int8, max+1)
	for i := range t.index {
		t.index[i] = -1
	}
	for i, e := range t.entries {
		if t.index[e.ID] >= 0 {
			panic("dispatch: duplicate identity in board table")
		}
		for _, o := range t.entries[:i] {
			if o.Base == e.Base {
				panic("dispatch: duplicate base address in board table")
			}
		}
		t.index[e.ID] = int8(i)
	}
	return t
}

// Len is the number of enabled instances.
func (t *Table[ID]) Len() int { return len(t.entries) }

// Entries returns a copy of the enabled instances in board order.
func (t *Table[ID]) Entries() []Entry[ID] { return append([]Entry[ID](nil), t.entries...) }

func (t *Table[ID]) pos(id ID) (int, bool) {
	if uint64(id) >= uint64(len(t.index)) {
		return 0, false
	}
	p := t.index[id]
	return int(p), p >= 0
}

// Enabled reports whether id is part of this build.
func (t *Table[ID]) Enabled(id ID) bool {
	_, ok := t.pos(id)
	return ok
}

// Handle returns the vendor handle for id.
func (t *Table[ID]) Handle(id ID) (*hal.Handle, error) {
	p, ok := t.pos(id)
	if !ok || t.entries[p].Handle == nil {
		return nil, errcode.Param
	}
	return t.entries[p].Handle, nil
}

// Resolve maps a vendor handle back to its identity by base address. It runs in
// interrupt context: bounded scan, no allocation.
func (t *Table[ID]) Resolve(h *hal.Handle) (ID, error) {
	if h == nil {
		return 0, errcode.Param
	}
	base := h.Instance
	for i := range t.entries {
		if t.entries[i].Base == base {
			return t.entries[i].ID, nil
		}
	}
	return 0, errcode.Param
}
