package dispatch

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"escw-stm32/errcode"
	"escw-stm32/hal"
)

// Handler receives a semantic event together with the slot's aux value
// (e.g. the size requested by the pending receive). It runs in interrupt
// context and must not block.
type Handler[E any] func(ev E, aux uint32)

type slot[E any] struct {
	fn  atomic.Pointer[Handler[E]]
	aux atomic.Uint32
}

// Center is the event registry of one bus class: exactly one slot per enabled
// instance, sized at construction and never reallocated.
//
// Register and SetAux run in task context. Dispatch and Fire run in interrupt
// context and may preempt a registration at any instruction; each slot write is
// a single atomic store so a trampoline sees either the old or the new handler.
type Center[ID constraints.Unsigned, E any] struct {
	tab   *Table[ID]
	slots []slot[E]

	unresolved atomic.Uint32 // handle matched no enabled instance
	unhandled  atomic.Uint32 // instance had no handler
}

func NewCenter[ID constraints.Unsigned, E any](t *Table[ID]) *Center[ID, E] {
	return &Center[ID, E]{tab: t, slots: make([]slot[E], t.Len())}
}

// Table exposes the identity table the center dispatches over.
func (c *Center[ID, E]) Table() *Table[ID] { return c.tab }

// Register installs fn for id, replacing any previous handler. A nil fn clears
// the slot.
func (c *Center[ID, E]) Register(id ID, fn Handler[E]) error {
	p, ok := c.tab.pos(id)
	if !ok {
		return errcode.Param
	}
	if fn == nil {
		c.slots[p].fn.Store(nil)
		return nil
	}
	c.slots[p].fn.Store(&fn)
	return nil
}

// SetAux updates the instance's ancillary value without touching the handler.
func (c *Center[ID, E]) SetAux(id ID, v uint32) error {
	p, ok := c.tab.pos(id)
	if !ok {
		return errcode.Param
	}
	c.slots[p].aux.Store(v)
	return nil
}

// Aux reads the instance's ancillary value (0 for unknown ids).
func (c *Center[ID, E]) Aux(id ID) uint32 {
	p, ok := c.tab.pos(id)
	if !ok {
		return 0
	}
	return c.slots[p].aux.Load()
}

// Dispatch calls the handler registered for id, if any. Unregistered events are
// dropped and counted; that is not an error.
func (c *Center[ID, E]) Dispatch(id ID, ev E) bool {
	p, ok := c.tab.pos(id)
	if !ok {
		c.unresolved.Add(1)
		return false
	}
	s := &c.slots[p]
	fn := s.fn.Load()
	if fn == nil {
		c.unhandled.Add(1)
		return false
	}
	(*fn)(ev, s.aux.Load())
	return true
}

// Fire is the trampoline path: resolve the vendor handle, then dispatch.
// Handles outside this build's configuration are dropped and counted.
func (c *Center[ID, E]) Fire(h *hal.Handle, ev E) bool {
	id, ok := c.Resolve(h)
	if !ok {
		return false
	}
	return c.Dispatch(id, ev)
}

// Resolve is the lookup half of Fire, for trampolines that must ask the driver
// something before they can build the event. Misses are counted.
func (c *Center[ID, E]) Resolve(h *hal.Handle) (ID, bool) {
	id, err := c.tab.Resolve(h)
	if err != nil {
		c.unresolved.Add(1)
		return 0, false
	}
	return id, true
}

// Unresolved counts events dropped because the handle matched no instance.
func (c *Center[ID, E]) Unresolved() uint32 { return c.unresolved.Load() }

// Unhandled counts events dropped because no handler was registered.
func (c *Center[ID, E]) Unhandled() uint32 { return c.unhandled.Load() }
