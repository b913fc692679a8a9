package dispatch

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
)

type testID uint8

type testEvent struct {
	kind int
	n    uint16
}

func testTable() *Table[testID] {
	return NewTable([]Entry[testID]{
		{ID: 1, Base: 0x4000_1000, Handle: &hal.Handle{Instance: 0x4000_1000}},
		{ID: 3, Base: 0x4000_3000, Handle: &hal.Handle{Instance: 0x4000_3000}},
		{ID: 6, Base: 0x4000_6000, Handle: &hal.Handle{Instance: 0x4000_6000}},
	})
}

func TestResolveRoundTrip(t *testing.T) {
	tab := testTable()
	for _, e := range tab.Entries() {
		h, err := tab.Handle(e.ID)
		if err != nil {
			t.Fatalf("Handle(%d): %v", e.ID, err)
		}
		got, err := tab.Resolve(h)
		if err != nil || got != e.ID {
			t.Fatalf("Resolve(Handle(%d)) = %d, %v", e.ID, got, err)
		}
	}
}

func TestResolveForeignHandle(t *testing.T) {
	tab := testTable()
	for _, h := range []*hal.Handle{nil, {Instance: 0}, {Instance: 0x4000_2000}, {Instance: 0xFFFF_FFFF}} {
		if _, err := tab.Resolve(h); !errors.Is(err, errcode.Param) {
			t.Fatalf("Resolve(%v) err = %v, want param", h, err)
		}
	}
}

func TestHandleDisabledIdentity(t *testing.T) {
	tab := testTable()
	for _, id := range []testID{0, 2, 4, 5, 7, 200} {
		if tab.Enabled(id) {
			t.Fatalf("id %d should not be enabled", id)
		}
		if _, err := tab.Handle(id); !errors.Is(err, errcode.Param) {
			t.Fatalf("Handle(%d) err = %v", id, err)
		}
	}
}

func TestNewTablePanicsOnDuplicates(t *testing.T) {
	cases := [][]Entry[testID]{
		{{ID: 1, Base: 1}, {ID: 1, Base: 2}},
		{{ID: 1, Base: 1}, {ID: 2, Base: 1}},
	}
	for i, entries := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("case %d: expected panic", i)
				}
			}()
			NewTable(entries)
		}()
	}
}

func TestEntriesFromBoard(t *testing.T) {
	es := Entries[testID]([]board.Instance{{Num: 2, Base: 0x10}, {Num: 5, Base: 0x20}})
	if len(es) != 2 || es[0].ID != 2 || es[1].ID != 5 || es[1].Base != 0x20 {
		t.Fatalf("unexpected entries %+v", es)
	}
}

func TestDispatchBeforeRegisterIsNoop(t *testing.T) {
	c := NewCenter[testID, testEvent](testTable())
	if c.Dispatch(1, testEvent{kind: 1}) {
		t.Fatal("dispatch without handler reported delivery")
	}
	if c.Unhandled() != 1 {
		t.Fatalf("unhandled = %d", c.Unhandled())
	}
}

func TestRegisterDispatchReplace(t *testing.T) {
	c := NewCenter[testID, testEvent](testTable())

	var first, second []testEvent
	if err := c.Register(3, func(ev testEvent, _ uint32) { first = append(first, ev) }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	ev := testEvent{kind: 7, n: 12}
	if !c.Dispatch(3, ev) {
		t.Fatal("dispatch not delivered")
	}
	if len(first) != 1 || first[0] != ev {
		t.Fatalf("first handler saw %+v", first)
	}

	if err := c.Register(3, func(ev testEvent, _ uint32) { second = append(second, ev) }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	c.Dispatch(3, ev)
	if len(first) != 1 {
		t.Fatalf("replaced handler still fired: %d", len(first))
	}
	if len(second) != 1 {
		t.Fatalf("new handler fired %d times", len(second))
	}

	// Other slots are independent.
	c.Dispatch(1, ev)
	if len(second) != 1 {
		t.Fatal("handler fired for a different instance")
	}

	if err := c.Register(3, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if c.Dispatch(3, ev) {
		t.Fatal("cleared slot still delivered")
	}
}

func TestRegisterDisabledIdentity(t *testing.T) {
	c := NewCenter[testID, testEvent](testTable())
	if err := c.Register(2, func(testEvent, uint32) {}); !errors.Is(err, errcode.Param) {
		t.Fatalf("Register(disabled) = %v", err)
	}
	if err := c.SetAux(2, 1); !errors.Is(err, errcode.Param) {
		t.Fatalf("SetAux(disabled) = %v", err)
	}
}

func TestAuxTravelsWithEvent(t *testing.T) {
	c := NewCenter[testID, testEvent](testTable())
	var gotAux uint32
	calls := 0
	fn := func(_ testEvent, aux uint32) { gotAux = aux; calls++ }
	if err := c.Register(6, fn); err != nil {
		t.Fatal(err)
	}
	if err := c.SetAux(6, 64); err != nil {
		t.Fatal(err)
	}
	c.Dispatch(6, testEvent{})
	if calls != 1 || gotAux != 64 {
		t.Fatalf("calls=%d aux=%d", calls, gotAux)
	}
	// Updating aux keeps the handler.
	_ = c.SetAux(6, 8)
	c.Dispatch(6, testEvent{})
	if calls != 2 || gotAux != 8 || c.Aux(6) != 8 {
		t.Fatalf("calls=%d aux=%d", calls, gotAux)
	}
}

func TestFireResolvesHandle(t *testing.T) {
	tab := testTable()
	c := NewCenter[testID, testEvent](tab)
	var got testEvent
	_ = c.Register(1, func(ev testEvent, _ uint32) { got = ev })

	h, _ := tab.Handle(1)
	if !c.Fire(h, testEvent{kind: 2}) || got.kind != 2 {
		t.Fatalf("Fire via own handle failed: %+v", got)
	}

	if c.Fire(&hal.Handle{Instance: 0xDEAD_0000}, testEvent{kind: 3}) {
		t.Fatal("foreign handle delivered")
	}
	if c.Fire(nil, testEvent{kind: 3}) {
		t.Fatal("nil handle delivered")
	}
	if c.Unresolved() != 2 {
		t.Fatalf("unresolved = %d", c.Unresolved())
	}
	if got.kind != 2 {
		t.Fatal("foreign event leaked to handler")
	}
}

func TestEmptyTable(t *testing.T) {
	c := NewCenter[testID, testEvent](NewTable[testID](nil))
	if c.Table().Len() != 0 {
		t.Fatal("expected empty table")
	}
	if err := c.Register(0, func(testEvent, uint32) {}); !errors.Is(err, errcode.Param) {
		t.Fatalf("Register on empty table = %v", err)
	}
	if c.Fire(&hal.Handle{Instance: 1}, testEvent{}) {
		t.Fatal("empty table delivered")
	}
}

func TestRegisterSwapIsAtomic(t *testing.T) {
	c := NewCenter[testID, testEvent](testTable())
	h, _ := c.Table().Handle(3)
	var a, b atomic.Uint32
	ha := Handler[testEvent](func(testEvent, uint32) { a.Add(1) })
	hb := Handler[testEvent](func(testEvent, uint32) { b.Add(1) })
	_ = c.Register(3, ha)

	const fires = 5000
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				_ = c.Register(3, hb)
			} else {
				_ = c.Register(3, ha)
			}
		}
	}()

	for i := 0; i < fires; i++ {
		if !c.Fire(h, testEvent{kind: 1}) {
			t.Errorf("fire %d found no handler", i)
			break
		}
	}
	close(stop)
	wg.Wait()

	if got := a.Load() + b.Load(); got != fires {
		t.Fatalf("delivered %d of %d", got, fires)
	}
	if c.Unhandled() != 0 || c.Unresolved() != 0 {
		t.Fatalf("unhandled=%d unresolved=%d", c.Unhandled(), c.Unresolved())
	}
}
