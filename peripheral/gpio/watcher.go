package gpio

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"escw-stm32/errcode"
)

// Edge selects which transitions a Watcher reports.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// EdgeEvent is a debounced transition delivered in task context.
type EdgeEvent struct {
	IO    IO
	Level bool // after inversion
	Edge  Edge
	TS    time.Time
}

// Watcher turns EXTI interrupts into debounced edge events. The interrupt side
// samples the pin and does a non-blocking send; everything else runs in the
// watcher goroutine.
type Watcher struct {
	isrQ chan isrEvent
	outQ chan EdgeEvent

	mu     sync.Mutex
	inputs [NumPins]*watch

	tap   atomic.Pointer[ExtiHandler]
	drops atomic.Uint32 // ISR queue full
}

type isrEvent struct {
	pin   Pin
	level bool
}

type watch struct {
	io        IO
	edge      Edge
	debounce  time.Duration
	invert    bool
	lastLevel bool
	lastEvent time.Time

	line *ExtiHandler // what Watch installed on the EXTI line
}

func NewWatcher(isrBuf, outBuf int) *Watcher {
	if isrBuf <= 0 {
		isrBuf = 16
	}
	if outBuf <= 0 {
		outBuf = 16
	}
	return &Watcher{
		isrQ: make(chan isrEvent, isrBuf),
		outQ: make(chan EdgeEvent, outBuf),
	}
}

func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-w.isrQ:
				w.handleISR(ev)
			}
		}
	}()
}

func (w *Watcher) Events() <-chan EdgeEvent { return w.outQ }

// Tap sets fn to run in interrupt context on every watched EXTI line, before
// the sample is queued. A nil fn removes it.
func (w *Watcher) Tap(fn ExtiHandler) {
	if fn == nil {
		w.tap.Store(nil)
		return
	}
	w.tap.Store(&fn)
}

// Watch claims the EXTI line of io.Pin. The trigger edge itself is configured
// by the vendor init code; edge here filters what is reported. The returned
// function releases the line.
func (w *Watcher) Watch(io IO, edge Edge, debounce time.Duration, invert bool) (func(), error) {
	if !io.valid() {
		return nil, errcode.Wrap("gpio.watch", errcode.Param)
	}
	if edge == EdgeNone {
		return func() {}, nil
	}
	init := io.State()
	if invert {
		init = !init
	}
	wh := &watch{io: io, edge: edge, debounce: debounce, invert: invert, lastLevel: init}

	w.mu.Lock()
	w.inputs[io.Pin] = wh
	w.mu.Unlock()

	handler := func(p Pin) {
		if tap := w.tap.Load(); tap != nil {
			(*tap)(p)
		}
		select {
		case w.isrQ <- isrEvent{pin: p, level: io.State()}:
		default:
			w.drops.Add(1)
		}
	}
	wh.line = install(io.Pin, handler)
	return func() {
		w.mu.Lock()
		if w.inputs[io.Pin] == wh {
			w.inputs[io.Pin] = nil
		}
		w.mu.Unlock()
		// Another port may have claimed the line since.
		clearIf(io.Pin, wh.line)
	}, nil
}

func (w *Watcher) handleISR(ev isrEvent) {
	w.mu.Lock()
	wh := w.inputs[ev.pin]
	w.mu.Unlock()
	if wh == nil {
		return
	}
	raw := ev.level
	if wh.invert {
		raw = !raw
	}
	now := time.Now()

	if !wh.lastEvent.IsZero() && now.Sub(wh.lastEvent) < wh.debounce {
		return
	}

	var e Edge
	switch {
	case !wh.lastLevel && raw:
		e = EdgeRising
	case wh.lastLevel && !raw:
		e = EdgeFalling
	case wh.edge != EdgeBoth:
		// The opposite edge was missed; the line only fires on the
		// configured one.
		e = wh.edge
	}
	if wh.edge != EdgeBoth && e != wh.edge {
		e = EdgeNone
	}

	if e != EdgeNone {
		select {
		case w.outQ <- EdgeEvent{IO: wh.io, Level: raw, Edge: e, TS: now}:
		default:
		}
	}
	wh.lastLevel = raw
	wh.lastEvent = now
}

// ISRDrops counts interrupts lost because the watcher queue was full.
func (w *Watcher) ISRDrops() uint32 { return w.drops.Load() }
