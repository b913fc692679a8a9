// Package trace carries peripheral events out of interrupt context. Handlers
// push fixed-size Records into a Ring; task code drains the ring and formats
// each record as one text line for the console.
package trace

import "sync/atomic"

// Ring is a single-producer, single-consumer ring of Records. Push never blocks
// and never allocates; a full ring drops the record and counts it.
//
// Producers sharing a ring must not preempt each other, i.e. their interrupts
// must run at the same NVIC priority.
type Ring struct {
	buf  []Record
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)

	drops    atomic.Uint32
	readable chan struct{} // empty -> non-empty edge
}

// NewRing allocates a ring of size records. size must be a power of two >= 2.
func NewRing(size int) *Ring {
	if size < 2 || size&(size-1) != 0 {
		panic("trace: size must be power of two >= 2")
	}
	return &Ring{
		buf:      make([]Record, size),
		mask:     uint32(size - 1),
		readable: make(chan struct{}, 1),
	}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Len is the number of records waiting.
func (r *Ring) Len() int { return int(r.wr.Load() - r.rd.Load()) }

// Push appends rec. It reports false, and counts a drop, when the ring is full.
func (r *Ring) Push(rec Record) bool {
	rd := r.rd.Load()
	wr := r.wr.Load()
	if wr-rd >= r.size() {
		r.drops.Add(1)
		return false
	}
	r.buf[wr&r.mask] = rec
	r.wr.Store(wr + 1) // release

	if wr == rd {
		select {
		case r.readable <- struct{}{}:
		default:
		}
	}
	return true
}

// Pop removes the oldest record.
func (r *Ring) Pop() (Record, bool) {
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	if wr == rd {
		return Record{}, false
	}
	rec := r.buf[rd&r.mask]
	r.rd.Store(rd + 1)
	return rec, true
}

// Drain pops every waiting record into fn and returns how many it handled.
func (r *Ring) Drain(fn func(Record)) int {
	n := 0
	for {
		rec, ok := r.Pop()
		if !ok {
			return n
		}
		fn(rec)
		n++
	}
}

// Readable signals when the ring goes from empty to non-empty.
func (r *Ring) Readable() <-chan struct{} { return r.readable }

// Dropped counts records lost to a full ring.
func (r *Ring) Dropped() uint32 { return r.drops.Load() }
