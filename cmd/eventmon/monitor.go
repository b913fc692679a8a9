package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"escw-stm32/errcode"
	"escw-stm32/trace"
)

// monitor decodes console lines and keeps per-event counts.
type monitor struct {
	out    io.Writer
	raw    bool
	counts map[string]int
	bad    int // event lines that failed to decode
}

func newMonitor(out io.Writer, raw bool) *monitor {
	return &monitor{out: out, raw: raw, counts: map[string]int{}}
}

// Run consumes r until it reports EOF.
func (m *monitor) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m.line(sc.Text())
	}
	return sc.Err()
}

func (m *monitor) line(s string) {
	rec, err := trace.ParseLine(s)
	if err != nil {
		var e *errcode.E
		if errors.As(err, &e) {
			// Looked like an event line but did not decode.
			m.bad++
			fmt.Fprintf(m.out, "?? %s (%v)\n", s, err)
		} else if m.raw {
			fmt.Fprintln(m.out, s)
		}
		return
	}
	key := rec.Class.String() + " " + rec.KindName()
	m.counts[key]++
	fmt.Fprintf(m.out, "%-4s %d %-14s arg=%d\n", rec.Class, rec.Instance, rec.KindName(), rec.Arg)
}

// WriteSummary prints the counts sorted by class and kind.
func (m *monitor) WriteSummary(w io.Writer) {
	keys := make([]string, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fmt.Fprintln(w, "-- summary --")
	for _, k := range keys {
		fmt.Fprintf(w, "%-24s %d\n", k, m.counts[k])
	}
	if m.bad > 0 {
		fmt.Fprintf(w, "%-24s %d\n", "undecoded", m.bad)
	}
}

// patientReader turns read timeouts into retries until ctx is done, at which
// point it reports EOF.
type patientReader struct {
	ctx context.Context
	r   io.Reader
}

func (p *patientReader) Read(b []byte) (int, error) {
	for {
		if p.ctx.Err() != nil {
			return 0, io.EOF
		}
		n, err := p.r.Read(b)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
	}
}
