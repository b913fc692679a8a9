package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

const console = `[demo] boot board=nucleo-f446re
evt uart 1 rx_half 0
evt uart 1 rx_done 12
evt i2c 1 mem_read_done 0
evt uart 1 rx_done 3
evt uart 9 bogus 1
[flash] stored count at 0x08060000
`

func TestMonitorDecodesAndCounts(t *testing.T) {
	var out bytes.Buffer
	m := newMonitor(&out, false)
	if err := m.Run(strings.NewReader(console)); err != nil {
		t.Fatal(err)
	}
	if m.counts["uart rx_done"] != 2 || m.counts["uart rx_half"] != 1 || m.counts["i2c mem_read_done"] != 1 {
		t.Fatalf("counts %v", m.counts)
	}
	if m.bad != 1 {
		t.Fatalf("bad = %d", m.bad)
	}
	got := out.String()
	if strings.Contains(got, "[demo]") {
		t.Fatal("console line echoed without --raw")
	}
	if !strings.Contains(got, "arg=12") {
		t.Fatalf("decoded output missing: %q", got)
	}

	var sum bytes.Buffer
	m.WriteSummary(&sum)
	lines := strings.Split(strings.TrimSpace(sum.String()), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[1], "i2c mem_read_done") || !strings.HasPrefix(lines[4], "undecoded") {
		t.Fatalf("summary:\n%s", sum.String())
	}
}

func TestMonitorRaw(t *testing.T) {
	var out bytes.Buffer
	m := newMonitor(&out, true)
	_ = m.Run(strings.NewReader(console))
	if !strings.Contains(out.String(), "[flash] stored count") {
		t.Fatalf("raw line missing: %q", out.String())
	}
}

// timeoutReader returns nothing (as a serial read timeout does) until data is
// set.
type timeoutReader struct {
	data  []byte
	reads int
	fail  error
}

func (r *timeoutReader) Read(b []byte) (int, error) {
	r.reads++
	if r.fail != nil {
		return 0, r.fail
	}
	if r.reads < 3 || len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestPatientReaderRetriesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	src := &timeoutReader{data: []byte("evt spi 1 tx_done 0\n")}
	var out bytes.Buffer
	m := newMonitor(&out, false)
	if err := m.Run(&patientReader{ctx: ctx, r: src}); err != nil {
		t.Fatal(err)
	}
	if m.counts["spi tx_done"] != 1 {
		t.Fatalf("counts %v", m.counts)
	}
	if ctx.Err() == nil {
		t.Fatal("returned before the context ended")
	}
}

func TestPatientReaderPassesErrors(t *testing.T) {
	boom := errors.New("device gone")
	p := &patientReader{ctx: context.Background(), r: &timeoutReader{fail: boom}}
	if _, err := p.Read(make([]byte, 8)); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
