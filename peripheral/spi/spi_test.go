package spi

import (
	"errors"
	"testing"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/hal/halfake"
)

func open(t *testing.T, id ID) (*SPI, *halfake.SPI) {
	t.Helper()
	f := halfake.NewSPI()
	SetDriver(f)
	s, err := New(id)
	if err != nil {
		t.Fatalf("New(%d): %v", id, err)
	}
	t.Cleanup(func() {
		_ = s.SetHandler(nil)
		SetDriver(hal.DefaultSPI())
	})
	return s, f
}

func TestEveryKindReachesItsInstance(t *testing.T) {
	s, _ := open(t, SPI2)
	var got []Kind
	if err := s.SetHandler(func(ev Event, _ uint32) { got = append(got, ev.Kind) }); err != nil {
		t.Fatal(err)
	}
	hooks := []struct {
		fn   func(*hal.Handle)
		want Kind
	}{
		{OnTxComplete, TxCompleted},
		{OnRxComplete, RxCompleted},
		{OnTxRxComplete, TxRxCompleted},
		{OnTxHalfComplete, TxHalf},
		{OnRxHalfComplete, RxHalf},
		{OnTxRxHalfComplete, TxRxHalf},
		{OnError, Error},
		{OnAbortComplete, TxRxAborted},
	}
	for i, hk := range hooks {
		hk.fn(s.h)
		if len(got) != i+1 || got[i] != hk.want {
			t.Fatalf("hook %d delivered %v, want %v", i, got, hk.want)
		}
	}
}

func TestUnregisteredAndForeign(t *testing.T) {
	s, _ := open(t, SPI5)
	u0, h0 := Dropped()
	OnTxComplete(s.h)
	OnTxComplete(&hal.Handle{Instance: 0x5000_0000})
	u1, h1 := Dropped()
	if u1-u0 != 1 || h1-h0 != 1 {
		t.Fatalf("unresolved +%d unhandled +%d, want +1 +1", u1-u0, h1-h0)
	}
}

func TestDriversSPI(t *testing.T) {
	s, f := open(t, SPI1)

	b, err := s.Transfer(0x5A)
	if err != nil || b != 0x5A {
		t.Fatalf("Transfer = %#x, %v", b, err)
	}

	r := make([]byte, 3)
	if err := s.Tx([]byte{1, 2, 3}, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 1 || r[2] != 3 {
		t.Fatalf("loopback read %v", r)
	}

	f.Reset()
	f.RxData = []byte{7, 8}
	r = make([]byte, 2)
	_ = s.Tx(nil, r)
	_ = s.Tx([]byte{9}, nil)
	calls := f.Calls()
	if len(calls) != 2 || calls[0].Op != "receive" || calls[1].Op != "transmit" {
		t.Fatalf("calls %+v", calls)
	}
	if r[0] != 7 || r[1] != 8 {
		t.Fatalf("receive got %v", r)
	}
}

func TestRejectedBuffers(t *testing.T) {
	s, f := open(t, SPI1)
	if err := s.SendReceive([]byte{1, 2}, make([]byte, 1)); !errors.Is(err, errcode.Param) {
		t.Fatalf("length mismatch = %v", err)
	}
	if err := s.SendIT(nil); !errors.Is(err, errcode.Param) {
		t.Fatalf("empty send = %v", err)
	}
	if err := s.Tx(nil, nil); !errors.Is(err, errcode.Param) {
		t.Fatalf("empty Tx = %v", err)
	}
	if n := len(f.Calls()); n != 0 {
		t.Fatalf("%d calls reached the driver", n)
	}
}

func TestAsyncModes(t *testing.T) {
	s, f := open(t, SPI3)
	_ = s.SendDMA([]byte{1})
	_ = s.ReceiveIT(make([]byte, 1))
	_ = s.SendReceiveDMA([]byte{1}, make([]byte, 1))
	f.Fail("abort", hal.StatusBusy)
	if err := s.Abort(); !errors.Is(err, errcode.PeripheralBusy) {
		t.Fatalf("Abort = %v", err)
	}
	calls := f.Calls()
	if len(calls) != 4 || calls[0].Mode != hal.DMA || calls[1].Mode != hal.Interrupt || calls[2].Mode != hal.DMA {
		t.Fatalf("calls %+v", calls)
	}
}
