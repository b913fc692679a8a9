package uart

import (
	"errors"
	"testing"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/hal/halfake"
)

type seen struct {
	evs []Event
	aux []uint32
}

func (s *seen) handler() Handler {
	return func(ev Event, aux uint32) {
		s.evs = append(s.evs, ev)
		s.aux = append(s.aux, aux)
	}
}

func setup(t *testing.T, id ID) (*UART, *halfake.UART, *seen) {
	t.Helper()
	f := halfake.NewUART()
	SetDriver(f)
	u, err := New(id)
	if err != nil {
		t.Fatalf("New(%d): %v", id, err)
	}
	s := &seen{}
	if err := u.SetHandler(s.handler()); err != nil {
		t.Fatalf("SetHandler: %v", err)
	}
	t.Cleanup(func() {
		_ = u.SetHandler(nil)
		SetDriver(hal.DefaultUART())
	})
	return u, f, s
}

func TestNewUnknownID(t *testing.T) {
	for _, id := range []ID{0, 9, 255} {
		if _, err := New(id); !errors.Is(err, errcode.Param) {
			t.Fatalf("New(%d) err = %v", id, err)
		}
	}
}

func TestTrampolinesMapKinds(t *testing.T) {
	u, _, s := setup(t, UART2)
	h := u.h
	OnTxHalfComplete(h)
	OnTxComplete(h)
	OnAbortTransmitComplete(h)
	OnAbortReceiveComplete(h)
	OnAbortComplete(h)
	OnError(h)
	want := []Kind{TxHalf, TxCompleted, TxAborted, RxAborted, TxRxAborted, Error}
	if len(s.evs) != len(want) {
		t.Fatalf("got %d events, want %d", len(s.evs), len(want))
	}
	for i, k := range want {
		if s.evs[i].Kind != k {
			t.Fatalf("event %d = %v, want %v", i, s.evs[i].Kind, k)
		}
	}
}

func TestRxEventHalfVersusComplete(t *testing.T) {
	u, f, s := setup(t, UART1)

	buf := make([]byte, 64)
	if err := u.ReceiveIT(buf); err != nil {
		t.Fatalf("ReceiveIT: %v", err)
	}

	f.SetState(hal.UARTBusyRx)
	OnRxEvent(u.h, 32)
	f.SetState(hal.UARTReady)
	OnRxEvent(u.h, 17)

	if len(s.evs) != 2 {
		t.Fatalf("got %d events", len(s.evs))
	}
	if s.evs[0].Kind != RxHalf || s.evs[0].Size != 0 {
		t.Fatalf("first event %+v, want RxHalf", s.evs[0])
	}
	if s.evs[1].Kind != RxCompleted || s.evs[1].Size != 17 {
		t.Fatalf("second event %+v, want RxCompleted(17)", s.evs[1])
	}
	if s.aux[1] != 64 {
		t.Fatalf("expected size = %d, want 64", s.aux[1])
	}
}

func TestTrampolineForeignHandleIsCountedNoop(t *testing.T) {
	_, _, s := setup(t, UART3)
	before, _ := Dropped()
	foreign := &hal.Handle{Instance: 0x1234_5678}
	OnTxComplete(foreign)
	OnRxEvent(foreign, 3)
	OnRxEvent(nil, 3)
	after, _ := Dropped()
	if after-before != 3 {
		t.Fatalf("unresolved grew by %d, want 3", after-before)
	}
	if len(s.evs) != 0 {
		t.Fatalf("foreign events delivered: %+v", s.evs)
	}
}

func TestEventWithoutHandlerIsDropped(t *testing.T) {
	u, err := New(UART4)
	if err != nil {
		t.Fatal(err)
	}
	_, before := Dropped()
	OnTxComplete(u.h)
	if _, after := Dropped(); after != before+1 {
		t.Fatalf("unhandled = %d, want %d", after, before+1)
	}
}

func TestBlockingTransfers(t *testing.T) {
	u, f, _ := setup(t, UART2)
	f.RxData = []byte("hello")

	if err := u.Transmit([]byte("ping")); err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	buf := make([]byte, 16)
	n, err := u.Receive(buf)
	if err != nil || n != 5 || string(buf[:n]) != "hello" {
		t.Fatalf("Receive = %d, %v (%q)", n, err, buf[:n])
	}

	calls := f.Calls()
	if len(calls) != 2 || calls[0].Op != "transmit" || string(calls[0].Data) != "ping" || calls[0].Mode != hal.Blocking {
		t.Fatalf("unexpected calls %+v", calls)
	}
	if calls[0].Handle != u.h {
		t.Fatal("driver got a different handle")
	}
}

func TestStatusMapping(t *testing.T) {
	u, f, _ := setup(t, UART2)
	cases := []struct {
		st   hal.Status
		want errcode.Code
	}{
		{hal.StatusError, errcode.Param},
		{hal.StatusBusy, errcode.PeripheralBusy},
		{hal.StatusTimeout, errcode.WaitTimeout},
		{hal.Status(9), errcode.Unknown},
	}
	for _, c := range cases {
		f.Fail("transmit", c.st)
		err := u.TransmitIT([]byte{1})
		if errcode.Of(err) != c.want {
			t.Fatalf("status %v -> %v, want %v", c.st, err, c.want)
		}
	}
	f.Fail("receive", hal.StatusBusy)
	if n, err := u.Receive(make([]byte, 4)); n != 0 || !errors.Is(err, errcode.PeripheralBusy) {
		t.Fatalf("Receive = %d, %v", n, err)
	}
}

func TestBufferBounds(t *testing.T) {
	u, f, _ := setup(t, UART2)
	big := make([]byte, hal.MaxTransfer+1)
	for _, p := range [][]byte{nil, {}, big} {
		if err := u.Transmit(p); !errors.Is(err, errcode.Param) {
			t.Fatalf("Transmit(len %d) = %v", len(p), err)
		}
		if err := u.ReceiveDMA(p); !errors.Is(err, errcode.Param) {
			t.Fatalf("ReceiveDMA(len %d) = %v", len(p), err)
		}
	}
	if n := len(f.Calls()); n != 0 {
		t.Fatalf("%d driver calls issued for rejected buffers", n)
	}
}

func TestAsyncModesAndAborts(t *testing.T) {
	u, f, _ := setup(t, UART2)
	_ = u.TransmitDMA([]byte{1, 2})
	_ = u.ReceiveIT(make([]byte, 8))
	_ = u.Abort()
	_ = u.AbortTransmit()
	_ = u.AbortReceive()
	calls := f.Calls()
	want := []string{"transmit", "receive", "abort", "abort_tx", "abort_rx"}
	if len(calls) != len(want) {
		t.Fatalf("calls %+v", calls)
	}
	for i, op := range want {
		if calls[i].Op != op {
			t.Fatalf("call %d = %s, want %s", i, calls[i].Op, op)
		}
	}
	if calls[0].Mode != hal.DMA || calls[1].Mode != hal.Interrupt {
		t.Fatalf("modes %v %v", calls[0].Mode, calls[1].Mode)
	}
}

func TestRejectedReceiveKeepsPendingSize(t *testing.T) {
	u, f, s := setup(t, UART2)
	if err := u.ReceiveIT(make([]byte, 32)); err != nil {
		t.Fatalf("ReceiveIT: %v", err)
	}
	f.Fail("receive", hal.StatusBusy)
	if err := u.ReceiveDMA(make([]byte, 4)); !errors.Is(err, errcode.PeripheralBusy) {
		t.Fatalf("second ReceiveDMA = %v", err)
	}
	f.SetState(hal.UARTReady)
	OnRxEvent(u.h, 7)
	if len(s.aux) != 1 || s.aux[0] != 32 {
		t.Fatalf("aux %v, want [32]", s.aux)
	}
}
