// Package uart wraps the vendor UART driver: typed instances, blocking and
// asynchronous transfers, and routing of the vendor completion hooks to one
// handler per instance.
package uart

import (
	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
	"escw-stm32/internal/dispatch"
)

// ID names a UART/USART instance by its number in the reference manual.
type ID uint8

const (
	UART1 ID = iota + 1
	UART2
	UART3
	UART4
	UART5
	UART6
	UART7
	UART8
)

// Handler receives events in interrupt context together with the size of the
// receive that was pending when the event fired.
type Handler = dispatch.Handler[Event]

var (
	center = dispatch.NewCenter[ID, Event](dispatch.NewTable(dispatch.Entries[ID](board.UART)))
	drv    = hal.DefaultUART()
)

// SetDriver replaces the vendor driver. Call it before any transfer is started.
func SetDriver(d hal.UART) { drv = d }

// Enabled reports whether id exists in this build.
func Enabled(id ID) bool { return center.Table().Enabled(id) }

// Dropped reports events the trampolines discarded: handles that matched no
// instance, and events for instances with no handler.
func Dropped() (unresolved, unhandled uint32) { return center.Unresolved(), center.Unhandled() }

// UART is one enabled instance.
type UART struct {
	id        ID
	h         *hal.Handle
	TimeoutMS uint32
}

// New returns the object for id, or errcode.Param if id is not enabled.
func New(id ID) (*UART, error) {
	h, err := center.Table().Handle(id)
	if err != nil {
		return nil, errcode.Wrap("uart.new", err)
	}
	return &UART{id: id, h: h, TimeoutMS: hal.DefaultTimeoutMS}, nil
}

func (u *UART) ID() ID { return u.id }

// SetHandler installs fn as the instance's event handler, replacing any
// previous one. A nil fn removes it.
func (u *UART) SetHandler(fn Handler) error { return center.Register(u.id, fn) }

// Transmit blocks until p is sent or the timeout expires.
func (u *UART) Transmit(p []byte) error {
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap("uart.transmit", err)
	}
	return drv.Transmit(u.h, p, hal.Blocking, u.TimeoutMS).Err("uart.transmit")
}

// Receive blocks until the line goes idle, p is full or the timeout expires,
// and returns the number of bytes received.
func (u *UART) Receive(p []byte) (int, error) {
	if err := hal.CheckBuffer(p); err != nil {
		return 0, errcode.Wrap("uart.receive", err)
	}
	n, st := drv.ReceiveToIdle(u.h, p, hal.Blocking, u.TimeoutMS)
	if err := st.Err("uart.receive"); err != nil {
		return 0, err
	}
	return int(n), nil
}

// TransmitIT starts an interrupt-driven send. Completion arrives as TxHalf and
// TxCompleted events; p must stay untouched until then.
func (u *UART) TransmitIT(p []byte) error { return u.transmitAsync(p, hal.Interrupt) }

// TransmitDMA is TransmitIT on the DMA stream.
func (u *UART) TransmitDMA(p []byte) error { return u.transmitAsync(p, hal.DMA) }

// ReceiveIT starts an interrupt-driven receive-to-idle into p. Completion
// arrives as RxHalf and RxCompleted events.
func (u *UART) ReceiveIT(p []byte) error { return u.receiveAsync(p, hal.Interrupt) }

// ReceiveDMA is ReceiveIT on the DMA stream.
func (u *UART) ReceiveDMA(p []byte) error { return u.receiveAsync(p, hal.DMA) }

func (u *UART) transmitAsync(p []byte, m hal.Mode) error {
	op := "uart.transmit_" + m.String()
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.Transmit(u.h, p, m, 0).Err(op)
}

func (u *UART) receiveAsync(p []byte, m hal.Mode) error {
	op := "uart.receive_" + m.String()
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	// The completion hook can fire before the driver call returns. A rejected
	// call leaves any receive already in flight, so its size is put back.
	prev := center.Aux(u.id)
	if err := center.SetAux(u.id, uint32(len(p))); err != nil {
		return errcode.Wrap(op, err)
	}
	_, st := drv.ReceiveToIdle(u.h, p, m, 0)
	if st != hal.StatusOK {
		_ = center.SetAux(u.id, prev)
	}
	return st.Err(op)
}

// Abort cancels both directions; TxRxAborted follows.
func (u *UART) Abort() error { return drv.Abort(u.h, hal.AbortAll).Err("uart.abort") }

// AbortTransmit cancels the send direction; TxAborted follows.
func (u *UART) AbortTransmit() error {
	return drv.Abort(u.h, hal.AbortTx).Err("uart.abort_transmit")
}

// AbortReceive cancels the receive direction; RxAborted follows.
func (u *UART) AbortReceive() error {
	return drv.Abort(u.h, hal.AbortRx).Err("uart.abort_receive")
}
