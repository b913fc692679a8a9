// Package spi wraps the vendor SPI driver and routes its completion hooks to
// one handler per instance.
package spi

import (
	"tinygo.org/x/drivers"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
	"escw-stm32/internal/dispatch"
)

// ID names an SPI instance by its number in the reference manual.
type ID uint8

const (
	SPI1 ID = iota + 1
	SPI2
	SPI3
	SPI4
	SPI5
	SPI6
)

type Handler = dispatch.Handler[Event]

var (
	center = dispatch.NewCenter[ID, Event](dispatch.NewTable(dispatch.Entries[ID](board.SPI)))
	drv    = hal.DefaultSPI()
)

// SetDriver replaces the vendor driver. Call it before any transfer is started.
func SetDriver(d hal.SPI) { drv = d }

func Enabled(id ID) bool { return center.Table().Enabled(id) }

// Dropped reports events the trampolines discarded.
func Dropped() (unresolved, unhandled uint32) { return center.Unresolved(), center.Unhandled() }

var _ drivers.SPI = (*SPI)(nil)

// SPI is one enabled instance in the mode the vendor init code configured.
// Chip select is left to the caller.
type SPI struct {
	id        ID
	h         *hal.Handle
	TimeoutMS uint32
}

func New(id ID) (*SPI, error) {
	h, err := center.Table().Handle(id)
	if err != nil {
		return nil, errcode.Wrap("spi.new", err)
	}
	return &SPI{id: id, h: h, TimeoutMS: hal.DefaultTimeoutMS}, nil
}

func (s *SPI) ID() ID { return s.id }

// SetHandler installs fn, replacing any previous handler. A nil fn removes it.
func (s *SPI) SetHandler(fn Handler) error { return center.Register(s.id, fn) }

func (s *SPI) Send(p []byte) error       { return s.send(p, hal.Blocking) }
func (s *SPI) SendIT(p []byte) error     { return s.send(p, hal.Interrupt) }
func (s *SPI) SendDMA(p []byte) error    { return s.send(p, hal.DMA) }
func (s *SPI) Receive(p []byte) error    { return s.receive(p, hal.Blocking) }
func (s *SPI) ReceiveIT(p []byte) error  { return s.receive(p, hal.Interrupt) }
func (s *SPI) ReceiveDMA(p []byte) error { return s.receive(p, hal.DMA) }

// SendReceive clocks len(tx) bytes, filling rx. The buffers must be the same
// length.
func (s *SPI) SendReceive(tx, rx []byte) error { return s.sendReceive(tx, rx, hal.Blocking) }

func (s *SPI) SendReceiveIT(tx, rx []byte) error  { return s.sendReceive(tx, rx, hal.Interrupt) }
func (s *SPI) SendReceiveDMA(tx, rx []byte) error { return s.sendReceive(tx, rx, hal.DMA) }

// Abort stops any transfer; TxRxAborted follows.
func (s *SPI) Abort() error { return drv.Abort(s.h).Err("spi.abort") }

// Tx implements drivers.SPI: full duplex when both buffers are given, one
// direction otherwise.
func (s *SPI) Tx(w, r []byte) error {
	switch {
	case len(w) == 0:
		return s.Receive(r)
	case len(r) == 0:
		return s.Send(w)
	}
	return s.SendReceive(w, r)
}

// Transfer implements drivers.SPI for a single byte.
func (s *SPI) Transfer(b byte) (byte, error) {
	var w, r [1]byte
	w[0] = b
	if err := s.SendReceive(w[:], r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (s *SPI) timeout(m hal.Mode) uint32 {
	if m == hal.Blocking {
		return s.TimeoutMS
	}
	return 0
}

func opName(base string, m hal.Mode) string {
	if m == hal.Blocking {
		return base
	}
	return base + "_" + m.String()
}

func (s *SPI) send(p []byte, m hal.Mode) error {
	op := opName("spi.send", m)
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.Transmit(s.h, p, m, s.timeout(m)).Err(op)
}

func (s *SPI) receive(p []byte, m hal.Mode) error {
	op := opName("spi.receive", m)
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.Receive(s.h, p, m, s.timeout(m)).Err(op)
}

func (s *SPI) sendReceive(tx, rx []byte, m hal.Mode) error {
	op := opName("spi.send_receive", m)
	if err := hal.CheckBuffer(tx); err != nil {
		return errcode.Wrap(op, err)
	}
	if len(rx) != len(tx) {
		return &errcode.E{C: errcode.Param, Op: op, Msg: "tx/rx length mismatch"}
	}
	return drv.TransmitReceive(s.h, tx, rx, m, s.timeout(m)).Err(op)
}
