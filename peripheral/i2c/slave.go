package i2c

import (
	"escw-stm32/errcode"
	"escw-stm32/hal"
)

// Slave drives an instance as a target at the own address configured by the
// vendor init code.
type Slave struct {
	port
}

func NewSlave(id ID) (*Slave, error) {
	p, err := open("i2c.new_slave", id)
	if err != nil {
		return nil, err
	}
	return &Slave{port: p}, nil
}

func (s *Slave) Send(p []byte) error       { return s.send(p, hal.Blocking) }
func (s *Slave) SendIT(p []byte) error     { return s.send(p, hal.Interrupt) }
func (s *Slave) SendDMA(p []byte) error    { return s.send(p, hal.DMA) }
func (s *Slave) Receive(p []byte) error    { return s.receive(p, hal.Blocking) }
func (s *Slave) ReceiveIT(p []byte) error  { return s.receive(p, hal.Interrupt) }
func (s *Slave) ReceiveDMA(p []byte) error { return s.receive(p, hal.DMA) }

// Listen enables address-match interrupts. Each match raises Awakened with the
// transfer direction; the handler then starts SendIT or ReceiveIT.
func (s *Slave) Listen() error { return drv.Listen(s.h, true).Err("i2c.listen") }

// StopListening disables address-match interrupts.
func (s *Slave) StopListening() error { return drv.Listen(s.h, false).Err("i2c.stop_listening") }

func (s *Slave) send(p []byte, md hal.Mode) error {
	op := opName("i2c.slave_send", md)
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.SlaveTransmit(s.h, p, md, s.timeout(md)).Err(op)
}

func (s *Slave) receive(p []byte, md hal.Mode) error {
	op := opName("i2c.slave_receive", md)
	if err := hal.CheckBuffer(p); err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.SlaveReceive(s.h, p, md, s.timeout(md)).Err(op)
}
