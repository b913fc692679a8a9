package i2c

import (
	"tinygo.org/x/drivers"

	"escw-stm32/errcode"
	"escw-stm32/hal"
)

var _ drivers.I2C = (*Master)(nil)

// Master drives an instance as bus controller.
type Master struct {
	port
	// Trials is the number of address probes DeviceReady makes.
	Trials uint32
}

func NewMaster(id ID) (*Master, error) {
	p, err := open("i2c.new_master", id)
	if err != nil {
		return nil, err
	}
	return &Master{port: p, Trials: 3}, nil
}

// DeviceReady probes addr until it acknowledges or Trials run out.
func (m *Master) DeviceReady(addr uint16) error {
	dev, err := devAddr(addr)
	if err != nil {
		return errcode.Wrap("i2c.device_ready", err)
	}
	return drv.DeviceReady(m.h, dev, m.Trials, m.TimeoutMS).Err("i2c.device_ready")
}

func (m *Master) Send(addr uint16, p []byte) error       { return m.send(addr, p, hal.Blocking) }
func (m *Master) SendIT(addr uint16, p []byte) error     { return m.send(addr, p, hal.Interrupt) }
func (m *Master) SendDMA(addr uint16, p []byte) error    { return m.send(addr, p, hal.DMA) }
func (m *Master) Receive(addr uint16, p []byte) error    { return m.receive(addr, p, hal.Blocking) }
func (m *Master) ReceiveIT(addr uint16, p []byte) error  { return m.receive(addr, p, hal.Interrupt) }
func (m *Master) ReceiveDMA(addr uint16, p []byte) error { return m.receive(addr, p, hal.DMA) }

// MemoryWrite writes p to the register or memory location mem of device addr.
func (m *Master) MemoryWrite(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memWrite(addr, mem, p, hal.Blocking)
}

func (m *Master) MemoryWriteIT(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memWrite(addr, mem, p, hal.Interrupt)
}

func (m *Master) MemoryWriteDMA(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memWrite(addr, mem, p, hal.DMA)
}

// MemoryRead reads len(p) bytes from location mem of device addr, using a
// repeated start between the address phase and the read.
func (m *Master) MemoryRead(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memRead(addr, mem, p, hal.Blocking)
}

func (m *Master) MemoryReadIT(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memRead(addr, mem, p, hal.Interrupt)
}

func (m *Master) MemoryReadDMA(addr uint16, mem hal.MemAddr, p []byte) error {
	return m.memRead(addr, mem, p, hal.DMA)
}

// Abort stops an interrupt-mode master transfer to addr; TxRxAborted follows.
func (m *Master) Abort(addr uint16) error {
	dev, err := devAddr(addr)
	if err != nil {
		return errcode.Wrap("i2c.abort", err)
	}
	return drv.MasterAbort(m.h, dev).Err("i2c.abort")
}

// Tx implements drivers.I2C. A write of one or two bytes followed by a read is
// issued as a memory read, which keeps the bus with a repeated start. Longer
// writes are followed by a separate read transaction.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	switch {
	case len(w) == 0 && len(r) == 0:
		return errcode.Wrap("i2c.tx", errcode.Param)
	case len(r) == 0:
		return m.Send(addr, w)
	case len(w) == 0:
		return m.Receive(addr, r)
	case len(w) == 1:
		return m.MemoryRead(addr, hal.MemAddr{Addr: uint16(w[0]), Size: hal.MemAddr8Bit}, r)
	case len(w) == 2:
		return m.MemoryRead(addr, hal.MemAddr{Addr: uint16(w[0])<<8 | uint16(w[1]), Size: hal.MemAddr16Bit}, r)
	}
	if err := m.Send(addr, w); err != nil {
		return err
	}
	return m.Receive(addr, r)
}

func (m *Master) send(addr uint16, p []byte, md hal.Mode) error {
	op := opName("i2c.send", md)
	dev, err := check(addr, p)
	if err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.MasterTransmit(m.h, dev, p, md, m.timeout(md)).Err(op)
}

func (m *Master) receive(addr uint16, p []byte, md hal.Mode) error {
	op := opName("i2c.receive", md)
	dev, err := check(addr, p)
	if err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.MasterReceive(m.h, dev, p, md, m.timeout(md)).Err(op)
}

func (m *Master) memWrite(addr uint16, mem hal.MemAddr, p []byte, md hal.Mode) error {
	op := opName("i2c.mem_write", md)
	dev, err := checkMem(addr, mem, p)
	if err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.MemWrite(m.h, dev, mem, p, md, m.timeout(md)).Err(op)
}

func (m *Master) memRead(addr uint16, mem hal.MemAddr, p []byte, md hal.Mode) error {
	op := opName("i2c.mem_read", md)
	dev, err := checkMem(addr, mem, p)
	if err != nil {
		return errcode.Wrap(op, err)
	}
	return drv.MemRead(m.h, dev, mem, p, md, m.timeout(md)).Err(op)
}

func check(addr uint16, p []byte) (uint16, error) {
	if err := hal.CheckBuffer(p); err != nil {
		return 0, err
	}
	return devAddr(addr)
}

func checkMem(addr uint16, mem hal.MemAddr, p []byte) (uint16, error) {
	switch mem.Size {
	case hal.MemAddr8Bit:
		if mem.Addr > 0xFF {
			return 0, errcode.Param
		}
	case hal.MemAddr16Bit:
	default:
		return 0, errcode.Param
	}
	return check(addr, p)
}
