// Package halfake provides host-side stand-ins for the vendor driver. Each fake
// records the calls it receives and returns a configurable status, so tests can
// inject faults at a precise step.
package halfake

import (
	"sync"

	"escw-stm32/hal"
)

// Call is one recorded driver invocation.
type Call struct {
	Op     string
	Handle *hal.Handle
	Mode   hal.Mode
	Dev    uint16
	Mem    hal.MemAddr
	Data   []byte
}

type recorder struct {
	mu    sync.Mutex
	calls []Call
	fail  map[string]hal.Status
}

func (r *recorder) record(c Call) hal.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Data != nil {
		c.Data = append([]byte(nil), c.Data...)
	}
	r.calls = append(r.calls, c)
	return r.fail[c.Op]
}

// Fail makes every subsequent call to op return st (StatusOK clears it).
func (r *recorder) Fail(op string, st hal.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail == nil {
		r.fail = map[string]hal.Status{}
	}
	if st == hal.StatusOK {
		delete(r.fail, op)
		return
	}
	r.fail[op] = st
}

// Calls returns a snapshot of the recorded calls.
func (r *recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call, if any.
func (r *recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset drops recorded calls and injected faults.
func (r *recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.fail = nil
	r.mu.Unlock()
}

// ----------------------------- UART ------------------------------------------

// UART fakes hal.UART. Blocking receive-to-idle copies RxData into the buffer
// and reports the copied length; State returns the configured device state.
type UART struct {
	recorder
	mu     sync.Mutex
	state  hal.UARTState
	RxData []byte
}

func NewUART() *UART { return &UART{state: hal.UARTReady} }

func (u *UART) SetState(s hal.UARTState) { u.mu.Lock(); u.state = s; u.mu.Unlock() }

func (u *UART) Transmit(h *hal.Handle, p []byte, m hal.Mode, _ uint32) hal.Status {
	return u.record(Call{Op: "transmit", Handle: h, Mode: m, Data: p})
}

func (u *UART) ReceiveToIdle(h *hal.Handle, p []byte, m hal.Mode, _ uint32) (uint16, hal.Status) {
	st := u.record(Call{Op: "receive", Handle: h, Mode: m})
	if st != hal.StatusOK || m != hal.Blocking {
		return 0, st
	}
	n := copy(p, u.RxData)
	return uint16(n), st
}

func (u *UART) Abort(h *hal.Handle, k hal.AbortKind) hal.Status {
	op := "abort"
	switch k {
	case hal.AbortTx:
		op = "abort_tx"
	case hal.AbortRx:
		op = "abort_rx"
	}
	return u.record(Call{Op: op, Handle: h})
}

func (u *UART) State(*hal.Handle) hal.UARTState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// ----------------------------- I2C -------------------------------------------

// I2C fakes hal.I2C. Reads fill the buffer from RxData.
type I2C struct {
	recorder
	RxData []byte
}

func NewI2C() *I2C { return &I2C{} }

func (f *I2C) fill(p []byte, st hal.Status) hal.Status {
	if st == hal.StatusOK {
		copy(p, f.RxData)
	}
	return st
}

func (f *I2C) DeviceReady(h *hal.Handle, dev uint16, _, _ uint32) hal.Status {
	return f.record(Call{Op: "device_ready", Handle: h, Dev: dev})
}

func (f *I2C) MasterTransmit(h *hal.Handle, dev uint16, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.record(Call{Op: "master_transmit", Handle: h, Dev: dev, Mode: m, Data: p})
}

func (f *I2C) MasterReceive(h *hal.Handle, dev uint16, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.fill(p, f.record(Call{Op: "master_receive", Handle: h, Dev: dev, Mode: m}))
}

func (f *I2C) SlaveTransmit(h *hal.Handle, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.record(Call{Op: "slave_transmit", Handle: h, Mode: m, Data: p})
}

func (f *I2C) SlaveReceive(h *hal.Handle, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.fill(p, f.record(Call{Op: "slave_receive", Handle: h, Mode: m}))
}

func (f *I2C) MemWrite(h *hal.Handle, dev uint16, mem hal.MemAddr, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.record(Call{Op: "mem_write", Handle: h, Dev: dev, Mem: mem, Mode: m, Data: p})
}

func (f *I2C) MemRead(h *hal.Handle, dev uint16, mem hal.MemAddr, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.fill(p, f.record(Call{Op: "mem_read", Handle: h, Dev: dev, Mem: mem, Mode: m}))
}

func (f *I2C) Listen(h *hal.Handle, enable bool) hal.Status {
	op := "listen_off"
	if enable {
		op = "listen_on"
	}
	return f.record(Call{Op: op, Handle: h})
}

func (f *I2C) MasterAbort(h *hal.Handle, dev uint16) hal.Status {
	return f.record(Call{Op: "master_abort", Handle: h, Dev: dev})
}

// ----------------------------- SPI -------------------------------------------

// SPI fakes hal.SPI as a loopback: full-duplex transfers echo tx into rx unless
// RxData is set.
type SPI struct {
	recorder
	RxData []byte
}

func NewSPI() *SPI { return &SPI{} }

func (f *SPI) Transmit(h *hal.Handle, p []byte, m hal.Mode, _ uint32) hal.Status {
	return f.record(Call{Op: "transmit", Handle: h, Mode: m, Data: p})
}

func (f *SPI) Receive(h *hal.Handle, p []byte, m hal.Mode, _ uint32) hal.Status {
	st := f.record(Call{Op: "receive", Handle: h, Mode: m})
	if st == hal.StatusOK {
		copy(p, f.RxData)
	}
	return st
}

func (f *SPI) TransmitReceive(h *hal.Handle, tx, rx []byte, m hal.Mode, _ uint32) hal.Status {
	st := f.record(Call{Op: "transmit_receive", Handle: h, Mode: m, Data: tx})
	if st == hal.StatusOK {
		if f.RxData != nil {
			copy(rx, f.RxData)
		} else {
			copy(rx, tx)
		}
	}
	return st
}

func (f *SPI) Abort(h *hal.Handle) hal.Status {
	return f.record(Call{Op: "abort", Handle: h})
}

// ----------------------------- Watchdog --------------------------------------

type Watchdog struct{ recorder }

func NewWatchdog() *Watchdog { return &Watchdog{} }

func (w *Watchdog) RefreshIWDG(h *hal.Handle) hal.Status {
	return w.record(Call{Op: "iwdg_refresh", Handle: h})
}

func (w *Watchdog) RefreshWWDG(h *hal.Handle) hal.Status {
	return w.record(Call{Op: "wwdg_refresh", Handle: h})
}
