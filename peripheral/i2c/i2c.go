// Package i2c wraps the vendor I2C driver in master and slave objects and routes
// the vendor completion hooks to one handler per instance.
//
// Device addresses are 7-bit throughout; they are shifted into the vendor's
// 8-bit form at the driver boundary.
package i2c

import (
	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
	"escw-stm32/internal/dispatch"
)

// ID names an I2C instance by its number in the reference manual.
type ID uint8

const (
	I2C1 ID = iota + 1
	I2C2
	I2C3
)

// Handler receives events in interrupt context. The aux argument is unused by
// this package and always zero.
type Handler = dispatch.Handler[Event]

var (
	center = dispatch.NewCenter[ID, Event](dispatch.NewTable(dispatch.Entries[ID](board.I2C)))
	drv    = hal.DefaultI2C()
)

// SetDriver replaces the vendor driver. Call it before any transfer is started.
func SetDriver(d hal.I2C) { drv = d }

// Enabled reports whether id exists in this build.
func Enabled(id ID) bool { return center.Table().Enabled(id) }

// Dropped reports events the trampolines discarded.
func Dropped() (unresolved, unhandled uint32) { return center.Unresolved(), center.Unhandled() }

// port is the part shared by the master and slave views of an instance. Both
// views of one instance share a single handler slot.
type port struct {
	id        ID
	h         *hal.Handle
	TimeoutMS uint32
}

func open(op string, id ID) (port, error) {
	h, err := center.Table().Handle(id)
	if err != nil {
		return port{}, errcode.Wrap(op, err)
	}
	return port{id: id, h: h, TimeoutMS: hal.DefaultTimeoutMS}, nil
}

func (p *port) ID() ID { return p.id }

// SetHandler installs fn for this instance, replacing any previous handler. A
// nil fn removes it.
func (p *port) SetHandler(fn Handler) error { return center.Register(p.id, fn) }

func (p *port) timeout(m hal.Mode) uint32 {
	if m == hal.Blocking {
		return p.TimeoutMS
	}
	return 0
}

func opName(base string, m hal.Mode) string {
	if m == hal.Blocking {
		return base
	}
	return base + "_" + m.String()
}

// devAddr converts a 7-bit address to the vendor's left-aligned form.
func devAddr(addr uint16) (uint16, error) {
	if addr > 0x7F {
		return 0, errcode.Param
	}
	return addr << 1, nil
}
