package trace

import (
	"strings"

	"escw-stm32/errcode"
	"escw-stm32/peripheral/gpio"
	"escw-stm32/peripheral/i2c"
	"escw-stm32/peripheral/spi"
	"escw-stm32/peripheral/uart"
	"escw-stm32/x/conv"
)

// Class is the peripheral class a record came from.
type Class uint8

const (
	ClassUART Class = iota + 1
	ClassI2C
	ClassSPI
	ClassEXTI
)

var classNames = [...]string{
	ClassUART: "uart",
	ClassI2C:  "i2c",
	ClassSPI:  "spi",
	ClassEXTI: "exti",
}

func (c Class) String() string {
	if c != 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "class?"
}

// Record is one event. Kind is the class's own Kind value. Arg is the receive
// size for UART, the address match code for I2C (bit 16 set for a slave
// transmit) and zero otherwise.
type Record struct {
	Class    Class
	Instance uint8
	Kind     uint8
	Arg      uint32
}

func UART(id uart.ID, ev uart.Event) Record {
	return Record{Class: ClassUART, Instance: uint8(id), Kind: uint8(ev.Kind), Arg: uint32(ev.Size)}
}

func I2C(id i2c.ID, ev i2c.Event) Record {
	arg := uint32(ev.AddrMatch)
	if ev.Kind == i2c.Awakened && ev.Dir == i2c.Tx {
		arg |= 1 << 16
	}
	return Record{Class: ClassI2C, Instance: uint8(id), Kind: uint8(ev.Kind), Arg: arg}
}

func SPI(id spi.ID, ev spi.Event) Record {
	return Record{Class: ClassSPI, Instance: uint8(id), Kind: uint8(ev.Kind)}
}

// EXTI records a triggered line; the instance is the pin number.
func EXTI(p gpio.Pin) Record {
	return Record{Class: ClassEXTI, Instance: uint8(p)}
}

const extiKind = "irq"

// KindName renders the record's kind using its class's names.
func (r Record) KindName() string {
	switch r.Class {
	case ClassUART:
		return uart.Kind(r.Kind).String()
	case ClassI2C:
		return i2c.Kind(r.Kind).String()
	case ClassSPI:
		return spi.Kind(r.Kind).String()
	case ClassEXTI:
		return extiKind
	}
	return "kind?"
}

// kindCount bounds the reverse lookup per class.
func kindCount(c Class) int {
	switch c {
	case ClassUART:
		return int(uart.Error) + 1
	case ClassI2C:
		return int(i2c.TxRxAborted) + 1
	case ClassSPI:
		return int(spi.TxRxAborted) + 1
	case ClassEXTI:
		return 1
	}
	return 0
}

const linePrefix = "evt "

// AppendLine appends "evt <class> <instance> <kind> <arg>" without allocating.
func AppendLine(dst []byte, r Record) []byte {
	dst = append(dst, linePrefix...)
	dst = append(dst, r.Class.String()...)
	dst = append(dst, ' ')
	dst = conv.AppendUint(dst, uint64(r.Instance))
	dst = append(dst, ' ')
	dst = append(dst, r.KindName()...)
	dst = append(dst, ' ')
	return conv.AppendUint(dst, uint64(r.Arg))
}

// ParseLine is the inverse of AppendLine. Lines that are not event lines
// return errcode.Param, so callers can skip other console output.
func ParseLine(s string) (Record, error) {
	f := strings.Fields(s)
	if len(f) != 5 || f[0] != strings.TrimSpace(linePrefix) {
		return Record{}, errcode.Param
	}
	var r Record
	for c := ClassUART; c <= ClassEXTI; c++ {
		if c.String() == f[1] {
			r.Class = c
		}
	}
	if r.Class == 0 {
		return Record{}, &errcode.E{C: errcode.Param, Op: "trace.parse", Msg: "class " + f[1]}
	}
	inst, ok := conv.ParseUint([]byte(f[2]))
	if !ok || inst > 0xFF {
		return Record{}, &errcode.E{C: errcode.Param, Op: "trace.parse", Msg: "instance " + f[2]}
	}
	r.Instance = uint8(inst)

	found := false
	for k := 0; k < kindCount(r.Class); k++ {
		r.Kind = uint8(k)
		if r.KindName() == f[3] {
			found = true
			break
		}
	}
	if !found {
		return Record{}, &errcode.E{C: errcode.Param, Op: "trace.parse", Msg: "kind " + f[3]}
	}
	arg, ok := conv.ParseUint([]byte(f[4]))
	if !ok || arg > 0xFFFF_FFFF {
		return Record{}, &errcode.E{C: errcode.Param, Op: "trace.parse", Msg: "arg " + f[4]}
	}
	r.Arg = uint32(arg)
	return r, nil
}
