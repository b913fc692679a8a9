// Package flash sequences writes to the embedded flash controller. Every
// operation runs inside one unlock/lock transaction, and the controller is
// locked again on every exit path.
package flash

import (
	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/x/conv"
)

// Banks (FLASH_BANK_x).
const (
	Bank1 uint32 = 1
	Bank2 uint32 = 2
)

var drv = hal.DefaultFlash()

// SetDriver replaces the vendor driver.
func SetDriver(d hal.Flash) { drv = d }

// Flash holds the write width and erase voltage range. The zero value programs
// bytes at voltage range 1.
type Flash struct {
	Width        hal.ProgramType
	VoltageRange uint32
}

// New returns a Flash programming words at voltage range 1.
func New() *Flash {
	return &Flash{Width: hal.ProgramWord, VoltageRange: hal.VoltageRange1}
}

// Erase erases count sectors of bank starting at sector. On failure the error
// names the sector the controller stopped at.
func (f *Flash) Erase(bank, sector, count uint32) error {
	const op = "flash.erase"
	if count == 0 {
		return errcode.Wrap(op, errcode.Param)
	}
	return transact(op, func() error {
		return erase(op, &hal.EraseInit{
			TypeErase:    hal.EraseSectors,
			Banks:        bank,
			Sector:       sector,
			NbSectors:    count,
			VoltageRange: f.VoltageRange,
		})
	})
}

// EraseBank mass-erases bank.
func (f *Flash) EraseBank(bank uint32) error {
	const op = "flash.erase_bank"
	return transact(op, func() error {
		return erase(op, &hal.EraseInit{
			TypeErase:    hal.EraseMass,
			Banks:        bank,
			VoltageRange: f.VoltageRange,
		})
	})
}

// Program writes data at addr in units of f.Width, packing each unit
// little-endian. len(data) must be a multiple of the width. It stops at the
// first rejected write; the error carries that write's address and nothing
// after it is attempted.
func (f *Flash) Program(addr uint32, data []byte) error {
	const op = "flash.program"
	w := f.Width.Size()
	if len(data) == 0 || len(data)%w != 0 {
		return errcode.Wrap(op, errcode.Param)
	}
	return transact(op, func() error {
		for off := 0; off < len(data); off += w {
			at := addr + uint32(off)
			if st := drv.Program(f.Width, at, pack(data[off:off+w])); st != hal.StatusOK {
				return &errcode.E{C: st.Code(), Op: op, Msg: string(conv.AppendHex32([]byte("at 0x"), at))}
			}
		}
		return nil
	})
}

// transact brackets fn with unlock and lock. Lock runs exactly once whatever
// happens; its failure is reported only when nothing failed before it.
func transact(op string, fn func() error) (err error) {
	defer func() {
		if st := drv.Lock(); st != hal.StatusOK && err == nil {
			err = &errcode.E{C: st.Code(), Op: op, Msg: "lock"}
		}
	}()
	if st := drv.Unlock(); st != hal.StatusOK {
		return &errcode.E{C: st.Code(), Op: op, Msg: "unlock"}
	}
	return fn()
}

func erase(op string, init *hal.EraseInit) error {
	sectorErr := hal.NoSectorError
	st := drv.Erase(init, &sectorErr)
	switch {
	case st == hal.StatusOK && sectorErr == hal.NoSectorError:
		return nil
	case sectorErr == hal.NoSectorError:
		return st.Err(op)
	}
	c := st.Code()
	if st == hal.StatusOK {
		c = errcode.Unknown
	}
	return &errcode.E{C: c, Op: op, Msg: string(conv.AppendUint([]byte("sector "), uint64(sectorErr)))}
}

func pack(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
