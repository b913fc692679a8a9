package halfake

import (
	"sync"

	"escw-stm32/hal"
)

// GPIO fakes hal.GPIO with a 16-bit level register per port.
type GPIO struct {
	mu     sync.Mutex
	levels map[uint32]uint16
	locked map[uint32]uint16
	Writes int
}

func NewGPIO() *GPIO {
	return &GPIO{levels: map[uint32]uint16{}, locked: map[uint32]uint16{}}
}

func (g *GPIO) ReadPin(port uint32, mask uint16) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.levels[port]&mask != 0
}

func (g *GPIO) WritePin(port uint32, mask uint16, high bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Writes++
	if high {
		g.levels[port] |= mask
	} else {
		g.levels[port] &^= mask
	}
}

func (g *GPIO) TogglePin(port uint32, mask uint16) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Writes++
	g.levels[port] ^= mask
}

// LockPin fails on a second lock of the same pin, as the lock sequence does
// once LCKK is set.
func (g *GPIO) LockPin(port uint32, mask uint16) hal.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.locked[port]&mask != 0 {
		return hal.StatusError
	}
	g.locked[port] |= mask
	return hal.StatusOK
}

// Drive sets an input level as seen by ReadPin.
func (g *GPIO) Drive(port uint32, mask uint16, high bool) { g.WritePin(port, mask, high) }

// Write is one accepted program operation.
type Write struct {
	Type hal.ProgramType
	Addr uint32
	Data uint64
}

// Flash fakes hal.Flash. It tracks the lock state and counts every
// unlock and lock so tests can check the sequencer's pairing.
type Flash struct {
	mu sync.Mutex

	Locked  bool
	Unlocks int
	Locks   int
	Writes  []Write
	Erases  []hal.EraseInit

	UnlockStatus hal.Status
	LockStatus   hal.Status
	EraseStatus  hal.Status
	// SectorError is reported by Erase. NewFlash sets it to hal.NoSectorError.
	SectorError uint32
	// FailProgramAt makes the n-th Program call (1-based) return ProgramStatus.
	FailProgramAt int
	ProgramStatus hal.Status

	programs int
}

func NewFlash() *Flash {
	return &Flash{Locked: true, SectorError: hal.NoSectorError, ProgramStatus: hal.StatusError}
}

func (f *Flash) Unlock() hal.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Unlocks++
	if f.UnlockStatus != hal.StatusOK {
		return f.UnlockStatus
	}
	f.Locked = false
	return hal.StatusOK
}

func (f *Flash) Lock() hal.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Locks++
	f.Locked = true
	return f.LockStatus
}

func (f *Flash) Program(t hal.ProgramType, addr uint32, data uint64) hal.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.programs++
	if f.Locked {
		return hal.StatusError
	}
	if f.FailProgramAt > 0 && f.programs == f.FailProgramAt {
		return f.ProgramStatus
	}
	f.Writes = append(f.Writes, Write{Type: t, Addr: addr, Data: data})
	return hal.StatusOK
}

func (f *Flash) Erase(init *hal.EraseInit, sectorError *uint32) hal.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Locked {
		*sectorError = init.Sector
		return hal.StatusError
	}
	f.Erases = append(f.Erases, *init)
	*sectorError = f.SectorError
	return f.EraseStatus
}

// Programs counts Program calls, accepted or not.
func (f *Flash) Programs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.programs
}
