// Package gpio provides the pin codec shared by every GPIO port, pin objects
// over the vendor GPIO driver, EXTI line dispatch and a debounced edge watcher.
package gpio

import (
	"math/bits"

	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/chip"
)

// Pin is a pin index within a port, 0 to 15. It is also the EXTI line number.
type Pin uint8

const (
	P0 Pin = iota
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	P10
	P11
	P12
	P13
	P14
	P15
)

// NumPins is the number of pins per port and of EXTI lines.
const NumPins = 16

// Mask is the vendor's single-bit GPIO_PIN_x form of a Pin.
type Mask uint16

var masks = [NumPins]Mask{
	1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4, 1 << 5, 1 << 6, 1 << 7,
	1 << 8, 1 << 9, 1 << 10, 1 << 11, 1 << 12, 1 << 13, 1 << 14, 1 << 15,
}

// ToMask returns the mask for p, or 0 if p is out of range.
func ToMask(p Pin) Mask {
	if p >= NumPins {
		return 0
	}
	return masks[p]
}

// FromMask is the inverse of ToMask. Masks with zero or several bits set do not
// name a pin and report false.
func FromMask(m Mask) (Pin, bool) {
	if m == 0 || m&(m-1) != 0 {
		return 0, false
	}
	p := Pin(bits.TrailingZeros16(uint16(m)))
	return p, masks[p] == m
}

func (p Pin) Mask() Mask { return ToMask(p) }

// Port is a GPIO port identified by its base address.
type Port uint32

const (
	PortA Port = chip.GPIOA
	PortB Port = chip.GPIOB
	PortC Port = chip.GPIOC
	PortD Port = chip.GPIOD
	PortE Port = chip.GPIOE
	PortF Port = chip.GPIOF
	PortG Port = chip.GPIOG
	PortH Port = chip.GPIOH
	PortI Port = chip.GPIOI
	PortJ Port = chip.GPIOJ
	PortK Port = chip.GPIOK
)

func (p Port) String() string {
	if p < PortA || p > PortK || (p-PortA)%0x400 != 0 {
		return "P?"
	}
	return "P" + string(rune('A'+(p-PortA)/0x400))
}

var drv = hal.DefaultGPIO()

// SetDriver replaces the vendor driver.
func SetDriver(d hal.GPIO) { drv = d }

// IO is one pin of one port. Mode, pull and speed come from the vendor init
// code.
type IO struct {
	Port Port
	Pin  Pin
}

func (io IO) valid() bool { return io.Pin < NumPins }

// State reads the input level. Out-of-range pins read low.
func (io IO) State() bool {
	if !io.valid() {
		return false
	}
	return drv.ReadPin(uint32(io.Port), uint16(masks[io.Pin]))
}

func (io IO) Set(high bool) {
	if io.valid() {
		drv.WritePin(uint32(io.Port), uint16(masks[io.Pin]), high)
	}
}

func (io IO) High() { io.Set(true) }
func (io IO) Low()  { io.Set(false) }

func (io IO) Toggle() {
	if io.valid() {
		drv.TogglePin(uint32(io.Port), uint16(masks[io.Pin]))
	}
}

// Lock freezes the pin configuration until the next reset.
func (io IO) Lock() error {
	if !io.valid() {
		return errcode.Wrap("gpio.lock", errcode.Param)
	}
	return drv.LockPin(uint32(io.Port), uint16(masks[io.Pin])).Err("gpio.lock")
}

func (io IO) String() string {
	b := []byte(io.Port.String())
	if io.Pin >= 10 {
		b = append(b, '1')
	}
	return string(append(b, byte('0'+io.Pin%10)))
}
