// Package hal describes the call contract of the vendor STM32Cube HAL as seen
// from Go: status codes, the handle prefix shared by every *_HandleTypeDef and
// one driver interface per peripheral class.
//
// On `stm32` builds the interfaces are backed by the C library (see the
// *_stm32.go files). Host builds get inert drivers that reject every call; tests
// substitute the fakes in hal/halfake.
package hal

import "escw-stm32/errcode"

// Handle is the layout-compatible prefix of a vendor peripheral handle
// (UART_HandleTypeDef, I2C_HandleTypeDef, ...). Instance is the peripheral base
// address and is the only field this library reads. Handles live in vendor
// static storage and are never owned here.
type Handle struct {
	Instance uint32
}

// Mode selects the vendor call family for a transfer.
type Mode uint8

const (
	Blocking  Mode = iota // HAL_xxx(..., Timeout)
	Interrupt             // HAL_xxx_IT
	DMA                   // HAL_xxx_DMA
)

func (m Mode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case Interrupt:
		return "it"
	case DMA:
		return "dma"
	default:
		return "mode?"
	}
}

// MaxTransfer is the largest buffer the vendor API accepts (sizes are uint16).
const MaxTransfer = 0xFFFF

// CheckBuffer rejects buffers the vendor API cannot express: empty ones and
// ones longer than MaxTransfer.
func CheckBuffer(p []byte) error {
	if len(p) == 0 || len(p) > MaxTransfer {
		return errcode.Param
	}
	return nil
}

// DefaultTimeoutMS bounds blocking transfers unless a peripheral object is
// given its own timeout.
const DefaultTimeoutMS = 1000
