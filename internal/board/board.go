// Package board is the build-time instance configuration: which peripheral
// instances exist in this firmware image and where their vendor handles live.
//
// Exactly one board file is compiled in, selected by build tags in the same way
// hardware setups are selected elsewhere (stm32 && <board>, or the host table
// for tests). The tables are written once at package init and never change.
package board

import "escw-stm32/hal"

// Instance binds a logical instance number (the 2 in USART2) to the base
// address the vendor writes into the handle and the handle itself.
type Instance struct {
	Num    uint8
	Base   uint32
	Handle *hal.Handle
}

// Name is a short board label for diagnostics.
func Name() string { return name }
