//go:build stm32 && !nucleof446re

package board

import "escw-stm32/hal"

// Unknown stm32 board: nothing enabled. Every identity resolves to Param.

const name = "none"

var (
	UART []Instance
	I2C  []Instance
	SPI  []Instance
	IWDG *hal.Handle
	WWDG *hal.Handle
)
