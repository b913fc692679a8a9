//go:build !stm32

package board

import (
	"escw-stm32/hal"
	"escw-stm32/internal/chip"
)

// The host board enables every instance of the F4 family. Handles are plain Go
// values with Instance already set, standing in for what MX_xxx_Init does on
// target.

const name = "host"

func h(base uint32) *hal.Handle { return &hal.Handle{Instance: base} }

var UART = []Instance{
	{Num: 1, Base: chip.USART1, Handle: h(chip.USART1)},
	{Num: 2, Base: chip.USART2, Handle: h(chip.USART2)},
	{Num: 3, Base: chip.USART3, Handle: h(chip.USART3)},
	{Num: 4, Base: chip.UART4, Handle: h(chip.UART4)},
	{Num: 5, Base: chip.UART5, Handle: h(chip.UART5)},
	{Num: 6, Base: chip.USART6, Handle: h(chip.USART6)},
	{Num: 7, Base: chip.UART7, Handle: h(chip.UART7)},
	{Num: 8, Base: chip.UART8, Handle: h(chip.UART8)},
}

var I2C = []Instance{
	{Num: 1, Base: chip.I2C1, Handle: h(chip.I2C1)},
	{Num: 2, Base: chip.I2C2, Handle: h(chip.I2C2)},
	{Num: 3, Base: chip.I2C3, Handle: h(chip.I2C3)},
}

var SPI = []Instance{
	{Num: 1, Base: chip.SPI1, Handle: h(chip.SPI1)},
	{Num: 2, Base: chip.SPI2, Handle: h(chip.SPI2)},
	{Num: 3, Base: chip.SPI3, Handle: h(chip.SPI3)},
	{Num: 4, Base: chip.SPI4, Handle: h(chip.SPI4)},
	{Num: 5, Base: chip.SPI5, Handle: h(chip.SPI5)},
	{Num: 6, Base: chip.SPI6, Handle: h(chip.SPI6)},
}

var (
	IWDG = h(chip.IWDG)
	WWDG = h(chip.WWDG)
)
