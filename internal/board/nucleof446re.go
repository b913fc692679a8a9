//go:build stm32 && nucleof446re

package board

import (
	"escw-stm32/hal"
	"escw-stm32/internal/chip"
)

// NUCLEO-F446RE as generated by CubeMX: USART2 on the ST-LINK VCP, USART1 on
// D8/D2, I2C1 on the Arduino header, SPI1 and the independent watchdog.

const name = "nucleo-f446re"

//go:extern huart1
var huart1 hal.Handle

//go:extern huart2
var huart2 hal.Handle

//go:extern hi2c1
var hi2c1 hal.Handle

//go:extern hspi1
var hspi1 hal.Handle

//go:extern hiwdg
var hiwdg hal.Handle

var UART = []Instance{
	{Num: 1, Base: chip.USART1, Handle: &huart1},
	{Num: 2, Base: chip.USART2, Handle: &huart2},
}

var I2C = []Instance{
	{Num: 1, Base: chip.I2C1, Handle: &hi2c1},
}

var SPI = []Instance{
	{Num: 1, Base: chip.SPI1, Handle: &hspi1},
}

var (
	IWDG = &hiwdg
	WWDG *hal.Handle
)
