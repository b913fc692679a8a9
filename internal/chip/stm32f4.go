// Package chip holds the STM32F4 peripheral memory map. The base addresses are
// what the vendor stores in each handle's Instance field, so they double as the
// keys for reverse identity lookup.
package chip

// APB1 / APB2 / AHB1 bus bases.
const (
	APB1 = 0x4000_0000
	APB2 = 0x4001_0000
	AHB1 = 0x4002_0000
)

// U(S)ART
const (
	USART1 = APB2 + 0x1000
	USART2 = APB1 + 0x4400
	USART3 = APB1 + 0x4800
	UART4  = APB1 + 0x4C00
	UART5  = APB1 + 0x5000
	USART6 = APB2 + 0x1400
	UART7  = APB1 + 0x7800
	UART8  = APB1 + 0x7C00
)

// I2C
const (
	I2C1 = APB1 + 0x5400
	I2C2 = APB1 + 0x5800
	I2C3 = APB1 + 0x5C00
)

// SPI
const (
	SPI1 = APB2 + 0x3000
	SPI2 = APB1 + 0x3800
	SPI3 = APB1 + 0x3C00
	SPI4 = APB2 + 0x3400
	SPI5 = APB2 + 0x5000
	SPI6 = APB2 + 0x5400
)

// GPIO ports, 0x400 apart starting at GPIOA.
const (
	GPIOA = AHB1 + 0x0000
	GPIOB = AHB1 + 0x0400
	GPIOC = AHB1 + 0x0800
	GPIOD = AHB1 + 0x0C00
	GPIOE = AHB1 + 0x1000
	GPIOF = AHB1 + 0x1400
	GPIOG = AHB1 + 0x1800
	GPIOH = AHB1 + 0x1C00
	GPIOI = AHB1 + 0x2000
	GPIOJ = AHB1 + 0x2400
	GPIOK = AHB1 + 0x2800
)

// Watchdogs
const (
	WWDG = APB1 + 0x2C00
	IWDG = APB1 + 0x3000
)
