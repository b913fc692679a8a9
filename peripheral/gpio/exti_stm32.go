//go:build stm32

package gpio

//export HAL_GPIO_EXTI_Callback
func halGPIOEXTI(pin uint16) { OnEXTI(pin) }
