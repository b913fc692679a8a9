//go:build stm32

package uart

import "escw-stm32/hal"

// Strong definitions of the vendor's weak UART hooks.

//export HAL_UART_TxCpltCallback
func halUARTTxCplt(h *hal.Handle) { OnTxComplete(h) }

//export HAL_UART_TxHalfCpltCallback
func halUARTTxHalfCplt(h *hal.Handle) { OnTxHalfComplete(h) }

//export HAL_UART_ErrorCallback
func halUARTError(h *hal.Handle) { OnError(h) }

//export HAL_UART_AbortCpltCallback
func halUARTAbortCplt(h *hal.Handle) { OnAbortComplete(h) }

//export HAL_UART_AbortTransmitCpltCallback
func halUARTAbortTxCplt(h *hal.Handle) { OnAbortTransmitComplete(h) }

//export HAL_UART_AbortReceiveCpltCallback
func halUARTAbortRxCplt(h *hal.Handle) { OnAbortReceiveComplete(h) }

//export HAL_UARTEx_RxEventCallback
func halUARTRxEvent(h *hal.Handle, size uint16) { OnRxEvent(h, size) }
