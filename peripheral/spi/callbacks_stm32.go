//go:build stm32

package spi

import "escw-stm32/hal"

//export HAL_SPI_TxCpltCallback
func halSPITxCplt(h *hal.Handle) { OnTxComplete(h) }

//export HAL_SPI_RxCpltCallback
func halSPIRxCplt(h *hal.Handle) { OnRxComplete(h) }

//export HAL_SPI_TxRxCpltCallback
func halSPITxRxCplt(h *hal.Handle) { OnTxRxComplete(h) }

//export HAL_SPI_TxHalfCpltCallback
func halSPITxHalfCplt(h *hal.Handle) { OnTxHalfComplete(h) }

//export HAL_SPI_RxHalfCpltCallback
func halSPIRxHalfCplt(h *hal.Handle) { OnRxHalfComplete(h) }

//export HAL_SPI_TxRxHalfCpltCallback
func halSPITxRxHalfCplt(h *hal.Handle) { OnTxRxHalfComplete(h) }

//export HAL_SPI_ErrorCallback
func halSPIError(h *hal.Handle) { OnError(h) }

//export HAL_SPI_AbortCpltCallback
func halSPIAbortCplt(h *hal.Handle) { OnAbortComplete(h) }
