//go:build stm32

package i2c

import "escw-stm32/hal"

//export HAL_I2C_MasterTxCpltCallback
func halI2CMasterTxCplt(h *hal.Handle) { OnMasterTxComplete(h) }

//export HAL_I2C_MasterRxCpltCallback
func halI2CMasterRxCplt(h *hal.Handle) { OnMasterRxComplete(h) }

//export HAL_I2C_SlaveTxCpltCallback
func halI2CSlaveTxCplt(h *hal.Handle) { OnSlaveTxComplete(h) }

//export HAL_I2C_SlaveRxCpltCallback
func halI2CSlaveRxCplt(h *hal.Handle) { OnSlaveRxComplete(h) }

//export HAL_I2C_AddrCallback
func halI2CAddr(h *hal.Handle, dir uint8, addrMatch uint16) { OnAddress(h, dir, addrMatch) }

//export HAL_I2C_ListenCpltCallback
func halI2CListenCplt(h *hal.Handle) { OnListenComplete(h) }

//export HAL_I2C_MemTxCpltCallback
func halI2CMemTxCplt(h *hal.Handle) { OnMemTxComplete(h) }

//export HAL_I2C_MemRxCpltCallback
func halI2CMemRxCplt(h *hal.Handle) { OnMemRxComplete(h) }

//export HAL_I2C_ErrorCallback
func halI2CError(h *hal.Handle) { OnError(h) }

//export HAL_I2C_AbortCpltCallback
func halI2CAbortCplt(h *hal.Handle) { OnAbortComplete(h) }
