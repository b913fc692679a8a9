//go:build stm32

package hal

import "unsafe"

// Vendor entry points. Bodyless //export declarations bind to the C symbols of
// the STM32Cube HAL linked into the firmware image.

//export HAL_UART_Transmit
func cUARTTransmit(h *Handle, p *byte, size uint16, timeout uint32) Status

//export HAL_UART_Transmit_IT
func cUARTTransmitIT(h *Handle, p *byte, size uint16) Status

//export HAL_UART_Transmit_DMA
func cUARTTransmitDMA(h *Handle, p *byte, size uint16) Status

//export HAL_UARTEx_ReceiveToIdle
func cUARTReceiveToIdle(h *Handle, p *byte, size uint16, rxLen *uint16, timeout uint32) Status

//export HAL_UARTEx_ReceiveToIdle_IT
func cUARTReceiveToIdleIT(h *Handle, p *byte, size uint16) Status

//export HAL_UARTEx_ReceiveToIdle_DMA
func cUARTReceiveToIdleDMA(h *Handle, p *byte, size uint16) Status

//export HAL_UART_Abort_IT
func cUARTAbortIT(h *Handle) Status

//export HAL_UART_AbortTransmit_IT
func cUARTAbortTransmitIT(h *Handle) Status

//export HAL_UART_AbortReceive_IT
func cUARTAbortReceiveIT(h *Handle) Status

//export HAL_UART_GetState
func cUARTGetState(h *Handle) UARTState

//export HAL_I2C_IsDeviceReady
func cI2CIsDeviceReady(h *Handle, dev uint16, trials, timeout uint32) Status

//export HAL_I2C_Master_Transmit
func cI2CMasterTransmit(h *Handle, dev uint16, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Master_Receive
func cI2CMasterReceive(h *Handle, dev uint16, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Master_Transmit_IT
func cI2CMasterTransmitIT(h *Handle, dev uint16, p *byte, size uint16) Status

//export HAL_I2C_Master_Receive_IT
func cI2CMasterReceiveIT(h *Handle, dev uint16, p *byte, size uint16) Status

//export HAL_I2C_Master_Transmit_DMA
func cI2CMasterTransmitDMA(h *Handle, dev uint16, p *byte, size uint16) Status

//export HAL_I2C_Master_Receive_DMA
func cI2CMasterReceiveDMA(h *Handle, dev uint16, p *byte, size uint16) Status

//export HAL_I2C_Slave_Transmit
func cI2CSlaveTransmit(h *Handle, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Slave_Receive
func cI2CSlaveReceive(h *Handle, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Slave_Transmit_IT
func cI2CSlaveTransmitIT(h *Handle, p *byte, size uint16) Status

//export HAL_I2C_Slave_Receive_IT
func cI2CSlaveReceiveIT(h *Handle, p *byte, size uint16) Status

//export HAL_I2C_Slave_Transmit_DMA
func cI2CSlaveTransmitDMA(h *Handle, p *byte, size uint16) Status

//export HAL_I2C_Slave_Receive_DMA
func cI2CSlaveReceiveDMA(h *Handle, p *byte, size uint16) Status

//export HAL_I2C_Mem_Write
func cI2CMemWrite(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Mem_Read
func cI2CMemRead(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16, timeout uint32) Status

//export HAL_I2C_Mem_Write_IT
func cI2CMemWriteIT(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16) Status

//export HAL_I2C_Mem_Read_IT
func cI2CMemReadIT(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16) Status

//export HAL_I2C_Mem_Write_DMA
func cI2CMemWriteDMA(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16) Status

//export HAL_I2C_Mem_Read_DMA
func cI2CMemReadDMA(h *Handle, dev, addr, addrSize uint16, p *byte, size uint16) Status

//export HAL_I2C_EnableListen_IT
func cI2CEnableListenIT(h *Handle) Status

//export HAL_I2C_DisableListen_IT
func cI2CDisableListenIT(h *Handle) Status

//export HAL_I2C_Master_Abort_IT
func cI2CMasterAbortIT(h *Handle, dev uint16) Status

//export HAL_SPI_Transmit
func cSPITransmit(h *Handle, p *byte, size uint16, timeout uint32) Status

//export HAL_SPI_Receive
func cSPIReceive(h *Handle, p *byte, size uint16, timeout uint32) Status

//export HAL_SPI_TransmitReceive
func cSPITransmitReceive(h *Handle, tx, rx *byte, size uint16, timeout uint32) Status

//export HAL_SPI_Transmit_IT
func cSPITransmitIT(h *Handle, p *byte, size uint16) Status

//export HAL_SPI_Receive_IT
func cSPIReceiveIT(h *Handle, p *byte, size uint16) Status

//export HAL_SPI_TransmitReceive_IT
func cSPITransmitReceiveIT(h *Handle, tx, rx *byte, size uint16) Status

//export HAL_SPI_Transmit_DMA
func cSPITransmitDMA(h *Handle, p *byte, size uint16) Status

//export HAL_SPI_Receive_DMA
func cSPIReceiveDMA(h *Handle, p *byte, size uint16) Status

//export HAL_SPI_TransmitReceive_DMA
func cSPITransmitReceiveDMA(h *Handle, tx, rx *byte, size uint16) Status

//export HAL_SPI_Abort_IT
func cSPIAbortIT(h *Handle) Status

//export HAL_GPIO_ReadPin
func cGPIOReadPin(port unsafe.Pointer, pin uint16) uint32

//export HAL_GPIO_WritePin
func cGPIOWritePin(port unsafe.Pointer, pin uint16, state uint32)

//export HAL_GPIO_TogglePin
func cGPIOTogglePin(port unsafe.Pointer, pin uint16)

//export HAL_GPIO_LockPin
func cGPIOLockPin(port unsafe.Pointer, pin uint16) Status

//export HAL_FLASH_Unlock
func cFlashUnlock() Status

//export HAL_FLASH_Lock
func cFlashLock() Status

//export HAL_FLASH_Program
func cFlashProgram(t ProgramType, addr uint32, data uint64) Status

//export HAL_FLASHEx_Erase
func cFlashErase(init *EraseInit, sectorError *uint32) Status

//export HAL_IWDG_Refresh
func cIWDGRefresh(h *Handle) Status

//export HAL_WWDG_Refresh
func cWWDGRefresh(h *Handle) Status

func data(p []byte) *byte { return unsafe.SliceData(p) }

// portPtr turns a GPIOx base address into the GPIO_TypeDef* the vendor expects.
func portPtr(base uint32) unsafe.Pointer { return unsafe.Pointer(uintptr(base)) }
