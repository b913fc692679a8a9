//go:build stm32

package hal

// Vendor-backed drivers. Callers validate buffer sizes before reaching here.

type vendorUART struct{}

func (vendorUART) Transmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cUARTTransmitIT(h, data(p), uint16(len(p)))
	case DMA:
		return cUARTTransmitDMA(h, data(p), uint16(len(p)))
	default:
		return cUARTTransmit(h, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorUART) ReceiveToIdle(h *Handle, p []byte, m Mode, timeoutMS uint32) (uint16, Status) {
	switch m {
	case Interrupt:
		return 0, cUARTReceiveToIdleIT(h, data(p), uint16(len(p)))
	case DMA:
		return 0, cUARTReceiveToIdleDMA(h, data(p), uint16(len(p)))
	default:
		var n uint16
		st := cUARTReceiveToIdle(h, data(p), uint16(len(p)), &n, timeoutMS)
		return n, st
	}
}

func (vendorUART) Abort(h *Handle, k AbortKind) Status {
	switch k {
	case AbortTx:
		return cUARTAbortTransmitIT(h)
	case AbortRx:
		return cUARTAbortReceiveIT(h)
	default:
		return cUARTAbortIT(h)
	}
}

func (vendorUART) State(h *Handle) UARTState { return cUARTGetState(h) }

type vendorI2C struct{}

func (vendorI2C) DeviceReady(h *Handle, dev uint16, trials, timeoutMS uint32) Status {
	return cI2CIsDeviceReady(h, dev, trials, timeoutMS)
}

func (vendorI2C) MasterTransmit(h *Handle, dev uint16, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CMasterTransmitIT(h, dev, data(p), uint16(len(p)))
	case DMA:
		return cI2CMasterTransmitDMA(h, dev, data(p), uint16(len(p)))
	default:
		return cI2CMasterTransmit(h, dev, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) MasterReceive(h *Handle, dev uint16, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CMasterReceiveIT(h, dev, data(p), uint16(len(p)))
	case DMA:
		return cI2CMasterReceiveDMA(h, dev, data(p), uint16(len(p)))
	default:
		return cI2CMasterReceive(h, dev, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) SlaveTransmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CSlaveTransmitIT(h, data(p), uint16(len(p)))
	case DMA:
		return cI2CSlaveTransmitDMA(h, data(p), uint16(len(p)))
	default:
		return cI2CSlaveTransmit(h, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) SlaveReceive(h *Handle, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CSlaveReceiveIT(h, data(p), uint16(len(p)))
	case DMA:
		return cI2CSlaveReceiveDMA(h, data(p), uint16(len(p)))
	default:
		return cI2CSlaveReceive(h, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) MemWrite(h *Handle, dev uint16, mem MemAddr, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CMemWriteIT(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)))
	case DMA:
		return cI2CMemWriteDMA(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)))
	default:
		return cI2CMemWrite(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) MemRead(h *Handle, dev uint16, mem MemAddr, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cI2CMemReadIT(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)))
	case DMA:
		return cI2CMemReadDMA(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)))
	default:
		return cI2CMemRead(h, dev, mem.Addr, mem.Size, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorI2C) Listen(h *Handle, enable bool) Status {
	if enable {
		return cI2CEnableListenIT(h)
	}
	return cI2CDisableListenIT(h)
}

func (vendorI2C) MasterAbort(h *Handle, dev uint16) Status { return cI2CMasterAbortIT(h, dev) }

type vendorSPI struct{}

func (vendorSPI) Transmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cSPITransmitIT(h, data(p), uint16(len(p)))
	case DMA:
		return cSPITransmitDMA(h, data(p), uint16(len(p)))
	default:
		return cSPITransmit(h, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorSPI) Receive(h *Handle, p []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cSPIReceiveIT(h, data(p), uint16(len(p)))
	case DMA:
		return cSPIReceiveDMA(h, data(p), uint16(len(p)))
	default:
		return cSPIReceive(h, data(p), uint16(len(p)), timeoutMS)
	}
}

func (vendorSPI) TransmitReceive(h *Handle, tx, rx []byte, m Mode, timeoutMS uint32) Status {
	switch m {
	case Interrupt:
		return cSPITransmitReceiveIT(h, data(tx), data(rx), uint16(len(tx)))
	case DMA:
		return cSPITransmitReceiveDMA(h, data(tx), data(rx), uint16(len(tx)))
	default:
		return cSPITransmitReceive(h, data(tx), data(rx), uint16(len(tx)), timeoutMS)
	}
}

func (vendorSPI) Abort(h *Handle) Status { return cSPIAbortIT(h) }

type vendorGPIO struct{}

func (vendorGPIO) ReadPin(port uint32, mask uint16) bool {
	return cGPIOReadPin(portPtr(port), mask) != 0
}

func (vendorGPIO) WritePin(port uint32, mask uint16, high bool) {
	var st uint32
	if high {
		st = 1
	}
	cGPIOWritePin(portPtr(port), mask, st)
}

func (vendorGPIO) TogglePin(port uint32, mask uint16) { cGPIOTogglePin(portPtr(port), mask) }

func (vendorGPIO) LockPin(port uint32, mask uint16) Status {
	return cGPIOLockPin(portPtr(port), mask)
}

type vendorFlash struct{}

func (vendorFlash) Unlock() Status { return cFlashUnlock() }
func (vendorFlash) Lock() Status   { return cFlashLock() }

func (vendorFlash) Program(t ProgramType, addr uint32, data uint64) Status {
	return cFlashProgram(t, addr, data)
}

func (vendorFlash) Erase(init *EraseInit, sectorError *uint32) Status {
	return cFlashErase(init, sectorError)
}

type vendorWatchdog struct{}

func (vendorWatchdog) RefreshIWDG(h *Handle) Status { return cIWDGRefresh(h) }
func (vendorWatchdog) RefreshWWDG(h *Handle) Status { return cWWDGRefresh(h) }

func DefaultUART() UART         { return vendorUART{} }
func DefaultI2C() I2C           { return vendorI2C{} }
func DefaultSPI() SPI           { return vendorSPI{} }
func DefaultGPIO() GPIO         { return vendorGPIO{} }
func DefaultFlash() Flash       { return vendorFlash{} }
func DefaultWatchdog() Watchdog { return vendorWatchdog{} }
