//go:build !stm32

package hal

// Host builds have no vendor library. The defaults reject every call with
// StatusError so misuse surfaces as errcode.Param rather than a crash; tests
// install fakes from hal/halfake instead.

type inertUART struct{}

func (inertUART) Transmit(*Handle, []byte, Mode, uint32) Status { return StatusError }
func (inertUART) ReceiveToIdle(*Handle, []byte, Mode, uint32) (uint16, Status) {
	return 0, StatusError
}
func (inertUART) Abort(*Handle, AbortKind) Status { return StatusError }
func (inertUART) State(*Handle) UARTState         { return UARTReset }

type inertI2C struct{}

func (inertI2C) DeviceReady(*Handle, uint16, uint32, uint32) Status             { return StatusError }
func (inertI2C) MasterTransmit(*Handle, uint16, []byte, Mode, uint32) Status    { return StatusError }
func (inertI2C) MasterReceive(*Handle, uint16, []byte, Mode, uint32) Status     { return StatusError }
func (inertI2C) SlaveTransmit(*Handle, []byte, Mode, uint32) Status             { return StatusError }
func (inertI2C) SlaveReceive(*Handle, []byte, Mode, uint32) Status              { return StatusError }
func (inertI2C) MemWrite(*Handle, uint16, MemAddr, []byte, Mode, uint32) Status { return StatusError }
func (inertI2C) MemRead(*Handle, uint16, MemAddr, []byte, Mode, uint32) Status  { return StatusError }
func (inertI2C) Listen(*Handle, bool) Status                                    { return StatusError }
func (inertI2C) MasterAbort(*Handle, uint16) Status                             { return StatusError }

type inertSPI struct{}

func (inertSPI) Transmit(*Handle, []byte, Mode, uint32) Status                { return StatusError }
func (inertSPI) Receive(*Handle, []byte, Mode, uint32) Status                 { return StatusError }
func (inertSPI) TransmitReceive(*Handle, []byte, []byte, Mode, uint32) Status { return StatusError }
func (inertSPI) Abort(*Handle) Status                                         { return StatusError }

type inertGPIO struct{}

func (inertGPIO) ReadPin(uint32, uint16) bool   { return false }
func (inertGPIO) WritePin(uint32, uint16, bool) {}
func (inertGPIO) TogglePin(uint32, uint16)      {}
func (inertGPIO) LockPin(uint32, uint16) Status { return StatusError }

type inertFlash struct{}

func (inertFlash) Unlock() Status                             { return StatusError }
func (inertFlash) Lock() Status                               { return StatusOK }
func (inertFlash) Program(ProgramType, uint32, uint64) Status { return StatusError }
func (inertFlash) Erase(*EraseInit, *uint32) Status           { return StatusError }

type inertWatchdog struct{}

func (inertWatchdog) RefreshIWDG(*Handle) Status { return StatusError }
func (inertWatchdog) RefreshWWDG(*Handle) Status { return StatusError }

func DefaultUART() UART         { return inertUART{} }
func DefaultI2C() I2C           { return inertI2C{} }
func DefaultSPI() SPI           { return inertSPI{} }
func DefaultGPIO() GPIO         { return inertGPIO{} }
func DefaultFlash() Flash       { return inertFlash{} }
func DefaultWatchdog() Watchdog { return inertWatchdog{} }
