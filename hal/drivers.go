package hal

// ---- UART ----

// UARTState mirrors HAL_UART_StateTypeDef.
type UARTState uint32

const (
	UARTReset    UARTState = 0x00
	UARTReady    UARTState = 0x20
	UARTBusy     UARTState = 0x24
	UARTBusyTx   UARTState = 0x21
	UARTBusyRx   UARTState = 0x22
	UARTBusyTxRx UARTState = 0x23
	UARTTimeout  UARTState = 0xA0
	UARTError    UARTState = 0xE0
)

// AbortKind selects HAL_UART_Abort_IT, HAL_UART_AbortTransmit_IT or
// HAL_UART_AbortReceive_IT.
type AbortKind uint8

const (
	AbortAll AbortKind = iota
	AbortTx
	AbortRx
)

// UART is the vendor UART call surface. Receive always uses the
// receive-to-idle family; n is only meaningful for Blocking.
type UART interface {
	Transmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status
	ReceiveToIdle(h *Handle, p []byte, m Mode, timeoutMS uint32) (n uint16, st Status)
	Abort(h *Handle, k AbortKind) Status
	State(h *Handle) UARTState
}

// ---- I2C ----

// I2C memory address widths (I2C_MEMADD_SIZE_xBIT).
const (
	MemAddr8Bit  uint16 = 0x0001
	MemAddr16Bit uint16 = 0x0002
)

// MemAddr is a register address inside an I2C target and its width.
type MemAddr struct {
	Addr uint16
	Size uint16
}

// I2C is the vendor I2C call surface. Device addresses are in the vendor's
// 8-bit (left-shifted) form.
type I2C interface {
	DeviceReady(h *Handle, dev uint16, trials, timeoutMS uint32) Status
	MasterTransmit(h *Handle, dev uint16, p []byte, m Mode, timeoutMS uint32) Status
	MasterReceive(h *Handle, dev uint16, p []byte, m Mode, timeoutMS uint32) Status
	SlaveTransmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status
	SlaveReceive(h *Handle, p []byte, m Mode, timeoutMS uint32) Status
	MemWrite(h *Handle, dev uint16, mem MemAddr, p []byte, m Mode, timeoutMS uint32) Status
	MemRead(h *Handle, dev uint16, mem MemAddr, p []byte, m Mode, timeoutMS uint32) Status
	Listen(h *Handle, enable bool) Status
	MasterAbort(h *Handle, dev uint16) Status
}

// ---- SPI ----

// SPI is the vendor SPI call surface. TransmitReceive clocks len(tx) bytes.
type SPI interface {
	Transmit(h *Handle, p []byte, m Mode, timeoutMS uint32) Status
	Receive(h *Handle, p []byte, m Mode, timeoutMS uint32) Status
	TransmitReceive(h *Handle, tx, rx []byte, m Mode, timeoutMS uint32) Status
	Abort(h *Handle) Status
}

// ---- GPIO ----

// GPIO is the vendor GPIO call surface. port is a GPIOx base address and mask
// a GPIO_PIN_x bit.
type GPIO interface {
	ReadPin(port uint32, mask uint16) bool
	WritePin(port uint32, mask uint16, high bool)
	TogglePin(port uint32, mask uint16)
	LockPin(port uint32, mask uint16) Status
}

// ---- Flash ----

// Erase types (FLASH_TYPEERASE_x).
const (
	EraseSectors uint32 = 0x0000_0000
	EraseMass    uint32 = 0x0000_0001
)

// Voltage ranges (FLASH_VOLTAGE_RANGE_x) select erase parallelism.
const (
	VoltageRange1 uint32 = 0x0000_0000
	VoltageRange2 uint32 = 0x0000_0001
	VoltageRange3 uint32 = 0x0000_0002
	VoltageRange4 uint32 = 0x0000_0003
)

// ProgramType is FLASH_TYPEPROGRAM_x.
type ProgramType uint32

const (
	ProgramByte       ProgramType = 0x0000_0000
	ProgramHalfWord   ProgramType = 0x0000_0001
	ProgramWord       ProgramType = 0x0000_0002
	ProgramDoubleWord ProgramType = 0x0000_0003
)

// Size is the number of bytes one program call writes.
func (t ProgramType) Size() int {
	switch t {
	case ProgramHalfWord:
		return 2
	case ProgramWord:
		return 4
	case ProgramDoubleWord:
		return 8
	default:
		return 1
	}
}

// NoSectorError is the value the vendor leaves in SectorError when every
// requested sector erased correctly.
const NoSectorError uint32 = 0xFFFF_FFFF

// EraseInit mirrors FLASH_EraseInitTypeDef.
type EraseInit struct {
	TypeErase    uint32
	Banks        uint32
	Sector       uint32
	NbSectors    uint32
	VoltageRange uint32
}

// Flash is the vendor flash call surface.
type Flash interface {
	Unlock() Status
	Lock() Status
	Program(t ProgramType, addr uint32, data uint64) Status
	Erase(init *EraseInit, sectorError *uint32) Status
}

// ---- Watchdogs ----

// Watchdog refreshes the independent and window watchdogs.
type Watchdog interface {
	RefreshIWDG(h *Handle) Status
	RefreshWWDG(h *Handle) Status
}
