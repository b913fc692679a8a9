package i2c

// Kind classifies an I2C completion.
type Kind uint8

const (
	TxCompleted Kind = iota
	RxCompleted
	Awakened // slave address matched while listening
	MemoryWriteCompleted
	MemoryReadCompleted
	ListenCompleted
	Error
	TxRxAborted
)

var kindNames = [...]string{
	TxCompleted:          "tx_done",
	RxCompleted:          "rx_done",
	Awakened:             "awakened",
	MemoryWriteCompleted: "mem_write_done",
	MemoryReadCompleted:  "mem_read_done",
	ListenCompleted:      "listen_done",
	Error:                "error",
	TxRxAborted:          "aborted",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind?"
}

// Direction is the slave-side direction of an addressed transfer.
type Direction uint8

const (
	// Rx: the master writes and this slave receives.
	Rx Direction = iota
	// Tx: the master reads and this slave transmits.
	Tx
)

func (d Direction) String() string {
	if d == Rx {
		return "rx"
	}
	return "tx"
}

// Event is what a handler receives. Dir and AddrMatch are set for Awakened
// only.
type Event struct {
	Kind      Kind
	Dir       Direction
	AddrMatch uint16
}
