package uart

// Kind classifies a UART completion.
type Kind uint8

const (
	TxHalf Kind = iota
	TxCompleted
	TxAborted
	RxHalf
	RxCompleted
	RxAborted
	TxRxAborted
	Error
)

var kindNames = [...]string{
	TxHalf:      "tx_half",
	TxCompleted: "tx_done",
	TxAborted:   "tx_aborted",
	RxHalf:      "rx_half",
	RxCompleted: "rx_done",
	RxAborted:   "rx_aborted",
	TxRxAborted: "aborted",
	Error:       "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind?"
}

// Event is what a handler receives. Size is the byte count of an RxCompleted
// and zero otherwise.
type Event struct {
	Kind Kind
	Size uint16
}
