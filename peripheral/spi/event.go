package spi

// Kind classifies an SPI completion.
type Kind uint8

const (
	TxCompleted Kind = iota
	RxCompleted
	TxRxCompleted
	TxHalf
	RxHalf
	TxRxHalf
	Error
	TxRxAborted
)

var kindNames = [...]string{
	TxCompleted:   "tx_done",
	RxCompleted:   "rx_done",
	TxRxCompleted: "txrx_done",
	TxHalf:        "tx_half",
	RxHalf:        "rx_half",
	TxRxHalf:      "txrx_half",
	Error:         "error",
	TxRxAborted:   "aborted",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind?"
}

type Event struct {
	Kind Kind
}
