package i2c

import "escw-stm32/hal"

// Trampolines for the vendor I2C hooks; exported symbols are in
// callbacks_stm32.go. Master and slave completions map to the same kinds.

func OnMasterTxComplete(h *hal.Handle) { center.Fire(h, Event{Kind: TxCompleted}) }
func OnMasterRxComplete(h *hal.Handle) { center.Fire(h, Event{Kind: RxCompleted}) }
func OnSlaveTxComplete(h *hal.Handle)  { center.Fire(h, Event{Kind: TxCompleted}) }
func OnSlaveRxComplete(h *hal.Handle)  { center.Fire(h, Event{Kind: RxCompleted}) }
func OnMemTxComplete(h *hal.Handle)    { center.Fire(h, Event{Kind: MemoryWriteCompleted}) }
func OnMemRxComplete(h *hal.Handle)    { center.Fire(h, Event{Kind: MemoryReadCompleted}) }
func OnListenComplete(h *hal.Handle)   { center.Fire(h, Event{Kind: ListenCompleted}) }
func OnError(h *hal.Handle)            { center.Fire(h, Event{Kind: Error}) }
func OnAbortComplete(h *hal.Handle)    { center.Fire(h, Event{Kind: TxRxAborted}) }

// OnAddress handles an address match. The vendor reports the direction from
// the master's point of view: 0 means the master transmits.
func OnAddress(h *hal.Handle, dir uint8, addrMatch uint16) {
	d := Tx
	if dir == 0 {
		d = Rx
	}
	center.Fire(h, Event{Kind: Awakened, Dir: d, AddrMatch: addrMatch})
}
