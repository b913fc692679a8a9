package uart

import "escw-stm32/hal"

// Trampolines. Each one is the Go side of a vendor weak hook; the exported
// symbols live in callbacks_stm32.go. They run in interrupt context.

func OnTxComplete(h *hal.Handle)     { center.Fire(h, Event{Kind: TxCompleted}) }
func OnTxHalfComplete(h *hal.Handle) { center.Fire(h, Event{Kind: TxHalf}) }
func OnError(h *hal.Handle)          { center.Fire(h, Event{Kind: Error}) }
func OnAbortComplete(h *hal.Handle)  { center.Fire(h, Event{Kind: TxRxAborted}) }

func OnAbortTransmitComplete(h *hal.Handle) { center.Fire(h, Event{Kind: TxAborted}) }
func OnAbortReceiveComplete(h *hal.Handle)  { center.Fire(h, Event{Kind: RxAborted}) }

// OnRxEvent handles the receive-to-idle hook. The vendor raises it at the half
// buffer mark while the receiver is still running, and again on idle line or
// full buffer; only the driver state tells the two apart.
func OnRxEvent(h *hal.Handle, size uint16) {
	id, ok := center.Resolve(h)
	if !ok {
		return
	}
	if drv.State(h) == hal.UARTBusyRx {
		center.Dispatch(id, Event{Kind: RxHalf})
		return
	}
	center.Dispatch(id, Event{Kind: RxCompleted, Size: size})
}
