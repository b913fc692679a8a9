package spi

import "escw-stm32/hal"

// Trampolines for the vendor SPI hooks; exported symbols are in
// callbacks_stm32.go.

func OnTxComplete(h *hal.Handle)       { center.Fire(h, Event{Kind: TxCompleted}) }
func OnRxComplete(h *hal.Handle)       { center.Fire(h, Event{Kind: RxCompleted}) }
func OnTxRxComplete(h *hal.Handle)     { center.Fire(h, Event{Kind: TxRxCompleted}) }
func OnTxHalfComplete(h *hal.Handle)   { center.Fire(h, Event{Kind: TxHalf}) }
func OnRxHalfComplete(h *hal.Handle)   { center.Fire(h, Event{Kind: RxHalf}) }
func OnTxRxHalfComplete(h *hal.Handle) { center.Fire(h, Event{Kind: TxRxHalf}) }
func OnError(h *hal.Handle)            { center.Fire(h, Event{Kind: Error}) }
func OnAbortComplete(h *hal.Handle)    { center.Fire(h, Event{Kind: TxRxAborted}) }
