package gpio

import (
	"sync/atomic"

	"escw-stm32/errcode"
)

// ExtiHandler runs in interrupt context for a triggered EXTI line.
type ExtiHandler func(p Pin)

var (
	lines [NumPins]atomic.Pointer[ExtiHandler]

	extiUnresolved atomic.Uint32
	extiUnhandled  atomic.Uint32
)

// OnInterrupt installs fn for EXTI line p, replacing any previous handler. A
// nil fn removes it. Lines are shared by every port: the vendor init code
// decides which port drives line p.
func OnInterrupt(p Pin, fn ExtiHandler) error {
	if p >= NumPins {
		return errcode.Wrap("gpio.on_interrupt", errcode.Param)
	}
	if fn == nil {
		lines[p].Store(nil)
		return nil
	}
	lines[p].Store(&fn)
	return nil
}

// install is OnInterrupt returning the stored slot value, so the owner can
// later clear the line without removing a handler someone else installed.
func install(p Pin, fn ExtiHandler) *ExtiHandler {
	h := &fn
	lines[p].Store(h)
	return h
}

// clearIf empties line p only while it still holds h.
func clearIf(p Pin, h *ExtiHandler) bool {
	return lines[p].CompareAndSwap(h, nil)
}

// OnEXTI is the trampoline for HAL_GPIO_EXTI_Callback. Masks that do not name
// exactly one line are dropped and counted, as are lines with no handler.
func OnEXTI(mask uint16) {
	p, ok := FromMask(Mask(mask))
	if !ok {
		extiUnresolved.Add(1)
		return
	}
	fn := lines[p].Load()
	if fn == nil {
		extiUnhandled.Add(1)
		return
	}
	(*fn)(p)
}

// EXTIDropped reports interrupts OnEXTI discarded.
func EXTIDropped() (unresolved, unhandled uint32) {
	return extiUnresolved.Load(), extiUnhandled.Load()
}
