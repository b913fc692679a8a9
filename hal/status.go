package hal

import "escw-stm32/errcode"

// Status is the vendor HAL_StatusTypeDef as returned across the C ABI.
type Status uint32

const (
	StatusOK      Status = 0
	StatusError   Status = 1
	StatusBusy    Status = 2
	StatusTimeout Status = 3
	StatusUnknown Status = 4
)

// Code translates a vendor status into the error taxonomy. Values outside the
// documented range are Unknown.
func (s Status) Code() errcode.Code {
	switch s {
	case StatusOK:
		return errcode.OK
	case StatusError:
		return errcode.Param
	case StatusBusy:
		return errcode.PeripheralBusy
	case StatusTimeout:
		return errcode.WaitTimeout
	default:
		return errcode.Unknown
	}
}

// Err returns nil for StatusOK, otherwise the mapped code wrapped with op.
func (s Status) Err(op string) error {
	if s == StatusOK {
		return nil
	}
	return &errcode.E{C: s.Code(), Op: op}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusBusy:
		return "busy"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}
