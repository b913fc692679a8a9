package errcode

// Code is a stable error identifier for peripheral operations.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes. Every public operation returns nil or one of these
// (possibly wrapped in *E).
const (
	OK             Code = "ok"
	Param          Code = "param"           // invalid argument or unresolvable identity
	PeripheralBusy Code = "peripheral_busy" // rejected, resource in use
	WaitTimeout    Code = "wait_timeout"    // blocking call exceeded its deadline
	Unknown        Code = "unknown"         // driver failure with no finer class
)

// E keeps operation context and an optional cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.Param) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap attaches an operation name to a non-nil error. Codes are wrapped in *E;
// anything else is wrapped as Unknown with the original as cause.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	switch x := err.(type) {
	case Code:
		return &E{C: x, Op: op}
	case *E:
		if x.Op == "" {
			x.Op = op
		}
		return x
	}
	return &E{C: Unknown, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Unknown.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Unknown
}
