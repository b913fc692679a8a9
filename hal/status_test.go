package hal

import (
	"errors"
	"testing"

	"escw-stm32/errcode"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		st   Status
		want errcode.Code
	}{
		{StatusOK, errcode.OK},
		{StatusError, errcode.Param},
		{StatusBusy, errcode.PeripheralBusy},
		{StatusTimeout, errcode.WaitTimeout},
		{StatusUnknown, errcode.Unknown},
		{Status(42), errcode.Unknown},
	}
	for _, c := range cases {
		if got := c.st.Code(); got != c.want {
			t.Fatalf("%v.Code() = %q, want %q", c.st, got, c.want)
		}
	}
}

func TestStatusErr(t *testing.T) {
	if err := StatusOK.Err("op"); err != nil {
		t.Fatalf("StatusOK.Err = %v", err)
	}
	err := StatusBusy.Err("uart.transmit")
	if !errors.Is(err, errcode.PeripheralBusy) {
		t.Fatalf("busy not mapped: %v", err)
	}
	if err.Error() != "uart.transmit: peripheral_busy" {
		t.Fatalf("unexpected text %q", err.Error())
	}
}
