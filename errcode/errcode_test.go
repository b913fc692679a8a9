package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]error{
		"ok":              OK,
		"param":           Param,
		"peripheral_busy": PeripheralBusy,
		"wait_timeout":    WaitTimeout,
		"unknown":         Unknown,
	}
	for want, e := range cases {
		if e == nil || e.Error() != want {
			t.Fatalf("code %q mismatch: got %#v", want, e)
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q", got)
	}
	if got := Of(PeripheralBusy); got != PeripheralBusy {
		t.Fatalf("Of(code) = %q", got)
	}
	if got := Of(&E{C: WaitTimeout, Op: "uart.transmit"}); got != WaitTimeout {
		t.Fatalf("Of(*E) = %q", got)
	}
	if got := Of(errors.New("boom")); got != Unknown {
		t.Fatalf("Of(foreign) = %q", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap("x", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	err := Wrap("flash.erase", Param)
	if err.Error() != "flash.erase: param" {
		t.Fatalf("unexpected text %q", err.Error())
	}
	if !errors.Is(err, Param) {
		t.Fatal("errors.Is should match the wrapped code")
	}
	if errors.Is(err, Unknown) {
		t.Fatal("errors.Is matched the wrong code")
	}

	cause := errors.New("io")
	w := Wrap("op", cause)
	if Of(w) != Unknown || !errors.Is(w, cause) {
		t.Fatalf("foreign error not wrapped as unknown with cause: %v", w)
	}
}

func TestEMessage(t *testing.T) {
	e := &E{C: Unknown, Op: "flash.erase", Msg: "sector 5"}
	if e.Error() != "flash.erase: unknown: sector 5" {
		t.Fatalf("got %q", e.Error())
	}
}
