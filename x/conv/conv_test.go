package conv

import (
	"math"
	"strconv"
	"testing"
)

func TestAppendUint(t *testing.T) {
	for _, n := range []uint64{0, 7, 10, 65535, math.MaxUint32, math.MaxUint64} {
		got := string(AppendUint([]byte("n="), n))
		if want := "n=" + strconv.FormatUint(n, 10); got != want {
			t.Fatalf("AppendUint(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestAppendInt(t *testing.T) {
	for _, n := range []int64{0, -1, 42, -9000, math.MaxInt64} {
		if got := string(AppendInt(nil, n)); got != strconv.FormatInt(n, 10) {
			t.Fatalf("AppendInt(%d) = %q", n, got)
		}
	}
}

func TestAppendHex32(t *testing.T) {
	if got := string(AppendHex32(nil, 0x0802_00A4)); got != "080200A4" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendHex32(nil, 0)); got != "00000000" {
		t.Fatalf("got %q", got)
	}
}

func TestParseUint(t *testing.T) {
	ok := map[string]uint64{
		"0":                    0,
		"17":                   17,
		"18446744073709551615": math.MaxUint64,
		"0x40004400":           0x4000_4400,
		"0XfF":                 0xFF,
	}
	for in, want := range ok {
		got, valid := ParseUint([]byte(in))
		if !valid || got != want {
			t.Fatalf("ParseUint(%q) = %d, %v", in, got, valid)
		}
	}
	for _, in := range []string{"", "-1", "12a", "0x", "0xG1", "18446744073709551616", "0x1FFFFFFFFFFFFFFFF"} {
		if _, valid := ParseUint([]byte(in)); valid {
			t.Fatalf("ParseUint(%q) accepted", in)
		}
	}
}
