// Package wdg refreshes the independent and window watchdogs. Both are
// configured and started by the vendor init code.
package wdg

import (
	"escw-stm32/errcode"
	"escw-stm32/hal"
	"escw-stm32/internal/board"
)

var drv = hal.DefaultWatchdog()

func SetDriver(d hal.Watchdog) { drv = d }

// IWDG is the independent watchdog.
type IWDG struct{ h *hal.Handle }

// WWDG is the window watchdog. Refreshing outside the window resets the part.
type WWDG struct{ h *hal.Handle }

// Independent returns the board's IWDG, or errcode.Param if it has none.
func Independent() (IWDG, error) {
	if board.IWDG == nil {
		return IWDG{}, errcode.Wrap("wdg.independent", errcode.Param)
	}
	return IWDG{h: board.IWDG}, nil
}

// Window returns the board's WWDG, or errcode.Param if it has none.
func Window() (WWDG, error) {
	if board.WWDG == nil {
		return WWDG{}, errcode.Wrap("wdg.window", errcode.Param)
	}
	return WWDG{h: board.WWDG}, nil
}

func (w IWDG) Refresh() error {
	if w.h == nil {
		return errcode.Wrap("wdg.iwdg_refresh", errcode.Param)
	}
	return drv.RefreshIWDG(w.h).Err("wdg.iwdg_refresh")
}

func (w WWDG) Refresh() error {
	if w.h == nil {
		return errcode.Wrap("wdg.wwdg_refresh", errcode.Param)
	}
	return drv.RefreshWWDG(w.h).Err("wdg.wwdg_refresh")
}
