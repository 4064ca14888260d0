//go:build windows

package simulator

import (
	"errors"

	"github.com/lxn/win"
)

// VirtualScreen returns the bounding rectangle of all monitors.
func VirtualScreen() (Rect, error) {
	r := Rect{
		X:      int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)),
		Y:      int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)),
		Width:  int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)),
		Height: int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)),
	}
	if r.Width == 0 || r.Height == 0 {
		return r, errors.New("GetSystemMetrics: virtual screen size unavailable")
	}
	return r, nil
}
