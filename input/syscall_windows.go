//go:build windows

package input

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Alia5/inputsim/vk"
)

const mapvkVKToVSC = 0

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procMapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

// SystemScanCodes maps k through MapVirtualKeyW using the current keyboard
// layout. Only the low byte of the result is kept.
func SystemScanCodes(k vk.Code) uint16 {
	ret, _, _ := procMapVirtualKeyW.Call(uintptr(k), mapvkVKToVSC)
	return uint16(ret & 0xFF)
}

// sendInput passes the contiguous INPUT array to SendInput and returns the
// number of records the OS accepted.
func sendInput(buf []byte, count, size int) (int, error) {
	accepted := win.SendInput(uint32(count), unsafe.Pointer(&buf[0]), int32(size))
	if int(accepted) != count {
		return int(accepted), windows.GetLastError()
	}
	return int(accepted), nil
}

// processElevated reports the UAC elevation of the current process token.
func processElevated() *bool {
	elevated := windows.GetCurrentProcessToken().IsElevated()
	return &elevated
}
