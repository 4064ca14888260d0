//go:build !windows

package input

import "github.com/Alia5/inputsim/vk"

// SystemScanCodes returns 0 on platforms without MapVirtualKey.
func SystemScanCodes(k vk.Code) uint16 {
	_ = k
	return 0
}

func sendInput(buf []byte, count, size int) (int, error) {
	_ = buf
	_ = count
	_ = size
	return 0, ErrUnsupported
}

func processElevated() *bool { return nil }
