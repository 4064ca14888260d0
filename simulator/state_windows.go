//go:build windows

package simulator

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Alia5/inputsim/vk"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

func (systemKeyState) IsKeyDown(key vk.Code) (bool, error) {
	return win.GetKeyState(int32(key)) < 0, nil
}

func (systemKeyState) IsHardwareKeyDown(key vk.Code) (bool, error) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return false, err
	}
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(key))
	return int16(ret) < 0, nil
}

func (systemKeyState) IsTogglingKeyInEffect(key vk.Code) (bool, error) {
	return win.GetKeyState(int32(key))&1 != 0, nil
}
