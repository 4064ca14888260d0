//go:build !windows

package simulator

import (
	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/vk"
)

func (systemKeyState) IsKeyDown(vk.Code) (bool, error) { return false, input.ErrUnsupported }

func (systemKeyState) IsHardwareKeyDown(vk.Code) (bool, error) { return false, input.ErrUnsupported }

func (systemKeyState) IsTogglingKeyInEffect(vk.Code) (bool, error) { return false, input.ErrUnsupported }
