package simulator

import "github.com/Alia5/inputsim/vk"

// KeyState reads the current state of keys and buttons. Logical state is what
// the input queue of the calling thread has seen; hardware state is the
// physical device at the time of the call.
type KeyState interface {
	IsKeyDown(key vk.Code) (bool, error)
	IsKeyUp(key vk.Code) (bool, error)
	IsHardwareKeyDown(key vk.Code) (bool, error)
	IsHardwareKeyUp(key vk.Code) (bool, error)
	// IsTogglingKeyInEffect reports whether a toggle key such as CapsLock is on.
	IsTogglingKeyInEffect(key vk.Code) (bool, error)
}

// SystemKeyState returns the KeyState of the host OS.
func SystemKeyState() KeyState { return systemKeyState{} }

type systemKeyState struct{}

func (s systemKeyState) IsKeyUp(key vk.Code) (bool, error) {
	down, err := s.IsKeyDown(key)
	return !down && err == nil, err
}

func (s systemKeyState) IsHardwareKeyUp(key vk.Code) (bool, error) {
	down, err := s.IsHardwareKeyDown(key)
	return !down && err == nil, err
}
