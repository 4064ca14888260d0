//go:build !windows

package simulator

import "github.com/Alia5/inputsim/input"

// VirtualScreen returns the bounding rectangle of all monitors.
func VirtualScreen() (Rect, error) {
	return Rect{}, input.ErrUnsupported
}
