package input

// MouseButton identifies one of the three standard mouse buttons. Extra (X)
// buttons are addressed by their numeric id instead.
type MouseButton int

const (
	LeftButton MouseButton = iota
	MiddleButton
	RightButton
)

// X button ids as understood by MOUSEEVENTF_XDOWN/XUP.
const (
	XButton1 = 1
	XButton2 = 2
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case MiddleButton:
		return "middle"
	case RightButton:
		return "right"
	default:
		return "unknown"
	}
}

// ParseMouseButton maps "left", "middle" and "right" to a MouseButton.
func ParseMouseButton(s string) (MouseButton, bool) {
	switch s {
	case "left", "l", "":
		return LeftButton, true
	case "middle", "m", "wheel":
		return MiddleButton, true
	case "right", "r":
		return RightButton, true
	default:
		return LeftButton, false
	}
}

// buttonDownFlag returns the press flag for b. Unrecognized buttons fall back
// to the left button.
func buttonDownFlag(b MouseButton) MouseFlags {
	switch b {
	case MiddleButton:
		return MouseEventMiddleDown
	case RightButton:
		return MouseEventRightDown
	default:
		return MouseEventLeftDown
	}
}

// buttonUpFlag returns the release flag for b, with the same left fallback.
func buttonUpFlag(b MouseButton) MouseFlags {
	switch b {
	case MiddleButton:
		return MouseEventMiddleUp
	case RightButton:
		return MouseEventRightUp
	default:
		return MouseEventLeftUp
	}
}
