package simulator

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// AbsoluteMax is the largest coordinate of the normalized absolute space.
const AbsoluteMax = 65535

// Normalize converts a pixel position inside r into the 0-65535 space used
// by MoveTo and MoveToPositionOnVirtualDesktop.
func (r Rect) Normalize(px, py int) (x, y float64) {
	w, h := r.Width, r.Height
	if w <= 1 {
		w = 2
	}
	if h <= 1 {
		h = 2
	}
	x = float64(px-r.X) * AbsoluteMax / float64(w-1)
	y = float64(py-r.Y) * AbsoluteMax / float64(h-1)
	return x, y
}
