package common

// Rect is an integer pixel rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Intersects reports whether the two rects share any area. Rects that only
// touch along an edge do not intersect, and empty rects never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the center point, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// WithCenter returns r moved so its center is (cx, cy).
func (r Rect) WithCenter(cx, cy int) Rect {
	r.X = cx - r.Width/2
	r.Y = cy - r.Height/2
	return r
}

// Moved returns r translated by (dx, dy).
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// At returns r with its top-left corner at (x, y).
func (r Rect) At(x, y int) Rect {
	r.X = x
	r.Y = y
	return r
}
