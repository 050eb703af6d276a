// Package core provides fundamental types and utilities for the jumper game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer rectangle in screen cells.
// Used by the screen buffer for drawing; collision uses Box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in stage units.
// Y grows downward, like a browser's client rect.
type Box struct {
	Left, Top, Right, Bottom float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Degenerate reports whether the box has no area.
// Degenerate boxes never intersect anything.
func (b Box) Degenerate() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Shrink returns a box centered on b with each dimension scaled by (1 - pct).
// Negative pct is treated as zero; pct >= 1 yields a degenerate box.
func (b Box) Shrink(pct float64) Box {
	if pct < 0 {
		pct = 0
	}
	w := b.Width()
	h := b.Height()
	newW := w * (1 - pct)
	newH := h * (1 - pct)
	left := b.Left + (w-newW)/2
	top := b.Top + (h-newH)/2
	return Box{Left: left, Top: top, Right: left + newW, Bottom: top + newH}
}

// Intersects returns true if the boxes overlap on both axes.
// Touching edges count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.Degenerate() || other.Degenerate() {
		return false
	}
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
