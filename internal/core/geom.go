// Package core provides the platform types shared by the game and the terminal UI:
// actions, input frames, the colored screen buffer and geometry.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Quadrants splits r into a 2x2 grid separated by gapX columns and gapY rows.
// Order: top-left, top-right, bottom-left, bottom-right.
func (r Rect) Quadrants(gapX, gapY int) [4]Rect {
	leftW := (r.W - gapX) / 2
	rightW := r.W - gapX - leftW
	topH := (r.H - gapY) / 2
	bottomH := r.H - gapY - topH

	rightX := r.X + leftW + gapX
	bottomY := r.Y + topH + gapY

	return [4]Rect{
		NewRect(r.X, r.Y, leftW, topH),
		NewRect(rightX, r.Y, rightW, topH),
		NewRect(r.X, bottomY, leftW, bottomH),
		NewRect(rightX, bottomY, rightW, bottomH),
	}
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
