// Package core holds the types shared by the simulation and the platform
// layer: geometry, the character screen, input actions and run config.
// Nothing here imports a terminal or storage library.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Box is an axis-aligned box in continuous field units.
// The simulation works in field units; Rect is only used once a box is
// projected onto the character grid.
type Box struct {
	X, Y float64 // Top-left corner, y grows downwards
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether the two boxes overlap.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Scale projects the box onto a grid where one cell spans sx by sy field units.
// Any box with a positive size covers at least one cell.
func (b Box) Scale(sx, sy float64) Rect {
	x := int(b.X / sx)
	y := int(b.Y / sy)
	w := int(b.Right()/sx) - x
	h := int(b.Bottom()/sy) - y
	if w < 1 && b.W > 0 {
		w = 1
	}
	if h < 1 && b.H > 0 {
		h = 1
	}
	return NewRect(x, y, w, h)
}
