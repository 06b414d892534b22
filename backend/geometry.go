package backend

import "image"

// Point is a 2D point or size in logical pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Height may be negative to express a vertically flipped source region.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromImage converts an integer rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// Image returns the integer rectangle covered by r, with a flipped height
// normalized back to positive.
func (r Rect) Image() image.Rectangle {
	h := r.Height
	if h < 0 {
		h = -h
	}
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+h))
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height == 0
}

// Overlaps reports whether r and s share any interior area.
// Both rectangles must have non-negative heights.
func (r Rect) Overlaps(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() &&
		r.Y < s.Bottom() && s.Y < r.Bottom()
}
