package body

import "math"

// ShapeKind selects the geometry used for a body or for a collision test
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindCircle
)

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return "unknown"
}

// Shape is the bounding geometry of a body. Only one of the two extents is
// meaningful, selected by Kind.
type Shape struct {
	Kind ShapeKind
	W, H float64 // rectangle extent
	R    float64 // circle radius
}

// Rectangle returns an axis-aligned rectangle shape
func Rectangle(w, h float64) Shape {
	return Shape{Kind: KindRectangle, W: w, H: h}
}

// Circle returns a circle shape of radius r
func Circle(r float64) Shape {
	return Shape{Kind: KindCircle, R: r}
}

// Size returns the width and height of the shape's bounding box
func (s Shape) Size() (w, h float64) {
	if s.Kind == KindCircle {
		return 2 * s.R, 2 * s.R
	}
	return s.W, s.H
}

// Radius returns the radius used for circle collision tests. Rectangles use
// half their diagonal.
func (s Shape) Radius() float64 {
	if s.Kind == KindCircle {
		return s.R
	}
	return math.Hypot(s.W, s.H) / 2
}

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the middle point of the rectangle
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps reports whether two rectangles share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Scale grows or shrinks the rectangle around its center
func (r Rect) Scale(ratio float64) Rect {
	cx, cy := r.Center()
	w, h := r.Width*ratio, r.Height*ratio
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
