// Package body implements kinematic bodies: position, velocity and mass of a
// rectangle or circle, window edge reflection, overlap tests and elastic
// collision response.
package body

import (
	"fmt"
	"math"
)

// DefaultMass is used when a Config leaves Mass at zero
const DefaultMass = 1.0

// Vec is a 2D vector in screen coordinates (y grows downwards)
type Vec struct {
	X, Y float64
}

// Add, Sub, Scale and Dot are plain vector arithmetic
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the euclidean length of v
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Near reports whether both components differ by at most eps
func (v Vec) Near(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Config lists every field a Body can be constructed with. Zero values are
// the defaults, except Mass where zero means DefaultMass.
type Config struct {
	Left, Top float64
	DX, DY    float64
	Mass      float64
	Shape     Shape
}

// Body is a moving, collidable 2D shape. Pos is the top-left corner of the
// bounding box for both rectangles and circles.
type Body struct {
	Pos   Vec
	Vel   Vec
	Mass  float64
	Shape Shape

	// Prev is the position before the last Advance
	Prev Vec
}

// New creates a body from cfg. It panics if the mass is negative or any
// extent is negative.
func New(cfg Config) *Body {
	mass := cfg.Mass
	if mass == 0 {
		mass = DefaultMass
	}
	if mass < 0 || math.IsNaN(mass) {
		panic(fmt.Sprintf("body: mass must be positive, got %g", cfg.Mass))
	}
	if cfg.Shape.W < 0 || cfg.Shape.H < 0 || cfg.Shape.R < 0 {
		panic(fmt.Sprintf("body: negative extent %+v", cfg.Shape))
	}

	pos := Vec{cfg.Left, cfg.Top}
	return &Body{
		Pos:   pos,
		Prev:  pos,
		Vel:   Vec{cfg.DX, cfg.DY},
		Mass:  mass,
		Shape: cfg.Shape,
	}
}

// Advance saves the current position and moves the body by its velocity
func (b *Body) Advance() {
	b.Prev = b.Pos
	b.Pos = b.Pos.Add(b.Vel)
}

// Rewind moves the body back to where it was before the last Advance
func (b *Body) Rewind() {
	b.Pos = b.Prev
}

// Direction returns the heading of the velocity in radians, in [0, 2π).
// The y component is negated so angles follow the usual counter-clockwise
// convention on screen.
func (b *Body) Direction() float64 {
	return heading(b.Vel)
}

// Speed returns the length of the velocity vector
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

func heading(v Vec) float64 {
	a := math.Atan2(-v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	// -0 and values rounding up to 2π
	if a >= 2*math.Pi || a == 0 {
		return 0
	}
	return a
}

// SetVelocity replaces both velocity components
func (b *Body) SetVelocity(dx, dy float64) {
	b.Vel = Vec{dx, dy}
}

// FlipDX inverts the horizontal velocity
func (b *Body) FlipDX() { b.Vel.X = -b.Vel.X }

// FlipDY inverts the vertical velocity
func (b *Body) FlipDY() { b.Vel.Y = -b.Vel.Y }

// Size returns the bounding box width and height
func (b *Body) Size() (w, h float64) {
	return b.Shape.Size()
}

// Bounds returns the bounding box at the current position
func (b *Body) Bounds() Rect {
	w, h := b.Size()
	return Rect{X: b.Pos.X, Y: b.Pos.Y, Width: w, Height: h}
}

// Left, Top, Right and Bottom are the edges of the bounding box
func (b *Body) Left() float64   { return b.Pos.X }
func (b *Body) Top() float64    { return b.Pos.Y }
func (b *Body) Right() float64  { return b.Bounds().Right() }
func (b *Body) Bottom() float64 { return b.Bounds().Bottom() }

// Center returns the middle of the bounding box
func (b *Body) Center() Vec {
	x, y := b.Bounds().Center()
	return Vec{x, y}
}

// SetLeft and SetTop move one edge of the bounding box, keeping the size
func (b *Body) SetLeft(x float64) { b.Pos.X = x }
func (b *Body) SetTop(y float64)  { b.Pos.Y = y }

// MoveTo places the body so its center is at (x, y)
func (b *Body) MoveTo(x, y float64) {
	w, h := b.Size()
	b.Pos = Vec{x - w/2, y - h/2}
}

// CenterOn places the body in the middle of an area of the given size
// starting at the origin
func (b *Body) CenterOn(width, height float64) {
	b.MoveTo(width/2, height/2)
}

// Grow enlarges the extent by dw, dh keeping the center in place. A circle
// grows its radius by half of the larger delta. Extents never go below zero.
func (b *Body) Grow(dw, dh float64) {
	c := b.Center()
	switch b.Shape.Kind {
	case KindCircle:
		b.Shape.R = math.Max(0, b.Shape.R+math.Max(dw, dh)/2)
	default:
		b.Shape.W = math.Max(0, b.Shape.W+dw)
		b.Shape.H = math.Max(0, b.Shape.H+dh)
	}
	b.MoveTo(c.X, c.Y)
}

// CollidesRect reports whether the bounding box overlaps r
func (b *Body) CollidesRect(r Rect) bool {
	return b.Bounds().Overlaps(r)
}

// Momentum returns mass times velocity
func (b *Body) Momentum() Vec {
	return b.Vel.Scale(b.Mass)
}

// KineticEnergy returns ½mv²
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Vel.Dot(b.Vel)
}

// ReflectHorizontalEdge checks the top and bottom edges of [0, height]. When
// the bounding box reaches or passes one of them the body is clamped back
// inside and true is returned. Flipping dy is left to the caller.
func (b *Body) ReflectHorizontalEdge(height float64) bool {
	_, h := b.Size()
	switch {
	case b.Pos.Y <= 0:
		b.Pos.Y = 0
		return true
	case b.Pos.Y+h >= height:
		b.Pos.Y = height - h
		return true
	}
	return false
}

// ReflectVerticalEdge checks the left and right edges of [0, width]. See
// ReflectHorizontalEdge.
func (b *Body) ReflectVerticalEdge(width float64) bool {
	w, _ := b.Size()
	switch {
	case b.Pos.X <= 0:
		b.Pos.X = 0
		return true
	case b.Pos.X+w >= width:
		b.Pos.X = width - w
		return true
	}
	return false
}
