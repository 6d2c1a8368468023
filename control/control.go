// Package control turns input state into body motion. It does not poll
// devices itself, so the demos pass in key, cursor and touch state each tick.
package control

import "github.com/OpticalFlyer/spritekit/body"

// Paddle steers a body along the x axis with a pair of keys
type Paddle struct {
	Speed float64 // pixels per tick
}

// Steer sets dx to -Speed or +Speed while exactly one key is held and
// stops the body otherwise
func (p Paddle) Steer(b *body.Body, left, right bool) {
	switch {
	case left && !right:
		b.Vel.X = -p.Speed
	case right && !left:
		b.Vel.X = p.Speed
	default:
		b.Vel.X = 0
	}
}

// Step steers, moves the body and stops it at the left or right window
// edge. It reports whether the edge was hit.
func (p Paddle) Step(b *body.Body, left, right bool, width float64) bool {
	p.Steer(b, left, right)
	b.Advance()
	if b.ReflectVerticalEdge(width) {
		b.Vel.X = 0
		return true
	}
	return false
}

// Pointer keeps a body centered on the cursor
type Pointer struct {
	Body *body.Body
}

// Follow centers the body on (x, y) and reports whether it moved
func (p Pointer) Follow(x, y float64) bool {
	before := p.Body.Pos
	p.Body.MoveTo(x, y)
	return p.Body.Pos != before
}
