// Package sprite draws bodies. A Sprite pairs a body with a Drawable that
// knows how to render it at the body's current position and size.
package sprite

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/spritekit/body"
)

// Drawable renders something in the bounding box of a body
type Drawable interface {
	Draw(screen *ebiten.Image, b *body.Body)
}

// Sprite is a body with a look
type Sprite struct {
	Name   string
	Body   *body.Body
	Look   Drawable
	Hidden bool
}

// New creates a sprite
func New(b *body.Body, look Drawable) *Sprite {
	return &Sprite{Body: b, Look: look}
}

// Draw renders the sprite unless it is hidden
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.Hidden || s.Look == nil {
		return
	}
	s.Look.Draw(screen, s.Body)
}

// Group is an ordered set of sprites, drawn back to front
type Group []*Sprite

// Draw renders every sprite in order
func (g Group) Draw(screen *ebiten.Image) {
	for _, s := range g {
		s.Draw(screen)
	}
}

// Bodies returns the bodies of the group in order
func (g Group) Bodies() []*body.Body {
	bodies := make([]*body.Body, len(g))
	for i, s := range g {
		bodies[i] = s.Body
	}
	return bodies
}

// Find returns the first sprite with the given name, or nil
func (g Group) Find(name string) *Sprite {
	for _, s := range g {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// All returns every sprite with the given name
func (g Group) All(name string) Group {
	var out Group
	for _, s := range g {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// DrawBounds outlines the bounding box of b, used by debug overlays
func DrawBounds(screen *ebiten.Image, b *body.Body, clr color.Color) {
	r := b.Bounds()
	vector.StrokeRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), 1, clr, false)
}

// DrawRect fills a static rectangle such as an obstacle
func DrawRect(screen *ebiten.Image, r body.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), clr, true)
}
