package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/sprite"
)

var (
	redColor    = color.RGBA{R: 255, A: 255}
	yellowColor = color.RGBA{R: 255, G: 255, A: 255}
)

// velocityScale stretches velocity vectors so they are visible
const velocityScale = 10

// overlayBodies outlines each body and draws its velocity from the center
func overlayBodies(screen *ebiten.Image, bodies []*body.Body) {
	strokeWidth := float32(1.0)
	for _, b := range bodies {
		sprite.DrawBounds(screen, b, redColor)

		c := b.Center()
		vector.StrokeLine(screen,
			float32(c.X), float32(c.Y),
			float32(c.X+b.Vel.X*velocityScale), float32(c.Y+b.Vel.Y*velocityScale),
			strokeWidth, yellowColor, false)
	}
}
