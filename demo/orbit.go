package demo

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/sprite"
)

const (
	orbitRadius = 100  // pixels
	orbitStep   = 0.01 // radians per tick
)

// orbitPlay moves an image around a circle centered on its scene position.
// The velocity is set to the step so the body advances like any other.
type orbitPlay struct {
	env     *Env
	sprites sprite.Group
	body    *body.Body
	origin  body.Vec
	angle   float64
	laps    int
}

func newOrbit(env *Env) (Play, error) {
	p := &orbitPlay{env: env}
	return p, p.Reset()
}

func (p *orbitPlay) Reset() error {
	sprites := spawn(p.env)
	s, err := require(sprites, "snake")
	if err != nil {
		return err
	}
	p.sprites, p.body = sprites, s.Body
	p.origin = s.Body.Pos
	p.angle = -math.Pi
	p.laps = 0
	p.body.Pos = p.at(p.angle)
	return nil
}

// at returns the top-left position for angle a
func (p *orbitPlay) at(a float64) body.Vec {
	sin, cos := math.Sincos(a)
	return body.Vec{X: p.origin.X + sin*orbitRadius, Y: p.origin.Y + cos*orbitRadius}
}

func (p *orbitPlay) Update(in Input) error {
	p.angle += orbitStep
	if p.angle > math.Pi {
		p.angle -= 2 * math.Pi
		p.laps++
	}
	next := p.at(p.angle).Sub(p.body.Pos)
	p.body.SetVelocity(next.X, next.Y)
	p.body.Advance()
	return nil
}

func (p *orbitPlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *orbitPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, p.sprites.Bodies())
	return fmt.Sprintf("Angle: %.2f rad", p.angle)
}

func (p *orbitPlay) Status() string {
	return fmt.Sprintf("Laps: %d", p.laps)
}
