package demo

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/sprite"
)

// ballPlay bounces one ball off the window edges and logs the direction it
// had when it hit
type ballPlay struct {
	env     *Env
	sprites sprite.Group
	ball    *body.Body

	hits      int
	lastAngle float64
}

func newBall(env *Env) (Play, error) {
	p := &ballPlay{env: env}
	return p, p.Reset()
}

func (p *ballPlay) Reset() error {
	sprites := spawn(p.env)
	ball, err := require(sprites, "ball")
	if err != nil {
		return err
	}
	p.sprites, p.ball = sprites, ball.Body
	p.hits, p.lastAngle = 0, 0
	return nil
}

func (p *ballPlay) hit() {
	a := p.ball.Direction()
	p.hits++
	p.lastAngle = a
	log.Printf("hit angle rad: %.4f deg: %.0f", a, 180*a/math.Pi)
}

func (p *ballPlay) Update(in Input) error {
	width, height := p.env.Size()

	p.ball.Advance()
	if p.ball.ReflectHorizontalEdge(height) {
		p.hit()
		p.ball.FlipDY()
	}
	if p.ball.ReflectVerticalEdge(width) {
		p.hit()
		p.ball.FlipDX()
	}
	return nil
}

func (p *ballPlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *ballPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, []*body.Body{p.ball})
	return fmt.Sprintf("Pos: %.1f, %.1f\nSpeed: %.2f Direction: %.4f",
		p.ball.Pos.X, p.ball.Pos.Y, p.ball.Speed(), p.ball.Direction())
}

func (p *ballPlay) Status() string {
	return fmt.Sprintf("Hits: %d\nLast: %.0f deg", p.hits, 180*p.lastAngle/math.Pi)
}
