package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/sprite"
	"github.com/OpticalFlyer/spritekit/world"
)

// rectanglesPlay bounces a square between two paddles that move up and
// down. Only the square reacts to the paddles.
type rectanglesPlay struct {
	env     *Env
	sprites sprite.Group
	square  *body.Body
	paddles []*body.Body

	paddleHits int
}

func newRectangles(env *Env) (Play, error) {
	p := &rectanglesPlay{env: env}
	return p, p.Reset()
}

func (p *rectanglesPlay) Reset() error {
	sprites := spawn(p.env)
	square, err := require(sprites, "square")
	if err != nil {
		return err
	}
	p.sprites, p.square = sprites, square.Body
	p.paddles = sprites.All("paddle").Bodies()
	p.paddleHits = 0
	return nil
}

func (p *rectanglesPlay) Update(in Input) error {
	width, height := p.env.Size()
	for _, b := range p.sprites.Bodies() {
		b.Advance()
		world.BounceEdges(b, width, height)
	}

	for _, paddle := range p.paddles {
		if !p.square.CollidesRect(paddle.Bounds()) {
			continue
		}
		// Flip only while heading into the paddle so the square cannot get
		// stuck inside it
		if (paddle.Center().X-p.square.Center().X)*p.square.Vel.X > 0 {
			p.square.FlipDX()
			p.paddleHits++
		}
	}
	return nil
}

func (p *rectanglesPlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *rectanglesPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, p.sprites.Bodies())
	return fmt.Sprintf("Square: %.1f, %.1f", p.square.Pos.X, p.square.Pos.Y)
}

func (p *rectanglesPlay) Status() string {
	return fmt.Sprintf("Paddle hits: %d", p.paddleHits)
}
