package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/sprite"
)

// snakeGrowth is added to the snake's width and height every tick
const snakeGrowth = 10

// snakePlay moves a snake diagonally while it grows, with a caption
// scrolling to the left
type snakePlay struct {
	env     *Env
	sprites sprite.Group
	snake   *body.Body
	caption *body.Body
}

func newSnake(env *Env) (Play, error) {
	p := &snakePlay{env: env}
	return p, p.Reset()
}

func (p *snakePlay) Reset() error {
	sprites := spawn(p.env)
	snake, err := require(sprites, "snake")
	if err != nil {
		return err
	}
	p.sprites, p.snake = sprites, snake.Body
	p.caption = nil
	if c := sprites.Find("caption"); c != nil {
		p.caption = c.Body
	}
	return nil
}

func (p *snakePlay) Update(in Input) error {
	width, _ := p.env.Size()

	p.snake.Advance()
	// Stop growing once the snake is as wide as the window
	if w, _ := p.snake.Size(); w < width {
		p.snake.Grow(snakeGrowth, snakeGrowth)
	}

	if p.caption != nil {
		p.caption.Advance()
		if p.caption.Right() < 0 {
			p.caption.SetLeft(width)
		}
	}
	return nil
}

func (p *snakePlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *snakePlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, p.sprites.Bodies())
	return fmt.Sprintf("Snake center: %.0f, %.0f", p.snake.Center().X, p.snake.Center().Y)
}

func (p *snakePlay) Status() string {
	w, h := p.snake.Size()
	return fmt.Sprintf("Snake: %.0fx%.0f", w, h)
}
