package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/control"
	"github.com/OpticalFlyer/spritekit/sprite"
)

const (
	padSpeed      = 5   // pixels per tick
	ellipseBorder = 100 // pixels
	lineWidth     = 10  // pixels
)

// keyboardPlay steers a paddle with the arrow keys over an elliptic ring
// and a horizontal line
type keyboardPlay struct {
	env     *Env
	sprites sprite.Group
	pad     *body.Body
	paddle  control.Paddle

	edgeStops int
}

func newKeyboard(env *Env) (Play, error) {
	p := &keyboardPlay{env: env, paddle: control.Paddle{Speed: padSpeed}}
	return p, p.Reset()
}

func (p *keyboardPlay) Reset() error {
	sprites := spawn(p.env)
	pad, err := require(sprites, "pad")
	if err != nil {
		return err
	}

	// Decorations keep their fill color but get their own shape
	if s := sprites.Find("ellipse"); s != nil {
		s.Look = &sprite.Ellipse{Color: fillOf(s), Border: ellipseBorder}
	}
	if s := sprites.Find("line"); s != nil {
		s.Look = &sprite.Line{Color: fillOf(s), Width: lineWidth}
	}

	p.sprites, p.pad = sprites, pad.Body
	p.edgeStops = 0
	return nil
}

func (p *keyboardPlay) Update(in Input) error {
	width, _ := p.env.Size()
	if p.paddle.Step(p.pad, in.Left, in.Right, width) {
		p.edgeStops++
	}
	return nil
}

func (p *keyboardPlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *keyboardPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, []*body.Body{p.pad})
	return fmt.Sprintf("Pad: %.0f..%.0f dx: %.0f", p.pad.Left(), p.pad.Right(), p.pad.Vel.X)
}

func (p *keyboardPlay) Status() string {
	return fmt.Sprintf("Edge stops: %d", p.edgeStops)
}
