package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/sprite"
)

// textPlay shows the current frame rate
type textPlay struct {
	env     *Env
	sprites sprite.Group
	label   *sprite.Sprite
	text    *sprite.Text
}

func newText(env *Env) (Play, error) {
	p := &textPlay{env: env}
	return p, p.Reset()
}

func (p *textPlay) Reset() error {
	sprites := spawn(p.env)
	label, err := require(sprites, "fps")
	if err != nil {
		return err
	}
	t, ok := label.Look.(*sprite.Text)
	if !ok {
		return fmt.Errorf("body %q is not a text body", label.Name)
	}
	p.sprites, p.label, p.text = sprites, label, t
	return nil
}

func (p *textPlay) Update(in Input) error {
	p.text.Set(p.label.Body, fmt.Sprintf("The FPS is: %.2f", ebiten.ActualFPS()))
	return nil
}

func (p *textPlay) Draw(screen *ebiten.Image) {
	p.sprites.Draw(screen)
}

func (p *textPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, p.sprites.Bodies())
	w, h := p.label.Body.Size()
	return fmt.Sprintf("Text size: %.0fx%.0f", w, h)
}

func (p *textPlay) Status() string {
	return p.text.String()
}
