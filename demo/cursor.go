package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/control"
	"github.com/OpticalFlyer/spritekit/palette"
	"github.com/OpticalFlyer/spritekit/sprite"
)

const (
	holeRadius    = 10 // pixels
	minCursorSize = 8  // pixels
)

// cursorPlay replaces the system cursor with an image. Clicks and taps
// leave black holes behind, a pinch resizes the cursor.
type cursorPlay struct {
	env     *Env
	sprites sprite.Group
	cursor  *body.Body
	pointer control.Pointer
	holes   sprite.Group

	// touched is set once touch input was seen, from then on the cursor
	// follows the finger instead of the mouse
	touched bool
}

func newCursor(env *Env) (Play, error) {
	p := &cursorPlay{env: env}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return p, nil
}

func (p *cursorPlay) Reset() error {
	sprites := spawn(p.env)
	cursor, err := require(sprites, "cursor")
	if err != nil {
		return err
	}
	p.sprites, p.cursor = sprites, cursor.Body
	p.pointer = control.Pointer{Body: cursor.Body}
	p.holes = nil
	return nil
}

func (p *cursorPlay) addHole(x, y float64) {
	b := body.New(body.Config{Shape: body.Circle(holeRadius)})
	b.MoveTo(x, y)
	p.holes = append(p.holes, sprite.New(b, &sprite.Disc{Color: palette.Black}))
}

func (p *cursorPlay) Update(in Input) error {
	t := in.Touch
	if t.Active > 0 {
		p.touched = true
	}

	switch {
	case t.Active == 1:
		p.pointer.Follow(t.X, t.Y)
	case !p.touched:
		p.pointer.Follow(in.CursorX, in.CursorY)
	}

	if t.Pinch != 1 {
		w, h := p.cursor.Size()
		if min(w, h)*t.Pinch >= minCursorSize {
			p.cursor.Grow(w*(t.Pinch-1), h*(t.Pinch-1))
		}
	}

	if in.Clicked {
		p.addHole(in.CursorX, in.CursorY)
	}
	if t.Active == 0 {
		for _, r := range t.Released {
			p.addHole(r.X, r.Y)
		}
	}
	return nil
}

func (p *cursorPlay) Draw(screen *ebiten.Image) {
	p.holes.Draw(screen)
	p.sprites.Draw(screen)
}

func (p *cursorPlay) Overlay(screen *ebiten.Image) string {
	overlayBodies(screen, p.sprites.Bodies())
	c := p.cursor.Center()
	return fmt.Sprintf("Cursor: %.0f, %.0f", c.X, c.Y)
}

func (p *cursorPlay) Status() string {
	return fmt.Sprintf("Black holes: %d", len(p.holes))
}
