package sprite

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/OpticalFlyer/spritekit/asset"
	"github.com/OpticalFlyer/spritekit/body"
)

var (
	fallbackOnce   sync.Once
	fallbackSource *text.GoTextFaceSource
)

func fallback() *text.GoTextFaceSource {
	fallbackOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(asset.FallbackFont))
		if err != nil {
			log.Fatalf("Error parsing built-in font: %v", err)
		}
		fallbackSource = src
	})
	return fallbackSource
}

// Text draws a single string at the top-left of the bounding box
type Text struct {
	Color color.Color

	face *text.GoTextFace
	str  string
}

// NewText parses TrueType or OpenType font data. Data that cannot be
// parsed is replaced by the built-in monospace font.
func NewText(fontData []byte, size float64, clr color.Color) *Text {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		log.Printf("Error parsing font, using monospace fallback: %v", err)
		src = fallback()
	}
	return &Text{
		Color: clr,
		face:  &text.GoTextFace{Source: src, Size: size},
	}
}

// String returns the current text
func (t *Text) String() string {
	return t.str
}

// Measure returns the size s would take up
func (t *Text) Measure(s string) (w, h float64) {
	return text.Measure(s, t.face, t.face.Size*1.2)
}

// Set changes the text and resizes b to fit it. The top-left corner of b
// stays where it is.
func (t *Text) Set(b *body.Body, s string) {
	t.str = s
	w, h := t.Measure(s)
	b.Shape = body.Rectangle(w, h)
}

func (t *Text) Draw(screen *ebiten.Image, b *body.Body) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(b.Pos.X, b.Pos.Y)
	op.ColorScale.ScaleWithColor(t.Color)
	op.LineSpacing = t.face.Size * 1.2
	text.Draw(screen, t.str, t.face, op)
}
