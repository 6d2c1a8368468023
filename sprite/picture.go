package sprite

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/body"
)

// Picture draws an image stretched over the bounding box, so a growing body
// grows its image too
type Picture struct {
	img *ebiten.Image
}

// NewPicture uploads img for drawing
func NewPicture(img image.Image) *Picture {
	return &Picture{img: ebiten.NewImageFromImage(img)}
}

func (p *Picture) Draw(screen *ebiten.Image, b *body.Body) {
	w, h := b.Size()
	size := p.img.Bounds().Size()
	if w <= 0 || h <= 0 || size.X == 0 || size.Y == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(size.X), h/float64(size.Y))
	op.GeoM.Translate(b.Pos.X, b.Pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(p.img, op)
}
