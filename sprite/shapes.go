package sprite

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/mesh"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the source for DrawTriangles. The inner pixel avoids
	// bleeding from the image edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Fill paints the bounding box. Border > 0 draws only the outline.
type Fill struct {
	Color  color.Color
	Border float32
}

func (f *Fill) Draw(screen *ebiten.Image, b *body.Body) {
	r := b.Bounds()
	if f.Border > 0 {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y),
			float32(r.Width), float32(r.Height), f.Border, f.Color, true)
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), f.Color, true)
}

// Disc paints a circle inscribed in the bounding box. Border > 0 draws a
// ring of that width.
type Disc struct {
	Color  color.Color
	Border float32
}

func (d *Disc) Draw(screen *ebiten.Image, b *body.Body) {
	c := b.Center()
	w, h := b.Size()
	r := float32(min(w, h) / 2)
	if d.Border > 0 {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r-d.Border/2, d.Border, d.Color, true)
		return
	}
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, d.Color, true)
}

// Ellipse paints an ellipse inscribed in the bounding box, or an elliptic
// ring when Border > 0. The mesh is rebuilt only when the body size changes.
type Ellipse struct {
	Color  color.Color
	Border float64

	w, h     float64
	mesh     mesh.Mesh
	vertices []ebiten.Vertex
}

func (e *Ellipse) Draw(screen *ebiten.Image, b *body.Body) {
	w, h := b.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if w != e.w || h != e.h || e.vertices == nil {
		m, err := mesh.Ellipse(w, h, e.Border, mesh.DefaultSegments)
		if err != nil {
			log.Printf("Error building ellipse mesh: %v", err)
			return
		}
		e.w, e.h = w, h
		e.mesh = m
		e.vertices = make([]ebiten.Vertex, len(m.Vertices)/2)
	}

	cr, cg, cb, ca := e.Color.RGBA()
	for i := range e.vertices {
		e.vertices[i] = ebiten.Vertex{
			DstX:   float32(b.Pos.X + e.mesh.Vertices[2*i]),
			DstY:   float32(b.Pos.Y + e.mesh.Vertices[2*i+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	screen.DrawTriangles(e.vertices, e.mesh.Indices, whiteSubImage, op)
}

// Line strokes the diagonal of the bounding box from the top-left to the
// bottom-right corner. A zero-height box gives a horizontal line.
type Line struct {
	Color color.Color
	Width float32
}

func (l *Line) Draw(screen *ebiten.Image, b *body.Body) {
	r := b.Bounds()
	vector.StrokeLine(screen, float32(r.X), float32(r.Y),
		float32(r.Right()), float32(r.Bottom()), l.Width, l.Color, true)
}
