package arena

import "github.com/OpticalFlyer/spritekit/body"

// Box is an axis-aligned box in source coordinates, y growing upwards as in
// map data
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Extend grows b to include o
func (b Box) Extend(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Fit maps source coordinates onto a screen area keeping the aspect ratio.
// The source extent is scaled uniformly to fit inside the screen minus the
// margin, centered, and flipped so north is up.
type Fit struct {
	Scale            float64
	OffsetX, OffsetY float64
	src              Box
}

// NewFit computes the transform that places extent inside a
// screenWidth x screenHeight area with margin pixels on every side
func NewFit(extent Box, screenWidth, screenHeight, margin float64) Fit {
	w := extent.MaxX - extent.MinX
	h := extent.MaxY - extent.MinY
	availW := screenWidth - 2*margin
	availH := screenHeight - 2*margin

	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = min(availW/w, availH/h)
	case w > 0:
		scale = availW / w
	case h > 0:
		scale = availH / h
	}

	return Fit{
		Scale:   scale,
		OffsetX: (screenWidth - w*scale) / 2,
		OffsetY: (screenHeight - h*scale) / 2,
		src:     extent,
	}
}

// ToScreen converts a source point to screen pixels
func (f Fit) ToScreen(x, y float64) (screenX, screenY float64) {
	screenX = f.OffsetX + (x-f.src.MinX)*f.Scale
	screenY = f.OffsetY + (f.src.MaxY-y)*f.Scale
	return screenX, screenY
}

// Rect converts a source box to a screen rectangle
func (f Fit) Rect(b Box) body.Rect {
	x0, y0 := f.ToScreen(b.MinX, b.MaxY)
	x1, y1 := f.ToScreen(b.MaxX, b.MinY)
	return body.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
