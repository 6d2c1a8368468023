// Package mesh builds triangle meshes for filled shapes that the vector
// package cannot draw directly, such as ellipses and elliptic rings.
package mesh

import (
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
)

// DefaultSegments is the number of points used for an ellipse outline
const DefaultSegments = 64

// Mesh is a flat list of 2D vertices and the triangles between them
type Mesh struct {
	// Vertices holds x, y pairs
	Vertices []float64
	// Indices holds three vertex indices per triangle
	Indices []uint16
}

// Triangles returns the number of triangles
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Area returns the total area covered by the triangles
func (m Mesh) Area() float64 {
	var sum float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		ax, ay := m.Vertices[2*a], m.Vertices[2*a+1]
		bx, by := m.Vertices[2*b], m.Vertices[2*b+1]
		cx, cy := m.Vertices[2*c], m.Vertices[2*c+1]
		sum += math.Abs((bx-ax)*(cy-ay)-(cx-ax)*(by-ay)) / 2
	}
	return sum
}

// Ellipse triangulates an ellipse inscribed in a w x h box at the origin.
// border > 0 cuts out the interior and leaves a ring of that width; a border
// that reaches the center gives a filled ellipse.
func Ellipse(w, h, border float64, segments int) (Mesh, error) {
	if w <= 0 || h <= 0 {
		return Mesh{}, fmt.Errorf("ellipse size %gx%g must be positive", w, h)
	}
	if segments < 3 {
		segments = DefaultSegments
	}

	rx, ry := w/2, h/2
	data := outline(rx, ry, rx, ry, segments, nil)

	var holes []int
	if border > 0 && border < min(rx, ry) {
		holes = []int{segments}
		data = outline(rx, ry, rx-border, ry-border, segments, data)
	}
	if len(data)/2 > math.MaxUint16 {
		return Mesh{}, fmt.Errorf("too many vertices: %d", len(data)/2)
	}

	idx, err := earcut.Earcut(data, holes, 2)
	if err != nil {
		return Mesh{}, fmt.Errorf("triangulating ellipse: %w", err)
	}

	indices := make([]uint16, len(idx))
	for i, v := range idx {
		indices[i] = uint16(v)
	}
	return Mesh{Vertices: data, Indices: indices}, nil
}

// outline appends the points of an ellipse centered on (cx, cy)
func outline(cx, cy, rx, ry float64, segments int, dst []float64) []float64 {
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		dst = append(dst, cx+rx*cos, cy+ry*sin)
	}
	return dst
}
