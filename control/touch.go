package control

import (
	"maps"
	"math"
	"slices"

	"github.com/OpticalFlyer/spritekit/body"
)

// Gesture is what the touches did since the previous Update
type Gesture struct {
	// Active is the number of touches currently down
	Active int

	// X, Y is the position of the single active touch
	X, Y float64

	// DX, DY is how far a single touch moved
	DX, DY float64

	// Pinch is the ratio of the current to the previous distance between
	// two touches, 1 when there is no pinch
	Pinch float64

	// Released holds the last positions of touches that ended
	Released []body.Vec
}

// Touches tracks touch points between ticks
type Touches struct {
	last map[int]body.Vec
}

// Update takes the current touch positions by id and returns the gesture
func (t *Touches) Update(points map[int]body.Vec) Gesture {
	if t.last == nil {
		t.last = make(map[int]body.Vec)
	}
	g := Gesture{Active: len(points), Pinch: 1}

	// Ended touches
	for _, id := range slices.Sorted(maps.Keys(t.last)) {
		if _, ok := points[id]; !ok {
			g.Released = append(g.Released, t.last[id])
			delete(t.last, id)
		}
	}

	ids := slices.Sorted(maps.Keys(points))
	switch len(ids) {
	case 1: // Single touch - drag
		id := ids[0]
		p := points[id]
		g.X, g.Y = p.X, p.Y
		if last, ok := t.last[id]; ok {
			g.DX, g.DY = p.X-last.X, p.Y-last.Y
		}

	case 2: // Two finger touch - pinch
		a, b := points[ids[0]], points[ids[1]]
		lastA, okA := t.last[ids[0]]
		lastB, okB := t.last[ids[1]]
		if okA && okB {
			prev := distance(lastA, lastB)
			if prev > 0 {
				g.Pinch = distance(a, b) / prev
			}
		}
	}

	for _, id := range ids {
		t.last[id] = points[id]
	}
	return g
}

// distance between two points
func distance(a, b body.Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
