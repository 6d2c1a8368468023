// Package world steps a set of bodies together: motion, edge and obstacle
// bounces, and elastic collisions found by a parallel broad phase.
package world

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/OpticalFlyer/spritekit/body"
)

// Pair is two bodies whose collision was resolved during a tick
type Pair struct {
	A, B *body.Body
}

// Stats counts what happened since the world was created or last reset
type Stats struct {
	Ticks        int
	Collisions   int
	EdgeHits     int
	ObstacleHits int
}

// World runs the per-tick simulation for a set of bodies inside a
// Width x Height area. It is owned by a single tick loop; bodies are never
// mutated concurrently.
type World struct {
	Width  float64
	Height float64

	// Collision test used between bodies
	Kind  body.ShapeKind
	Ratio float64

	// Bounce flips velocities at the area edges
	Bounce bool

	// Workers bounds the broad phase goroutines, 0 means GOMAXPROCS
	Workers int

	bodies    []*body.Body
	obstacles []body.Rect
	stats     Stats
}

// New creates a world of the given size with rectangle collisions at ratio
// 1 and edge bouncing enabled
func New(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		Kind:   body.KindRectangle,
		Ratio:  1,
		Bounce: true,
	}
}

// Add appends bodies to the world
func (w *World) Add(bodies ...*body.Body) {
	w.bodies = append(w.bodies, bodies...)
	if len(bodies) > 1 {
		Logger().Info("bodies added", slog.Int("count", len(bodies)), slog.Int("total", len(w.bodies)))
	}
}

// Remove deletes b from the world and reports whether it was present
func (w *World) Remove(b *body.Body) bool {
	for i, o := range w.bodies {
		if o == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Bodies returns the bodies in insertion order. The slice must not be
// modified.
func (w *World) Bodies() []*body.Body {
	return w.bodies
}

// AddObstacle adds static rectangles that bodies bounce off
func (w *World) AddObstacle(rects ...body.Rect) {
	w.obstacles = append(w.obstacles, rects...)
	Logger().Info("obstacles added", slog.Int("count", len(rects)))
}

// Obstacles returns the static rectangles
func (w *World) Obstacles() []body.Rect {
	return w.obstacles
}

// Stats returns the counters
func (w *World) Stats() Stats {
	return w.stats
}

// Reset removes all bodies and obstacles and clears the counters
func (w *World) Reset() {
	w.bodies = nil
	w.obstacles = nil
	w.stats = Stats{}
}

// Step runs one tick: advance, edge bounce, obstacle bounce, broad phase and
// collision resolution, in that order. It returns the pairs whose collision
// was resolved. If ctx is done before the broad phase finishes the error is
// returned and no velocity is changed by body-body collisions.
func (w *World) Step(ctx context.Context) ([]Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.stats.Ticks++

	for _, b := range w.bodies {
		b.Advance()
	}

	if w.Bounce {
		for _, b := range w.bodies {
			w.bounceEdges(b)
		}
	}

	for _, b := range w.bodies {
		w.bounceObstacles(b)
	}

	candidates, err := w.broadPhase(ctx)
	if err != nil {
		return nil, err
	}

	resolved := candidates[:0]
	for _, p := range candidates {
		// separating pairs keep moving so they can leave the overlap
		if !approaching(p.A, p.B) {
			continue
		}
		p.A.Rewind()
		p.B.Rewind()
		body.ResolveElasticCollision(p.A, p.B)
		resolved = append(resolved, p)
		Logger().Debug("collision",
			slog.Any("a", p.A.Center()), slog.Any("b", p.B.Center()),
			slog.Float64("angle", body.ContactAngle(p.A, p.B)))
	}
	w.stats.Collisions += len(resolved)

	return resolved, nil
}

// broadPhase finds all overlapping pairs i < j. Each body is tested against
// the bodies after it in its own goroutine; the result keeps index order.
func (w *World) broadPhase(ctx context.Context) ([]Pair, error) {
	n := len(w.bodies)
	hits := make([][]*body.Body, n)

	workers := w.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hits[i] = w.bodies[i].DetectOverlap(w.bodies[i+1:], w.Kind, w.Ratio)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pairs []Pair
	for i, hs := range hits {
		for _, h := range hs {
			pairs = append(pairs, Pair{A: w.bodies[i], B: h})
		}
	}
	return pairs, nil
}

func (w *World) bounceEdges(b *body.Body) {
	hitX, hitY := BounceEdges(b, w.Width, w.Height)
	if hitX {
		w.stats.EdgeHits++
	}
	if hitY {
		w.stats.EdgeHits++
	}
}

// BounceEdges clamps b into [0, width] x [0, height] and flips each velocity
// component that still points out of the area. It reports which edges were
// touched: hitX for left or right, hitY for top or bottom.
func BounceEdges(b *body.Body, width, height float64) (hitX, hitY bool) {
	if b.ReflectHorizontalEdge(height) {
		hitY = true
		if outward(b.Top(), b.Vel.Y) {
			b.FlipDY()
		}
	}
	if b.ReflectVerticalEdge(width) {
		hitX = true
		if outward(b.Left(), b.Vel.X) {
			b.FlipDX()
		}
	}
	return hitX, hitY
}

// outward reports whether a clamped body still moves out of the area: up or
// left when it sits at the origin side, down or right otherwise
func outward(pos, vel float64) bool {
	if pos <= 0 {
		return vel < 0
	}
	return vel > 0
}

func (w *World) bounceObstacles(b *body.Body) {
	for _, o := range w.obstacles {
		if !b.CollidesRect(o) {
			continue
		}
		w.stats.ObstacleHits++

		bw, bh := b.Size()
		if (body.Rect{X: b.Prev.X, Y: b.Prev.Y, Width: bw, Height: bh}).Overlaps(o) {
			pushOut(b, o)
			return
		}
		xOnly := body.Rect{X: b.Pos.X, Y: b.Prev.Y, Width: bw, Height: bh}
		yOnly := body.Rect{X: b.Prev.X, Y: b.Pos.Y, Width: bw, Height: bh}
		b.Rewind()

		hitX, hitY := xOnly.Overlaps(o), yOnly.Overlaps(o)
		switch {
		case hitX && !hitY:
			b.FlipDX()
		case hitY && !hitX:
			b.FlipDY()
		default:
			b.FlipDX()
			b.FlipDY()
		}
		return
	}
}

// pushOut moves a body that was already inside o to the nearest side of o
// and turns the velocity component pointing back into it
func pushOut(b *body.Body, o body.Rect) {
	left := b.Right() - o.X
	right := o.Right() - b.Left()
	up := b.Bottom() - o.Y
	down := o.Bottom() - b.Top()

	switch min(left, right, up, down) {
	case left:
		b.Pos.X -= left
		if b.Vel.X > 0 {
			b.FlipDX()
		}
	case right:
		b.Pos.X += right
		if b.Vel.X < 0 {
			b.FlipDX()
		}
	case up:
		b.Pos.Y -= up
		if b.Vel.Y > 0 {
			b.FlipDY()
		}
	default:
		b.Pos.Y += down
		if b.Vel.Y < 0 {
			b.FlipDY()
		}
	}
}

// approaching reports whether the bodies move towards each other along the
// line between their centers. Coincident centers always count.
func approaching(a, b *body.Body) bool {
	d := b.Center().Sub(a.Center())
	if d.X == 0 && d.Y == 0 {
		return true
	}
	return b.Vel.Sub(a.Vel).Dot(d) < 0
}
