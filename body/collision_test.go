package body

import (
	"math"
	"math/rand"
	"testing"
)

func TestResolveElasticCollisionHeadOn(t *testing.T) {
	a := New(Config{Left: 0, Top: 0, DX: 5, Mass: 1})
	b := New(Config{Left: 10, Top: 0, DX: -5, Mass: 1})

	ResolveElasticCollision(a, b)

	if want := (Vec{-5, 0}); !a.Vel.Near(want, 1e-9) {
		t.Errorf("a.Vel = %v; want %v", a.Vel, want)
	}
	if want := (Vec{5, 0}); !b.Vel.Near(want, 1e-9) {
		t.Errorf("b.Vel = %v; want %v", b.Vel, want)
	}
}

func TestResolveElasticCollisionTangential(t *testing.T) {
	// b sits straight below a; only the vertical components change
	a := New(Config{Left: 0, Top: 0, DX: 3, DY: 2, Shape: Circle(5)})
	b := New(Config{Left: 0, Top: 10, DX: -1, DY: -4, Shape: Circle(5)})

	ResolveElasticCollision(a, b)

	if want := (Vec{3, -4}); !a.Vel.Near(want, 1e-9) {
		t.Errorf("a.Vel = %v; want %v", a.Vel, want)
	}
	if want := (Vec{-1, 2}); !b.Vel.Near(want, 1e-9) {
		t.Errorf("b.Vel = %v; want %v", b.Vel, want)
	}
}

func TestResolveElasticCollisionHeavyWall(t *testing.T) {
	// a very heavy body barely moves, the light one bounces back
	a := New(Config{Left: 0, Top: 0, DX: 4, Mass: 1})
	wall := New(Config{Left: 10, Top: 0, Mass: 1e12})

	ResolveElasticCollision(a, wall)

	if want := (Vec{-4, 0}); !a.Vel.Near(want, 1e-6) {
		t.Errorf("a.Vel = %v; want %v", a.Vel, want)
	}
	if wall.Speed() > 1e-6 {
		t.Errorf("wall.Speed() = %g; want ~0", wall.Speed())
	}
}

func TestResolveElasticCollisionConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		a := New(Config{
			Left: rng.Float64() * 800, Top: rng.Float64() * 600,
			DX: rng.Float64()*20 - 10, DY: rng.Float64()*20 - 10,
			Mass:  0.1 + rng.Float64()*10,
			Shape: Circle(1 + rng.Float64()*30),
		})
		b := New(Config{
			Left: rng.Float64() * 800, Top: rng.Float64() * 600,
			DX: rng.Float64()*20 - 10, DY: rng.Float64()*20 - 10,
			Mass:  0.1 + rng.Float64()*10,
			Shape: Rectangle(rng.Float64()*40, rng.Float64()*40),
		})

		p0 := a.Momentum().Add(b.Momentum())
		e0 := a.KineticEnergy() + b.KineticEnergy()

		ResolveElasticCollision(a, b)

		p1 := a.Momentum().Add(b.Momentum())
		e1 := a.KineticEnergy() + b.KineticEnergy()

		if !p1.Near(p0, 1e-7) {
			t.Fatalf("case %d: momentum %v -> %v", i, p0, p1)
		}
		if math.Abs(e1-e0) > 1e-7*math.Max(1, e0) {
			t.Fatalf("case %d: kinetic energy %f -> %f", i, e0, e1)
		}
	}
}

func TestResolveElasticCollisionCoincidentCenters(t *testing.T) {
	a := New(Config{Left: 50, Top: 50, DX: 2, DY: 1, Shape: Circle(5)})
	b := New(Config{Left: 50, Top: 50, DX: -1, DY: 3, Shape: Circle(5)})

	if got := ContactAngle(a, b); got != 0 {
		t.Fatalf("ContactAngle() = %f; want 0", got)
	}

	ResolveElasticCollision(a, b)

	for _, v := range []Vec{a.Vel, b.Vel} {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			t.Fatalf("velocity not finite: %v", v)
		}
	}
	// contact angle 0 exchanges the horizontal components
	if want := (Vec{-1, 1}); !a.Vel.Near(want, 1e-9) {
		t.Errorf("a.Vel = %v; want %v", a.Vel, want)
	}
	if want := (Vec{2, 3}); !b.Vel.Near(want, 1e-9) {
		t.Errorf("b.Vel = %v; want %v", b.Vel, want)
	}
}

func TestDetectOverlap(t *testing.T) {
	self := New(Config{Left: 100, Top: 100, Shape: Rectangle(20, 20)})
	touching := New(Config{Left: 120, Top: 100, Shape: Rectangle(20, 20)})
	inside := New(Config{Left: 110, Top: 110, Shape: Rectangle(20, 20)})
	corner := New(Config{Left: 118, Top: 118, Shape: Rectangle(20, 20)})
	far := New(Config{Left: 300, Top: 300, Shape: Rectangle(20, 20)})
	others := []*Body{self, touching, inside, corner, far}

	tests := []struct {
		name  string
		kind  ShapeKind
		ratio float64
		want  []*Body
	}{
		{name: "Rectangles", kind: KindRectangle, ratio: 1, want: []*Body{inside, corner}},
		{name: "Default ratio", kind: KindRectangle, ratio: 0, want: []*Body{inside, corner}},
		{name: "Shrunk rectangles", kind: KindRectangle, ratio: 0.8, want: []*Body{inside}},
		{name: "Grown rectangles", kind: KindRectangle, ratio: 1.5, want: []*Body{touching, inside, corner}},
		{name: "Circles", kind: KindCircle, ratio: 1, want: []*Body{touching, inside, corner}},
		{name: "Shrunk circles", kind: KindCircle, ratio: 0.6, want: []*Body{inside}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := self.DetectOverlap(others, tt.kind, tt.ratio)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectOverlap() returned %d bodies; want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("DetectOverlap()[%d] = %+v; want %+v", i, got[i].Pos, tt.want[i].Pos)
				}
			}
		})
	}
}

func TestDetectOverlapIsPure(t *testing.T) {
	a := New(Config{Left: 0, Top: 0, DX: 1, DY: 1, Shape: Circle(10)})
	b := New(Config{Left: 5, Top: 5, DX: -1, DY: 2, Shape: Circle(10)})
	before := *b

	if got := a.DetectOverlap([]*Body{b}, KindCircle, 1); len(got) != 1 {
		t.Fatalf("DetectOverlap() = %d hits; want 1", len(got))
	}
	if *b != before {
		t.Errorf("DetectOverlap() mutated its argument: %+v -> %+v", before, *b)
	}
	if a.Pos != (Vec{}) || a.Vel != (Vec{1, 1}) {
		t.Errorf("DetectOverlap() mutated its receiver: %+v", *a)
	}
}

func BenchmarkResolveElasticCollision(b *testing.B) {
	x := New(Config{Left: 0, Top: 0, DX: 3, DY: 1, Shape: Circle(10)})
	y := New(Config{Left: 15, Top: 4, DX: -2, DY: 0.5, Mass: 2, Shape: Circle(10)})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ResolveElasticCollision(x, y)
	}
}
