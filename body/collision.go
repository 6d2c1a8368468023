package body

import "math"

// DetectOverlap returns the bodies in others whose geometry intersects b.
// kind selects a rectangle or a circle test and ratio scales the collision
// envelope of both bodies without touching their extents; a ratio <= 0 is
// treated as 1. b itself is skipped if it appears in others.
func (b *Body) DetectOverlap(others []*Body, kind ShapeKind, ratio float64) []*Body {
	if ratio <= 0 {
		ratio = 1
	}

	var hits []*Body
	for _, o := range others {
		if o == nil || o == b {
			continue
		}
		if overlaps(b, o, kind, ratio) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Overlaps reports whether a and b intersect under the given test
func Overlaps(a, b *Body, kind ShapeKind, ratio float64) bool {
	if ratio <= 0 {
		ratio = 1
	}
	return overlaps(a, b, kind, ratio)
}

func overlaps(a, b *Body, kind ShapeKind, ratio float64) bool {
	if kind == KindCircle {
		reach := (a.Shape.Radius() + b.Shape.Radius()) * ratio
		d := a.Center().Sub(b.Center())
		return d.Dot(d) <= reach*reach
	}
	return a.Bounds().Scale(ratio).Overlaps(b.Bounds().Scale(ratio))
}

// ContactAngle returns the angle of the line of impact between the centers of
// a and b, using the same y-up convention as Direction. Coincident centers
// give 0.
func ContactAngle(a, b *Body) float64 {
	ca, cb := a.Center(), b.Center()
	dx, dy := ca.X-cb.X, ca.Y-cb.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Pi + math.Atan2(-dy, dx)
}

// ResolveElasticCollision replaces the velocities of a and b with the result
// of a perfectly elastic collision along their contact angle. Momentum and
// kinetic energy are conserved; the tangential component of each velocity is
// left as it was.
func ResolveElasticCollision(a, b *Body) {
	v1, v2 := a.Speed(), b.Speed()
	a1, a2 := a.Direction(), b.Direction()
	m1, m2 := a.Mass, b.Mass
	phi := ContactAngle(a, b)

	// along the line of impact
	z1 := (v1*math.Cos(a1-phi)*(m1-m2) + 2*m2*v2*math.Cos(a2-phi)) / (m1 + m2)
	z2 := (v2*math.Cos(a2-phi)*(m2-m1) + 2*m1*v1*math.Cos(a1-phi)) / (m1 + m2)

	// perpendicular, unchanged
	t1 := v1 * math.Sin(a1-phi)
	t2 := v2 * math.Sin(a2-phi)

	a.Vel = recompose(z1, t1, phi)
	b.Vel = recompose(z2, t2, phi)
}

// recompose rotates an (along, tangential) pair back to screen dx, dy
func recompose(along, tangential, phi float64) Vec {
	sin, cos := math.Sincos(phi)
	x := along*cos - tangential*sin
	y := along*sin + tangential*cos
	return Vec{X: x, Y: -y}
}
