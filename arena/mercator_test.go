package arena

import (
	"math"
	"testing"
)

func TestLonLatToWebMercator(t *testing.T) {
	const edge = 20037508.342789244 // earthRadius * π

	tests := []struct {
		name     string
		lon, lat float64
		wantX    float64
		wantY    float64
		tol      float64
	}{
		{
			name:  "Origin",
			lon:   0,
			lat:   0,
			wantX: 0,
			wantY: 0,
			tol:   1e-6,
		},
		{
			name:  "Antimeridian",
			lon:   180,
			lat:   0,
			wantX: edge,
			wantY: 0,
			tol:   1e-6,
		},
		{
			name:  "Top-left corner",
			lon:   -180,
			lat:   maxLat,
			wantX: -edge,
			wantY: edge,
			tol:   100,
		},
		{
			name:  "Clamped past the pole",
			lon:   0,
			lat:   -90,
			wantX: 0,
			wantY: -edge,
			tol:   100,
		},
		{
			name:  "Portland, OR",
			lon:   -122.6765,
			lat:   45.5231,
			wantX: -13656285.5123,
			wantY: 5704252.2629,
			tol:   1e-3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := LonLatToWebMercator(tt.lon, tt.lat)
			if math.Abs(gotX-tt.wantX) > tt.tol || math.Abs(gotY-tt.wantY) > tt.tol {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGeographic(t *testing.T) {
	tests := []struct {
		name  string
		boxes []Box
		want  bool
	}{
		{"Empty", nil, false},
		{"Lon lat", []Box{{MinX: -98.6, MinY: 39.8, MaxX: -98.5, MaxY: 39.9}}, true},
		{"Meters", []Box{{MinX: -13656274, MinY: 5703158, MaxX: -13656000, MaxY: 5703300}}, false},
		{"Screen units", []Box{{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, {MinX: 100, MinY: 0, MaxX: 200, MaxY: 50}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Geographic(tt.boxes); got != tt.want {
				t.Errorf("Geographic() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestProjectBox(t *testing.T) {
	b := ProjectBox(Box{MinX: -10, MinY: -10, MaxX: 10, MaxY: 60})
	if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
		t.Fatalf("ProjectBox() = %+v; not ordered", b)
	}
	if math.Abs(b.MinX+b.MaxX) > 1e-6 {
		t.Errorf("x range not symmetric: %+v", b)
	}
	// Mercator stretches high latitudes
	if b.MaxY <= 6*(-b.MinY) {
		t.Errorf("MaxY = %f; want more than 6x |MinY| = %f", b.MaxY, -b.MinY)
	}
}

func BenchmarkLonLatToWebMercator(b *testing.B) {
	coords := [][2]float64{
		{0, 0},
		{180, maxLat},
		{-180, minLat},
		{-122.67890, 45.12345},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			LonLatToWebMercator(c[0], c[1])
		}
	}
}
