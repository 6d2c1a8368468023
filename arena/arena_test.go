package arena

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/spritekit/body"
)

func nearRect(a, b body.Rect) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestFitToScreen(t *testing.T) {
	tests := []struct {
		name    string
		extent  Box
		x, y    float64
		wantX   float64
		wantY   float64
		wantFit float64
	}{
		{
			name:    "Square extent in wide window",
			extent:  Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
			x:       0,
			y:       100,
			wantX:   100, // centered horizontally
			wantY:   0,
			wantFit: 6,
		},
		{
			name:    "Bottom right corner",
			extent:  Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
			x:       100,
			y:       0,
			wantX:   700,
			wantY:   600,
			wantFit: 6,
		},
		{
			name:    "Offset source",
			extent:  Box{MinX: -200, MinY: 50, MaxX: 200, MaxY: 350},
			x:       0,
			y:       200,
			wantX:   400,
			wantY:   300,
			wantFit: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := NewFit(tt.extent, 800, 600, 0)
			if math.Abs(fit.Scale-tt.wantFit) > 1e-9 {
				t.Errorf("Scale = %f; want %f", fit.Scale, tt.wantFit)
			}
			gotX, gotY := fit.ToScreen(tt.x, tt.y)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	boxes := []Box{
		{MinX: 0, MinY: 0, MaxX: 10, MaxY: 100}, // left wall
		{MinX: 90, MinY: 40, MaxX: 100, MaxY: 60},
	}

	got := Place(boxes, 800, 600, 50)
	want := []body.Rect{
		{X: 150, Y: 50, Width: 50, Height: 500},
		{X: 600, Y: 250, Width: 50, Height: 100},
	}
	if len(got) != len(want) {
		t.Fatalf("Place() returned %d rects; want %d", len(got), len(want))
	}
	for i := range want {
		if !nearRect(got[i], want[i]) {
			t.Errorf("rect %d = %+v; want %+v", i, got[i], want[i])
		}
	}

	if Place(nil, 800, 600, 0) != nil {
		t.Errorf("Place(nil) != nil")
	}
}

func TestLoadShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.shp")

	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		t.Fatalf("creating shapefile: %v", err)
	}
	w.Write(shp.NewPolyLine([][]shp.Point{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 100}}}))
	w.Write(shp.NewPolyLine([][]shp.Point{{{X: 90, Y: 40}, {X: 100, Y: 60}}}))
	w.Close()

	boxes, err := ReadBoxes(path)
	if err != nil {
		t.Fatalf("ReadBoxes() error = %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("ReadBoxes() returned %d boxes; want 2", len(boxes))
	}
	if boxes[0] != (Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 100}) {
		t.Errorf("box 0 = %+v", boxes[0])
	}

	rects, err := LoadShapefile(path, 800, 600, 50)
	if err != nil {
		t.Fatalf("LoadShapefile() error = %v", err)
	}
	if want := (body.Rect{X: 600, Y: 250, Width: 50, Height: 100}); !nearRect(rects[1], want) {
		t.Errorf("rect 1 = %+v; want %+v", rects[1], want)
	}
}

func TestLoadShapefileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadShapefile(filepath.Join(dir, "missing.shp"), 800, 600, 0); err == nil {
		t.Errorf("LoadShapefile() of a missing file succeeded")
	}

	empty := filepath.Join(dir, "empty.shp")
	w, err := shp.Create(empty, shp.POLYLINE)
	if err != nil {
		t.Fatalf("creating shapefile: %v", err)
	}
	w.Close()

	if _, err := LoadShapefile(empty, 800, 600, 0); !errors.Is(err, ErrEmpty) {
		t.Errorf("LoadShapefile() error = %v; want ErrEmpty", err)
	}
}

func TestLoadShapefileGeographic(t *testing.T) {
	rects, err := LoadShapefile(filepath.Join("..", "scenes", "arena.shp"), 800, 600, 40)
	if err != nil {
		t.Fatalf("LoadShapefile() error = %v", err)
	}
	if len(rects) != 5 {
		t.Fatalf("len(rects) = %d; want 5", len(rects))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rects {
		minX, minY = math.Min(minX, r.X), math.Min(minY, r.Y)
		maxX, maxY = math.Max(maxX, r.Right()), math.Max(maxY, r.Bottom())
	}

	// Projected, the layout is taller than wide and fills the height
	if math.Abs(minY-40) > 1e-6 || math.Abs(maxY-560) > 1e-6 {
		t.Errorf("y range = %f..%f; want 40..560", minY, maxY)
	}
	if w := maxX - minX; math.Abs(w-541.739) > 0.01 {
		t.Errorf("width = %f; want 541.739", w)
	}
}
