package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpticalFlyer/spritekit/body"
)

const ballsYAML = `
window:
  title: Moving balls
  background: forestgreen
  tps: 60
collision:
  shape: circle
  ratio: 0.9
  bounce: false
bodies:
  - name: ball
    shape: circle
    radius: 20
    fill: indianred
    count: 10
    max_speed: 5
    mass: 1
    max_mass: 4
  - shape: rectangle
    width: 100
    height: 25
    left: 350
    top: 550
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(ballsYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Errorf("window = %dx%d; want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Moving balls" || cfg.Window.TPS != 60 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Kind() != body.KindCircle || cfg.Collision.Ratio != 0.9 {
		t.Errorf("collision = %+v", cfg.Collision)
	}
	if cfg.Bounce() {
		t.Errorf("Bounce() = true; want false")
	}
	if len(cfg.Bodies) != 2 {
		t.Fatalf("len(Bodies) = %d; want 2", len(cfg.Bodies))
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cfg.Bounce() || cfg.Kind() != body.KindRectangle || cfg.Collision.Ratio != 1 {
		t.Errorf("collision defaults = %+v", cfg.Collision)
	}
	if cfg.Window.TPS != DefaultTPS || cfg.Window.Background != DefaultBackground {
		t.Errorf("window defaults = %+v", cfg.Window)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "Bad yaml", yaml: "window: [", wantErr: "decoding yaml"},
		{name: "Unknown shape", yaml: "bodies: [{shape: hexagon}]", wantErr: "unknown shape"},
		{name: "Negative radius", yaml: "bodies: [{shape: circle, radius: -1}]", wantErr: "radius"},
		{name: "Image without path", yaml: "bodies: [{shape: image}]", wantErr: "image path"},
		{name: "Bad fill", yaml: "bodies: [{shape: circle, fill: nope}]", wantErr: "fill"},
		{name: "Bad background", yaml: "window: {background: nope}", wantErr: "background"},
		{name: "Bad collision", yaml: "collision: {shape: triangle}", wantErr: "collision"},
		{name: "Negative size", yaml: "window: {width: -5}", wantErr: "window size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded; want error", tt.yaml)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse(%q) error = %v; want it to mention %q", tt.yaml, err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balls.yaml")
	if err := os.WriteFile(path, []byte(ballsYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Title != "Moving balls" {
		t.Errorf("Title = %q", cfg.Window.Title)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load() of a missing file succeeded")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(ballsYAML))
	if err != nil {
		t.Fatal(err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if again.Window != cfg.Window || len(again.Bodies) != len(cfg.Bodies) || again.Bounce() != cfg.Bounce() {
		t.Errorf("round trip changed the scene:\n%s", data)
	}
}

func TestSpawn(t *testing.T) {
	cfg, err := Parse([]byte(ballsYAML))
	if err != nil {
		t.Fatal(err)
	}

	spawned := cfg.Spawn()
	if len(spawned) != 11 {
		t.Fatalf("Spawn() created %d bodies; want 11", len(spawned))
	}

	for i, s := range spawned[:10] {
		b := s.Body
		if b.Shape != body.Circle(20) {
			t.Errorf("body %d shape = %+v", i, b.Shape)
		}
		if b.Left() < 0 || b.Right() > 800 || b.Top() < 0 || b.Bottom() > 600 {
			t.Errorf("body %d at %v outside the window", i, b.Pos)
		}
		if b.Vel.X < -5 || b.Vel.X > 5 || b.Vel.Y < -5 || b.Vel.Y > 5 {
			t.Errorf("body %d velocity %v outside [-5, 5]", i, b.Vel)
		}
		if b.Mass < 1 || b.Mass > 4 {
			t.Errorf("body %d mass %g outside [1, 4]", i, b.Mass)
		}
	}

	pad := spawned[10].Body
	if pad.Pos != (body.Vec{X: 350, Y: 550}) || pad.Mass != body.DefaultMass {
		t.Errorf("pad = %+v", pad)
	}

	// same seed, same layout
	again := cfg.Spawn()
	for i := range spawned {
		if spawned[i].Body.Pos != again[i].Body.Pos {
			t.Fatalf("Spawn() is not deterministic at body %d", i)
		}
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	if len(names) == 0 {
		t.Fatal("no presets")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset() error = %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if len(cfg.Spawn()) == 0 {
				t.Errorf("Spawn() returned no bodies")
			}
			for _, b := range cfg.Bodies {
				if b.Shape == "text" && b.FontSize != DefaultFontSize {
					t.Errorf("text body %q font size = %v; want default", b.Name, b.FontSize)
				}
			}
		})
	}

	// Presets are independent copies
	a, _ := Preset("ball")
	a.Bodies[0].Left = 99
	b, _ := Preset("ball")
	if b.Bodies[0].Left == 99 {
		t.Errorf("Preset() returned shared bodies")
	}

	if _, err := Preset("tetris"); err == nil {
		t.Errorf("Preset(unknown) succeeded")
	}
}

func TestSceneFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "scenes", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(cfg.Spawn()) == 0 {
				t.Errorf("Spawn() returned no bodies")
			}
		})
	}
}
