// Package scene describes a demo setup: window, bodies and collision
// settings. Scenes are plain structs with enumerated defaults and can be
// loaded from YAML files.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/palette"
)

// Defaults for the window
const (
	DefaultWidth      = 800 // pixels
	DefaultHeight     = 600 // pixels
	DefaultTitle      = "Sprite Kit"
	DefaultBackground = "black"
	DefaultTPS        = 30 // ticks per second
	DefaultFontSize   = 48 // points
)

// Window holds the window properties
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
	TPS        int    `yaml:"tps"`
}

// Collision selects the body-body collision test
type Collision struct {
	Shape  string  `yaml:"shape"` // "rectangle" or "circle"
	Ratio  float64 `yaml:"ratio"`
	Bounce *bool   `yaml:"bounce,omitempty"`
}

// Body describes one body, or Count randomly placed copies of it
type Body struct {
	Name   string  `yaml:"name,omitempty"`
	Shape  string  `yaml:"shape"` // "rectangle", "circle", "image" or "text"
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	Mass   float64 `yaml:"mass,omitempty"`
	Fill   string  `yaml:"fill,omitempty"`
	Image  string  `yaml:"image,omitempty"`

	// Text bodies are sized to their rendered text
	Text     string  `yaml:"text,omitempty"`
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`

	// Count > 1 spawns copies at random positions with velocities in
	// [-MaxSpeed, MaxSpeed] and masses in [Mass, MaxMass]
	Count    int     `yaml:"count,omitempty"`
	MaxSpeed float64 `yaml:"max_speed,omitempty"`
	MaxMass  float64 `yaml:"max_mass,omitempty"`
}

// Config is a complete scene
type Config struct {
	Window    Window    `yaml:"window"`
	Collision Collision `yaml:"collision"`
	Bodies    []Body    `yaml:"bodies"`

	// Obstacles is an optional ESRI shapefile with static obstacles
	Obstacles string `yaml:"obstacles,omitempty"`

	// Seed for random spawns, 0 picks a fixed default
	Seed int64 `yaml:"seed,omitempty"`
}

// Default returns a scene with every default filled in and no bodies
func Default() Config {
	bounce := true
	return Config{
		Window: Window{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Title:      DefaultTitle,
			Background: DefaultBackground,
			TPS:        DefaultTPS,
		},
		Collision: Collision{
			Shape:  "rectangle",
			Ratio:  1,
			Bounce: &bounce,
		},
		Seed: 1,
	}
}

// Load reads a YAML scene file and applies it over Default
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading scene %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML scene data over Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding yaml: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the scene as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Window.Width == 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Background == "" {
		c.Window.Background = d.Window.Background
	}
	if c.Window.TPS == 0 {
		c.Window.TPS = d.Window.TPS
	}
	if c.Collision.Shape == "" {
		c.Collision.Shape = d.Collision.Shape
	}
	if c.Collision.Ratio == 0 {
		c.Collision.Ratio = d.Collision.Ratio
	}
	if c.Collision.Bounce == nil {
		c.Collision.Bounce = d.Collision.Bounce
	}
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	for i := range c.Bodies {
		if c.Bodies[i].Shape == "text" && c.Bodies[i].FontSize == 0 {
			c.Bodies[i].FontSize = DefaultFontSize
		}
	}
}

// Validate checks ranges and names
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Window.TPS))
	}
	if _, err := palette.Parse(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseKind(c.Collision.Shape); err != nil {
		errs = append(errs, fmt.Errorf("collision: %w", err))
	}
	if c.Collision.Ratio < 0 {
		errs = append(errs, fmt.Errorf("collision ratio %g must not be negative", c.Collision.Ratio))
	}

	for i, b := range c.Bodies {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("body %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (b Body) validate() error {
	switch b.Shape {
	case "rectangle", "image", "text":
		if b.Width < 0 || b.Height < 0 {
			return fmt.Errorf("size %gx%g must not be negative", b.Width, b.Height)
		}
	case "circle":
		if b.Radius < 0 {
			return fmt.Errorf("radius %g must not be negative", b.Radius)
		}
	default:
		return fmt.Errorf("unknown shape %q", b.Shape)
	}
	if b.Shape == "image" && b.Image == "" {
		return errors.New("image shape without an image path")
	}
	if b.FontSize < 0 {
		return fmt.Errorf("font size %g must not be negative", b.FontSize)
	}
	if b.Mass < 0 || b.MaxMass < 0 {
		return fmt.Errorf("mass %g..%g must be positive", b.Mass, b.MaxMass)
	}
	if b.Count < 0 {
		return fmt.Errorf("count %d must not be negative", b.Count)
	}
	if b.Fill != "" {
		if _, err := palette.Parse(b.Fill); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	return nil
}

// ParseKind maps a collision shape name to a body.ShapeKind
func ParseKind(s string) (body.ShapeKind, error) {
	switch s {
	case "rectangle", "rect":
		return body.KindRectangle, nil
	case "circle":
		return body.KindCircle, nil
	}
	return 0, fmt.Errorf("unknown collision shape %q", s)
}

// Kind returns the parsed collision shape, rectangle if invalid
func (c Config) Kind() body.ShapeKind {
	k, _ := ParseKind(c.Collision.Shape)
	return k
}

// Bounce reports whether bodies bounce off the window edges
func (c Config) Bounce() bool {
	return c.Collision.Bounce == nil || *c.Collision.Bounce
}

// Background returns the parsed window background color
func (c Config) Background() color.RGBA {
	bg, err := palette.Parse(c.Window.Background)
	if err != nil {
		return palette.Black
	}
	return bg
}

// BodyShape returns the body geometry for b
func (b Body) BodyShape() body.Shape {
	if b.Shape == "circle" {
		return body.Circle(b.Radius)
	}
	return body.Rectangle(b.Width, b.Height)
}

// Spawned is a body created from a scene entry together with its drawing
// hints
type Spawned struct {
	Body  *body.Body
	Entry Body
}

// Spawn creates the bodies of the scene. Entries with Count > 1 are placed
// randomly inside the window using the scene seed, so the same scene always
// yields the same layout.
func (c Config) Spawn() []Spawned {
	rng := rand.New(rand.NewSource(c.Seed))
	var out []Spawned

	for _, e := range c.Bodies {
		if e.Count <= 1 {
			out = append(out, Spawned{Body: body.New(e.config()), Entry: e})
			continue
		}

		shape := e.BodyShape()
		w, h := shape.Size()
		for i := 0; i < e.Count; i++ {
			cfg := e.config()
			cfg.Left = rng.Float64() * max(0, float64(c.Window.Width)-w)
			cfg.Top = rng.Float64() * max(0, float64(c.Window.Height)-h)
			cfg.DX = (rng.Float64()*2 - 1) * e.MaxSpeed
			cfg.DY = (rng.Float64()*2 - 1) * e.MaxSpeed
			if cfg.Mass == 0 {
				cfg.Mass = body.DefaultMass
			}
			if e.MaxMass > cfg.Mass {
				cfg.Mass += rng.Float64() * (e.MaxMass - cfg.Mass)
			}
			out = append(out, Spawned{Body: body.New(cfg), Entry: e})
		}
	}
	return out
}

func (b Body) config() body.Config {
	return body.Config{
		Left:  b.Left,
		Top:   b.Top,
		DX:    b.DX,
		DY:    b.DY,
		Mass:  b.Mass,
		Shape: b.BodyShape(),
	}
}
