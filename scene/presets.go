package scene

import (
	"fmt"
	"slices"
)

func boolPtr(v bool) *bool { return &v }

// presets are the built-in demo scenes, keyed by demo name
var presets = map[string]func() Config{
	"ball": func() Config {
		c := Default()
		c.Window.Title = "A bouncing ball"
		c.Window.Background = "#c4e1b2"
		c.Window.TPS = 60
		c.Bodies = []Body{
			{Name: "backdrop", Shape: "image", Image: "unit-circle.png", Width: 800, Height: 600, Fill: "#c4e1b2"},
			{Name: "ball", Shape: "circle", Radius: 20, Left: 380, Top: 280, DX: 3, DY: 2, Fill: "indianred"},
		}
		return c
	},
	"collisions": func() Config {
		c := Default()
		c.Window.Title = "Collisions"
		c.Collision = Collision{Shape: "circle", Ratio: 0.9, Bounce: boolPtr(true)}
		c.Bodies = []Body{
			{Name: "spider", Shape: "image", Image: "spider.png", Width: 40, Height: 40, Fill: "orangered",
				Count: 25, MaxSpeed: 5, Mass: 1, MaxMass: 3},
		}
		return c
	},
	"balls": func() Config {
		c := Default()
		c.Window.Title = "Moving balls"
		c.Window.Background = "forestgreen"
		c.Bodies = []Body{
			{Name: "ball", Shape: "image", Image: "ball.png", Width: 40, Height: 40, Fill: "white",
				Count: 10, MaxSpeed: 10},
		}
		return c
	},
	"rectangles": func() Config {
		c := Default()
		c.Window.Title = "Moving rectangles"
		c.Bodies = []Body{
			{Name: "square", Shape: "rectangle", Width: 20, Height: 20, Left: 100, Top: 100, DX: 6, DY: 4, Fill: "crimson"},
			{Name: "paddle", Shape: "rectangle", Width: 10, Height: 100, Left: 50, Top: 100, DY: 4, Fill: "white"},
			{Name: "paddle", Shape: "rectangle", Width: 10, Height: 100, Left: 750, Top: 100, DY: -3, Fill: "white"},
		}
		return c
	},
	"keyboard": func() Config {
		c := Default()
		c.Window.Title = "Keyboard"
		c.Window.TPS = 60
		c.Bodies = []Body{
			{Name: "ellipse", Shape: "rectangle", Width: 800, Height: 600, Fill: "darkslategray"},
			{Name: "line", Shape: "rectangle", Width: 800, Height: 0, Top: 300, Fill: "slategray"},
			{Name: "pad", Shape: "rectangle", Width: 100, Height: 25, Left: 350, Top: 550, Fill: "tomato"},
		}
		return c
	},
	"cursor": func() Config {
		c := Default()
		c.Window.Title = "Image Cursor"
		c.Window.Background = "lightskyblue"
		c.Bodies = []Body{
			{Name: "cursor", Shape: "image", Image: "sword.png", Width: 25, Height: 25, Fill: "silver"},
		}
		return c
	},
	"text": func() Config {
		c := Default()
		c.Window.Title = "Text"
		c.Window.Background = "darkolivegreen"
		c.Bodies = []Body{
			{Name: "fps", Shape: "text", Text: "The FPS is: 0", Left: 100, Top: 200, Fill: "aliceblue"},
		}
		return c
	},
	"snake": func() Config {
		c := Default()
		c.Window.Title = "Growing snake"
		c.Window.Background = "olive"
		c.Bodies = []Body{
			{Name: "caption", Shape: "text", Text: "The snake is growing!", Font: "Some-Time-Later.ttf",
				Left: 400, Top: 400, DX: -1, Fill: "lightcoral"},
			{Name: "snake", Shape: "image", Image: "snake.png", Width: 10, Height: 10, DX: 1, DY: 1, Fill: "yellowgreen"},
		}
		return c
	},
	"orbit": func() Config {
		c := Default()
		c.Window.Title = "Orbit"
		c.Bodies = []Body{
			{Name: "snake", Shape: "image", Image: "snake.png", Width: 40, Height: 40, Left: 200, Top: 100, Fill: "yellowgreen"},
		}
		return c
	},
}

// Presets returns the names of the built-in scenes in sorted order
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns a fresh copy of the named built-in scene
func Preset(name string) (Config, error) {
	p, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown scene %q", name)
	}
	c := p()
	c.fillDefaults()
	return c, nil
}
