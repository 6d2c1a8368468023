// Package demo holds the demo games. Each demo is a Play driven by Game,
// which adds what every demo shares: pausing, resetting, a HUD panel and a
// debug overlay.
package demo

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/asset"
	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/control"
	"github.com/OpticalFlyer/spritekit/palette"
	"github.com/OpticalFlyer/spritekit/scene"
	"github.com/OpticalFlyer/spritekit/sprite"
)

// Env is what a play is built from
type Env struct {
	Ctx    context.Context
	Scene  scene.Config
	Assets *asset.Loader
}

// Size returns the window size in pixels
func (e *Env) Size() (width, height float64) {
	return float64(e.Scene.Window.Width), float64(e.Scene.Window.Height)
}

// Input is the input state for one tick
type Input struct {
	CursorX, CursorY float64

	// Clicked is set when the left button was released outside the HUD
	Clicked bool

	Left, Right bool
	Touch       control.Gesture
}

// Play is the game logic of one demo
type Play interface {
	// Reset rebuilds the demo from its scene
	Reset() error
	Update(in Input) error
	Draw(screen *ebiten.Image)

	// Overlay draws debug information and returns extra debug text
	Overlay(screen *ebiten.Image) string

	// Status is shown in the HUD
	Status() string
}

// Entry describes a registered demo
type Entry struct {
	Name        string
	Description string
	New         func(env *Env) (Play, error)
}

var entries = []Entry{
	{"ball", "a ball bouncing off the window edges", newBall},
	{"collisions", "bodies colliding elastically, with optional shapefile obstacles", newCollisions},
	{"balls", "a group of balls colliding", newCollisions},
	{"rectangles", "a square bouncing between two moving paddles", newRectangles},
	{"keyboard", "a paddle steered with the arrow keys", newKeyboard},
	{"cursor", "an image cursor, clicks drop black holes", newCursor},
	{"text", "the frame rate as text", newText},
	{"snake", "a growing snake and scrolling text", newSnake},
	{"orbit", "an image moving along a circle", newOrbit},
}

// List returns the registered demos
func List() []Entry {
	return entries
}

// Lookup returns the demo with the given name
func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown demo %q", name)
}

// spawn builds the scene's sprites
func spawn(env *Env) sprite.Group {
	return sprite.FromScene(env.Scene.Spawn(), env.Assets)
}

// require returns the first sprite named name, or an error if the scene
// has none
func require(g sprite.Group, name string) (*sprite.Sprite, error) {
	s := g.Find(name)
	if s == nil {
		return nil, fmt.Errorf("scene has no body named %q", name)
	}
	return s, nil
}

// totalEnergy sums the kinetic energy of bodies
func totalEnergy(bodies []*body.Body) float64 {
	var e float64
	for _, b := range bodies {
		e += b.KineticEnergy()
	}
	return e
}

// fillOf returns the color a scene sprite was built with, white if it has
// none
func fillOf(s *sprite.Sprite) color.Color {
	switch look := s.Look.(type) {
	case *sprite.Fill:
		return look.Color
	case *sprite.Disc:
		return look.Color
	case *sprite.Text:
		return look.Color
	}
	return palette.White
}
