// Package ui is a small immediate HUD for the demos: draggable panels that
// hold buttons and labels, drawn on top of the game.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	SetPosition(x, y float64)

	// HandleInput gets the cursor in coordinates relative to the parent
	// and reports whether the component took it
	HandleInput(x, y float64, pressed bool) bool
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	Layout() Layout
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) is inside r, edges included
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	ArrangeChildren(container Container)
}

// VerticalLayout stacks children top to bottom below the title bar
type VerticalLayout struct {
	Padding float64
	Spacing float64
}

func (l VerticalLayout) ArrangeChildren(container Container) {
	y := titleBarHeight + l.Padding
	for _, child := range container.Children() {
		child.SetPosition(l.Padding, y)
		y += child.Bounds().Height + l.Spacing
	}
}
