package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Controller manages all UI elements
type Controller struct {
	panels []*Panel
	Hidden bool
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		panels: make([]*Panel, 0),
	}
}

// AddPanel adds a new panel to the UI
func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// Update updates all UI elements
func (c *Controller) Update() error {
	if c.Hidden {
		return nil
	}
	for _, panel := range c.panels {
		if err := panel.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.Hidden {
		return
	}
	for _, panel := range c.panels {
		panel.Draw(screen)
	}
}

// UpdateWindowSize updates the window size for all panels
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image, extra string) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", fps, tps, extra))
}

// IsInteractingWithUI returns true if a panel is being dragged or the
// cursor is over one, so clicks there do not reach the game
func (c *Controller) IsInteractingWithUI() bool {
	if c.Hidden {
		return false
	}
	for _, panel := range c.panels {
		if panel.isDragging || panel.isHovered {
			return true
		}
	}
	return false
}
