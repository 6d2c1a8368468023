package demo

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/spritekit/control"
	"github.com/OpticalFlyer/spritekit/ui"
)

// Game implements ebiten.Game interface.
type Game struct {
	name   string
	env    *Env
	play   Play
	bg     color.RGBA
	width  int
	height int

	ui          *ui.Controller
	pauseButton *ui.Button

	debugMode bool
	paused    bool
	ticks     int

	// Touch state for multi-touch interactions
	touches control.Touches
}

// New builds the named demo
func New(name string, env *Env) (*Game, error) {
	entry, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if env.Ctx == nil {
		env.Ctx = context.Background()
	}
	play, err := entry.New(env)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}

	g := &Game{
		name:   name,
		env:    env,
		play:   play,
		bg:     env.Scene.Background(),
		width:  env.Scene.Window.Width,
		height: env.Scene.Window.Height,
	}
	g.buildHUD()
	return g, nil
}

func (g *Game) buildHUD() {
	g.ui = ui.NewController()

	panel := ui.NewPanel(float64(g.width)-170, 10, 160, g.name)
	g.pauseButton = ui.NewButton("Pause", g.TogglePause)
	panel.AddChild(g.pauseButton)
	panel.AddChild(ui.NewButton("Reset", g.Reset))
	panel.AddChild(ui.NewLabel(g.play.Status))

	g.ui.AddPanel(panel)
	g.ui.UpdateWindowSize(g.width, g.height)
}

// SetDebug turns the debug overlay on or off
func (g *Game) SetDebug(on bool) {
	g.debugMode = on
}

// TogglePause stops or resumes the simulation
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if g.paused {
		g.pauseButton.SetText("Resume")
	} else {
		g.pauseButton.SetText("Pause")
	}
}

// Reset starts the demo over
func (g *Game) Reset() {
	if err := g.play.Reset(); err != nil {
		log.Printf("Error resetting %s: %v", g.name, err)
		return
	}
	g.ticks = 0
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.env.Ctx.Err(); err != nil {
		log.Printf("Stopping %s: %v", g.name, err)
		return ebiten.Termination
	}

	// Update UI first to handle any panel interactions
	if err := g.ui.Update(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ui.Hidden = !g.ui.Hidden
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	in := readInput(g.ui.IsInteractingWithUI(), &g.touches)
	if g.paused {
		return nil
	}

	g.ticks++
	err := g.play.Update(in)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.play.Draw(screen)

	// Draw debug overlay if enabled
	if g.debugMode {
		info := g.play.Overlay(screen)
		g.ui.ShowDebugInfo(screen, fmt.Sprintf("Demo: %s Tick: %d\n%s", g.name, g.ticks, info))
	}

	// Draw UI
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
