package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/asset"
	"github.com/OpticalFlyer/spritekit/demo"
	"github.com/OpticalFlyer/spritekit/scene"
	"github.com/OpticalFlyer/spritekit/world"
)

var (
	demoName  = flag.String("demo", "ball", "demo to run, see -list")
	scenePath = flag.String("scene", "", "YAML scene file replacing the demo's built-in scene")
	assetDir  = flag.String("assets", "", "directory for images, fonts and shapefiles (default: the scene file's directory, or assets)")
	debugMode = flag.Bool("debug", false, "start with the debug overlay (toggle with F1)")
	verbose   = flag.Bool("v", false, "log every collision")
	list      = flag.Bool("list", false, "list the demos and exit")
)

func main() {
	flag.Parse()

	if *list {
		for _, e := range demo.List() {
			fmt.Printf("%-12s %s\n", e.Name, e.Description)
		}
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *verbose {
		world.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadScene(*demoName, *scenePath)
	if err != nil {
		return err
	}

	root := *assetDir
	if root == "" {
		root = "assets"
		if *scenePath != "" {
			root = filepath.Dir(*scenePath)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game, err := demo.New(*demoName, &demo.Env{
		Ctx:    ctx,
		Scene:  cfg,
		Assets: asset.NewLoader(root),
	})
	if err != nil {
		return err
	}
	game.SetDebug(*debugMode)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetVsyncEnabled(true)

	log.Printf("Running %s at %d ticks per second", *demoName, cfg.Window.TPS)
	return ebiten.RunGame(game)
}

// loadScene returns the scene file at path, or the demo's built-in scene
// when path is empty
func loadScene(name, path string) (scene.Config, error) {
	if path == "" {
		return scene.Preset(name)
	}
	return scene.Load(path)
}
