package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/spritekit/arena"
	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/palette"
	"github.com/OpticalFlyer/spritekit/sprite"
	"github.com/OpticalFlyer/spritekit/world"
)

// obstacleMargin keeps shapefile obstacles away from the window edges
const obstacleMargin = 40

// collisionsPlay runs every scene body through a world: edge bounce,
// obstacles and elastic collisions between bodies
type collisionsPlay struct {
	env     *Env
	sprites sprite.Group
	world   *world.World

	lastPairs int
}

func newCollisions(env *Env) (Play, error) {
	p := &collisionsPlay{env: env}
	return p, p.Reset()
}

func (p *collisionsPlay) Reset() error {
	cfg := p.env.Scene
	width, height := p.env.Size()

	w := world.New(width, height)
	w.Kind = cfg.Kind()
	w.Ratio = cfg.Collision.Ratio
	w.Bounce = cfg.Bounce()

	if cfg.Obstacles != "" {
		rects, err := arena.LoadShapefile(p.env.Assets.Resolve(cfg.Obstacles), width, height, obstacleMargin)
		if err != nil {
			return fmt.Errorf("loading obstacles: %w", err)
		}
		w.AddObstacle(rects...)
	}

	sprites := spawn(p.env)
	w.Add(sprites.Bodies()...)

	p.sprites, p.world = sprites, w
	p.lastPairs = 0
	return nil
}

func (p *collisionsPlay) Update(in Input) error {
	pairs, err := p.world.Step(p.env.Ctx)
	if err != nil {
		return err
	}
	p.lastPairs = len(pairs)
	return nil
}

func (p *collisionsPlay) Draw(screen *ebiten.Image) {
	for _, o := range p.world.Obstacles() {
		sprite.DrawRect(screen, o, palette.SlateGray)
	}
	p.sprites.Draw(screen)
}

func (p *collisionsPlay) Overlay(screen *ebiten.Image) string {
	bodies := p.world.Bodies()
	overlayBodies(screen, bodies)

	var momentum body.Vec
	for _, b := range bodies {
		momentum = momentum.Add(b.Momentum())
	}
	return fmt.Sprintf("Momentum: %.2f, %.2f\nPairs this tick: %d", momentum.X, momentum.Y, p.lastPairs)
}

func (p *collisionsPlay) Status() string {
	s := p.world.Stats()
	return fmt.Sprintf("Bodies: %d\nCollisions: %d\nEdge hits: %d\nEnergy: %.1f",
		len(p.world.Bodies()), s.Collisions, s.EdgeHits, totalEnergy(p.world.Bodies()))
}
