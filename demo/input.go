package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/spritekit/body"
	"github.com/OpticalFlyer/spritekit/control"
)

// readInput polls the devices. Clicks over the HUD are not passed on.
func readInput(overUI bool, touches *control.Touches) Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		CursorX: float64(x),
		CursorY: float64(y),
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Clicked: !overUI && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	// Use AppendTouchIDs instead of TouchIDs
	ids := make([]ebiten.TouchID, 0, 8)
	ids = ebiten.AppendTouchIDs(ids)

	points := make(map[int]body.Vec, len(ids))
	for _, id := range ids {
		tx, ty := ebiten.TouchPosition(id)
		points[int(id)] = body.Vec{X: float64(tx), Y: float64(ty)}
	}
	in.Touch = touches.Update(points)
	return in
}
