package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ Component = (*Label)(nil)

const lineHeight = 16.0

// Label shows text that is recomputed every tick
type Label struct {
	x, y   float64
	source func() string
	text   string
	parent Container
}

// NewLabel creates a label. source is called once per Update.
func NewLabel(source func() string) *Label {
	l := &Label{source: source}
	l.text = source()
	return l
}

func (l *Label) SetParent(parent Container) { l.parent = parent }
func (l *Label) GetParent() Container      { return l.parent }
func (l *Label) SetPosition(x, y float64)  { l.x, l.y = x, y }

func (l *Label) Update() error {
	l.text = l.source()
	return nil
}

func (l *Label) Draw(screen *ebiten.Image) {
	x, y := l.x, l.y
	if l.parent != nil {
		pb := l.parent.Bounds()
		x += pb.X
		y += pb.Y
	}
	ebitenutil.DebugPrintAt(screen, l.text, int(x), int(y))
}

func (l *Label) HandleInput(x, y float64, pressed bool) bool {
	return false
}

func (l *Label) Bounds() Rectangle {
	lines := strings.Split(l.text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	return Rectangle{
		X:      l.x,
		Y:      l.y,
		Width:  float64(6 * width),
		Height: lineHeight * float64(len(lines)),
	}
}
