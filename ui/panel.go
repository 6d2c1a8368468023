package ui

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Container = (*Panel)(nil)

const (
	titleBarHeight = 20.0
	minPanelWidth  = 100.0
	panelPadding   = 8.0
	panelAlpha     = 200
)

// Panel is a window with a title bar that can be dragged around. Children
// are arranged by its layout and sized to fit.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	children []Component
	layout   Layout
	parent   Container

	// Interaction state
	isDragging                bool
	isHovered                 bool
	dragStartX                float64
	dragStartY                float64
	mouseButtonPreviouslyDown bool

	// Window dimensions
	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width float64, title string) *Panel {
	p := &Panel{
		X:            x,
		Y:            y,
		Width:        max(minPanelWidth, width),
		Title:        title,
		layout:       VerticalLayout{Padding: panelPadding, Spacing: 4},
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
	p.arrange()
	return p
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.arrange()
}

func (p *Panel) RemoveChild(child Component) {
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
		child.SetParent(nil)
		p.arrange()
	}
}

func (p *Panel) Children() []Component { return p.children }
func (p *Panel) Layout() Layout        { return p.layout }

func (p *Panel) SetParent(parent Container) { p.parent = parent }
func (p *Panel) GetParent() Container      { return p.parent }

func (p *Panel) SetPosition(x, y float64) {
	p.X, p.Y = x, y
	p.clamp()
}

func (p *Panel) Bounds() Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// arrange lays out the children and fits the panel around them
func (p *Panel) arrange() {
	p.layout.ArrangeChildren(p)
	height := titleBarHeight + panelPadding
	for _, child := range p.children {
		b := child.Bounds()
		height = max(height, b.Y+b.Height+panelPadding)
		p.Width = max(p.Width, b.X+b.Width+panelPadding)
	}
	p.Height = height
}

// clamp keeps the title bar inside the window
func (p *Panel) clamp() {
	p.X = min(max(p.X, 0), float64(p.windowWidth)-p.Width)
	p.Y = min(max(p.Y, 0), float64(p.windowHeight)-titleBarHeight)
}

func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	p.clamp()
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	p.isHovered = p.Bounds().Contains(fx, fy)
	p.HandleInput(fx, fy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	for _, child := range p.children {
		if err := child.Update(); err != nil {
			return err
		}
	}
	p.arrange()
	return nil
}

// HandleInput drags the panel by its title bar and forwards everything else
// to the children
func (p *Panel) HandleInput(fx, fy float64, isMousePressed bool) bool {
	if isMousePressed {
		if !p.mouseButtonPreviouslyDown {
			p.mouseButtonPreviouslyDown = true
			if p.isInTitleBar(fx, fy) {
				p.isDragging = true
				p.dragStartX = fx - p.X
				p.dragStartY = fy - p.Y
			}
		}

		if p.isDragging {
			p.X = fx - p.dragStartX
			p.Y = fy - p.dragStartY
			p.clamp()
		}
	} else {
		p.isDragging = false
		p.mouseButtonPreviouslyDown = false
	}

	if p.isDragging {
		return true
	}
	for _, child := range p.children {
		child.HandleInput(fx-p.X, fy-p.Y, isMousePressed)
	}
	return p.Bounds().Contains(fx, fy)
}

func (p *Panel) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{100, 100, 100, panelAlpha}
	titleColor := color.RGBA{60, 60, 60, panelAlpha}

	// Draw panel background
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bgColor, true)

	// Draw title bar
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), titleColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X)+4, int(p.Y)+2)

	for _, child := range p.children {
		child.Draw(screen)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}
