package game

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/glyph-particles/internal/config"
	"github.com/iburimskiy/glyph-particles/internal/tween"
)

const menuSlide = 200 * time.Millisecond

var (
	labelFace  = text.NewGoXFace(basicfont.Face7x13)
	labelColor = color.NRGBA{R: 220, G: 210, B: 255, A: 255}
)

// menu is the collapsible navigation panel in the header's top-right corner.
type menu struct {
	items []string

	hidden    bool
	toggledAt time.Time

	// button state
	buttonHovered bool
	buttonPressed bool
}

func newMenu(items []string) *menu {
	return &menu{items: items, hidden: true}
}

// toggle flips the panel between hidden and shown.
func (m *menu) toggle(now time.Time) {
	m.hidden = !m.hidden
	m.toggledAt = now
}

func (m *menu) buttonRect(screenW int) image.Rectangle {
	x := screenW - config.MenuButtonMargin - config.MenuButtonSize
	y := config.MenuButtonMargin
	return image.Rect(x, y, x+config.MenuButtonSize, y+config.MenuButtonSize)
}

func (m *menu) panelRect(screenW, screenH int) image.Rectangle {
	return image.Rect(screenW-config.MenuPanelWidth, 0, screenW, screenH)
}

// update handles the hamburger button and reports whether the pointer
// interaction belonged to the menu.
func (m *menu) update(mx, my, screenW, screenH int, now time.Time) bool {
	m.buttonHovered = inRect(mx, my, m.buttonRect(screenW))

	if m.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if m.buttonPressed && m.buttonHovered {
			m.toggle(now)
		}
		m.buttonPressed = false
	}

	if m.buttonHovered || m.buttonPressed {
		return true
	}
	return !m.hidden && inRect(mx, my, m.panelRect(screenW, screenH))
}

// openness is 0 when fully hidden and 1 when fully shown.
func (m *menu) openness(now time.Time) float64 {
	p := tween.EaseOutCubic(tween.Fraction(m.toggledAt, now, menuSlide))
	if m.hidden {
		return 1 - p
	}
	return p
}

func (m *menu) draw(screen *ebiten.Image, now time.Time) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if open := m.openness(now); open > 0 {
		panel := m.panelRect(w, h)
		offset := float32(float64(panel.Dx()) * (1 - open))
		px := float32(panel.Min.X) + offset

		vector.DrawFilledRect(screen, px, 0, float32(panel.Dx()), float32(h), color.RGBA{R: 10, G: 8, B: 24, A: 220}, false)
		vector.StrokeLine(screen, px, 0, px, float32(h), 1, color.RGBA{R: 120, G: 60, B: 200, A: 255}, false)

		y := float64(config.MenuButtonMargin*2 + config.MenuButtonSize + 4)
		for _, item := range m.items {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(px)+24, y)
			op.ColorScale.ScaleWithColor(tween.Fade(labelColor, open))
			text.Draw(screen, item, labelFace, op)
			y += 28
		}
	}

	m.drawButton(screen, w)
}

func (m *menu) drawButton(screen *ebiten.Image, screenW int) {
	r := m.buttonRect(screenW)

	var bgColor color.Color
	if m.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 30, B: 110, A: 255} // Pressed
	} else if m.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 40, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 40, G: 20, B: 80, A: 200} // Normal
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	size := float32(r.Dx())
	vector.DrawFilledRect(screen, x, y, size, size, bgColor, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.RGBA{R: 150, G: 110, B: 220, A: 255}, false)

	// Three bars
	barColor := color.RGBA{R: 230, G: 220, B: 255, A: 255}
	for i := 1; i <= 3; i++ {
		by := y + size*float32(i)/4
		vector.StrokeLine(screen, x+7, by, x+size-7, by, 2, barColor, true)
	}
}
