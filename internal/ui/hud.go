//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 15

var hudPanelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// HUD renders a status panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	panel panel
	lines []string
}

// NewHUD constructs a HUD for the provided simulation and panel width. It
// returns nil when width is not positive; a nil HUD draws nothing.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, panel: panel{width: width}}
}

// Width returns the panel width in pixels, or zero while the panel is hidden.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.panel.visibleWidth()
}

// Update toggles the panel on H and refreshes the cached status text.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.panel.toggle()
	}
	h.lines = statusLines(h.sim, paused)
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.panel.hidden {
		return
	}
	height := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(offsetX), 0, float32(h.panel.width), float32(height), hudPanelColor, false)
	y := hudLineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(screen, line, basicfont.Face7x13, offsetX+8, y, color.White)
		y += hudLineHeight
	}
}
