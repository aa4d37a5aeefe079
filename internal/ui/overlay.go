//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gridLineColor matches the light grey cell borders of the web host.
var gridLineColor = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}

// Overlay draws cell borders on top of the simulation view.
type Overlay struct {
	scale int
	show  bool
}

// NewOverlay constructs an overlay for the given pixel scale. Grid lines start
// visible only when cells are large enough to keep a visible interior.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale, show: scale >= 4}
}

// Update toggles the grid lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw strokes one line per cell boundary.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size) {
	if o == nil || !o.show || o.scale <= 1 {
		return
	}
	w := float32(size.W * o.scale)
	h := float32(size.H * o.scale)
	for x := 0; x <= size.W; x++ {
		fx := float32(x * o.scale)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, gridLineColor, false)
	}
	for y := 0; y <= size.H; y++ {
		fy := float32(y * o.scale)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, gridLineColor, false)
	}
}
