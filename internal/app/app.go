//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	edit    Editable
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. edit may be nil, in
// which case mouse and clear input are ignored.
func New(sim core.Sim, edit Editable, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		edit:     edit,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		onColor:  color.Black,
		offColor: color.White,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.edit != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			if err := g.edit.SetWidth(g.edit.Width()); err != nil {
				log.Printf("clear: %v", err)
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.toggleAt(ebiten.CursorPosition())
		}
	}

	g.overlay.Update()
	g.hud.Update(g.paused)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// toggleAt flips the cell under screen position (x, y). Clicks on the HUD
// panel land outside the grid and are ignored.
func (g *Game) toggleAt(x, y int) {
	err := g.edit.ToggleCell(y/g.scale, x/g.scale)
	if err != nil && !errors.Is(err, life.ErrOutOfRange) {
		log.Printf("toggle: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.sim.Size())
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size, including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
