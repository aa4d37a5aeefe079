package life

import (
	"errors"
	"fmt"

	"torus-life/pkg/core"
)

// Default grid dimensions used by Create.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

var (
	// ErrInvalidDimensions is returned when a width or height is below one.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrOutOfRange is returned when a cell coordinate lies outside the grid.
	ErrOutOfRange = errors.New("life: cell out of range")
)

// Coord addresses a single cell.
type Coord struct {
	Row, Col int
}

// Universe implements Conway's Game of Life (B3/S23) on a toroidal grid with
// bit-packed cell storage.
type Universe struct {
	cur *core.BitGrid
	nxt *core.BitGrid

	pattern    Pattern
	seed       int64
	generation int
}

// New returns an all-dead Universe with the provided dimensions.
func New(w, h int) (*Universe, error) {
	if err := validateSize(w, h); err != nil {
		return nil, err
	}
	return newUniverse(w, h), nil
}

// NewWithConfig builds a Universe of the configured size and seeds it with the
// configured pattern.
func NewWithConfig(cfg Config) (*Universe, error) {
	u, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	u.Seed(cfg.Pattern, cfg.Seed)
	return u, nil
}

// Create returns a DefaultWidth x DefaultHeight Universe seeded with p. The
// seed only matters for patterns that draw from the RNG.
func Create(p Pattern, seed int64) *Universe {
	u := newUniverse(DefaultWidth, DefaultHeight)
	u.Seed(p, seed)
	return u
}

func newUniverse(w, h int) *Universe {
	return &Universe{cur: core.NewBitGrid(w, h), nxt: core.NewBitGrid(w, h), pattern: PatternEmpty}
}

func validateSize(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.cur.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.cur.H }

// Pattern returns the pattern used by the most recent Seed.
func (u *Universe) Pattern() Pattern { return u.pattern }

// Generation returns the number of steps since the last seed or resize.
func (u *Universe) Generation() int { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int { return u.cur.Count() }

// Cells exposes the packed row-major cell words. The slice is borrowed and
// only valid until the next Step, Seed, Reset, SetCells, ToggleCell or resize.
func (u *Universe) Cells() []uint32 { return u.cur.Words() }

// Seed clears the grid and lays down pattern p at the current size.
func (u *Universe) Seed(p Pattern, seed int64) {
	u.pattern = p
	u.seed = seed
	u.generation = 0
	u.cur.Clear()
	p.apply(u.cur, core.NewRNG(seed))
}

// Reset re-seeds the grid with the current pattern.
func (u *Universe) Reset(seed int64) {
	u.Seed(u.pattern, seed)
}

// SetWidth changes the number of columns. The grid is reallocated and every
// cell is cleared, even when w equals the current width.
func (u *Universe) SetWidth(w int) error {
	return u.resize(w, u.cur.H)
}

// SetHeight changes the number of rows. The grid is reallocated and every
// cell is cleared, even when h equals the current height.
func (u *Universe) SetHeight(h int) error {
	return u.resize(u.cur.W, h)
}

func (u *Universe) resize(w, h int) error {
	if err := validateSize(w, h); err != nil {
		return err
	}
	u.cur = core.NewBitGrid(w, h)
	u.nxt = core.NewBitGrid(w, h)
	u.generation = 0
	return nil
}

// Alive reports whether the cell at (row, col) is alive. Coordinates outside
// the grid report false.
func (u *Universe) Alive(row, col int) bool {
	if !u.cur.Contains(row, col) {
		return false
	}
	return u.cur.Get(u.cur.Index(row, col))
}

// SetCells marks every listed cell alive without clearing the grid first.
// Either all coordinates are applied or, if any is out of range, none are.
func (u *Universe) SetCells(coords ...Coord) error {
	for _, c := range coords {
		if !u.cur.Contains(c.Row, c.Col) {
			return u.outOfRange(c.Row, c.Col)
		}
	}
	for _, c := range coords {
		u.cur.Set(u.cur.Index(c.Row, c.Col), true)
	}
	return nil
}

// ToggleCell flips the cell at (row, col).
func (u *Universe) ToggleCell(row, col int) error {
	if !u.cur.Contains(row, col) {
		return u.outOfRange(row, col)
	}
	u.cur.Flip(u.cur.Index(row, col))
	return nil
}

func (u *Universe) outOfRange(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, u.cur.W, u.cur.H)
}

// liveNeighborCount returns how many of the eight toroidal neighbours of
// (row, col) are alive.
func (u *Universe) liveNeighborCount(row, col int) int {
	g := u.cur

	north := row - 1
	if row == 0 {
		north = g.H - 1
	}
	south := row + 1
	if row == g.H-1 {
		south = 0
	}
	west := col - 1
	if col == 0 {
		west = g.W - 1
	}
	east := col + 1
	if col == g.W-1 {
		east = 0
	}

	neighbors := [8]Coord{
		{north, west}, {north, col}, {north, east},
		{row, west}, {row, east},
		{south, west}, {south, col}, {south, east},
	}
	count := 0
	for _, n := range neighbors {
		if g.Get(g.Index(n.Row, n.Col)) {
			count++
		}
	}
	return count
}

// Step advances the simulation by one generation. The next state is built in
// the scratch grid from the untouched current state, then the two are swapped.
func (u *Universe) Step() {
	cur, nxt := u.cur, u.nxt
	for row := 0; row < cur.H; row++ {
		for col := 0; col < cur.W; col++ {
			idx := cur.Index(row, col)
			nxt.Set(idx, nextState(cur.Get(idx), u.liveNeighborCount(row, col)))
		}
	}
	u.cur, u.nxt = nxt, cur
	u.generation++
}

func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		u, err := NewWithConfig(c)
		if err != nil {
			return Create(c.Pattern, c.Seed)
		}
		return u
	})
}
