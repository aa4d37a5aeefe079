package core

import "math/bits"

// WordBits is the number of cells packed into each storage word.
const WordBits = 32

// BitGrid stores a 2D grid of boolean cells in row-major order, packed into
// 32-bit words. Cell i lives in word i/32 at bit position i%32 (LSB first).
type BitGrid struct {
	W, H  int
	words []uint32
}

// NewBitGrid allocates a cleared grid with the given dimensions.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BitGrid{W: w, H: h, words: make([]uint32, WordsFor(w*h))}
}

// WordsFor returns the number of words needed to hold n cells.
func WordsFor(n int) int { return (n + WordBits - 1) / WordBits }

// Len returns the number of cells in the grid.
func (g *BitGrid) Len() int { return g.W * g.H }

// Words exposes the packed backing slice. Bits past Len are always zero.
func (g *BitGrid) Words() []uint32 { return g.words }

// Index returns the linear cell index for (row, col).
func (g *BitGrid) Index(row, col int) int { return row*g.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *BitGrid) Contains(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get reports whether cell i is set.
func (g *BitGrid) Get(i int) bool {
	return g.words[i/WordBits]&(1<<uint(i%WordBits)) != 0
}

// Set stores v at cell i.
func (g *BitGrid) Set(i int, v bool) {
	mask := uint32(1) << uint(i%WordBits)
	if v {
		g.words[i/WordBits] |= mask
		return
	}
	g.words[i/WordBits] &^= mask
}

// Flip inverts cell i.
func (g *BitGrid) Flip(i int) {
	g.words[i/WordBits] ^= 1 << uint(i%WordBits)
}

// Clear zeroes every cell.
func (g *BitGrid) Clear() {
	clear(g.words)
}

// Count returns the number of set cells.
func (g *BitGrid) Count() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount32(w)
	}
	return n
}
