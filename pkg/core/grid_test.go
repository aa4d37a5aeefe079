package core

import "testing"

func TestBitGridLayout(t *testing.T) {
	g := NewBitGrid(8, 8)
	if got := len(g.Words()); got != 2 {
		t.Fatalf("64 cells should pack into 2 words, got %d", got)
	}

	g.Set(g.Index(0, 1), true)
	g.Set(g.Index(4, 1), true)
	if g.Words()[0] != 1<<1 {
		t.Fatalf("word 0 = %#x, expected %#x", g.Words()[0], uint32(1<<1))
	}
	if g.Words()[1] != 1<<1 {
		t.Fatalf("word 1 = %#x, expected %#x", g.Words()[1], uint32(1<<1))
	}
	if g.Count() != 2 {
		t.Fatalf("count = %d, expected 2", g.Count())
	}
}

func TestBitGridPartialWord(t *testing.T) {
	g := NewBitGrid(5, 7)
	if got := len(g.Words()); got != 2 {
		t.Fatalf("35 cells should pack into 2 words, got %d", got)
	}
	last := g.Len() - 1
	g.Set(last, true)
	if !g.Get(last) {
		t.Fatal("last cell should be set")
	}
	g.Flip(last)
	if g.Get(last) {
		t.Fatal("flip should clear the last cell")
	}
	if g.Count() != 0 {
		t.Fatalf("count = %d, expected 0", g.Count())
	}
}

func TestBitGridSetClear(t *testing.T) {
	g := NewBitGrid(4, 4)
	for i := 0; i < g.Len(); i += 3 {
		g.Set(i, true)
	}
	g.Set(3, false)
	if g.Get(3) {
		t.Fatal("Set(false) should clear the bit")
	}
	g.Clear()
	for i := 0; i < g.Len(); i++ {
		if g.Get(i) {
			t.Fatalf("cell %d still set after Clear", i)
		}
	}
}

func TestBitGridContains(t *testing.T) {
	g := NewBitGrid(5, 3)
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 5, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.row, tc.col); got != tc.want {
			t.Fatalf("Contains(%d,%d) = %v, expected %v", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNewBitGridClampsDimensions(t *testing.T) {
	g := NewBitGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dimensions = %dx%d, expected 1x1", g.W, g.H)
	}
}
