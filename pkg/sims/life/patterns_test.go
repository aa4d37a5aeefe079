package life

import (
	"errors"
	"slices"
	"testing"

	"torus-life/pkg/core"
)

func TestDefaultPattern(t *testing.T) {
	u := Create(PatternDefault, 0)
	if u.Width() != DefaultWidth || u.Height() != DefaultHeight {
		t.Fatalf("size = %dx%d, expected %dx%d", u.Width(), u.Height(), DefaultWidth, DefaultHeight)
	}
	for i := 0; i < DefaultWidth*DefaultHeight; i++ {
		want := i%2 == 0 || i%7 == 0
		if got := u.Alive(i/DefaultWidth, i%DefaultWidth); got != want {
			t.Fatalf("cell %d alive=%v, expected %v", i, got, want)
		}
	}
	if u.Population() != 2341 {
		t.Fatalf("population = %d, expected 2341", u.Population())
	}
}

func TestRandomPatternSeeded(t *testing.T) {
	a := Create(PatternRandom, 21)
	b := Create(PatternRandom, 21)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern should be reproducible for a fixed seed")
	}
	c := Create(PatternRandom, 22)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should give different random grids")
	}
}

func TestShapePatternsPopulation(t *testing.T) {
	cases := []struct {
		pattern Pattern
		want    int
	}{
		{PatternGlider, 5},
		{PatternMWSS, 11},
		{PatternEmpty, 0},
	}
	for _, tc := range cases {
		for seed := int64(0); seed < 20; seed++ {
			u := Create(tc.pattern, seed)
			if got := u.Population(); got != tc.want {
				t.Fatalf("%v seed %d population = %d, expected %d", tc.pattern, seed, got, tc.want)
			}
		}
	}
}

func TestPlaceShapeWrapsLinearly(t *testing.T) {
	g := core.NewBitGrid(8, 8)
	placeShape(g, 63, gliderShape)

	var got []int
	for i := 0; i < g.Len(); i++ {
		if g.Get(i) {
			got = append(got, i)
		}
	}
	want := []int{0, 9, 15, 16, 17}
	if !slices.Equal(got, want) {
		t.Fatalf("wrapped glider cells = %v, expected %v", got, want)
	}
}

func TestMWSSTravels(t *testing.T) {
	u := mustNew(t, 16, 16)
	placeShape(u.cur, 5*16+5, mwssShape)

	var start []Coord
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			if u.Alive(row, col) {
				start = append(start, Coord{row, col})
			}
		}
	}
	if len(start) != 11 {
		t.Fatalf("placed %d cells, expected 11", len(start))
	}

	for i := 0; i < 4; i++ {
		u.Step()
	}
	expectAlive(t, u, "mwss generation 4", shift(start, 0, 2, 16, 16)...)
}

func TestParsePattern(t *testing.T) {
	cases := map[string]Pattern{
		"default":                PatternDefault,
		"new":                    PatternDefault,
		" Random ":               PatternRandom,
		"GLIDER":                 PatternGlider,
		"mwss":                   PatternMWSS,
		"middleweight-spaceship": PatternMWSS,
		"empty":                  PatternEmpty,
	}
	for in, want := range cases {
		got, err := ParsePattern(in)
		if err != nil {
			t.Fatalf("ParsePattern(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePattern(%q) = %v, expected %v", in, got, want)
		}
	}

	if _, err := ParsePattern("gosper"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("ParsePattern(gosper) err = %v, expected ErrUnknownPattern", err)
	}
}

func TestPatternText(t *testing.T) {
	for _, p := range Patterns() {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var back Pattern
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != p {
			t.Fatalf("text %q decoded to %v, expected %v", text, back, p)
		}
	}
	if _, err := Pattern(200).MarshalText(); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("MarshalText(200) err = %v, expected ErrUnknownPattern", err)
	}
}
