package life

import (
	"errors"
	"fmt"
	"strings"

	"torus-life/pkg/core"
)

// ErrUnknownPattern is returned when a pattern name cannot be parsed.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Pattern selects the initial cell configuration laid down by Seed.
type Pattern uint8

const (
	// PatternDefault sets cell i alive iff i%2 == 0 or i%7 == 0.
	PatternDefault Pattern = iota
	// PatternRandom sets each cell alive with probability one half.
	PatternRandom
	// PatternGlider places one glider at a random base index.
	PatternGlider
	// PatternMWSS places one middleweight spaceship at a random base index.
	PatternMWSS
	// PatternEmpty leaves every cell dead.
	PatternEmpty
)

var patternNames = [...]string{
	PatternDefault: "default",
	PatternRandom:  "random",
	PatternGlider:  "glider",
	PatternMWSS:    "mwss",
	PatternEmpty:   "empty",
}

var patternAliases = map[string]Pattern{
	"new":                    PatternDefault,
	"middleweight-spaceship": PatternMWSS,
	"middleweight_spaceship": PatternMWSS,
	"blank":                  PatternEmpty,
}

// Patterns lists every pattern in declaration order.
func Patterns() []Pattern {
	return []Pattern{PatternDefault, PatternRandom, PatternGlider, PatternMWSS, PatternEmpty}
}

// ParsePattern resolves a pattern by name. Matching ignores case and
// surrounding whitespace.
func ParsePattern(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for p, n := range patternNames {
		if n == key {
			return Pattern(p), nil
		}
	}
	if p, ok := patternAliases[key]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPattern, name)
}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("pattern(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if int(p) >= len(patternNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// offset is a shape cell relative to the shape's base index.
type offset struct {
	row, col int
}

var gliderShape = []offset{
	{0, 1},
	{1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

var mwssShape = []offset{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 0}, {1, 5},
	{2, 5},
	{3, 0}, {3, 4},
	{4, 2},
}

// apply lays the pattern onto a cleared grid.
func (p Pattern) apply(g *core.BitGrid, rng *core.RNG) {
	switch p {
	case PatternDefault:
		for i := 0; i < g.Len(); i++ {
			g.Set(i, i%2 == 0 || i%7 == 0)
		}
	case PatternRandom:
		core.FillBinary(rng.Source(), g)
	case PatternGlider:
		placeShape(g, rng.IntN(g.Len()), gliderShape)
	case PatternMWSS:
		placeShape(g, rng.IntN(g.Len()), mwssShape)
	}
}

// placeShape sets each shape cell alive at (base + row*W + col) mod size.
// Offsets are linear, so a shape near the right or bottom edge wraps onto the
// next row or the top of the grid rather than staying contiguous.
func placeShape(g *core.BitGrid, base int, shape []offset) {
	size := g.Len()
	for _, o := range shape {
		g.Set((base+o.row*g.W+o.col)%size, true)
	}
}
