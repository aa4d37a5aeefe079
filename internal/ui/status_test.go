package ui

import (
	"context"
	"slices"
	"testing"

	"torus-life/internal/instrument"
	"torus-life/pkg/sims/life"
)

func TestStatusLinesPlainSim(t *testing.T) {
	u := life.Create(life.PatternGlider, 2)
	lines := statusLines(u, true)

	if lines[0] != "life" {
		t.Fatalf("title = %q, expected life", lines[0])
	}
	for _, want := range []string{" Pattern: glider", " Population: 5", " Generation: 0", "paused"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("status lines missing %q: %q", want, lines)
		}
	}
	if slices.Contains(lines, "Timing") {
		t.Fatal("undecorated sim should not report timing")
	}
}

func TestStatusLinesThroughTimedDecorator(t *testing.T) {
	u := life.Create(life.PatternEmpty, 0)
	timed := instrument.NewTimed(context.Background(), u, nil)
	timed.Step()

	lines := statusLines(timed, false)
	for _, want := range []string{" Generation: 1", "Timing", "running"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("status lines missing %q: %q", want, lines)
		}
	}
}

func TestPanelHiddenClaimsNoWidth(t *testing.T) {
	p := panel{width: 160}
	if got := p.visibleWidth(); got != 160 {
		t.Fatalf("visible width = %d, expected 160", got)
	}
	p.toggle()
	if got := p.visibleWidth(); got != 0 {
		t.Fatalf("hidden width = %d, expected 0", got)
	}
	p.toggle()
	if got := p.visibleWidth(); got != 160 {
		t.Fatalf("restored width = %d, expected 160", got)
	}
}

func TestStatusLinesListHUDKey(t *testing.T) {
	lines := statusLines(life.Create(life.PatternEmpty, 0), false)
	if !slices.Contains(lines, "h      hud") {
		t.Fatalf("status lines missing hud key: %q", lines)
	}
}
