package ui

import (
	"fmt"
	"time"

	"torus-life/pkg/core"
)

type stepTimer interface {
	Last() time.Duration
	Mean() time.Duration
}

type unwrapper interface {
	Unwrap() core.Sim
}

var keyHelp = []string{
	"space  pause",
	"n      step",
	"r/s    reseed",
	"c      clear",
	"g      grid",
	"h      hud",
	"click  toggle",
}

// panel tracks the width a side panel claims from the window. A hidden panel
// claims none.
type panel struct {
	width  int
	hidden bool
}

func (p *panel) visibleWidth() int {
	if p.hidden {
		return 0
	}
	return p.width
}

func (p *panel) toggle() { p.hidden = !p.hidden }

// parameterSource finds the first sim in a decorator chain that can describe
// its parameters.
func parameterSource(sim core.Sim) (core.ParameterProvider, bool) {
	for sim != nil {
		if p, ok := sim.(core.ParameterProvider); ok {
			return p, true
		}
		u, ok := sim.(unwrapper)
		if !ok {
			return nil, false
		}
		sim = u.Unwrap()
	}
	return nil, false
}

// statusLines builds the HUD text for sim.
func statusLines(sim core.Sim, paused bool) []string {
	lines := []string{sim.Name()}
	if p, ok := parameterSource(sim); ok {
		for _, group := range p.Parameters().Groups {
			lines = append(lines, "", group.Name)
			for _, param := range group.Params {
				lines = append(lines, fmt.Sprintf(" %s: %s", param.Label, param.Value))
			}
		}
	}
	if t, ok := sim.(stepTimer); ok {
		lines = append(lines, "", "Timing",
			fmt.Sprintf(" last: %s", formatDuration(t.Last())),
			fmt.Sprintf(" mean: %s", formatDuration(t.Mean())))
	}
	state := "running"
	if paused {
		state = "paused"
	}
	lines = append(lines, "", state, "")
	return append(lines, keyHelp...)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
