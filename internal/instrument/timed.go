// Package instrument wraps simulations with step timing and tracing.
package instrument

import (
	"context"
	"log"
	"time"

	"torus-life/pkg/core"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "torus-life/instrument"

// Timed decorates a Sim so that every Step runs inside a span and reports its
// wall-clock duration. All other Sim methods pass straight through.
type Timed struct {
	core.Sim

	ctx      context.Context
	tracer   trace.Tracer
	logger   *log.Logger
	logEvery int

	steps int
	last  time.Duration
	total time.Duration
}

// NewTimed wraps sim using the global tracer provider. A nil logger disables
// step logging.
func NewTimed(ctx context.Context, sim core.Sim, logger *log.Logger) *Timed {
	return &Timed{
		Sim:      sim,
		ctx:      ctx,
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
		logEvery: 1,
	}
}

// WithTracer replaces the tracer used for step spans.
func (t *Timed) WithTracer(tracer trace.Tracer) *Timed {
	t.tracer = tracer
	return t
}

// LogEvery limits logging to every nth step. n <= 0 disables logging.
func (t *Timed) LogEvery(n int) *Timed {
	t.logEvery = n
	return t
}

// Step advances the wrapped sim. The span is ended and the timing recorded
// even if the wrapped Step panics.
func (t *Timed) Step() {
	start := time.Now()
	_, span := t.tracer.Start(t.ctx, t.Sim.Name()+".step")
	defer func() {
		elapsed := time.Since(start)
		t.steps++
		t.last = elapsed
		t.total += elapsed
		span.SetAttributes(
			attribute.Int("life.step", t.steps),
			attribute.Int64("life.step_ns", elapsed.Nanoseconds()),
		)
		span.End()
		if t.logger != nil && t.logEvery > 0 && t.steps%t.logEvery == 0 {
			t.logger.Printf("%s step %d: %v", t.Sim.Name(), t.steps, elapsed)
		}
	}()
	t.Sim.Step()
}

// Steps returns the number of instrumented steps.
func (t *Timed) Steps() int { return t.steps }

// Last returns the duration of the most recent step.
func (t *Timed) Last() time.Duration { return t.last }

// Mean returns the average step duration.
func (t *Timed) Mean() time.Duration {
	if t.steps == 0 {
		return 0
	}
	return t.total / time.Duration(t.steps)
}

// Unwrap returns the decorated sim.
func (t *Timed) Unwrap() core.Sim { return t.Sim }
