package core

import (
	"context"
	"time"
)

// Pacer spaces simulation steps at a steady ticks-per-second rate. A Pacer
// built with tps <= 0 never waits.
type Pacer struct {
	interval time.Duration
	next     time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	if tps > 0 {
		p.interval = time.Second / time.Duration(tps)
	}
	return p
}

// Interval returns the time between ticks, or zero when unpaced.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Wait blocks until the next tick is due or ctx is done. A tick that arrives
// late does not shorten the following interval; missed ticks are dropped.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.interval <= 0 {
		return nil
	}
	now := time.Now()
	if p.next.IsZero() {
		p.next = now
	}
	if d := p.next.Sub(now); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	p.next = p.next.Add(p.interval)
	if now := time.Now(); p.next.Before(now) {
		p.next = now
	}
	return nil
}
