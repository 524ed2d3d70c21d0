// internal/loop/loop.go
package loop

import (
	"context"
	"time"
)

// FixedStep — аккумулятор фиксированного шага. Реальное время копится,
// Advance отдаёт, сколько целых тиков набежало с прошлого вызова.
type FixedStep struct {
	Step  time.Duration
	Clock func() time.Time

	last    time.Time
	pending time.Duration
	started bool
}

func NewFixedStep(tps int) *FixedStep {
	return &FixedStep{Step: time.Second / time.Duration(tps), Clock: time.Now}
}

// Advance returns how many ticks are due since the previous call. The first
// call only anchors the clock and returns 0. Lag is never dropped: a long
// stall yields a burst of ticks on the next call.
func (f *FixedStep) Advance() int {
	now := f.Clock()
	if !f.started {
		f.last = now
		f.started = true
		return 0
	}
	if elapsed := now.Sub(f.last); elapsed > 0 {
		f.pending += elapsed
	}
	f.last = now

	n := int(f.pending / f.Step)
	f.pending -= time.Duration(n) * f.Step
	return n
}

// Run calls tick once per due step until ctx is cancelled or tick returns false.
func (f *FixedStep) Run(ctx context.Context, tick func() bool) error {
	ticker := time.NewTicker(f.Step)
	defer ticker.Stop()

	f.Advance()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for n := f.Advance(); n > 0; n-- {
				if !tick() {
					return nil
				}
			}
		}
	}
}
