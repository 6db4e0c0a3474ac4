package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/aphilas/game-of-life/internal/core"
	"github.com/aphilas/game-of-life/internal/life"
)

// RenderFunc consumes a finished generation. Implementations must treat the
// grid as read-only and not retain it past the call.
type RenderFunc func(generation int, g *core.Grid)

// Scheduler drives the step-render loop. It holds the only mutable
// reference to the current generation and replaces it wholesale each tick;
// the previous grid is left untouched for anyone still reading it.
type Scheduler struct {
	cur        *core.Grid
	generation int
	period     time.Duration
	render     RenderFunc
	maxGen     int
	paused     bool
	cmds       chan func()
}

// New builds a scheduler around an initial generation.
func New(initial *core.Grid, period time.Duration, render RenderFunc) (*Scheduler, error) {
	if initial == nil {
		return nil, errors.New("[sim.New] nil initial grid")
	}
	if period <= 0 {
		return nil, errors.Errorf("[sim.New] non-positive tick period %v", period)
	}
	return &Scheduler{
		cur:    initial,
		period: period,
		render: render,
		cmds:   make(chan func(), 4),
	}, nil
}

// SetMaxGenerations bounds Run. Zero means run until canceled.
func (s *Scheduler) SetMaxGenerations(n int) { s.maxGen = n }

// Current returns the current generation's grid. Outside Run it is safe to
// call from anywhere; while Run is looping it belongs to the loop
// goroutine, and renderers should use the snapshot they are handed instead.
func (s *Scheduler) Current() *core.Grid { return s.cur }

// Generation returns the simulated tick count. Same ownership rules as
// Current.
func (s *Scheduler) Generation() int { return s.generation }

// Tick advances by one generation and renders the result.
func (s *Scheduler) Tick() {
	s.cur = life.Step(s.cur)
	s.generation++
	if s.render != nil {
		s.render(s.generation, s.cur)
	}
}

// TogglePause asks the running loop to suspend or resume stepping. The
// loop keeps waking but skips the step while paused.
func (s *Scheduler) TogglePause() {
	s.cmds <- func() { s.paused = !s.paused }
}

// StepOnce asks the running loop to advance a single generation, even
// while paused.
func (s *Scheduler) StepOnce() {
	s.cmds <- func() { s.Tick() }
}

// Reseed asks the running loop to reseed the board and restart the
// generation count.
func (s *Scheduler) Reseed(seed int64) {
	s.cmds <- func() {
		s.cur.Seed(core.NewRNG(seed))
		s.generation = 0
		if s.render != nil {
			s.render(s.generation, s.cur)
		}
	}
}

// Run renders generation zero, then ticks at a fixed delay until the
// context is canceled or the generation bound is reached. Control requests
// queued through TogglePause, StepOnce and Reseed execute between ticks,
// so every tick works on a fully settled generation.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.render != nil {
		s.render(s.generation, s.cur)
	}
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-s.cmds:
			cmd()
		case <-ticker.C:
			if s.paused {
				continue
			}
			s.Tick()
			if s.maxGen > 0 && s.generation >= s.maxGen {
				return nil
			}
		}
	}
}
