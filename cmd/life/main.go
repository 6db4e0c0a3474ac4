package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/aphilas/game-of-life/internal/app"
	"github.com/aphilas/game-of-life/internal/core"
	"github.com/aphilas/game-of-life/internal/sim"
	"github.com/aphilas/game-of-life/internal/view"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	switch cfg.Mode {
	case app.ModeWindow:
		if err := app.Run(cfg); err != nil {
			log.Fatal(err)
		}
	case app.ModeTerm:
		if err := runTerm(cfg); err != nil {
			log.Fatal(err)
		}
	case app.ModeHeadless:
		if err := runHeadless(cfg); err != nil {
			log.Fatal(err)
		}
	}
}

func newSeededGrid(cfg *app.Config) (*core.Grid, error) {
	grid, err := core.NewGrid(cfg.Size, cfg.Size)
	if err != nil {
		return nil, err
	}
	grid.Seed(core.NewRNG(cfg.Seed))
	return grid, nil
}

func runTerm(cfg *app.Config) error {
	grid, err := newSeededGrid(cfg)
	if err != nil {
		return err
	}

	term, err := view.NewTerminal(cfg.Size, cfg.Period())
	if err != nil {
		return err
	}

	s, err := sim.New(grid, cfg.Period(), term.Render)
	if err != nil {
		return err
	}
	term.Attach(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	return term.Start()
}

func runHeadless(cfg *app.Config) error {
	grid, err := newSeededGrid(cfg)
	if err != nil {
		return err
	}

	console := view.NewConsole(10)
	s, err := sim.New(grid, cfg.Period(), console.Render)
	if err != nil {
		return err
	}
	s.SetMaxGenerations(cfg.MaxGen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %vx%v universe, period %v, seed %v...\n",
		cfg.Size, cfg.Size, cfg.Period(), cfg.Seed)
	start := time.Now()
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Printf("Finished: %v generations, %v live cells, total time %v\n",
		s.Generation(), s.Current().Population(), time.Since(start).Round(time.Millisecond))
	return nil
}
