package view

import (
	"fmt"

	"github.com/aphilas/game-of-life/internal/core"
)

// Console prints headless run progress to stdout.
type Console struct {
	every int
}

// NewConsole reports every n generations.
func NewConsole(every int) *Console {
	if every <= 0 {
		every = 10
	}
	return &Console{every: every}
}

// Render logs progress for the generations the reporting interval selects.
func (c *Console) Render(generation int, g *core.Grid) {
	if generation%c.every != 0 {
		return
	}
	fmt.Printf("  generation %v: %v live cells\n", generation, g.Population())
}
