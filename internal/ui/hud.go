//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout in the top-left corner.
type HUD struct {
	line string
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD { return &HUD{} }

// Update refreshes the readout from the current simulation state.
func (h *HUD) Update(generation, population int, paused bool) {
	if h == nil {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	h.line = fmt.Sprintf("gen %d  live %d  %s", generation, population, state)
}

// Draw paints the readout onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	text.Draw(screen, h.line, basicfont.Face7x13, 4, 14, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
