//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/aphilas/game-of-life/internal/core"
	"github.com/aphilas/game-of-life/internal/life"
	"github.com/aphilas/game-of-life/internal/render"
	"github.com/aphilas/game-of-life/internal/ui"
)

// Game adapts the simulation to the ebiten.Game interface. It owns the
// current generation and replaces it each tick; ebiten's frame callback is
// throttled down to the configured tick period.
type Game struct {
	cur      *core.Grid
	painter  *render.GridPainter
	hud      *ui.HUD
	throttle *core.Throttle

	onColor  color.Color
	offColor color.Color

	generation int
	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
}

// NewGame constructs a Game around a seeded grid.
func NewGame(grid *core.Grid, scale int, period time.Duration, seed int64) *Game {
	return &Game{
		cur:      grid,
		painter:  render.NewGridPainter(grid.W, grid.H),
		hud:      ui.NewHUD(),
		throttle: core.NewThrottle(period),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the board and restarts the generation count.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.cur.Seed(core.NewRNG(seed))
	g.generation = 0
	g.tickOnce = false
	g.throttle.Reset()
}

func (g *Game) step() {
	g.cur = life.Step(g.cur)
	g.generation++
}

// Update handles per-frame input and advances the simulation when the tick
// period has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	now := time.Now()
	switch {
	case g.tickOnce:
		g.step()
		g.tickOnce = false
	case g.paused:
		g.throttle.Settle(now)
	case g.throttle.Tick(now):
		g.step()
	}

	g.hud.Update(g.generation, g.cur.Population(), g.paused)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cur.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cur.W * g.scale, g.cur.H * g.scale
}

// Run opens the window and drives the game loop until quit.
func Run(cfg *Config) error {
	grid, err := core.NewGrid(cfg.Size, cfg.Size)
	if err != nil {
		return err
	}
	grid.Seed(core.NewRNG(cfg.Seed))

	game := NewGame(grid, cfg.Scale, cfg.Period(), cfg.Seed)

	ebiten.SetWindowTitle("game of life")
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
