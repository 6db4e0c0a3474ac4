package view

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/aphilas/game-of-life/internal/core"
	"github.com/aphilas/game-of-life/internal/sim"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// Terminal renders generations into a gocui view. The entire field is
// rebuilt each frame; the terminal driver only repaints changed characters.
type Terminal struct {
	s *sim.Scheduler
	g *gocui.Gui
	k []keyBinding

	liveFiller string
	deadFiller string

	size   int
	period time.Duration

	lastGen int
	lastPop int
}

// NewTerminal sets up the terminal UI. Attach the scheduler before
// starting the main loop.
func NewTerminal(size int, period time.Duration) (*Terminal, error) {
	t := &Terminal{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		size:       size,
		period:     period,
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to init terminal")
	}
	t.g = g

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{gocui.KeySpace, "SPACE", "Pause/Resume", t.cmdTogglePause},
		{'n', "N", "Next step", t.cmdStepOnce},
		{'w', "W", "Reseed", t.cmdReseed},
	}
	t.g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

func (t *Terminal) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			return errors.Wrapf(err, "[Terminal.initKeyBindings] binding %s", kb.name)
		}
	}
	return nil
}

// Attach wires the scheduler the key handlers control.
func (t *Terminal) Attach(s *sim.Scheduler) { t.s = s }

// Render is the scheduler's render callback. It reads the snapshot once
// and queues a redraw on the UI loop.
func (t *Terminal) Render(generation int, grid *core.Grid) {
	field := t.renderField(grid)
	pop := grid.Population()
	t.g.Update(func(g *gocui.Gui) error {
		t.lastGen = generation
		t.lastPop = pop
		if v, err := g.View("field"); err == nil {
			v.Clear()
			fmt.Fprint(v, field)
		}
		t.redrawStatus(g)
		return nil
	})
}

func (t *Terminal) renderField(grid *core.Grid) string {
	var b bytes.Buffer
	for y := 0; y < grid.H; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < grid.W; x++ {
			if grid.Get(x, y) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	return b.String()
}

func (t *Terminal) redrawStatus(g *gocui.Gui) {
	if v, err := g.View("status"); err == nil {
		v.Clear()
		fmt.Fprintln(v, t.renderProp("Generation", "%v", t.lastGen))
		fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.lastPop))
	}
}

func (t *Terminal) redrawConfig(g *gocui.Gui) {
	if v, err := g.View("config"); err == nil {
		v.Clear()
		fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.size, t.size))
		fmt.Fprintln(v, t.renderProp("Period", "%v", t.period))
	}
}

func (t *Terminal) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("config", 0, 0, leftColumnWidth, 4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.redrawConfig(g)
	}

	if v, err := g.SetView("status", 0, 5, leftColumnWidth, 9); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.redrawStatus(g)
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	return nil
}

// Start runs the UI main loop until quit, then releases the terminal.
func (t *Terminal) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Terminal.Start] main loop")
	}
	return nil
}

func (t *Terminal) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *Terminal) cmdTogglePause() error {
	if t.s != nil {
		t.s.TogglePause()
	}
	return nil
}

func (t *Terminal) cmdStepOnce() error {
	if t.s != nil {
		t.s.StepOnce()
	}
	return nil
}

func (t *Terminal) cmdReseed() error {
	if t.s != nil {
		t.s.Reseed(time.Now().UnixNano())
	}
	return nil
}
