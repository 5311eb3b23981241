// Package tui renders a circuit session in the terminal with tcell.
//
// The grid is usually taller than the screen. The visible rows form a
// viewport that scrolls with the arrow and page keys, and the viewport is
// the session's active window, so new paths appear where the user looks.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
	"github.com/katalvlaran/circuit/internal/logging"
)

const frameInterval = 33 * time.Millisecond

var palette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorOlive,
	tcell.ColorSilver,
}

// Options configures an App.
type Options struct {
	InitialLines    int     // paths committed before the first frame
	LinesPerSecond  float64 // commit rate
	RevealPerSecond float64 // cells revealed per second per path
	ASCII           bool    // draw with ASCII runes
	Logger          *slog.Logger
}

type glyph struct {
	r     rune
	style tcell.Style
}

// reveal is a committed path being drawn cell by cell.
type reveal struct {
	cells    []gridgraph.Cell
	runes    []rune
	style    tcell.Style
	progress float64
}

// App owns the screen loop. All fields are touched only by Run's goroutine.
type App struct {
	screen tcell.Screen
	sess   *circuit.Session
	opts   Options
	log    *slog.Logger

	width, height int // screen size; the last row is the status bar
	offset        int // grid rows scrolled past the top

	reveals []*reveal
	drawn   map[gridgraph.Cell]glyph
	painted int
}

// New creates an App on an initialised screen.
func New(screen tcell.Screen, sess *circuit.Session, opts Options) (*App, error) {
	if opts.LinesPerSecond <= 0 || opts.RevealPerSecond <= 0 {
		return nil, fmt.Errorf("tui: rates must be positive")
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	a := &App{
		screen: screen,
		sess:   sess,
		opts:   opts,
		log:    log,
		drawn:  make(map[gridgraph.Cell]glyph),
	}
	a.width, a.height = screen.Size()
	return a, nil
}

// Run draws until ctx is done or the user quits. It returns nil on quit and
// ctx.Err() on cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.syncWindow()
	initial, err := a.sess.Fill(ctx, a.opts.InitialLines)
	if err != nil {
		return err
	}
	for _, p := range initial {
		a.add(p)
	}

	paths := make(chan circuit.Path, 16)
	errc := make(chan error, 1)
	go func() {
		interval := time.Duration(float64(time.Second) / a.opts.LinesPerSecond)
		errc <- a.sess.Run(ctx, interval, func(p circuit.Path) {
			select {
			case paths <- p:
			case <-ctx.Done():
			}
		})
	}()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return ctx.Err()
		case p := <-paths:
			a.add(p)
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.advance(now.Sub(last).Seconds())
			last = now
			a.draw()
		}
	}
}

// handle applies one input event; false means quit.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.scroll(-1)
		case tcell.KeyDown:
			a.scroll(1)
		case tcell.KeyPgUp:
			a.scroll(-a.viewHeight())
		case tcell.KeyPgDn:
			a.scroll(a.viewHeight())
		case tcell.KeyHome:
			a.scroll(-a.offset)
		case tcell.KeyEnd:
			a.scroll(a.maxOffset() - a.offset)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				a.clear()
			}
		}
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.scroll(0)
		a.screen.Sync()
	}
	return true
}

func (a *App) viewHeight() int {
	if a.height <= 1 {
		return 1
	}
	return a.height - 1
}

func (a *App) maxOffset() int {
	m := a.sess.Bounds().Rows - a.viewHeight()
	if m < 0 {
		return 0
	}
	return m
}

func (a *App) scroll(delta int) {
	a.offset = min(max(a.offset+delta, 0), a.maxOffset())
	a.syncWindow()
}

// syncWindow points the session window at the visible rows.
// Screen row r shows grid row Rows-1-offset-r.
func (a *App) syncWindow() {
	b := a.sess.Bounds()
	h := a.viewHeight()
	a.sess.SetWindow(gridgraph.Window{
		X:      0,
		Y:      b.Rows - a.offset - h,
		Width:  min(a.width, b.Cols),
		Height: h,
	})
}

func (a *App) clear() {
	a.sess.Reset()
	a.reveals = a.reveals[:0]
	clear(a.drawn)
	a.log.Info("canvas cleared")
}

// add queues p for drawing. Paths from before the last clear are dropped:
// their cells are free again and new paths may cross them.
func (a *App) add(p circuit.Path) {
	if p.Generation != a.sess.Generation() {
		a.log.Debug("stale path dropped", "generation", p.Generation)
		return
	}
	cells, runes := PathGlyphs(p, a.opts.ASCII)
	a.painted++
	a.reveals = append(a.reveals, &reveal{
		cells: cells,
		runes: runes,
		style: tcell.StyleDefault.Foreground(palette[a.painted%len(palette)]),
	})
}

// advance reveals dt seconds' worth of cells on every pending path.
func (a *App) advance(dt float64) {
	keep := a.reveals[:0]
	for _, r := range a.reveals {
		before := int(r.progress)
		r.progress += dt * a.opts.RevealPerSecond
		shown := min(int(r.progress)+1, len(r.cells))
		for i := before; i < shown; i++ {
			a.drawn[r.cells[i]] = glyph{r: r.runes[i], style: r.style}
		}
		if shown < len(r.cells) {
			keep = append(keep, r)
		}
	}
	a.reveals = keep
}

func (a *App) draw() {
	a.screen.Clear()
	rows := a.sess.Bounds().Rows
	h := a.viewHeight()
	for c, g := range a.drawn {
		sy := rows - 1 - a.offset - c.Y
		if sy < 0 || sy >= h || c.X >= a.width {
			continue
		}
		a.screen.SetContent(c.X, sy, g.r, nil, g.style)
	}
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	if a.height <= 1 {
		return
	}
	st := a.sess.Stats()
	line := fmt.Sprintf(" rows %d-%d/%d  paths %d  cells %d  failed %d  [arrows scroll, c clear, q quit]",
		a.offset+1, min(a.offset+a.viewHeight(), a.sess.Bounds().Rows), a.sess.Bounds().Rows,
		st.Commits, st.Occupied, st.Exhausted)
	style := tcell.StyleDefault.Reverse(true)
	y := a.height - 1
	x := 0
	for _, r := range line {
		if x >= a.width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < a.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}
