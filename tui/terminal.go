package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/game"
)

const (
	foodRune = '·'
	cellRune = '█'
	helpText = "p pause  r restart  q quit  s speed"
)

var (
	styleText  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220))
	styleMuted = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180))
	styleBarBg = tcell.StyleDefault.Foreground(tcell.NewRGBColor(50, 50, 50))
	styleBoard = tcell.StyleDefault.Background(tcell.NewRGBColor(35, 35, 35))
)

func colorStyle(c components.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Terminal is the tcell frontend. Events are read on a separate goroutine
// and drained by Poll; frames are paced by a ticker at the target FPS.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	ticker *time.Ticker
	keys   keymap

	arenaW, arenaH float64

	last time.Time
	fps  float64
}

// NewTerminal takes over the terminal.
func NewTerminal(cfg *config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return newTerminal(screen, cfg), nil
}

// newTerminal wraps an initialized screen.
func newTerminal(screen tcell.Screen, cfg *config.Config) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		ticker: time.NewTicker(time.Duration(cfg.Derived.TickDT * float64(time.Second))),
		arenaW: cfg.Arena.Width,
		arenaH: cfg.Arena.Height,
		last:   time.Now(),
	}
	screen.HideCursor()
	go t.readEvents()
	return t
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll implements game.Frontend.
func (t *Terminal) Poll() game.Input {
	var in game.Input
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				t.keys.apply(&in, ev.Key(), ev.Rune())
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return in
		}
	}
}

// Present implements game.Frontend.
func (t *Terminal) Present(f *game.Frame) {
	s := t.screen
	s.Clear()
	w, h := s.Size()
	l := newLayout(w, h, t.arenaW, t.arenaH)

	for _, food := range f.Food {
		col, row := l.cell(food.X, food.Y)
		s.SetContent(col, row, foodRune, nil, colorStyle(food.Color))
	}
	for _, c := range f.Cells {
		style := colorStyle(c.Color)
		for _, p := range l.disc(c.X, c.Y, c.Radius) {
			s.SetContent(p[0], p[1], cellRune, nil, style)
		}
	}

	switch f.State {
	case game.StatePaused:
		t.drawCentered(l, []string{"PAUSED", "Press 'P' to Resume"})
	case game.StateVictory:
		if f.Winner != nil {
			banner, line := f.Winner.Headline()
			t.drawCentered(l, []string{
				banner,
				line,
				game.MassText("Final Mass: ", f.Winner.Mass),
				"Final Time: " + game.FormatClock(f.Winner.TimeMs),
				"",
				"Press 'R' to Restart or 'Q' to Quit",
			})
		}
	}

	t.drawSidebar(l, h, f)
	s.Show()
}

func (t *Terminal) drawSidebar(l layout, h int, f *game.Frame) {
	s := t.screen
	x := l.sidebarX + 1
	width := sidebarWidth - 2

	for row := 0; row < h; row++ {
		for col := l.sidebarX; col < l.sidebarX+sidebarWidth; col++ {
			s.SetContent(col, row, ' ', nil, styleBoard)
		}
		s.SetContent(l.sidebarX, row, '│', nil, styleMuted)
	}

	t.text(x, 0, fmt.Sprintf("FPS %.0f  Time %s", f.FPS, f.Clock()), styleMuted)
	t.text(x, 2, "Leaderboard", styleText)

	// Leave the bottom rows for the speed field and help line.
	y := 4
	for _, team := range f.Teams {
		if !team.Visible() {
			continue
		}
		if y+2 >= h-3 {
			break
		}
		style := colorStyle(team.Color)
		t.text(x, y, team.Label(), style)
		t.text(x, y+1, game.MassText("Mass: ", team.Mass), styleMuted)
		filled, empty := bar(f.BarFraction(team), width)
		t.text(x, y+2, strings.Repeat("█", filled), style)
		t.text(x+filled, y+2, strings.Repeat("░", empty), styleBarBg)
		y += 4
	}

	label := "Speed: "
	fieldY := h - 2
	t.text(x, fieldY, label+f.SpeedText, styleText)
	if t.keys.focused {
		s.ShowCursor(x+len(label)+f.SpeedCursor, fieldY)
	} else {
		s.HideCursor()
	}
	t.text(x, h-1, helpText, styleMuted)
}

func (t *Terminal) drawCentered(l layout, lines []string) {
	top := l.rows/2 - len(lines)/2
	for i, line := range lines {
		x := (l.cols - len([]rune(line))) / 2
		t.text(max(x, 0), top+i, line, styleText)
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Wait implements game.Frontend.
func (t *Terminal) Wait() float64 {
	<-t.ticker.C
	now := time.Now()
	dt := now.Sub(t.last)
	t.last = now
	if dt > 0 {
		inst := float64(time.Second) / float64(dt)
		if t.fps == 0 {
			t.fps = inst
		} else {
			t.fps = 0.9*t.fps + 0.1*inst
		}
	}
	return t.fps
}

// Close implements game.Frontend and restores the terminal.
func (t *Terminal) Close() error {
	t.ticker.Stop()
	close(t.done)
	t.screen.Fini()
	return nil
}
