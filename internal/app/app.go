// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/backend/tcellbackend"
	"github.com/bethropolis/tide-input/internal/buffer"
	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/render"
	"github.com/bethropolis/tide-input/internal/statusbar"
	"github.com/bethropolis/tide-input/internal/theme"
	"github.com/bethropolis/tide-input/internal/tui"
)

// Result is how a prompt ended.
type Result struct {
	Value    string
	Accepted bool
}

// Options configures a prompt App.
type Options struct {
	Label   string
	Width   int
	Initial string
	Theme   *theme.Theme
	Keys    *tcellbackend.Keymap

	// Notice is shown in the status bar at startup, e.g. config warnings.
	Notice string
	// MessageTimeout is how long status messages stay up. Zero means
	// config.MessageTimeout.
	MessageTimeout time.Duration

	// Screen replaces the terminal, e.g. with a tcell.SimulationScreen.
	Screen tcell.Screen
}

// App is a one-line prompt on a tcell screen: a label, the field and a
// status bar. It runs until the field is submitted or escaped.
type App struct {
	tuiManager   *tui.TUI
	buf          *buffer.Buffer
	backend      *tcellbackend.Backend
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	activeTheme  *theme.Theme

	label string
	width int

	pasting        bool
	pasteRejected  int
	messageTimeout time.Duration

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
	result        Result
}

// NewApp creates the prompt and initializes its screen.
func NewApp(opts Options) (*App, error) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	width := opts.Width
	if width <= 0 {
		width = config.DefaultWidth
	}

	var (
		ui  *tui.TUI
		err error
	)
	if opts.Screen != nil {
		ui, err = tui.NewWithScreen(opts.Screen, th.GetStyle(theme.StyleDefault))
	} else {
		ui, err = tui.New(th.GetStyle(theme.StyleDefault))
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	sbCfg := statusbar.DefaultConfig()
	sbCfg.StyleDefault = th.GetStyle(theme.StyleStatusBar)
	sbCfg.StyleMessage = th.GetStyle(theme.StyleStatusBarMessage)
	sbCfg.StyleHint = th.GetStyle(theme.StyleStatusBarHint)
	sbCfg.MessageTimeout = opts.MessageTimeout
	if sbCfg.MessageTimeout <= 0 {
		sbCfg.MessageTimeout = config.MessageTimeout
	}

	a := &App{
		tuiManager: ui,
		buf:        buffer.New(opts.Initial),
		backend: tcellbackend.New(opts.Keys, tcellbackend.Styles{
			Field:  th.GetStyle(theme.StyleField),
			Cursor: th.GetStyle(theme.StyleCursor),
		}),
		statusBar:      statusbar.New(sbCfg),
		eventManager:   event.NewManager(),
		activeTheme:    th,
		label:          opts.Label,
		width:          width,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
		messageTimeout: sbCfg.MessageTimeout,
	}
	a.statusBar.SetHints("enter accept", "esc cancel")

	a.eventManager.Subscribe(event.TypeValueChanged, a.handleFieldChangedForStatus)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleFieldChangedForStatus)
	a.eventManager.Subscribe(event.TypeSubmitted, a.handleFinished)
	a.eventManager.Subscribe(event.TypeEscaped, a.handleFinished)
	a.updateStatusBarContent()
	if opts.Notice != "" {
		a.SetStatusMessage("%s", opts.Notice)
	}

	return a, nil
}

// Events exposes the event bus so callers can observe the field.
func (a *App) Events() *event.Manager { return a.eventManager }

// Value returns the current text of the field.
func (a *App) Value() string { return a.buf.Value() }

// Cursor returns the cursor's character index.
func (a *App) Cursor() int { return a.buf.Cursor() }

// Run starts the application's event and drawing loops and blocks until
// the prompt is submitted or escaped.
func (a *App) Run() (Result, error) {
	events := make(chan tcell.Event)
	stop := make(chan struct{})
	go a.eventLoop(events, stop)
	defer close(stop)
	defer a.tuiManager.Close()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Value: a.result.Value, Accepted: a.result.Accepted})
			logger.DebugTagf("app", "App: exiting, accepted=%v", a.result.Accepted)
			return a.result, nil
		case ev := <-events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop forwards terminal events to Run, which owns all state.
func (a *App) eventLoop(events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventPaste:
		a.pasting = ev.Start()
		if a.pasting {
			a.pasteRejected = 0
			return false
		}
		if a.pasteRejected > 0 {
			a.SetStatusMessage("Paste: ignored %d non-text key(s)", a.pasteRejected)
			return true
		}
		return false
	case *tcell.EventKey:
		return a.HandleKey(ev)
	case *tcell.EventMouse:
		return a.HandleMouse(ev)
	}
	return false
}

// HandleKey applies a key to the field and reports whether a redraw is
// needed. During a bracketed paste only text is inserted, so a pasted
// newline cannot submit the prompt.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	if a.pasting {
		cmd, ok := a.backend.Map(ev)
		if !ok || cmd.Action != input.ActionInsertChar {
			a.pasteRejected++
			return false
		}
		return a.apply(cmd)
	}
	resp, ok := backend.HandleEvent[*tcell.EventKey](a.buf, a.backend, ev)
	if !ok {
		return false
	}
	a.publish(resp)
	return true
}

// HandleMouse moves the cursor to a clicked character of the field.
func (a *App) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	col := x - a.fieldX()
	if y != 0 || col < 0 || col >= a.fieldWidth() {
		return false
	}
	return a.apply(input.SetCursor(render.IndexAt(a.buf.Value(), a.buf.Cursor(), a.fieldWidth(), col)))
}

func (a *App) apply(cmd input.Command) bool {
	resp, ok := a.buf.Handle(cmd)
	if !ok {
		return false
	}
	a.publish(resp)
	return true
}

func (a *App) publish(resp input.Response) {
	t := event.TypeFor(resp)
	if t == event.TypeUnknown {
		return
	}
	a.eventManager.Dispatch(t, event.FieldData{
		Value:        a.buf.Value(),
		Cursor:       a.buf.Cursor(),
		VisualCursor: a.buf.VisualCursor(),
	})
}

// Finish ends Run with the given result. Only the first call counts.
func (a *App) Finish(r Result) {
	a.quitOnce.Do(func() {
		a.result = r
		close(a.quit)
	})
}

func (a *App) fieldX() int {
	return uniseg.StringWidth(a.label)
}

// fieldWidth is the configured width clipped to the screen.
func (a *App) fieldWidth() int {
	w, _ := a.tuiManager.Size()
	return max(min(a.width, w-a.fieldX()), 0)
}
