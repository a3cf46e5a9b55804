package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/ui"
)

// App drives a UI on a terminal screen: it converts terminal events into
// input, runs the frame hook and repaints after every event.
type App struct {
	screen tcell.Screen
	ui     *ui.UI
	canvas *Canvas
	input  *InputConverter
	hook   func(*ui.UI)
	cell   rendering.Size
}

// AppOption configures an App.
type AppOption func(*App)

// WithFrameHook sets a function run after input is handled and before the
// frame is painted. It is where messages are drained.
func WithFrameHook(hook func(*ui.UI)) AppOption {
	return func(a *App) { a.hook = hook }
}

// WithCellSize sets the pixel size of one cell. The UI's shaper should
// measure text in the same cells.
func WithCellSize(cell rendering.Size) AppOption {
	return func(a *App) { a.cell = cell }
}

// NewApp returns an app showing u on screen. The screen is initialized by
// Run; callers driving Step themselves must call Init first.
func NewApp(screen tcell.Screen, u *ui.UI, opts ...AppOption) *App {
	a := &App{screen: screen, ui: u, cell: DefaultCell}
	for _, opt := range opts {
		opt(a)
	}
	a.canvas = NewCanvas(screen, a.cell)
	a.input = NewInputConverter(a.cell)
	return a
}

// Canvas returns the canvas the app paints on.
func (a *App) Canvas() *Canvas { return a.canvas }

// Render runs the frame hook and paints one frame.
func (a *App) Render() {
	if a.hook != nil {
		a.hook(a.ui)
	}
	a.canvas.Clear()
	a.ui.Render(a.canvas, a.canvas.Size())
	a.screen.Show()
}

// Step handles one terminal event and repaints. It reports false when the
// app should stop: on Ctrl-C, Ctrl-Q or an interrupt.
func (a *App) Step(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil, *tcell.EventInterrupt:
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	for _, in := range a.input.Convert(ev) {
		// cells already are logical pixels
		a.ui.HandleInput(in, 1)
	}
	a.Render()
	return true
}

// Run initializes the screen, paints the first frame and handles events
// until the user quits or ctx is done. The screen is finalized on return.
// A panic while handling an event is reported and returned as an error once
// the terminal is restored.
func (a *App) Run(ctx context.Context) (err error) {
	defer errors.Recover("term.App.Run", &err)
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()
	a.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	a.Render()
	for a.Step(a.screen.PollEvent()) {
	}
	return ctx.Err()
}
