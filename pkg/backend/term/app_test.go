package term

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	duiterrors "github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
)

// panel fills its window and records the events it receives.
type panel struct {
	widget.Base[style.NoStyle]
	events []event.Event
}

func (p *panel) BaseClass() string { return "panel" }

func (p *panel) Layout(_ *style.NoStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(max)
}

func (p *panel) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawRect(data.Bounds(), rendering.FillPaint(rendering.ColorRed))
}

func (p *panel) HandleEvent(_ *widget.Data, _ *widget.Context, ev event.Event) {
	p.events = append(p.events, ev)
}

func newApp(t *testing.T, screen tcell.Screen) (*App, *panel, *int) {
	t.Helper()
	u := ui.New(ui.WithShaper(Shaper()))
	p := &panel{}
	u.CreateWindow(widget.New[style.NoStyle](p), ui.FillPositioner{}, 0)
	frames := 0
	app := NewApp(screen, u, WithFrameHook(func(*ui.UI) { frames++ }))
	return app, p, &frames
}

func TestAppRender(t *testing.T) {
	s := newScreen(t, 10, 5)
	app, _, frames := newApp(t, s)
	app.Render()

	if *frames != 1 {
		t.Errorf("frame hook ran %d times, want 1", *frames)
	}
	cells, w, h := s.GetContents()
	if w != 10 || h != 5 {
		t.Fatalf("screen is %dx%d, want 10x5", w, h)
	}
	for i, cell := range cells {
		if _, bg, _ := cell.Style.Decompose(); bg != red {
			t.Fatalf("cell %d background = %v, want red", i, bg)
		}
	}
}

func TestAppStepDispatchesInput(t *testing.T) {
	s := newScreen(t, 10, 5)
	app, p, frames := newApp(t, s)
	app.Render()

	if !app.Step(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone)) {
		t.Fatal("Step() = false for a click")
	}
	var press *event.MousePress
	for _, ev := range p.events {
		if mp, ok := ev.(event.MousePress); ok {
			press = &mp
		}
	}
	if press == nil {
		t.Fatalf("no press received, got %v", p.events)
	}
	if want := (rendering.Offset{X: 20, Y: 24}); press.Pos != want || press.Button != event.ButtonLeft {
		t.Errorf("press = %+v, want left at %v", *press, want)
	}
	if *frames != 2 {
		t.Errorf("frame hook ran %d times, want 2", *frames)
	}
}

func TestAppStepStops(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)},
		{"interrupt", tcell.NewEventInterrupt(nil)},
		{"closed", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newApp(t, newScreen(t, 10, 5))
			if app.Step(tt.ev) {
				t.Error("Step() = true, want false")
			}
		})
	}
}

func TestAppRunStopsOnCancel(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	app, _, frames := newApp(t, s)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if *frames != 1 {
		t.Errorf("frame hook ran %d times, want 1", *frames)
	}
}

// faulty panics when it is clicked.
type faulty struct {
	widget.Base[style.NoStyle]
}

func (f *faulty) BaseClass() string { return "faulty" }

func (f *faulty) Layout(_ *style.NoStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(max)
}

func (f *faulty) Paint(*style.NoStyle, *widget.Data, *widget.Context) {}

func (f *faulty) HandleEvent(_ *widget.Data, _ *widget.Context, ev event.Event) {
	if _, ok := ev.(event.MousePress); ok {
		panic("click handler failed")
	}
}

type panicRecorder struct{ panics []*duiterrors.PanicError }

func (r *panicRecorder) HandleError(*duiterrors.DuitError) {}
func (r *panicRecorder) HandlePanic(err *duiterrors.PanicError) {
	r.panics = append(r.panics, err)
}

func TestAppRunRecoversWidgetPanic(t *testing.T) {
	rec := &panicRecorder{}
	old := duiterrors.DefaultHandler
	duiterrors.SetHandler(rec)
	defer duiterrors.SetHandler(old)

	s := tcell.NewSimulationScreen("UTF-8")
	u := ui.New(ui.WithShaper(Shaper()))
	u.CreateWindow(widget.New[style.NoStyle](&faulty{}), ui.FillPositioner{}, 0)
	clicked := false
	app := NewApp(s, u, WithFrameHook(func(*ui.UI) {
		if !clicked {
			clicked = true
			_ = s.PostEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
		}
	}))

	err := app.Run(context.Background())
	var de *duiterrors.DuitError
	if !errors.As(err, &de) || de.Kind != duiterrors.KindPanic {
		t.Fatalf("Run() = %v, want a panic *DuitError", err)
	}
	if len(rec.panics) != 1 || rec.panics[0].Value != "click handler failed" || rec.panics[0].Op != "term.App.Run" {
		t.Errorf("reported panics = %v, want the click handler's", rec.panics)
	}
}
