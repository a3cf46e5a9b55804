package testbed

import (
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// Recorder fills the space it is given, up to a fixed fallback along
// unbounded axes, and records every event it receives.
type Recorder struct {
	widget.Base[style.NoStyle]
	Events []event.Event
}

// NewRecorder returns a Recorder and the pod holding it.
func NewRecorder() (*Recorder, *widget.Pod) {
	r := &Recorder{}
	return r, widget.New[style.NoStyle](r)
}

// Presses returns the recorded mouse presses.
func (r *Recorder) Presses() []event.MousePress {
	var out []event.MousePress
	for _, ev := range r.Events {
		if p, ok := ev.(event.MousePress); ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *Recorder) BaseClass() string { return "test_recorder" }

func (r *Recorder) Layout(_ *style.NoStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(max.Min(rendering.Size{Width: 1000, Height: 1000}))
}

func (r *Recorder) Paint(*style.NoStyle, *widget.Data, *widget.Context) {}

func (r *Recorder) HandleEvent(_ *widget.Data, _ *widget.Context, ev event.Event) {
	r.Events = append(r.Events, ev)
}

func (r *Recorder) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
