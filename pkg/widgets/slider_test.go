package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-duit/duit/pkg/event"
	duittest "github.com/go-duit/duit/pkg/testing"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

func TestSliderDrag(t *testing.T) {
	tester := newTester(t)
	s := widgets.NewSlider(nil).OnChange(func(v float64) any { return v })
	pod := widget.New[widgets.SliderStyle](s)
	tester.ShowPod(pod)

	if got := pod.Data().Size(); got != size(800, 20) {
		t.Errorf("size = %+v, want 800x20", got)
	}

	tester.MoveTo(at(5, 10))
	tester.Press(event.ButtonLeft)
	if !s.Grabbed() || !pod.Data().HasClass(widgets.ClassGrabbed) {
		t.Fatal("handle not grabbed")
	}

	tester.MoveTo(at(400, 10))
	tester.MoveTo(at(400, 15)) // same value, no message
	tester.MoveTo(at(1000, 10))
	if got := s.Value(); got != 1 {
		t.Errorf("Value() = %v, want clamped to 1", got)
	}

	tester.Release(event.ButtonLeft)
	if s.Grabbed() || pod.Data().HasClass(widgets.ClassGrabbed) {
		t.Error("still grabbed after release")
	}
	tester.MoveTo(at(200, 10))
	if got := s.Value(); got != 1 {
		t.Errorf("Value() = %v after release, want 1", got)
	}

	if diff := cmp.Diff([]float64{0.5, 1}, duittest.Messages[float64](tester)); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestSliderPressOffHandle(t *testing.T) {
	tester := newTester(t)
	s := widgets.NewSlider(ptr(200.0)).SetValue(0.5)
	tester.ShowPod(widget.New[widgets.SliderStyle](s))

	// the handle spans x 100..110, grabbable 5px around it
	tester.MoveTo(at(20, 10))
	tester.Press(event.ButtonLeft)
	if s.Grabbed() {
		t.Error("grabbed away from the handle")
	}
	tester.Release(event.ButtonLeft)

	tester.MoveTo(at(114, 10))
	tester.Press(event.ButtonLeft)
	if !s.Grabbed() {
		t.Error("not grabbed within the margin")
	}
}

func TestSliderPaintsHandleAtValue(t *testing.T) {
	tester := newTester(t)
	s := widgets.NewSlider(ptr(200.0)).SetValue(0.25)
	tester.ShowPod(widget.New[widgets.SliderStyle](s))

	rrects := tester.Canvas().OpsNamed("drawRRect")
	if len(rrects) != 2 {
		t.Fatalf("got %d rrects, want handle fill and border", len(rrects))
	}
	if got := rrects[0].Params["rect"].(map[string]any)["left"]; got != 50.0 {
		t.Errorf("handle left = %v, want 50", got)
	}
	if len(tester.Canvas().OpsNamed("drawLine")) != 1 {
		t.Error("slider line not drawn")
	}
}
