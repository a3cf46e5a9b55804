package widgets_test

import (
	"testing"

	"github.com/go-duit/duit/pkg/event"
	duittest "github.com/go-duit/duit/pkg/testing"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

func showScrollable(t *testing.T) (*duittest.UITester, *widgets.Scrollable, *widget.Pod) {
	t.Helper()
	tester := newTester(t)
	s := widgets.NewScrollable(widgets.Vertical)
	content := newBox(100, 1000)
	tester.ShowPod(withChildren(widget.New[widgets.ScrollableStyle](s), content))
	return tester, s, content
}

func TestScrollableLayout(t *testing.T) {
	tester, _, content := showScrollable(t)
	pod := content
	if got := pod.Data().Size(); got != size(100, 1000) {
		t.Errorf("content size = %+v, want its full 100x1000", got)
	}
	root := tester.UI().Windows()[0].Root()
	if got := root.Data().Size(); got != size(100, 600) {
		t.Errorf("scrollable size = %+v, want 100x600", got)
	}
	if len(tester.Canvas().OpsNamed("clipRect")) != 1 {
		t.Error("content not clipped")
	}
	if len(tester.Canvas().OpsNamed("drawRRect")) != 1 {
		t.Error("no scroll bar drawn for overflowing content")
	}
}

func TestScrollableShrinksToShortContent(t *testing.T) {
	tester := newTester(t)
	pod := withChildren(widget.New[widgets.ScrollableStyle](widgets.NewScrollable(widgets.Vertical)), newBox(100, 50))
	tester.ShowPod(pod)
	if got := pod.Data().Size(); got != size(100, 50) {
		t.Errorf("size = %+v, want 100x50", got)
	}
	if len(tester.Canvas().OpsNamed("drawRRect")) != 0 {
		t.Error("scroll bar drawn without overflow")
	}
}

func TestScrollableWheelClamps(t *testing.T) {
	tester, s, content := showScrollable(t)

	tester.ScrollAt(at(10, 10), at(0, -50))
	if got := s.ScrollPos(); got != 50 {
		t.Errorf("ScrollPos() = %v, want 50", got)
	}
	tester.Pump()
	if got := content.Data().Origin(); got != at(0, -50) {
		t.Errorf("content origin = %+v, want (0,-50)", got)
	}

	tester.ScrollAt(at(10, 10), at(0, -5000))
	if got := s.ScrollPos(); got != 400 {
		t.Errorf("ScrollPos() = %v, want clamped to 400", got)
	}
	tester.ScrollAt(at(10, 10), at(0, 5000))
	if got := s.ScrollPos(); got != 0 {
		t.Errorf("ScrollPos() = %v, want clamped to 0", got)
	}

	// outside the scrollable
	tester.ScrollAt(at(500, 10), at(0, -50))
	if got := s.ScrollPos(); got != 0 {
		t.Errorf("ScrollPos() = %v after scrolling elsewhere, want 0", got)
	}
}

func TestScrollableDragBar(t *testing.T) {
	tester, s, _ := showScrollable(t)

	// The bar is 6 wide at the right edge and 360 tall.
	tester.MoveTo(at(97, 100))
	tester.Press(event.ButtonLeft)
	tester.MoveTo(at(97, 165))
	if got := s.ScrollPos(); !approx(got, 100) {
		t.Errorf("ScrollPos() = %v after dragging 60px, want 100", got)
	}
	tester.Pump()
	bar := tester.Canvas().OpsNamed("drawRRect")[0]
	if bar.Params["color"] != "0xFF000000" {
		t.Errorf("grabbed bar color = %v, want black", bar.Params["color"])
	}

	tester.Release(event.ButtonLeft)
	tester.MoveTo(at(97, 300))
	if got := s.ScrollPos(); !approx(got, 100) {
		t.Errorf("ScrollPos() = %v after release, want 100", got)
	}
}

func TestScrollableSetScrollPos(t *testing.T) {
	tester, s, content := showScrollable(t)
	s.SetScrollPos(120)
	tester.Pump()
	if got := content.Data().Origin().Y; got != -120 {
		t.Errorf("content y = %v, want -120", got)
	}
}
