package testing

import (
	"fmt"
	"testing"

	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
	// DefaultScale is the default scale factor.
	DefaultScale = 1.0

	// CellWidth and CellHeight size every glyph of the test shaper, so that
	// text layout is the same on every machine.
	CellWidth  = 8
	CellHeight = 16
)

// UITester drives a ui.UI without a real backend. It renders into a
// RecordingCanvas, uses a fake clock for time-dependent behavior, and turns
// simulated gestures into host input.
type UITester struct {
	ui     *ui.UI
	clock  *FakeClock
	size   rendering.Size
	scale  float64
	canvas *RecordingCanvas
	frames int
}

// NewUITester returns a tester around a fresh UI. opts are applied after
// the tester's own fake clock and monospace shaper, so they can override
// either.
func NewUITester(opts ...ui.Option) *UITester {
	clk := NewFakeClock()
	base := []ui.Option{
		ui.WithClock(clk),
		ui.WithShaper(rendering.MonospaceShaper{CellWidth: CellWidth, CellHeight: CellHeight}),
	}
	t := &UITester{
		ui:    ui.New(append(base, opts...)...),
		clock: clk,
		size:  rendering.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		scale: DefaultScale,
	}
	t.canvas = NewRecordingCanvas(t.size)
	return t
}

// NewUITesterWithT returns a tester whose pending messages are dropped
// when t finishes.
func NewUITesterWithT(t *testing.T, opts ...ui.Option) *UITester {
	t.Helper()
	tester := NewUITester(opts...)
	t.Cleanup(tester.ui.ClearMessages)
	return tester
}

// UI returns the UI under test.
func (t *UITester) UI() *ui.UI { return t.ui }

// Clock returns the fake clock for advancing time in tests.
func (t *UITester) Clock() *FakeClock { return t.clock }

// Size returns the logical surface size.
func (t *UITester) Size() rendering.Size { return t.size }

// SetSize sets the logical surface size used by the next Pump.
func (t *UITester) SetSize(size rendering.Size) { t.size = size }

// SetScale sets the scale factor used to convert simulated gestures into
// physical pixels.
func (t *UITester) SetScale(scale float64) { t.scale = scale }

// Canvas returns the canvas holding the operations of the last frame.
func (t *UITester) Canvas() *RecordingCanvas { return t.canvas }

// Frames returns the number of frames rendered so far.
func (t *UITester) Frames() int { return t.frames }

// Pump renders one frame. Operations from the previous frame are dropped.
func (t *UITester) Pump() {
	t.canvas = NewRecordingCanvas(t.size)
	t.ui.Render(t.canvas, t.size)
	t.frames++
}

// AddSpecs registers every spec document in data.
func (t *UITester) AddSpecs(data string) error {
	return t.ui.AddSpecYAML([]byte(data))
}

// AddStylesheet appends a stylesheet.
func (t *UITester) AddStylesheet(data string) error {
	return t.ui.AddStylesheet([]byte(data))
}

// Show instantiates the named spec into a window filling the surface and
// renders a frame.
func (t *UITester) Show(name string) (*ui.Instance, error) {
	inst, root, err := t.ui.CreateInstance(name)
	if err != nil {
		return nil, err
	}
	t.ui.CreateWindow(root, ui.FillPositioner{}, 0)
	t.Pump()
	return inst, nil
}

// ShowPod places root in a window filling the surface and renders a frame.
func (t *UITester) ShowPod(root *widget.Pod) ui.WindowID {
	id := t.ui.CreateWindow(root, ui.FillPositioner{}, 0)
	t.Pump()
	return id
}

// MustShow is like Show but fails the test on error.
func (t *UITester) MustShow(tb testing.TB, name string) *ui.Instance {
	tb.Helper()
	inst, err := t.Show(name)
	if err != nil {
		tb.Fatalf("Show(%q): %v", name, err)
	}
	return inst
}

// Find evaluates a finder against the last rendered frame.
func (t *UITester) Find(finder Finder) FinderResult {
	var matches []Element
	for _, e := range collectElements(t.ui, t.size) {
		if finder.Matches(e) {
			matches = append(matches, e)
		}
	}
	return FinderResult{elements: matches, finder: finder}
}

// Messages returns every queued message of type T in order and removes
// them from the queue.
func Messages[T any](t *UITester) []T {
	var out []T
	ui.HandleMessages(t.ui, func(m T) { out = append(out, m) })
	return out
}

func (t *UITester) find(op string, finder Finder) (Element, error) {
	e, ok := t.Find(finder).FirstOK()
	if !ok {
		return Element{}, fmt.Errorf("%s: finder matched no elements: %s", op, finder.Description())
	}
	return e, nil
}
