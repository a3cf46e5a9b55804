package widgets

import (
	"math"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// barGrabMargin widens the scroll bar's hit area on every side.
const barGrabMargin = 5

// ScrollableStyle is the style of a Scrollable.
type ScrollableStyle struct {
	BarWidth        float64         `yaml:"bar_width"`
	BarBorderRadius float64         `yaml:"bar_border_radius"`
	BarColor        rendering.Color `yaml:"bar_color"`
	HoveredBarColor rendering.Color `yaml:"hovered_bar_color"`
	GrabbedBarColor rendering.Color `yaml:"grabbed_bar_color"`
}

// Scrollable gives its child unbounded space along the scroll axis, clips it
// to its own bounds and scrolls it with the mouse wheel or by dragging the
// scroll bar.
type Scrollable struct {
	widget.Base[ScrollableStyle]

	scrollAxis Axis
	childSize  rendering.Size

	scrollPos     float64
	barWidth      float64
	barGrabbed    bool
	barHovered    bool
	grabbedOffset float64
}

// NewScrollable returns a Scrollable along axis.
func NewScrollable(axis Axis) *Scrollable {
	return &Scrollable{scrollAxis: axis}
}

// ScrollableFromSpec builds a Scrollable from its spec.
func ScrollableFromSpec(s *spec.ScrollableSpec) *Scrollable {
	return NewScrollable(s.ScrollAxis)
}

// ScrollPos returns how far the child is scrolled.
func (s *Scrollable) ScrollPos() float64 { return s.scrollPos }

// SetScrollPos scrolls the child. The position is clamped on the next event.
func (s *Scrollable) SetScrollPos(pos float64) *Scrollable {
	s.scrollPos = pos
	return s
}

func (s *Scrollable) barRect(size rendering.Size) rendering.Rect {
	childMain := sizeAlong(s.scrollAxis, s.childSize)
	if childMain <= 0 {
		return rendering.Rect{}
	}
	selfMain := sizeAlong(s.scrollAxis, size)
	length := selfMain / childMain * selfMain
	pos := s.scrollPos / childMain * selfMain
	if s.scrollAxis == Vertical {
		return rendering.RectFromLTWH(size.Width-s.barWidth, pos, s.barWidth, length)
	}
	return rendering.RectFromLTWH(pos, size.Height-s.barWidth, length, s.barWidth)
}

func (s *Scrollable) overflowing(size rendering.Size) bool {
	return sizeAlong(s.scrollAxis, s.childSize) > sizeAlong(s.scrollAxis, size)
}

// BaseClass returns "scrollable".
func (s *Scrollable) BaseClass() string { return "scrollable" }

// Layout gives the child unbounded space along the scroll axis.
func (s *Scrollable) Layout(st *ScrollableStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	s.barWidth = st.BarWidth
	cross := s.scrollAxis.Cross()

	childMax := makeSize(s.scrollAxis, math.Inf(1), sizeAlong(cross, max))
	crossSize := 0.0
	for _, child := range data.Children() {
		child.Layout(cx, childMax)
		child.Data().SetOrigin(makeOffset(s.scrollAxis, -s.scrollPos, 0))
		crossSize = sizeAlong(cross, child.Data().Size())
		s.childSize = child.Data().Size()
	}

	main := sizeAlong(s.scrollAxis, max)
	if childMain := sizeAlong(s.scrollAxis, s.childSize); childMain <= main {
		main = childMain
	}
	data.SetSize(makeSize(s.scrollAxis, main, crossSize))
}

// Paint clips to the bounds, paints the shifted child and the scroll bar.
func (s *Scrollable) Paint(st *ScrollableStyle, data *widget.Data, cx *widget.Context) {
	cx.Canvas.Save()
	cx.Canvas.ClipRect(data.Bounds())
	data.PaintChildren(cx)
	cx.Canvas.Restore()

	if !s.overflowing(data.Size()) {
		return
	}
	color := st.BarColor
	switch {
	case s.barGrabbed:
		color = st.GrabbedBarColor
	case s.barHovered:
		color = st.HoveredBarColor
	}
	bar := rendering.RRectFromRectAndRadius(s.barRect(data.Size()), rendering.CircularRadius(st.BarBorderRadius))
	cx.Canvas.DrawRRect(bar, rendering.FillPaint(color))
}

// HandleEvent scrolls on the wheel and while the bar is dragged.
func (s *Scrollable) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	bar := s.barRect(data.Size()).Deflate(-barGrabMargin)
	switch ev := ev.(type) {
	case event.MousePress:
		if ev.Button == event.ButtonLeft {
			s.barGrabbed = bar.Contains(ev.Pos)
			s.grabbedOffset = offsetAlong(s.scrollAxis, ev.Pos) - offsetAlong(s.scrollAxis, bar.Origin())
		}
	case event.MouseRelease:
		if ev.Button == event.ButtonLeft {
			s.barGrabbed = false
		}
	case event.MouseMove:
		if s.barGrabbed {
			selfMain := sizeAlong(s.scrollAxis, data.Size())
			if selfMain > 0 {
				s.scrollPos = (offsetAlong(s.scrollAxis, ev.Pos) - s.grabbedOffset) *
					(sizeAlong(s.scrollAxis, s.childSize) / selfMain)
			}
		}
		s.barHovered = bar.Contains(ev.Pos)
	case event.Scroll:
		if data.Bounds().Contains(ev.MousePos) {
			s.scrollPos -= offsetAlong(s.scrollAxis, ev.Offset)
		}
	}
	limit := math.Max(0, sizeAlong(s.scrollAxis, s.childSize)-sizeAlong(s.scrollAxis, data.Size()))
	s.scrollPos = min(max(s.scrollPos, 0), limit)

	data.PassEventToChildren(cx, ev)
}
