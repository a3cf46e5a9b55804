package widgets

import (
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// ClassGrabbed is carried by a Slider while its handle is dragged.
const ClassGrabbed = "grabbed"

// SliderStyle is the style of a Slider.
type SliderStyle struct {
	LineWidth          float64         `yaml:"line_width"`
	LineColor          rendering.Color `yaml:"line_color"`
	HandleBorderRadius float64         `yaml:"handle_border_radius"`
	HandleBorderWidth  float64         `yaml:"handle_border_width"`
	HandleBorderColor  rendering.Color `yaml:"handle_border_color"`
	HandleColor        rendering.Color `yaml:"handle_color"`
	HandleWidth        float64         `yaml:"handle_width"`
	HandleHeight       float64         `yaml:"handle_height"`
}

// Slider lets the user drag a handle along a line to pick a value in
// [0, 1].
type Slider struct {
	widget.Base[SliderStyle]

	width      *float64
	value      float64
	grabbed    bool
	handleRect rendering.Rect
	onChange   func(float64) any
}

// NewSlider returns a Slider at zero. A nil width takes the available width.
func NewSlider(width *float64) *Slider {
	return &Slider{width: width}
}

// SliderFromSpec builds a Slider from its spec.
func SliderFromSpec(s *spec.SliderSpec) *Slider {
	return NewSlider(s.Width)
}

// SetValue moves the handle. value should be in [0, 1].
func (s *Slider) SetValue(value float64) *Slider {
	s.value = value
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Grabbed reports whether the handle is being dragged.
func (s *Slider) Grabbed() bool { return s.grabbed }

// OnChange sets the function producing the message sent whenever dragging
// changes the value.
func (s *Slider) OnChange(message func(value float64) any) *Slider {
	s.onChange = message
	return s
}

// BaseClass returns "slider".
func (s *Slider) BaseClass() string { return "slider" }

// Layout takes the fixed or available width and the handle height.
func (s *Slider) Layout(st *SliderStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(rendering.Size{Width: orDefault(s.width, max.Width), Height: st.HandleHeight})
	s.handleRect = rendering.RectFromLTWH(data.Size().Width*s.value, 0, st.HandleWidth, st.HandleHeight)
}

// Paint draws the line and the handle at the current value.
func (s *Slider) Paint(st *SliderStyle, data *widget.Data, cx *widget.Context) {
	size := data.Size()
	cx.Canvas.DrawLine(
		rendering.Offset{X: 0, Y: size.Height / 2},
		rendering.Offset{X: size.Width, Y: size.Height / 2},
		rendering.StrokePaint(st.LineColor, st.LineWidth),
	)

	s.handleRect = rendering.RectFromLTWH(size.Width*s.value, 0, st.HandleWidth, st.HandleHeight)
	drawBox(cx.Canvas, s.handleRect, st.HandleBorderRadius, st.HandleColor, st.HandleBorderColor, st.HandleBorderWidth)
}

// HandleEvent grabs the handle on press and follows the cursor until release.
func (s *Slider) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	wasGrabbed := s.grabbed
	switch ev := ev.(type) {
	case event.MousePress:
		if ev.Button == event.ButtonLeft && s.handleRect.Deflate(-barGrabMargin).Contains(ev.Pos) {
			s.grabbed = true
		}
	case event.MouseRelease:
		if ev.Button == event.ButtonLeft {
			s.grabbed = false
		}
	case event.MouseMove:
		if s.grabbed && data.Size().Width > 0 {
			value := clamp01(ev.Pos.X / data.Size().Width)
			if value != s.value {
				s.value = value
				if s.onChange != nil {
					cx.SendMessage(s.onChange(value))
				}
			}
		}
	}

	if wasGrabbed != s.grabbed {
		if s.grabbed {
			data.AddClass(ClassGrabbed)
		} else {
			data.RemoveClass(ClassGrabbed)
		}
	}
}

// HitTest hits anywhere along the slider.
func (s *Slider) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
