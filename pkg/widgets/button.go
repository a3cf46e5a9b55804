package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// ButtonStyle is the style of a Button. Stylesheets usually give the
// "button & hovered" and "button & pressed" queries their own colors.
type ButtonStyle struct {
	Padding         float64         `yaml:"padding"`
	BorderRadius    float64         `yaml:"border_radius"`
	BorderWidth     float64         `yaml:"border_width"`
	BorderColor     rendering.Color `yaml:"border_color"`
	BackgroundColor rendering.Color `yaml:"background_color"`
}

// Button draws a padded, bordered box around its child. Wrap it in a
// Clickable to react to clicks.
type Button struct {
	widget.Base[ButtonStyle]
}

// NewButton returns a Button.
func NewButton() *Button { return &Button{} }

// ButtonFromSpec builds a Button from its spec.
func ButtonFromSpec(*spec.ButtonSpec) *Button { return NewButton() }

// BaseClass returns "button".
func (b *Button) BaseClass() string { return "button" }

// Layout sizes the button to its child plus the style padding.
func (b *Button) Layout(s *ButtonStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	data.LayOutChild(widget.Shrink, s.Padding, cx, max)
}

// Paint draws the background and border, then the child.
func (b *Button) Paint(s *ButtonStyle, data *widget.Data, cx *widget.Context) {
	drawBox(cx.Canvas, data.Bounds(), s.BorderRadius, s.BackgroundColor, s.BorderColor, s.BorderWidth)
	data.PaintChildren(cx)
}

// HitTest hits anywhere inside the button.
func (b *Button) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
