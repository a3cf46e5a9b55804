package widgets

import (
	"math"

	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// dividerThickness is the extent of a Divider across its axis.
const dividerThickness = 5

// DividerStyle is the style of a Divider.
type DividerStyle struct {
	LineWidth float64         `yaml:"line_width"`
	LineColor rendering.Color `yaml:"line_color"`
}

// Divider draws a line spanning the available space along its axis, less
// padding at both ends.
type Divider struct {
	widget.Base[DividerStyle]
	axis    Axis
	padding float64
}

// NewDivider returns a Divider along axis.
func NewDivider(axis Axis, padding float64) *Divider {
	return &Divider{axis: axis, padding: padding}
}

// DividerFromSpec builds a Divider from its spec.
func DividerFromSpec(s *spec.DividerSpec) *Divider {
	return NewDivider(s.Axis, s.Padding)
}

// BaseClass returns "divider".
func (d *Divider) BaseClass() string { return "divider" }

// Layout spans the available length, less padding, at a fixed thickness.
func (d *Divider) Layout(_ *DividerStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	length := sizeAlong(d.axis, max)
	if math.IsInf(length, 1) {
		length = 0
	}
	length = math.Max(0, length-2*d.padding)
	data.SetSize(makeSize(d.axis, length, dividerThickness))
}

// Paint draws the divider line.
func (d *Divider) Paint(s *DividerStyle, data *widget.Data, cx *widget.Context) {
	length := sizeAlong(d.axis, data.Size())
	mid := dividerThickness / 2.0
	cx.Canvas.DrawLine(makeOffset(d.axis, 0, mid), makeOffset(d.axis, length, mid),
		rendering.StrokePaint(s.LineColor, s.LineWidth))
}
