package widgets

import (
	"math"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

const (
	tooltipChild   = 0
	tooltipContent = 1

	// tooltipGap separates the tooltip from the left edge of its child.
	tooltipGap = 10
)

// Tooltip shows its second child to the left of its first while the pointer
// is over the first. The tooltip is painted in the overlay pass.
type Tooltip struct {
	widget.Base[style.NoStyle]
	showing bool
}

// NewTooltip returns a Tooltip. Its pod needs exactly two children: the
// content and the tooltip.
func NewTooltip() *Tooltip { return &Tooltip{} }

// TooltipFromSpec builds a Tooltip from its spec.
func TooltipFromSpec(*spec.TooltipSpec) *Tooltip { return NewTooltip() }

// Showing reports whether the tooltip is visible.
func (t *Tooltip) Showing() bool { return t.showing }

// BaseClass returns "tooltip".
func (t *Tooltip) BaseClass() string { return "tooltip" }

// Layout lays out the child and places the tooltip content to its left.
func (t *Tooltip) Layout(_ *style.NoStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	child := data.Child(tooltipChild)
	child.Layout(cx, max)

	tip := data.Child(tooltipContent)
	tip.Layout(cx, rendering.Size{Width: math.Inf(1), Height: math.Inf(1)})
	tipSize, childSize := tip.Data().Size(), child.Data().Size()
	tip.Data().SetOrigin(rendering.Offset{
		X: -tipSize.Width - tooltipGap,
		Y: childSize.Height/2 - tipSize.Height/2,
	})

	data.SetSize(childSize)
}

// Paint paints the child.
func (t *Tooltip) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	data.Child(tooltipChild).Paint(cx)
}

// PaintOverlay runs the child's overlay pass and draws the content while the tooltip is hovered.
func (t *Tooltip) PaintOverlay(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	data.Child(tooltipChild).PaintOverlay(cx)
	if t.showing {
		data.Child(tooltipContent).Paint(cx)
	}
}

// HandleEvent tracks hovering and passes the event to the children.
func (t *Tooltip) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	if move, ok := ev.(event.MouseMove); ok {
		t.showing = data.Bounds().Contains(move.Pos)
	}
	data.PassEventToChildren(cx, ev)
}

// HitTest hits the child only.
func (t *Tooltip) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return data.Child(tooltipChild).HitTest(pos)
}
