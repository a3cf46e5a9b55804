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
	pickListPlaceholder = 0
	pickListOverlay     = 1

	pickListPadding = 10
	arrowDown       = "▼"
)

// PickListStyle is the style of a PickList.
type PickListStyle struct {
	BorderColor     rendering.Color `yaml:"border_color"`
	BorderRadius    float64         `yaml:"border_radius"`
	BorderWidth     float64         `yaml:"border_width"`
	BackgroundColor rendering.Color `yaml:"background_color"`
	ArrowFontFamily string          `yaml:"arrow_font_family,omitempty"`
	ArrowSize       float64         `yaml:"arrow_size"`
	ArrowColor      rendering.Color `yaml:"arrow_color"`
}

// PickList shows a placeholder child and, when clicked, a dropdown of
// options painted in the overlay pass. Selecting an option sends its
// message and closes the dropdown.
//
// The placeholder must be the pod's first child. The dropdown is added as
// the second child on the first layout.
type PickList struct {
	widget.Base[PickListStyle]

	width     *float64
	maxHeight *float64

	options  *Flex
	overlay  *widget.Pod
	attached bool

	opened   bool
	selected *bool
}

// NewPickList returns a closed PickList without options. A nil width takes
// the available width; a nil maxHeight lets the dropdown grow unbounded.
func NewPickList(width, maxHeight *float64) *PickList {
	options := NewColumn()
	scroll := widget.New[ScrollableStyle](NewScrollable(Vertical))
	scroll.Data().AddChild(widget.New[style.NoStyle](options))
	return &PickList{
		width:     width,
		maxHeight: maxHeight,
		options:   options,
		overlay:   scroll,
		selected:  new(bool),
	}
}

// PickListFromSpec builds a PickList from its spec.
func PickListFromSpec(s *spec.PickListSpec) *PickList {
	return NewPickList(s.Width, s.MaxHeight)
}

// AddOption appends an option showing child. Selecting it sends the message
// returned by onSelect.
func (p *PickList) AddOption(child *widget.Pod, onSelect func() any) *PickList {
	option := widget.New[PickListOptionStyle](&pickListOption{selected: p.selected, onSelect: onSelect})
	option.Data().AddChild(child)
	p.options.AddChild(option)
	return p
}

// ClearOptions removes every option.
func (p *PickList) ClearOptions() *PickList {
	p.options.ClearChildren()
	return p
}

// Opened reports whether the dropdown is showing.
func (p *PickList) Opened() bool { return p.opened }

// BaseClass returns "pick_list".
func (p *PickList) BaseClass() string { return "pick_list" }

// Mount mounts the dropdown. It joins the children on the first layout.
func (p *PickList) Mount(*widget.Data) {
	p.overlay.Mount()
}

// Layout sizes the box around the placeholder and lays out the dropdown below it.
func (p *PickList) Layout(_ *PickListStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	width := orDefault(p.width, max.Width)

	placeholder := data.Child(pickListPlaceholder)
	placeholder.Layout(cx, rendering.Size{Width: max.Width - 2*pickListPadding, Height: max.Height - 2*pickListPadding})
	placeholder.Data().SetOrigin(rendering.Offset{X: pickListPadding, Y: pickListPadding})
	height := placeholder.Data().Size().Height

	data.SetSize(rendering.Size{Width: width + 2*pickListPadding, Height: height + 2*pickListPadding})

	if !p.attached {
		data.AddChild(p.overlay)
		p.attached = true
	}
	overlayMax := rendering.Size{Width: width, Height: math.Inf(1)}
	if p.maxHeight != nil {
		overlayMax.Height = *p.maxHeight
	}
	p.overlay.Layout(cx, overlayMax)
	p.overlay.Data().SetOrigin(rendering.Offset{X: 0, Y: data.Size().Height})
}

// Paint draws the box and the placeholder or selected option.
func (p *PickList) Paint(s *PickListStyle, data *widget.Data, cx *widget.Context) {
	drawBox(cx.Canvas, data.Bounds(), s.BorderRadius, s.BackgroundColor, s.BorderColor, s.BorderWidth)

	arrow := cx.ShapeText(arrowDown, rendering.TextStyle{
		Color:      s.ArrowColor,
		FontFamily: s.ArrowFontFamily,
		FontSize:   s.ArrowSize,
	}, math.Inf(1))
	size := data.Size()
	cx.Canvas.DrawText(arrow, rendering.Offset{
		X: size.Width - s.ArrowSize - pickListPadding/2,
		Y: size.Height/2 - arrow.Size.Height/2,
	})

	data.Child(pickListPlaceholder).Paint(cx)
}

// PaintOverlay draws the open dropdown above the rest of the window.
func (p *PickList) PaintOverlay(_ *PickListStyle, data *widget.Data, cx *widget.Context) {
	if p.opened {
		p.overlay.Paint(cx)
	}
}

// HandleEvent opens and closes the dropdown and sends the chosen option.
func (p *PickList) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	if p.opened {
		data.PassEventToChildren(cx, ev)
	}
	if *p.selected {
		*p.selected = false
		p.opened = false
		return
	}

	if press, ok := ev.(event.MousePress); ok && press.Button == event.ButtonLeft {
		overlay := rendering.RectFromOriginSize(p.overlay.Data().Origin(), p.overlay.Data().Size())
		if data.Bounds().Contains(press.Pos) {
			p.opened = !p.opened
		} else if !overlay.Contains(press.Pos) {
			p.opened = false
		}
	}
}

// HitTest includes the dropdown while it is open.
func (p *PickList) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	if data.Bounds().Contains(pos) {
		return widget.Hit
	}
	if p.opened {
		return p.overlay.HitTest(pos)
	}
	return widget.Missed
}

// PickListOptionStyle is the style of one dropdown entry, selected by the
// "pick_list_option" class.
type PickListOptionStyle struct {
	BorderColor     rendering.Color `yaml:"border_color"`
	BorderWidth     float64         `yaml:"border_width"`
	BackgroundColor rendering.Color `yaml:"background_color"`
	Padding         float64         `yaml:"padding"`
}

type pickListOption struct {
	widget.Base[PickListOptionStyle]
	selected *bool
	onSelect func() any
}

func (o *pickListOption) BaseClass() string { return "pick_list_option" }

func (o *pickListOption) Layout(s *PickListOptionStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	var childSize rendering.Size
	for _, child := range data.Children() {
		child.Layout(cx, rendering.Size{Width: max.Width - 2*s.Padding, Height: max.Height - 2*s.Padding})
		child.Data().SetOrigin(rendering.Offset{X: s.Padding, Y: s.Padding})
		childSize = child.Data().Size()
	}
	data.SetSize(rendering.Size{Width: max.Width, Height: childSize.Height + 2*s.Padding})
}

func (o *pickListOption) Paint(s *PickListOptionStyle, data *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawRect(data.Bounds(), rendering.FillPaint(s.BackgroundColor))
	if s.BorderWidth > 0 {
		cx.Canvas.DrawRect(data.Bounds(), rendering.StrokePaint(s.BorderColor, s.BorderWidth))
	}
	data.PaintChildren(cx)
}

func (o *pickListOption) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	if press, ok := ev.(event.MousePress); ok && press.Button == event.ButtonLeft && data.Bounds().Contains(press.Pos) {
		*o.selected = true
		if o.onSelect != nil {
			cx.SendMessage(o.onSelect())
		}
	}
	data.PassEventToChildren(cx, ev)
}

func (o *pickListOption) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
