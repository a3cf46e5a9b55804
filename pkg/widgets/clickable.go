package widgets

import (
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// Clickable sends a message when its child is clicked with the left button.
type Clickable struct {
	widget.Base[style.NoStyle]
	onClick func() any
}

// NewClickable returns a Clickable that sends nothing until OnClick is set.
func NewClickable() *Clickable { return &Clickable{} }

// ClickableFromSpec builds a Clickable from its spec.
func ClickableFromSpec(*spec.ClickableSpec) *Clickable { return NewClickable() }

// OnClick sets the function producing the message sent on each click,
// replacing any previous one.
func (c *Clickable) OnClick(message func() any) *Clickable {
	c.onClick = message
	return c
}

// OnClickMessage is a convenience for OnClick with a typed message factory.
func OnClickMessage[M any](c *Clickable, message func() M) *Clickable {
	return c.OnClick(func() any { return message() })
}

// BaseClass returns "clickable".
func (c *Clickable) BaseClass() string { return "clickable" }

// Layout shrinks to the child.
func (c *Clickable) Layout(_ *style.NoStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	data.LayOutChild(widget.Shrink, 0, cx, max)
}

// Paint paints the child only.
func (c *Clickable) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	data.PaintChildren(cx)
}

// HandleEvent sends the click message on a left press inside the bounds.
func (c *Clickable) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	if press, ok := ev.(event.MousePress); ok && c.onClick != nil {
		if press.Button == event.ButtonLeft && data.Bounds().Contains(press.Pos) {
			cx.SendMessage(c.onClick())
		}
	}
	data.PassEventToChildren(cx, ev)
}
