package testbed

import (
	"strconv"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// Counted is sent by Counter after every click.
type Counted struct {
	Count int
}

// Counter shows a number and increments it on every left click inside it.
type Counter struct {
	widget.Base[style.NoStyle]
	Count int

	label *rendering.TextLayout
}

// NewCounter returns a pod holding a Counter starting at initial.
func NewCounter(initial int) *widget.Pod {
	return widget.New[style.NoStyle](&Counter{Count: initial})
}

func (c *Counter) BaseClass() string { return "test_counter" }

func (c *Counter) Layout(_ *style.NoStyle, data *widget.Data, cx *widget.Context, _ rendering.Size) {
	c.label = cx.ShapeText(strconv.Itoa(c.Count), rendering.TextStyle{FontSize: 16}, 0)
	data.SetSize(c.label.Size)
}

func (c *Counter) Paint(_ *style.NoStyle, _ *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawText(c.label, rendering.Offset{})
}

func (c *Counter) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	if press, ok := ev.(event.MousePress); ok && press.Button == event.ButtonLeft && data.Bounds().Contains(press.Pos) {
		c.Count++
		cx.SendMessage(Counted{Count: c.Count})
	}
}

func (c *Counter) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
