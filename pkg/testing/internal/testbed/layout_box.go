// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// Box is a fixed-size colored box, clamped to the space it is given.
type Box struct {
	widget.Base[style.NoStyle]
	Width  float64
	Height float64
	Color  rendering.Color
}

// NewBox returns a pod holding a Box.
func NewBox(width, height float64, color rendering.Color) *widget.Pod {
	return widget.New[style.NoStyle](&Box{Width: width, Height: height, Color: color})
}

func (b *Box) BaseClass() string { return "test_box" }

func (b *Box) Layout(_ *style.NoStyle, data *widget.Data, _ *widget.Context, max rendering.Size) {
	data.SetSize(rendering.Size{Width: b.Width, Height: b.Height}.Min(max))
}

func (b *Box) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	if b.Color != 0 {
		cx.Canvas.DrawRect(data.Bounds(), rendering.FillPaint(b.Color))
	}
}

func (b *Box) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
