package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
)

// Axis is a layout direction.
type Axis = spec.Axis

// Align positions content along an axis.
type Align = spec.Align

const (
	Horizontal = spec.Horizontal
	Vertical   = spec.Vertical

	AlignStart  = spec.Start
	AlignCenter = spec.Center
	AlignEnd    = spec.End
)

func sizeAlong(axis Axis, s rendering.Size) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func offsetAlong(axis Axis, o rendering.Offset) float64 {
	if axis == Horizontal {
		return o.X
	}
	return o.Y
}

func makeSize(axis Axis, main, cross float64) rendering.Size {
	if axis == Horizontal {
		return rendering.Size{Width: main, Height: cross}
	}
	return rendering.Size{Width: cross, Height: main}
}

func makeOffset(axis Axis, main, cross float64) rendering.Offset {
	if axis == Horizontal {
		return rendering.Offset{X: main, Y: cross}
	}
	return rendering.Offset{X: cross, Y: main}
}

// alignShift returns how far content of extent used moves within available
// space under align.
func alignShift(align Align, available, used float64) float64 {
	switch align {
	case AlignCenter:
		return available/2 - used/2
	case AlignEnd:
		return available - used
	default:
		return 0
	}
}

// drawBox fills a rounded rectangle of the given size and strokes its border.
func drawBox(canvas rendering.Canvas, rect rendering.Rect, radius float64, fill, border rendering.Color, borderWidth float64) {
	rrect := rendering.RRectFromRectAndRadius(rect, rendering.CircularRadius(radius))
	canvas.DrawRRect(rrect, rendering.FillPaint(fill))
	if borderWidth > 0 {
		canvas.DrawRRect(rrect, rendering.StrokePaint(border, borderWidth))
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
