package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// FillPaint returns a paint that fills with color.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// StrokePaint returns a paint that strokes with color at the given width.
func StrokePaint(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}

// IsVisible reports whether drawing with p can produce any pixels.
func (p Paint) IsVisible() bool {
	if p.Color.A() == 0 {
		return false
	}
	return p.Style != PaintStyleStroke || p.StrokeWidth > 0
}
