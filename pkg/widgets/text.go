package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// TextStyle is the style of a Text.
type TextStyle struct {
	Color      rendering.Color `yaml:"color"`
	Size       float64         `yaml:"size"`
	FontFamily string          `yaml:"font_family,omitempty"`
}

func (s *TextStyle) textStyle() rendering.TextStyle {
	return rendering.TextStyle{Color: s.Color, FontFamily: s.FontFamily, FontSize: s.Size}
}

// Text displays a paragraph, wrapped to the available width.
type Text struct {
	widget.Base[TextStyle]

	text        string
	layout      *rendering.TextLayout
	layoutWidth float64
}

// NewText returns a Text showing text.
func NewText(text string) *Text {
	return &Text{text: text}
}

// TextFromSpec builds a Text from its spec.
func TextFromSpec(s *spec.TextSpec) *Text {
	return NewText(s.Text)
}

// SetText replaces the displayed text. The paragraph is shaped again on the
// next layout.
func (t *Text) SetText(text string) *Text {
	t.text = text
	t.layout = nil
	return t
}

// Text returns the displayed text.
func (t *Text) Text() string { return t.text }

// BaseClass returns "text".
func (t *Text) BaseClass() string { return "text" }

// StyleChanged drops the shaped paragraph.
func (t *Text) StyleChanged(*TextStyle, *widget.Data, *widget.Context) {
	t.layout = nil
}

// Layout shapes the paragraph at the available width.
func (t *Text) Layout(s *TextStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	if t.layout == nil || t.layoutWidth != max.Width {
		t.layout = cx.ShapeText(t.text, s.textStyle(), max.Width)
		t.layoutWidth = max.Width
	}
	data.SetSize(t.layout.Size)
}

// Paint draws the shaped paragraph.
func (t *Text) Paint(_ *TextStyle, _ *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawText(t.layout, rendering.Offset{})
}
