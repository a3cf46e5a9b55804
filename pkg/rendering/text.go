package rendering

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontSize is used when no font size is specified.
	DefaultFontSize = 16
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64
	Lines      []TextLine
}

// TextShaper measures and wraps text. Backends supply their own shaper so
// that layout matches what they can draw.
type TextShaper interface {
	// Shape lays out text in the given style, wrapping at maxWidth.
	// A maxWidth of zero or infinity disables wrapping.
	Shape(text string, style TextStyle, maxWidth float64) *TextLayout
}

// BasicShaper shapes text with a fixed bitmap face scaled to the requested
// font size. It needs no font files, which makes it suitable for headless
// rendering and tests.
type BasicShaper struct {
	// Face is the unscaled face. Nil means basicfont.Face7x13.
	Face font.Face
}

func (s *BasicShaper) face() font.Face {
	if s != nil && s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

// Shape implements TextShaper.
func (s *BasicShaper) Shape(text string, style TextStyle, maxWidth float64) *TextLayout {
	face := s.face()
	size := style.FontSize
	if size <= 0 {
		size = DefaultFontSize
		style.FontSize = size
	}
	metrics := face.Metrics()
	base := fixedToFloat(metrics.Height)
	scale := 1.0
	if base > 0 {
		scale = size / base
	}
	measure := func(line string) float64 {
		return fixedToFloat(font.MeasureString(face, line)) * scale
	}
	return buildLayout(text, style, maxWidth, measure,
		fixedToFloat(metrics.Ascent)*scale, fixedToFloat(metrics.Descent)*scale, face)
}

// MonospaceShaper shapes text on a fixed character grid, as used by
// cell-based backends.
type MonospaceShaper struct {
	CellWidth  float64
	CellHeight float64
}

// Shape implements TextShaper.
func (s MonospaceShaper) Shape(text string, style TextStyle, maxWidth float64) *TextLayout {
	measure := func(line string) float64 {
		return float64(utf8.RuneCountInString(line)) * s.CellWidth
	}
	return buildLayout(text, style, maxWidth, measure, s.CellHeight, 0, nil)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func buildLayout(text string, style TextStyle, maxWidth float64, measure func(string) float64, ascent, descent float64, face font.Face) *TextLayout {
	lineHeight := ascent + descent
	lines := layoutLines(text, maxWidth, measure)
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{}}
	}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

// wrapParagraph breaks text at whitespace so every line fits in maxWidth.
// A word wider than maxWidth is split at the last rune that fits.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
