package testing

import (
	"fmt"
	"image"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/go-duit/duit/pkg/rendering"
)

var _ rendering.Canvas = (*RecordingCanvas)(nil)

// DisplayOp is one recorded canvas call. Params hold rounded geometry and
// colors formatted as hex so that ops compare and serialize stably.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty"`
}

func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	parts := make([]string, 0, len(o.Params))
	for _, k := range slices.Sorted(maps.Keys(o.Params)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, o.Params[k]))
	}
	return o.Op + "(" + strings.Join(parts, " ") + ")"
}

// RecordingCanvas is a rendering.Canvas that records every call instead of
// drawing. Positions are recorded as passed, relative to the current
// translation; Translated reports the absolute position too.
type RecordingCanvas struct {
	ops   []DisplayOp
	size  rendering.Size
	stack []rendering.Offset
	at    rendering.Offset
}

// NewRecordingCanvas returns an empty canvas of the given size.
func NewRecordingCanvas(size rendering.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpsNamed returns the recorded operations called op, in call order.
func (c *RecordingCanvas) OpsNamed(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Texts returns the text of every DrawText call, in call order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, o := range c.OpsNamed("drawText") {
		out = append(out, o.Params["text"].(string))
	}
	return out
}

// Reset drops every recorded operation and the transform state.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
	c.stack = nil
	c.at = rendering.Offset{}
}

func (c *RecordingCanvas) record(op string, kvs ...any) {
	c.ops = append(c.ops, DisplayOp{Op: op, Params: sortedMap(kvs...)})
}

func (c *RecordingCanvas) Save() {
	c.stack = append(c.stack, c.at)
	c.record("save")
}

func (c *RecordingCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.at = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.record("restore")
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.at = c.at.Add(rendering.Offset{X: dx, Y: dy})
	c.record("translate", "dx", round2(dx), "dy", round2(dy))
}

func (c *RecordingCanvas) ClipRect(rect rendering.Rect) {
	c.record("clipRect", "rect", serializeRect(rect))
}

func (c *RecordingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.record("drawRect",
		"rect", serializeRect(rect),
		"abs", serializeRect(rect.Translate(c.at.X, c.at.Y)),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
}

func (c *RecordingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.record("drawRRect",
		"rect", serializeRect(rrect.Rect),
		"abs", serializeRect(rrect.Rect.Translate(c.at.X, c.at.Y)),
		"radius", round2(rrect.UniformRadius()),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
}

func (c *RecordingCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.record("drawLine",
		"x1", round2(start.X), "y1", round2(start.Y),
		"x2", round2(end.X), "y2", round2(end.Y),
		"color", serializeColor(paint.Color),
	)
}

func (c *RecordingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.record("drawPath",
		"bounds", serializeRect(path.Bounds()),
		"color", serializeColor(paint.Color),
	)
}

func (c *RecordingCanvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	abs := position.Add(c.at)
	c.record("drawText",
		"text", layout.Text,
		"x", round2(position.X), "y", round2(position.Y),
		"absX", round2(abs.X), "absY", round2(abs.Y),
		"color", serializeColor(layout.Style.Color),
	)
}

func (c *RecordingCanvas) DrawImage(img image.Image, dst rendering.Rect) {
	b := img.Bounds()
	c.record("drawImage",
		"dst", serializeRect(dst),
		"width", b.Dx(), "height", b.Dy(),
	)
}

func (c *RecordingCanvas) Size() rendering.Size {
	return c.size
}

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds to 2 decimal places. Infinities are kept.
func round2(f float64) float64 {
	if math.IsInf(f, 0) {
		return f
	}
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. It returns nil
// for no pairs.
func sortedMap(kvs ...any) map[string]any {
	if len(kvs) == 0 {
		return nil
	}
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
