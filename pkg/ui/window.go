package ui

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/widget"
)

// WindowID identifies a window created by UI.CreateWindow.
type WindowID uint64

// Positioner computes a window's rectangle from the space available to the
// whole UI. It is consulted on every frame and every event dispatch, so
// windows follow resizes immediately.
type Positioner interface {
	Position(available rendering.Size) rendering.Rect
}

// PositionerFunc adapts a function to Positioner.
type PositionerFunc func(available rendering.Size) rendering.Rect

// Position implements Positioner.
func (f PositionerFunc) Position(available rendering.Size) rendering.Rect {
	return f(available)
}

// FillPositioner covers all available space.
type FillPositioner struct{}

// Position implements Positioner.
func (FillPositioner) Position(available rendering.Size) rendering.Rect {
	return rendering.RectFromOriginSize(rendering.Offset{}, available)
}

// FixedPositioner places the window at a fixed rectangle.
type FixedPositioner struct {
	Rect rendering.Rect
}

// Position implements Positioner.
func (p FixedPositioner) Position(rendering.Size) rendering.Rect {
	return p.Rect
}

// CenteredPositioner centers a window of fixed size. A window larger than
// the available space is anchored at the top-left corner.
type CenteredPositioner struct {
	Size rendering.Size
}

// Position implements Positioner.
func (p CenteredPositioner) Position(available rendering.Size) rendering.Rect {
	left := max(0, (available.Width-p.Size.Width)/2)
	top := max(0, (available.Height-p.Size.Height)/2)
	return rendering.RectFromLTWH(left, top, p.Size.Width, p.Size.Height)
}

// Window is a layer holding one widget tree. Windows do not correspond to
// native windows: all of them share the host's canvas and are stacked by
// z-index.
type Window struct {
	id         WindowID
	root       *widget.Pod
	positioner Positioner
	zIndex     int
	hidden     bool
}

// ID returns the window's identifier.
func (w *Window) ID() WindowID { return w.id }

// Root returns the window's root pod.
func (w *Window) Root() *widget.Pod { return w.root }

// ZIndex returns the window's stacking order. Higher is on top.
func (w *Window) ZIndex() int { return w.zIndex }

// Hidden reports whether the window is hidden.
func (w *Window) Hidden() bool { return w.hidden }

// Rect returns the window's rectangle for the given available space.
func (w *Window) Rect(available rendering.Size) rendering.Rect {
	return w.positioner.Position(available)
}

func (w *Window) render(cx *widget.Context, available rendering.Size) {
	if w.hidden {
		return
	}
	rect := w.Rect(available)

	cx.Canvas.Save()
	cx.Canvas.Translate(rect.Left, rect.Top)
	w.root.Layout(cx, rect.Size())
	w.root.Paint(cx)
	w.root.PaintOverlay(cx)
	cx.Canvas.Restore()
}
