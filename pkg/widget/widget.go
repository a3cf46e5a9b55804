package widget

import (
	"fmt"
	"reflect"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
)

// Widget is implemented by every concrete widget. S is the widget's style
// schema.
//
// Embed Base[S] to inherit the default behavior of every method except
// BaseClass, Layout and Paint.
type Widget[S any] interface {
	// BaseClass returns the intrinsic style class, always applied.
	BaseClass() string

	// Mount is called once when the widget is first attached to a tree.
	Mount(data *Data)

	// HandleEvent handles an input event. Positions in ev are relative to
	// the widget's own origin.
	HandleEvent(data *Data, cx *Context, ev event.Event)

	// StyleChanged is called after an event dispatch that changed the
	// widget's classes.
	StyleChanged(style *S, data *Data, cx *Context)

	// Layout must set the widget's size and the origin of every child it
	// wants visible, given the maximum size available.
	Layout(style *S, data *Data, cx *Context, max rendering.Size)

	// Paint draws the widget and, usually, its children.
	Paint(style *S, data *Data, cx *Context)

	// PaintOverlay draws content that must appear above all normal content
	// of the window, such as dropdowns and tooltips.
	PaintOverlay(style *S, data *Data, cx *Context)

	// HitTest reports whether a click at pos, relative to the widget's
	// origin, would hit it.
	HitTest(data *Data, pos rendering.Offset) HitTestResult
}

// Base provides the default implementations of the optional Widget methods.
type Base[S any] struct{}

// Mount does nothing.
func (Base[S]) Mount(*Data) {}

// HandleEvent passes the event to every child.
func (Base[S]) HandleEvent(data *Data, cx *Context, ev event.Event) {
	data.PassEventToChildren(cx, ev)
}

// StyleChanged does nothing.
func (Base[S]) StyleChanged(*S, *Data, *Context) {}

// PaintOverlay runs the overlay pass of every child.
func (Base[S]) PaintOverlay(_ *S, data *Data, cx *Context) {
	data.PaintChildrenOverlay(cx)
}

// HitTest returns the OR of the children's hit tests.
func (Base[S]) HitTest(data *Data, pos rendering.Offset) HitTestResult {
	return data.PassHitTestToChildren(pos)
}

// Dyn is a widget with its style type erased.
type Dyn interface {
	BaseClass() string
	Mount(data *Data)
	HandleEvent(data *Data, cx *Context, ev event.Event)
	StyleChanged(data *Data, cx *Context)
	Layout(data *Data, cx *Context, max rendering.Size)
	Paint(data *Data, cx *Context)
	PaintOverlay(data *Data, cx *Context)
	HitTest(data *Data, pos rendering.Offset) HitTestResult

	// Widget returns the concrete widget.
	Widget() any
}

// Erase wraps w so it can be stored next to widgets of other types.
func Erase[S any](w Widget[S]) Dyn {
	return erased[S]{w: w}
}

type erased[S any] struct {
	w Widget[S]
}

func (e erased[S]) style(data *Data, cx *Context, op string) *S {
	s, err := style.Get[S](cx.Styles, data.classes)
	if err != nil {
		errors.Fatal(op, errors.KindStyle, fmt.Errorf("%s: %w", TypeName(e.w), err))
	}
	return s
}

func (e erased[S]) BaseClass() string { return e.w.BaseClass() }

func (e erased[S]) Mount(data *Data) { e.w.Mount(data) }

func (e erased[S]) HandleEvent(data *Data, cx *Context, ev event.Event) {
	e.w.HandleEvent(data, cx, ev)
}

func (e erased[S]) StyleChanged(data *Data, cx *Context) {
	e.w.StyleChanged(e.style(data, cx, "widget.StyleChanged"), data, cx)
}

func (e erased[S]) Layout(data *Data, cx *Context, max rendering.Size) {
	e.w.Layout(e.style(data, cx, "widget.Layout"), data, cx, max)
}

func (e erased[S]) Paint(data *Data, cx *Context) {
	e.w.Paint(e.style(data, cx, "widget.Paint"), data, cx)
}

func (e erased[S]) PaintOverlay(data *Data, cx *Context) {
	e.w.PaintOverlay(e.style(data, cx, "widget.PaintOverlay"), data, cx)
}

func (e erased[S]) HitTest(data *Data, pos rendering.Offset) HitTestResult {
	return e.w.HitTest(data, pos)
}

func (e erased[S]) Widget() any { return e.w }

// TypeName returns the Go type name of a widget, e.g. "*widgets.Text".
func TypeName(w any) string {
	return reflect.TypeOf(w).String()
}

// HitTestResult is the outcome of a hit test.
type HitTestResult bool

const (
	Missed HitTestResult = false
	Hit    HitTestResult = true
)

// Or returns Hit if either result is Hit.
func (r HitTestResult) Or(other HitTestResult) HitTestResult {
	return r || other
}

func (r HitTestResult) String() string {
	if r {
		return "hit"
	}
	return "missed"
}
