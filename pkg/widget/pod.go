package widget

import (
	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
)

// Pod holds one widget and its Data. Pods are shared by pointer: a pod is
// reachable from its parent's child list and from any Handle to it.
type Pod struct {
	widget   Dyn
	data     Data
	borrowed bool
	mounted  bool
}

// New wraps w in a new pod carrying w's base class.
func New[S any](w Widget[S]) *Pod {
	return NewDyn(Erase(w))
}

// NewDyn wraps an already erased widget in a new pod.
func NewDyn(w Dyn) *Pod {
	p := &Pod{widget: w}
	p.data.AddClass(w.BaseClass())
	p.data.MarkClassesClean()
	return p
}

// Data returns the pod's widget data.
func (p *Pod) Data() *Data {
	return &p.data
}

// Widget returns the concrete widget held by the pod.
func (p *Pod) Widget() any {
	return p.widget.Widget()
}

// Borrowed reports whether the pod is currently being dispatched to.
func (p *Pod) Borrowed() bool {
	return p.borrowed
}

// borrow marks the pod as in use and returns the function that releases it.
// Entering a pod that is already in use panics.
func (p *Pod) borrow(op string) func() {
	if p.borrowed {
		errors.Fatal(op, errors.KindBorrow, &errors.BorrowError{Widget: TypeName(p.Widget()), Op: op})
	}
	p.borrowed = true
	return func() { p.borrowed = false }
}

// Mount mounts the pod's children and then the pod itself. Mounting is
// idempotent.
func (p *Pod) Mount() {
	if p.mounted {
		return
	}
	defer p.borrow("widget.Pod.Mount")()
	for _, child := range p.data.children {
		child.Mount()
	}
	p.widget.Mount(&p.data)
	p.mounted = true
}

// Mounted reports whether Mount has run.
func (p *Pod) Mounted() bool {
	return p.mounted
}

// Layout lays out the widget within max. A hidden widget gets zero size.
// After layout the pod records the first child's cumulative content offset.
func (p *Pod) Layout(cx *Context, max rendering.Size) {
	if p.data.hidden {
		p.data.size = rendering.Size{}
		return
	}
	defer p.borrow("widget.Pod.Layout")()
	p.widget.Layout(&p.data, cx, max)

	if len(p.data.children) > 0 {
		first := &p.data.children[0].data
		p.data.childOffset = first.offset.Add(first.childOffset)
	}
}

// Paint paints the widget with the canvas origin moved to the widget's
// origin. Hidden widgets are skipped.
func (p *Pod) Paint(cx *Context) {
	p.paint(cx, "widget.Pod.Paint", p.widget.Paint)
}

// PaintOverlay runs the widget's overlay pass with the canvas origin moved
// to the widget's origin. Hidden widgets are skipped.
func (p *Pod) PaintOverlay(cx *Context) {
	p.paint(cx, "widget.Pod.PaintOverlay", p.widget.PaintOverlay)
}

func (p *Pod) paint(cx *Context, op string, paint func(*Data, *Context)) {
	if p.data.hidden {
		return
	}
	defer p.borrow(op)()
	cx.Canvas.Save()
	cx.Canvas.Translate(p.data.origin.X, p.data.origin.Y)
	paint(&p.data, cx)
	cx.Canvas.Restore()
}

// HandleEvent delivers ev, given in the parent's coordinate space, to the
// widget. Pointer state and the hovered/pressed classes are updated first.
// If the classes changed during the dispatch, the widget is notified
// through StyleChanged afterwards.
func (p *Pod) HandleEvent(cx *Context, ev event.Event) {
	defer p.borrow("widget.Pod.HandleEvent")()
	ev = ev.Translated(p.data.origin.Neg())
	p.updateState(ev)

	p.widget.HandleEvent(&p.data, cx, ev)

	if p.data.classesDirty {
		p.widget.StyleChanged(&p.data, cx)
		p.data.classesDirty = false
	}
}

// HitTest reports whether pos, in the parent's coordinate space, hits the
// widget. Hidden widgets are never hit.
func (p *Pod) HitTest(pos rendering.Offset) HitTestResult {
	if p.data.hidden {
		return Missed
	}
	defer p.borrow("widget.Pod.HitTest")()
	return p.widget.HitTest(&p.data, pos.Sub(p.data.origin))
}

func (p *Pod) updateState(ev event.Event) {
	bounds := p.data.Bounds()
	switch ev := ev.(type) {
	case event.MousePress:
		if bounds.Contains(ev.Pos) {
			p.data.state.Pressed = true
			p.data.AddClass(ClassPressed)
		}
	case event.MouseRelease:
		if p.data.state.Pressed {
			p.data.state.Pressed = false
			p.data.RemoveClass(ClassPressed)
		}
	case event.MouseMove:
		inside := bounds.Contains(ev.Pos)
		if inside && !p.data.state.Hovered {
			p.data.state.Hovered = true
			p.data.AddClass(ClassHovered)
		} else if !inside && p.data.state.Hovered {
			p.data.state.Hovered = false
			p.data.RemoveClass(ClassHovered)
		}
	}
}

// Walk calls fn for p and every descendant in depth-first order. Returning
// false from fn skips the node's children.
func Walk(p *Pod, fn func(p *Pod, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p *Pod, depth int, fn func(*Pod, int) bool) {
	if !fn(p, depth) {
		return
	}
	for _, child := range p.data.children {
		walk(child, depth+1, fn)
	}
}
