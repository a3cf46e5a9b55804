package widget

import (
	"slices"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
)

// Intrinsic classes maintained from pointer state.
const (
	ClassHovered = "hovered"
	ClassPressed = "pressed"
)

// State is a widget's pointer interaction state.
type State struct {
	Hovered bool
	Pressed bool
}

// LayoutStrategy selects how LayOutChild sizes a single-child widget.
type LayoutStrategy int

const (
	// Shrink sizes the widget to its child plus padding.
	Shrink LayoutStrategy = iota
	// Fill sizes the widget to all available space.
	Fill
)

// Data is the state every widget carries besides its own fields.
//
// Size and Origin are only meaningful after a layout pass for the current
// frame. Children's origins are relative to this widget's coordinate space.
type Data struct {
	children    []*Pod
	origin      rendering.Offset
	offset      rendering.Offset
	childOffset rendering.Offset
	size        rendering.Size
	flex        *float64

	classes      []string
	classesDirty bool

	hidden bool
	state  State
}

// ForEachChild calls fn with every direct child in order.
func (d *Data) ForEachChild(fn func(child *Pod)) {
	for _, child := range d.children {
		fn(child)
	}
}

// Child returns the child at index i.
func (d *Data) Child(i int) *Pod {
	return d.children[i]
}

// Children returns the child list. The slice must not be modified.
func (d *Data) Children() []*Pod {
	return d.children
}

// NumChildren returns the number of direct children.
func (d *Data) NumChildren() int {
	return len(d.children)
}

// PaintChildren paints every child in order.
func (d *Data) PaintChildren(cx *Context) {
	for _, child := range d.children {
		child.Paint(cx)
	}
}

// PaintChildrenOverlay runs the overlay pass of every child in order.
func (d *Data) PaintChildrenOverlay(cx *Context) {
	for _, child := range d.children {
		child.PaintOverlay(cx)
	}
}

// LayOutChild lays out the first child inset by padding on every side and
// sizes this widget according to strategy. It returns the new size.
//
// Fill along an unbounded axis falls back to the child's padded extent.
func (d *Data) LayOutChild(strategy LayoutStrategy, padding float64, cx *Context, max rendering.Size) rendering.Size {
	child := d.children[0]
	child.Layout(cx, rendering.Size{Width: max.Width - 2*padding, Height: max.Height - 2*padding})
	child.data.origin = rendering.Offset{X: padding, Y: padding}
	padded := rendering.Size{
		Width:  child.data.size.Width + 2*padding,
		Height: child.data.size.Height + 2*padding,
	}
	switch strategy {
	case Fill:
		d.size = max
		if max.Width == rendering.Infinity {
			d.size.Width = padded.Width
		}
		if max.Height == rendering.Infinity {
			d.size.Height = padded.Height
		}
	default:
		d.size = padded
	}
	return d.size
}

// PassEventToChildren dispatches ev to every child.
func (d *Data) PassEventToChildren(cx *Context, ev event.Event) {
	for _, child := range d.children {
		child.HandleEvent(cx, ev)
	}
}

// PassHitTestToChildren returns the OR of every child's hit test.
func (d *Data) PassHitTestToChildren(pos rendering.Offset) HitTestResult {
	res := Missed
	for _, child := range d.children {
		res = res.Or(child.HitTest(pos))
	}
	return res
}

// Origin returns the widget's position in its parent's coordinate space.
func (d *Data) Origin() rendering.Offset { return d.origin }

// SetOrigin sets the widget's position in its parent's coordinate space.
func (d *Data) SetOrigin(origin rendering.Offset) { d.origin = origin }

// Size returns the size computed by the last layout.
func (d *Data) Size() rendering.Size { return d.size }

// SetSize records the widget's size. Layout implementations must call it.
func (d *Data) SetSize(size rendering.Size) { d.size = size }

// Offset returns the offset of the widget's content from its top-left
// corner, as reported by its layout.
func (d *Data) Offset() rendering.Offset { return d.offset }

// SetOffset records the offset of the widget's content.
func (d *Data) SetOffset(offset rendering.Offset) { d.offset = offset }

// ChildOffset returns the cumulative content offset of the first child.
func (d *Data) ChildOffset() rendering.Offset { return d.childOffset }

// Bounds returns the widget's rectangle in its own coordinate space.
func (d *Data) Bounds() rendering.Rect {
	return rendering.RectFromOriginSize(rendering.Offset{}, d.size)
}

// State returns the pointer interaction state.
func (d *Data) State() State { return d.state }

// Flex returns the flex factor and whether one is set.
func (d *Data) Flex() (float64, bool) {
	if d.flex == nil {
		return 0, false
	}
	return *d.flex, true
}

// SetFlex sets the flex factor used by a parent Flex.
func (d *Data) SetFlex(flex float64) {
	d.flex = &flex
}

// ClearFlex removes the flex factor.
func (d *Data) ClearFlex() {
	d.flex = nil
}

// AddChild appends a child.
func (d *Data) AddChild(child *Pod) {
	d.children = append(d.children, child)
}

// InsertChild inserts a child at index.
func (d *Data) InsertChild(index int, child *Pod) {
	d.children = slices.Insert(d.children, index, child)
}

// RemoveChild removes the child at index.
func (d *Data) RemoveChild(index int) {
	d.children = slices.Delete(d.children, index, index+1)
}

// ClearChildren removes every child.
func (d *Data) ClearChildren() {
	clear(d.children)
	d.children = d.children[:0]
}

// Classes returns the ordered class list. The slice must not be modified.
func (d *Data) Classes() []string { return d.classes }

// HasClass reports whether the widget carries class.
func (d *Data) HasClass(class string) bool {
	return slices.Contains(d.classes, class)
}

// AddClass appends class and marks the classes dirty.
func (d *Data) AddClass(class string) {
	d.classes = append(d.classes, class)
	d.classesDirty = true
}

// RemoveClass removes the first occurrence of class. The classes are marked
// dirty only if something was removed.
func (d *Data) RemoveClass(class string) {
	if i := slices.Index(d.classes, class); i >= 0 {
		d.classes = slices.Delete(d.classes, i, i+1)
		d.classesDirty = true
	}
}

// ClassesDirty reports whether the classes changed since the last style
// change notification.
func (d *Data) ClassesDirty() bool { return d.classesDirty }

// MarkClassesClean clears the dirty flag.
func (d *Data) MarkClassesClean() { d.classesDirty = false }

// SetHidden hides or shows the widget. Hidden widgets have zero size and are
// not painted.
func (d *Data) SetHidden(hidden bool) { d.hidden = hidden }

// Hidden reports whether the widget is hidden.
func (d *Data) Hidden() bool { return d.hidden }
