package widget

import (
	"fmt"
	"image"
	"testing"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/google/go-cmp/cmp"
)

// logCanvas records canvas calls as strings.
type logCanvas struct {
	ops []string
}

func (c *logCanvas) Save()                    { c.ops = append(c.ops, "save") }
func (c *logCanvas) Restore()                 { c.ops = append(c.ops, "restore") }
func (c *logCanvas) Translate(dx, dy float64) { c.ops = append(c.ops, fmt.Sprintf("translate %g,%g", dx, dy)) }
func (c *logCanvas) ClipRect(r rendering.Rect) {
	c.ops = append(c.ops, fmt.Sprintf("clip %g,%g,%g,%g", r.Left, r.Top, r.Right, r.Bottom))
}
func (c *logCanvas) DrawRect(r rendering.Rect, _ rendering.Paint) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g,%g,%g,%g", r.Left, r.Top, r.Right, r.Bottom))
}
func (c *logCanvas) DrawRRect(rendering.RRect, rendering.Paint)             {}
func (c *logCanvas) DrawLine(rendering.Offset, rendering.Offset, rendering.Paint) {}
func (c *logCanvas) DrawPath(*rendering.Path, rendering.Paint)              {}
func (c *logCanvas) DrawText(*rendering.TextLayout, rendering.Offset)       {}
func (c *logCanvas) DrawImage(image.Image, rendering.Rect)                  {}
func (c *logCanvas) Size() rendering.Size                                   { return rendering.Size{Width: 100, Height: 100} }

type boxStyle struct {
	Color rendering.Color `yaml:"color"`
}

// box is a leaf widget with a fixed size that records what it receives.
type box struct {
	Base[boxStyle]
	size    rendering.Size
	events  []event.Event
	changed int
	mounted int
	onEvent func(data *Data, cx *Context)
}

func (b *box) BaseClass() string { return "box" }

func (b *box) Mount(*Data) { b.mounted++ }

func (b *box) HandleEvent(data *Data, cx *Context, ev event.Event) {
	b.events = append(b.events, ev)
	if b.onEvent != nil {
		b.onEvent(data, cx)
	}
	data.PassEventToChildren(cx, ev)
}

func (b *box) StyleChanged(*boxStyle, *Data, *Context) { b.changed++ }

func (b *box) Layout(_ *boxStyle, data *Data, cx *Context, max rendering.Size) {
	for _, child := range data.Children() {
		child.Layout(cx, max)
	}
	data.SetSize(b.size)
}

func (b *box) Paint(_ *boxStyle, data *Data, cx *Context) {
	cx.Canvas.DrawRect(data.Bounds(), rendering.FillPaint(rendering.ColorRed))
	data.PaintChildren(cx)
}

func (b *box) HitTest(data *Data, pos rendering.Offset) HitTestResult {
	return HitTestResult(data.Bounds().Contains(pos))
}

// group has no style and only forwards to its children.
type group struct {
	Base[style.NoStyle]
}

func (g *group) BaseClass() string { return "group" }

func (g *group) Layout(_ *style.NoStyle, data *Data, cx *Context, max rendering.Size) {
	for _, child := range data.Children() {
		child.Layout(cx, max)
	}
	data.SetSize(max)
}

func (g *group) Paint(_ *style.NoStyle, data *Data, cx *Context) {
	data.PaintChildren(cx)
}

const testSheet = `
styles:
  box:
    color: rgb(255, 0, 0)
`

func newContext(t *testing.T) (*Context, *logCanvas) {
	t.Helper()
	engine := style.NewEngine()
	if err := engine.AppendSheet([]byte(testSheet)); err != nil {
		t.Fatal(err)
	}
	canvas := &logCanvas{}
	return &Context{Canvas: canvas, Styles: engine, Messages: &Queue{}}, canvas
}

type silentHandler struct{}

func (silentHandler) HandleError(*errors.DuitError)  {}
func (silentHandler) HandlePanic(*errors.PanicError) {}

// expectFatal runs fn and returns the *DuitError it panics with.
func expectFatal(t *testing.T, fn func()) *errors.DuitError {
	t.Helper()
	old := errors.DefaultHandler
	errors.SetHandler(silentHandler{})
	defer errors.SetHandler(old)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	de, ok := errors.AsDuitError(recovered)
	if !ok {
		t.Fatalf("expected a *DuitError panic, got %v", recovered)
	}
	return de
}

func TestNewAddsBaseClass(t *testing.T) {
	p := New[boxStyle](&box{})
	if diff := cmp.Diff([]string{"box"}, p.Data().Classes()); diff != "" {
		t.Errorf("Classes mismatch (-want +got):\n%s", diff)
	}
	if p.Data().ClassesDirty() {
		t.Error("base class should not mark classes dirty")
	}
}

func TestLayoutHiddenIsZero(t *testing.T) {
	cx, _ := newContext(t)
	b := &box{size: rendering.Size{Width: 10, Height: 10}}
	p := New[boxStyle](b)
	p.Layout(cx, rendering.Size{Width: 100, Height: 100})
	if p.Data().Size() != b.size {
		t.Fatalf("Size = %v, want %v", p.Data().Size(), b.size)
	}
	p.Data().SetHidden(true)
	p.Layout(cx, rendering.Size{Width: 100, Height: 100})
	if p.Data().Size() != (rendering.Size{}) {
		t.Errorf("hidden Size = %v, want zero", p.Data().Size())
	}
}

func TestLayoutRecordsChildOffset(t *testing.T) {
	cx, _ := newContext(t)
	inner := New[boxStyle](&box{})
	inner.Data().SetOffset(rendering.Offset{X: 1, Y: 2})
	mid := New[style.NoStyle](&group{})
	mid.Data().AddChild(inner)
	mid.Data().SetOffset(rendering.Offset{X: 10, Y: 20})
	root := New[style.NoStyle](&group{})
	root.Data().AddChild(mid)

	root.Layout(cx, rendering.Size{Width: 50, Height: 50})

	if got := mid.Data().ChildOffset(); got != (rendering.Offset{X: 1, Y: 2}) {
		t.Errorf("mid ChildOffset = %v", got)
	}
	if got := root.Data().ChildOffset(); got != (rendering.Offset{X: 11, Y: 22}) {
		t.Errorf("root ChildOffset = %v", got)
	}
}

func TestPaintTranslatesAndRestores(t *testing.T) {
	cx, canvas := newContext(t)
	child := New[boxStyle](&box{size: rendering.Size{Width: 5, Height: 5}})
	hidden := New[boxStyle](&box{size: rendering.Size{Width: 5, Height: 5}})
	hidden.Data().SetHidden(true)
	root := New[style.NoStyle](&group{})
	root.Data().AddChild(child)
	root.Data().AddChild(hidden)
	root.Data().SetOrigin(rendering.Offset{X: 3, Y: 4})
	root.Layout(cx, rendering.Size{Width: 20, Height: 20})
	child.Data().SetOrigin(rendering.Offset{X: 7, Y: 0})

	root.Paint(cx)

	want := []string{
		"save", "translate 3,4",
		"save", "translate 7,0", "rect 0,0,5,5", "restore",
		"restore",
	}
	if diff := cmp.Diff(want, canvas.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleEventTranslatesAndTracksState(t *testing.T) {
	cx, _ := newContext(t)
	b := &box{size: rendering.Size{Width: 10, Height: 10}}
	p := New[boxStyle](b)
	p.Layout(cx, rendering.Size{Width: 100, Height: 100})
	p.Data().SetOrigin(rendering.Offset{X: 20, Y: 20})

	p.HandleEvent(cx, event.MouseMove{Pos: rendering.Offset{X: 25, Y: 25}})
	if got := b.events[0]; got != event.Event(event.MouseMove{Pos: rendering.Offset{X: 5, Y: 5}}) {
		t.Errorf("event = %v, want translated by -origin", got)
	}
	if !p.Data().State().Hovered || !p.Data().HasClass(ClassHovered) {
		t.Error("expected hovered state and class")
	}
	if b.changed != 1 {
		t.Errorf("StyleChanged calls = %d, want 1", b.changed)
	}
	if p.Data().ClassesDirty() {
		t.Error("classes should be clean after dispatch")
	}

	// Moving within the widget changes nothing.
	p.HandleEvent(cx, event.MouseMove{Pos: rendering.Offset{X: 26, Y: 26}})
	if b.changed != 1 {
		t.Errorf("StyleChanged calls = %d, want 1", b.changed)
	}

	p.HandleEvent(cx, event.MousePress{Pos: rendering.Offset{X: 30, Y: 30}, Button: event.ButtonLeft})
	if !p.Data().State().Pressed || !p.Data().HasClass(ClassPressed) {
		t.Error("press on the edge should count as inside")
	}
	p.HandleEvent(cx, event.MouseRelease{Pos: rendering.Offset{X: 90, Y: 90}, Button: event.ButtonLeft})
	if p.Data().State().Pressed || p.Data().HasClass(ClassPressed) {
		t.Error("release anywhere should clear pressed")
	}

	p.HandleEvent(cx, event.MouseMove{Pos: rendering.Offset{X: 0, Y: 0}})
	if p.Data().State().Hovered || p.Data().HasClass(ClassHovered) {
		t.Error("leaving should clear hovered")
	}
	if b.changed != 4 {
		t.Errorf("StyleChanged calls = %d, want 4", b.changed)
	}

	p.HandleEvent(cx, event.KeyPress{Key: event.KeyEnter})
	if b.changed != 4 {
		t.Error("keyboard events must not trigger StyleChanged")
	}
}

func TestPressOutsideDoesNotPress(t *testing.T) {
	cx, _ := newContext(t)
	p := New[boxStyle](&box{size: rendering.Size{Width: 10, Height: 10}})
	p.Layout(cx, rendering.Size{Width: 100, Height: 100})
	p.HandleEvent(cx, event.MousePress{Pos: rendering.Offset{X: 11, Y: 0}})
	if p.Data().State().Pressed {
		t.Error("press outside bounds should not press")
	}
}

func TestHitTestOr(t *testing.T) {
	cx, _ := newContext(t)
	hit := New[boxStyle](&box{size: rendering.Size{Width: 10, Height: 10}})
	miss := New[boxStyle](&box{size: rendering.Size{Width: 10, Height: 10}})
	root := New[style.NoStyle](&group{})
	root.Data().AddChild(hit)
	root.Data().AddChild(miss)
	root.Layout(cx, rendering.Size{Width: 100, Height: 100})
	miss.Data().SetOrigin(rendering.Offset{X: 50, Y: 50})

	if got := miss.HitTest(rendering.Offset{X: 5, Y: 5}); got != Missed {
		t.Fatalf("miss.HitTest = %v", got)
	}
	if got := root.HitTest(rendering.Offset{X: 5, Y: 5}); got != Hit {
		t.Errorf("root.HitTest = %v, want hit", got)
	}
	if got := root.HitTest(rendering.Offset{X: 30, Y: 30}); got != Missed {
		t.Errorf("root.HitTest between children = %v, want missed", got)
	}

	root.Data().SetOrigin(rendering.Offset{X: 100, Y: 0})
	if got := root.HitTest(rendering.Offset{X: 105, Y: 5}); got != Hit {
		t.Errorf("HitTest should translate by -origin, got %v", got)
	}
}

func TestMountIsIdempotent(t *testing.T) {
	child := &box{}
	parent := &box{}
	cp := New[boxStyle](child)
	pp := New[boxStyle](parent)
	pp.Data().AddChild(cp)

	pp.Mount()
	pp.Mount()
	if child.mounted != 1 || parent.mounted != 1 {
		t.Errorf("mounted = %d, %d; want 1, 1", child.mounted, parent.mounted)
	}
	if !cp.Mounted() || !pp.Mounted() {
		t.Error("Mounted() should report true after Mount")
	}
}

func TestReentrantDispatchPanics(t *testing.T) {
	cx, _ := newContext(t)
	b := &box{size: rendering.Size{Width: 10, Height: 10}}
	p := New[boxStyle](b)
	h := NewHandle[*box](p)
	b.onEvent = func(*Data, *Context) { h.AddClass("x") }

	de := expectFatal(t, func() { p.HandleEvent(cx, event.KeyPress{Key: event.KeyEnter}) })
	if de.Kind != errors.KindBorrow {
		t.Errorf("Kind = %v, want %v", de.Kind, errors.KindBorrow)
	}
}

func TestHandle(t *testing.T) {
	b := &box{}
	p := New[boxStyle](b)
	h := NewHandle[*box](p)
	if h.Get() != b {
		t.Fatal("Get returned a different widget")
	}
	h.AddClass("selected")
	if !p.Data().HasClass("selected") || !p.Data().ClassesDirty() {
		t.Error("AddClass through handle should add a dirty class")
	}
	h.RemoveClass("selected")
	if p.Data().HasClass("selected") {
		t.Error("RemoveClass through handle failed")
	}
	h.Hide()
	if !p.Data().Hidden() {
		t.Error("Hide failed")
	}
	h.Unhide()
	if p.Data().Hidden() {
		t.Error("Unhide failed")
	}
	h.Update(func(w *box, d *Data) {
		w.size = rendering.Size{Width: 1, Height: 2}
		d.SetFlex(2)
	})
	if b.size.Height != 2 {
		t.Error("Update did not reach the widget")
	}
	if f, ok := p.Data().Flex(); !ok || f != 2 {
		t.Errorf("Flex = %v, %v", f, ok)
	}
}

func TestHandleTypeMismatchPanics(t *testing.T) {
	p := New[style.NoStyle](&group{})
	h := NewHandle[*box](p)
	de := expectFatal(t, func() { h.Get() })
	if de.Kind != errors.KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", de.Kind, errors.KindTypeMismatch)
	}
}

func TestMissingStyleIsFatal(t *testing.T) {
	cx := &Context{Canvas: &logCanvas{}, Styles: style.NewEngine(), Messages: &Queue{}}
	p := New[boxStyle](&box{})
	de := expectFatal(t, func() { p.Layout(cx, rendering.Size{Width: 1, Height: 1}) })
	if de.Kind != errors.KindStyle {
		t.Errorf("Kind = %v, want %v", de.Kind, errors.KindStyle)
	}
}

func TestMissingTextureIsFatal(t *testing.T) {
	cx := &Context{Textures: rendering.NewTextures()}
	de := expectFatal(t, func() { cx.Texture("nope") })
	if de.Kind != errors.KindResource {
		t.Errorf("Kind = %v, want %v", de.Kind, errors.KindResource)
	}
}

func TestDataChildren(t *testing.T) {
	var d Data
	a, b, c := New[boxStyle](&box{}), New[boxStyle](&box{}), New[boxStyle](&box{})
	d.AddChild(a)
	d.AddChild(c)
	d.InsertChild(1, b)
	if d.NumChildren() != 3 || d.Child(1) != b {
		t.Fatalf("InsertChild placed children wrong")
	}
	d.RemoveChild(0)
	if d.Child(0) != b {
		t.Error("RemoveChild removed the wrong child")
	}
	var visited []*Pod
	d.ForEachChild(func(p *Pod) { visited = append(visited, p) })
	if len(visited) != 2 || visited[1] != c {
		t.Error("ForEachChild order")
	}
	d.ClearChildren()
	if d.NumChildren() != 0 {
		t.Error("ClearChildren left children")
	}
}

func TestLayOutChild(t *testing.T) {
	cx, _ := newContext(t)
	tests := []struct {
		name     string
		strategy LayoutStrategy
		max      rendering.Size
		want     rendering.Size
	}{
		{"shrink", Shrink, rendering.Size{Width: 100, Height: 100}, rendering.Size{Width: 30, Height: 20}},
		{"fill", Fill, rendering.Size{Width: 100, Height: 100}, rendering.Size{Width: 100, Height: 100}},
		{"fill unbounded", Fill, rendering.Size{Width: 100, Height: rendering.Infinity}, rendering.Size{Width: 100, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Data
			child := New[boxStyle](&box{size: rendering.Size{Width: 20, Height: 10}})
			d.AddChild(child)
			if got := d.LayOutChild(tt.strategy, 5, cx, tt.max); got != tt.want {
				t.Errorf("LayOutChild = %v, want %v", got, tt.want)
			}
			if child.Data().Origin() != (rendering.Offset{X: 5, Y: 5}) {
				t.Errorf("child origin = %v", child.Data().Origin())
			}
		})
	}
}

func TestQueue(t *testing.T) {
	type click struct{ id int }
	var q Queue
	q.Push(click{1})
	q.Push("text")
	q.Push(click{2})
	q.Push(3)

	if got, ok := Pop[string](&q); !ok || got != "text" {
		t.Errorf("Pop[string] = %q, %v", got, ok)
	}
	if _, ok := Pop[float64](&q); ok {
		t.Error("Pop of absent type should fail")
	}

	var clicks []int
	Drain(&q, func(c click) { clicks = append(clicks, c.id) })
	if diff := cmp.Diff([]int{1, 2}, clicks); diff != "" {
		t.Errorf("clicks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{3}, q.All()); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear left messages")
	}
}

func TestSendMessage(t *testing.T) {
	cx, _ := newContext(t)
	cx.SendMessage("hello")
	if got, _ := Pop[string](cx.Messages); got != "hello" {
		t.Errorf("message = %q", got)
	}
}

func TestWalk(t *testing.T) {
	root := New[style.NoStyle](&group{})
	mid := New[style.NoStyle](&group{})
	leaf := New[boxStyle](&box{})
	root.Data().AddChild(mid)
	mid.Data().AddChild(leaf)
	var depths []int
	Walk(root, func(p *Pod, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	if diff := cmp.Diff([]int{0, 1, 2}, depths); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
}
