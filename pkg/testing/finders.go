package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/ui"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

// Element is a pod found in a rendered UI, together with where it ended up
// on screen.
type Element struct {
	Pod *widget.Pod
	// Window is the window holding the pod.
	Window ui.WindowID
	// Rect is the pod's bounds in UI coordinates.
	Rect rendering.Rect
	// Depth is the distance from the window's root.
	Depth int

	ancestors []Element
}

// Widget returns the concrete widget.
func (e Element) Widget() any { return e.Pod.Widget() }

// Center returns the middle of the element's bounds in UI coordinates.
func (e Element) Center() rendering.Offset { return e.Rect.Center() }

// Ancestors returns the element's ancestors, the window root first.
func (e Element) Ancestors() []Element { return e.ancestors }

// Finder selects elements of a rendered UI.
type Finder interface {
	// Matches reports whether e is selected.
	Matches(e Element) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []Element
	finder   Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.elements[0]
}

// FirstOK returns the first match and whether there was one.
func (r FinderResult) FirstOK() (Element, bool) {
	if len(r.elements) == 0 {
		return Element{}, false
	}
	return r.elements[0], true
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.description()))
	}
	return r.elements[index]
}

// All returns all matches, windows bottom to top and each tree depth
// first.
func (r FinderResult) All() []Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists reports whether at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Pod returns the pod of the first match. Panics if no matches.
func (r FinderResult) Pod() *widget.Pod {
	return r.First().Pod
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() any {
	return r.First().Widget()
}

// WidgetAs returns the first match's widget as a T. Panics if no matches
// or if the widget is not a T.
func WidgetAs[T any](r FinderResult) T {
	w, ok := r.Widget().(T)
	if !ok {
		panic(fmt.Sprintf("%s: widget is %s, not %s", r.description(), widget.TypeName(r.Widget()), reflect.TypeFor[T]()))
	}
	return w
}

// --- Concrete finders ---

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Matches(e Element) bool {
	return reflect.TypeOf(e.Widget()) == f.widgetType
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches pods whose widget is a T, usually a
// pointer type such as *widgets.Button.
func ByType[T any]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type classFinder struct {
	class string
}

func (f *classFinder) Matches(e Element) bool {
	return e.Pod.Data().HasClass(f.class)
}

func (f *classFinder) Description() string {
	return fmt.Sprintf("ByClass(%q)", f.class)
}

// ByClass returns a finder that matches pods carrying class, including
// base classes and the intrinsic hovered and pressed classes.
func ByClass(class string) Finder {
	return &classFinder{class: class}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Matches(e Element) bool {
	t, ok := e.Widget().(*widgets.Text)
	if !ok {
		return false
	}
	if f.contains {
		return strings.Contains(t.Text(), f.text)
	}
	return t.Text() == f.text
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches [widgets.Text] with exact content.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches [widgets.Text] containing
// the given substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type podFinder struct {
	pod *widget.Pod
}

func (f *podFinder) Matches(e Element) bool { return e.Pod == f.pod }

func (f *podFinder) Description() string {
	return fmt.Sprintf("ByPod(%s)", widget.TypeName(f.pod.Widget()))
}

// ByPod returns a finder that matches exactly pod, typically taken from an
// instance or a handle.
func ByPod(pod *widget.Pod) Finder {
	return &podFinder{pod: pod}
}

// ByID returns a finder that matches the widget with the given ID in inst.
func ByID(inst *ui.Instance, id string) Finder {
	pod, ok := inst.Pod(id)
	if !ok {
		return &predicateFinder{
			fn:   func(Element) bool { return false },
			desc: fmt.Sprintf("ByID(%q): no such ID in spec %s", id, inst.Name()),
		}
	}
	return &predicateFinder{
		fn:   func(e Element) bool { return e.Pod == pod },
		desc: fmt.Sprintf("ByID(%q)", id),
	}
}

type predicateFinder struct {
	fn   func(Element) bool
	desc string
}

func (f *predicateFinder) Matches(e Element) bool { return f.fn(e) }

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(Element) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Matches(e Element) bool {
	if !f.matching.Matches(e) {
		return false
	}
	for _, a := range e.ancestors {
		if f.of.Matches(a) {
			return true
		}
	}
	return false
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements selected by matching
// that have an ancestor selected by of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectElements walks every visible window, bottom to top, and every
// visible pod in it, depth first. Hidden pods and their subtrees are
// skipped.
func collectElements(u *ui.UI, size rendering.Size) []Element {
	var out []Element
	for _, w := range u.Windows() {
		if w.Hidden() {
			continue
		}
		origin := w.Rect(size).Origin()
		collectPod(w.ID(), w.Root(), origin, 0, nil, &out)
	}
	return out
}

func collectPod(window ui.WindowID, pod *widget.Pod, parent rendering.Offset, depth int, ancestors []Element, out *[]Element) {
	data := pod.Data()
	if data.Hidden() {
		return
	}
	origin := parent.Add(data.Origin())
	e := Element{
		Pod:       pod,
		Window:    window,
		Rect:      rendering.RectFromOriginSize(origin, data.Size()),
		Depth:     depth,
		ancestors: ancestors,
	}
	*out = append(*out, e)

	// Clip capacity so siblings never share an appended backing array.
	childAncestors := append(ancestors[:len(ancestors):len(ancestors)], e)
	for _, child := range data.Children() {
		collectPod(window, child, origin, depth+1, childAncestors, out)
	}
}
