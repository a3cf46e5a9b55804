package ui

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// DispatchMode selects which windows receive pointer events.
type DispatchMode int

const (
	// DispatchBroadcast delivers every event to every visible window,
	// regardless of stacking or occlusion.
	DispatchBroadcast DispatchMode = iota
	// DispatchTopmost delivers pointer events only to the topmost visible
	// window whose tree is hit at the pointer position. Keyboard and
	// character events are still broadcast.
	DispatchTopmost
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchBroadcast:
		return "broadcast"
	case DispatchTopmost:
		return "topmost"
	default:
		return fmt.Sprintf("DispatchMode(%d)", int(m))
	}
}

// UI holds the entire UI state: windows and their widget trees, the spec
// registry, the style engine, the input tracker and the message queue.
//
// A UI is not safe for concurrent use. Render, HandleInput and message
// draining are expected to run on one goroutine, between frames.
type UI struct {
	windows []*Window
	nextID  WindowID
	size    rendering.Size

	specs    map[string]*spec.Spec
	kinds    map[string]KindFunc
	styles   *style.Engine
	tracker  *event.Tracker
	messages widget.Queue
	textures *rendering.Textures
	shaper   rendering.TextShaper
	mode     DispatchMode
}

// Option configures a UI.
type Option func(*UI)

// WithClock sets the clock used for double-click detection.
func WithClock(clock event.Clock) Option {
	return func(u *UI) {
		window, spacing := u.tracker.DoubleClickWindow, u.tracker.DoubleClickMinSpacing
		u.tracker = event.NewTracker(clock)
		u.tracker.DoubleClickWindow, u.tracker.DoubleClickMinSpacing = window, spacing
	}
}

// WithDoubleClick sets the double-click timing.
func WithDoubleClick(window, minSpacing time.Duration) Option {
	return func(u *UI) {
		u.tracker.DoubleClickWindow = window
		u.tracker.DoubleClickMinSpacing = minSpacing
	}
}

// WithShaper sets the text shaper handed to widgets.
func WithShaper(shaper rendering.TextShaper) Option {
	return func(u *UI) { u.shaper = shaper }
}

// WithDispatchMode sets how pointer events are routed between windows.
func WithDispatchMode(mode DispatchMode) Option {
	return func(u *UI) { u.mode = mode }
}

// WithTextures shares an existing texture registry.
func WithTextures(textures *rendering.Textures) Option {
	return func(u *UI) { u.textures = textures }
}

// New returns an empty UI with the built-in widget kinds registered.
func New(opts ...Option) *UI {
	u := &UI{
		specs:    make(map[string]*spec.Spec),
		kinds:    make(map[string]KindFunc),
		styles:   style.NewEngine(),
		tracker:  event.NewTracker(nil),
		textures: rendering.NewTextures(),
		nextID:   1,
	}
	registerBuiltinKinds(u)
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Styles returns the style engine.
func (u *UI) Styles() *style.Engine { return u.styles }

// Textures returns the texture registry used by image widgets.
func (u *UI) Textures() *rendering.Textures { return u.textures }

// Tracker returns the input tracker.
func (u *UI) Tracker() *event.Tracker { return u.tracker }

// DispatchMode returns how pointer events are routed between windows.
func (u *UI) DispatchMode() DispatchMode { return u.mode }

// SetDispatchMode changes how pointer events are routed between windows.
func (u *UI) SetDispatchMode(mode DispatchMode) { u.mode = mode }

// AddStylesheet appends a stylesheet to the style engine. On error nothing
// from the sheet is applied.
func (u *UI) AddStylesheet(data []byte) error {
	if err := u.styles.AppendSheet(data); err != nil {
		return fmt.Errorf("add stylesheet: %w", err)
	}
	return nil
}

// AddStylesheetFile appends the stylesheet at path.
func (u *UI) AddStylesheetFile(path string) error {
	if err := u.styles.AppendSheetFile(path); err != nil {
		return fmt.Errorf("add stylesheet: %w", err)
	}
	return nil
}

// AddSpec registers s under its name, replacing any spec with that name.
func (u *UI) AddSpec(s *spec.Spec) *UI {
	u.specs[s.Name] = s
	return u
}

// AddSpecYAML parses every spec document in data and registers them.
func (u *UI) AddSpecYAML(data []byte) error {
	specs, err := spec.ParseAll(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("add spec: %w", err)
	}
	for _, s := range specs {
		u.AddSpec(s)
	}
	return nil
}

// AddSpecFile parses and registers every spec in the file at path.
func (u *UI) AddSpecFile(path string) error {
	specs, err := spec.ParseFile(path)
	if err != nil {
		return err
	}
	for _, s := range specs {
		u.AddSpec(s)
	}
	return nil
}

// Spec returns the registered spec called name.
func (u *UI) Spec(name string) (*spec.Spec, bool) {
	s, ok := u.specs[name]
	return s, ok
}

// SpecNames returns the registered spec names in sorted order.
func (u *UI) SpecNames() []string {
	names := make([]string, 0, len(u.specs))
	for name := range u.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CreateWindow mounts root and shows it in a new window. Windows with equal
// z-index stack in creation order.
func (u *UI) CreateWindow(root *widget.Pod, positioner Positioner, zIndex int) WindowID {
	root.Mount()
	w := &Window{id: u.nextID, root: root, positioner: positioner, zIndex: zIndex}
	u.nextID++
	u.windows = append(u.windows, w)
	u.sortWindows()
	return w.id
}

// CloseWindow removes a window. It reports whether the window existed.
func (u *UI) CloseWindow(id WindowID) bool {
	i := u.windowIndex(id)
	if i < 0 {
		return false
	}
	u.windows = slices.Delete(u.windows, i, i+1)
	u.sortWindows()
	return true
}

// SetWindowHidden hides or shows a window. Hidden windows are neither
// rendered nor sent events. It reports whether the window exists.
func (u *UI) SetWindowHidden(id WindowID, hidden bool) bool {
	i := u.windowIndex(id)
	if i < 0 {
		return false
	}
	u.windows[i].hidden = hidden
	return true
}

// Window returns the window with the given id.
func (u *UI) Window(id WindowID) (*Window, bool) {
	i := u.windowIndex(id)
	if i < 0 {
		return nil, false
	}
	return u.windows[i], true
}

// Windows returns every window from bottom to top.
func (u *UI) Windows() []*Window {
	return slices.Clone(u.windows)
}

func (u *UI) windowIndex(id WindowID) int {
	return slices.IndexFunc(u.windows, func(w *Window) bool { return w.id == id })
}

func (u *UI) sortWindows() {
	slices.SortStableFunc(u.windows, func(a, b *Window) int { return cmp.Compare(a.zIndex, b.zIndex) })
}

func (u *UI) context(canvas rendering.Canvas) *widget.Context {
	return &widget.Context{
		Canvas:   canvas,
		Styles:   u.styles,
		Messages: &u.messages,
		Textures: u.textures,
		Shaper:   u.shaper,
	}
}

// Render lays out and paints every visible window onto canvas, from the
// lowest z-index to the highest. Each window runs its layout, paint and
// overlay passes before the next window starts, so a window's overlays can
// be covered by higher windows.
func (u *UI) Render(canvas rendering.Canvas, available rendering.Size) {
	u.size = available
	cx := u.context(canvas)
	for _, w := range u.windows {
		w.render(cx, available)
	}
}

// HandleInput converts host input into an event and dispatches it. scale
// is the host window's scale factor.
func (u *UI) HandleInput(in event.Input, scale float64) {
	if ev, ok := u.tracker.Convert(in, scale); ok {
		u.Dispatch(ev)
	}
}

// Dispatch delivers ev, in UI coordinates, to the windows selected by the
// dispatch mode. Window rectangles are computed from the size passed to the
// last Render.
func (u *UI) Dispatch(ev event.Event) {
	cx := u.context(nil)
	if u.mode == DispatchTopmost {
		if pos, ok := event.Position(ev); ok {
			if w := u.topmostAt(pos); w != nil {
				u.deliver(cx, w, ev)
			}
			return
		}
	}
	for _, w := range slices.Clone(u.windows) {
		if !w.hidden {
			u.deliver(cx, w, ev)
		}
	}
}

func (u *UI) deliver(cx *widget.Context, w *Window, ev event.Event) {
	origin := w.Rect(u.size).Origin()
	w.root.HandleEvent(cx, ev.Translated(origin.Neg()))
}

// topmostAt returns the highest visible window whose tree is hit at pos.
func (u *UI) topmostAt(pos rendering.Offset) *Window {
	for i := len(u.windows) - 1; i >= 0; i-- {
		w := u.windows[i]
		if w.hidden {
			continue
		}
		if w.root.HitTest(pos.Sub(w.Rect(u.size).Origin())) == widget.Hit {
			return w
		}
	}
	return nil
}

// HandleMessages calls fn for every queued message of type T, in the order
// they were sent, and removes them. Messages of other types stay queued.
func HandleMessages[T any](u *UI, fn func(T)) {
	widget.Drain(&u.messages, fn)
}

// PopMessage removes and returns the oldest queued message of type T.
func PopMessage[T any](u *UI) (T, bool) {
	return widget.Pop[T](&u.messages)
}

// PendingMessages returns the number of queued messages.
func (u *UI) PendingMessages() int {
	return u.messages.Len()
}

// ClearMessages drops every queued message.
func (u *UI) ClearMessages() {
	u.messages.Clear()
}
