package event

import (
	"time"

	"github.com/go-duit/duit/pkg/rendering"
)

const (
	// LinePixels is the number of logical pixels scrolled per wheel line.
	LinePixels = 14

	// DefaultDoubleClickWindow is the longest gap between the presses of a
	// double click.
	DefaultDoubleClickWindow = 500 * time.Millisecond

	// DefaultDoubleClickMinSpacing is the shortest gap between the presses
	// of a double click. Faster repeats are treated as contact bounce.
	DefaultDoubleClickMinSpacing = 30 * time.Millisecond
)

// Tracker converts host Input into Events. It remembers the cursor position,
// since button events carry none, and the last press for double-click
// detection.
type Tracker struct {
	// DoubleClickWindow is the longest gap between the presses of a double
	// click.
	DoubleClickWindow time.Duration
	// DoubleClickMinSpacing is the shortest gap between the presses of a
	// double click.
	DoubleClickMinSpacing time.Duration

	clock      Clock
	cursor     rendering.Offset
	lastPress  time.Time
	lastButton MouseButton
	pending    bool
}

// NewTracker returns a tracker with default double-click timing. A nil clock
// uses the system clock.
func NewTracker(clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{
		DoubleClickWindow:     DefaultDoubleClickWindow,
		DoubleClickMinSpacing: DefaultDoubleClickMinSpacing,
		clock:                 clock,
	}
}

// Cursor returns the last known cursor position in logical pixels.
func (t *Tracker) Cursor() rendering.Offset {
	return t.cursor
}

// Convert normalizes in into an Event. scale is the window's scale factor,
// used to turn physical pixels into logical ones. It reports false for
// input that has no event equivalent, such as unmapped keys.
func (t *Tracker) Convert(in Input, scale float64) (Event, bool) {
	if scale <= 0 {
		scale = 1
	}
	switch in := in.(type) {
	case KeyboardInput:
		if in.Key == KeyUnknown {
			return nil, false
		}
		if in.State == Pressed {
			return KeyPress{Key: in.Key}, true
		}
		return KeyRelease{Key: in.Key}, true
	case MouseInput:
		if in.State == Pressed {
			return MousePress{Pos: t.cursor, Button: in.Button, DoubleClick: t.press(in.Button)}, true
		}
		return MouseRelease{Pos: t.cursor, Button: in.Button}, true
	case CursorMoved:
		t.cursor = in.Position.Scale(1 / scale)
		return MouseMove{Pos: t.cursor}, true
	case ReceivedCharacter:
		return Character{Char: in.Char}, true
	case MouseWheel:
		offset := in.Delta.Scale(LinePixels)
		if in.Unit == ScrollPixels {
			offset = in.Delta.Scale(1 / scale)
		}
		return Scroll{Offset: offset, MousePos: t.cursor}, true
	}
	return nil, false
}

// press records a press of button and reports whether it completes a double
// click. The press that completes a double click does not start a new one.
func (t *Tracker) press(button MouseButton) bool {
	now := t.clock.Now()
	if t.pending && button == t.lastButton {
		gap := now.Sub(t.lastPress)
		if gap >= t.DoubleClickMinSpacing && gap <= t.DoubleClickWindow {
			t.pending = false
			return true
		}
	}
	t.pending = true
	t.lastPress = now
	t.lastButton = button
	return false
}
