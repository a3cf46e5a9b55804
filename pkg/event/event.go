// Package event defines the input events delivered to widgets and the
// tracker that normalizes host input into them.
package event

import (
	"fmt"

	"github.com/go-duit/duit/pkg/rendering"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other"
	}
}

// Event is an input event delivered to widgets. The set of variants is
// closed: MousePress, MouseRelease, MouseMove, KeyPress, KeyRelease,
// Character and Scroll.
type Event interface {
	// Translated returns a copy of the event with every positional field
	// shifted by delta. Keyboard events are returned unchanged.
	Translated(delta rendering.Offset) Event

	isEvent()
}

// MousePress is a mouse button going down.
type MousePress struct {
	Pos    rendering.Offset
	Button MouseButton
	// DoubleClick is set on the second press of a double click.
	DoubleClick bool
}

// MouseRelease is a mouse button going up.
type MouseRelease struct {
	Pos    rendering.Offset
	Button MouseButton
}

// MouseMove reports the cursor position.
type MouseMove struct {
	Pos rendering.Offset
}

// KeyPress is a key going down.
type KeyPress struct {
	Key Key
}

// KeyRelease is a key going up.
type KeyRelease struct {
	Key Key
}

// Character is text input produced by the keyboard.
type Character struct {
	Char rune
}

// Scroll is a wheel or trackpad scroll. Offset is in logical pixels.
type Scroll struct {
	Offset   rendering.Offset
	MousePos rendering.Offset
}

func (MousePress) isEvent()   {}
func (MouseRelease) isEvent() {}
func (MouseMove) isEvent()    {}
func (KeyPress) isEvent()     {}
func (KeyRelease) isEvent()   {}
func (Character) isEvent()    {}
func (Scroll) isEvent()       {}

// Translated implements Event.
func (e MousePress) Translated(delta rendering.Offset) Event {
	e.Pos = e.Pos.Add(delta)
	return e
}

// Translated implements Event.
func (e MouseRelease) Translated(delta rendering.Offset) Event {
	e.Pos = e.Pos.Add(delta)
	return e
}

// Translated implements Event.
func (e MouseMove) Translated(delta rendering.Offset) Event {
	e.Pos = e.Pos.Add(delta)
	return e
}

// Translated implements Event.
func (e Scroll) Translated(delta rendering.Offset) Event {
	e.MousePos = e.MousePos.Add(delta)
	return e
}

// Translated implements Event.
func (e KeyPress) Translated(rendering.Offset) Event { return e }

// Translated implements Event.
func (e KeyRelease) Translated(rendering.Offset) Event { return e }

// Translated implements Event.
func (e Character) Translated(rendering.Offset) Event { return e }

func (e MousePress) String() string {
	if e.DoubleClick {
		return fmt.Sprintf("MousePress(%s, %v, double)", e.Button, e.Pos)
	}
	return fmt.Sprintf("MousePress(%s, %v)", e.Button, e.Pos)
}

func (e MouseRelease) String() string {
	return fmt.Sprintf("MouseRelease(%s, %v)", e.Button, e.Pos)
}

func (e MouseMove) String() string { return fmt.Sprintf("MouseMove(%v)", e.Pos) }

func (e KeyPress) String() string { return fmt.Sprintf("KeyPress(%s)", e.Key) }

func (e KeyRelease) String() string { return fmt.Sprintf("KeyRelease(%s)", e.Key) }

func (e Character) String() string { return fmt.Sprintf("Character(%q)", e.Char) }

func (e Scroll) String() string {
	return fmt.Sprintf("Scroll(%v at %v)", e.Offset, e.MousePos)
}

// Position returns the pointer position carried by e, if any.
func Position(e Event) (rendering.Offset, bool) {
	switch e := e.(type) {
	case MousePress:
		return e.Pos, true
	case MouseRelease:
		return e.Pos, true
	case MouseMove:
		return e.Pos, true
	case Scroll:
		return e.MousePos, true
	}
	return rendering.Offset{}, false
}
