package event

import "github.com/go-duit/duit/pkg/rendering"

// Input is a host windowing event before normalization. Backends convert
// their native events into one of the Input variants and hand them to a
// Tracker.
type Input interface {
	isInput()
}

// ElementState is the state of a key or button.
type ElementState int

const (
	Pressed ElementState = iota
	Released
)

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit int

const (
	// ScrollLines is a delta in text lines, as reported by notched wheels.
	ScrollLines ScrollUnit = iota
	// ScrollPixels is a delta in physical pixels, as reported by trackpads.
	ScrollPixels
)

// CursorMoved reports the cursor position in physical pixels.
type CursorMoved struct {
	Position rendering.Offset
}

// MouseInput reports a mouse button changing state.
type MouseInput struct {
	State  ElementState
	Button MouseButton
}

// KeyboardInput reports a key changing state.
type KeyboardInput struct {
	State ElementState
	Key   Key
}

// ReceivedCharacter reports text input.
type ReceivedCharacter struct {
	Char rune
}

// MouseWheel reports a scroll delta.
type MouseWheel struct {
	Unit  ScrollUnit
	Delta rendering.Offset
}

func (CursorMoved) isInput()       {}
func (MouseInput) isInput()        {}
func (KeyboardInput) isInput()     {}
func (ReceivedCharacter) isInput() {}
func (MouseWheel) isInput()        {}
