package testing

import (
	"time"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
)

// Input feeds one host input to the UI, as a backend would.
func (t *UITester) Input(in event.Input) {
	t.ui.HandleInput(in, t.scale)
}

// physical converts a logical position into the physical pixels backends
// report.
func (t *UITester) physical(pos rendering.Offset) rendering.Offset {
	return pos.Scale(t.scale)
}

// MoveTo moves the cursor to pos, in logical pixels.
func (t *UITester) MoveTo(pos rendering.Offset) {
	t.Input(event.CursorMoved{Position: t.physical(pos)})
}

// Press presses button at the current cursor position.
func (t *UITester) Press(button event.MouseButton) {
	t.Input(event.MouseInput{State: event.Pressed, Button: button})
}

// Release releases button at the current cursor position.
func (t *UITester) Release(button event.MouseButton) {
	t.Input(event.MouseInput{State: event.Released, Button: button})
}

// ClickAt moves the cursor to pos and clicks the left button.
func (t *UITester) ClickAt(pos rendering.Offset) {
	t.MoveTo(pos)
	t.Press(event.ButtonLeft)
	t.Release(event.ButtonLeft)
}

// Click clicks the center of the first element matched by finder.
func (t *UITester) Click(finder Finder) error {
	e, err := t.find("Click", finder)
	if err != nil {
		return err
	}
	t.ClickAt(e.Center())
	return nil
}

// DoubleClickAt clicks twice at pos, advancing the fake clock between the
// clicks by gap.
func (t *UITester) DoubleClickAt(pos rendering.Offset, gap time.Duration) {
	t.ClickAt(pos)
	t.clock.Advance(gap)
	t.ClickAt(pos)
}

// Hover moves the cursor to the center of the first element matched by
// finder.
func (t *UITester) Hover(finder Finder) error {
	e, err := t.find("Hover", finder)
	if err != nil {
		return err
	}
	t.MoveTo(e.Center())
	return nil
}

// DragFrom presses the left button at start, moves by delta and releases.
func (t *UITester) DragFrom(start, delta rendering.Offset) {
	t.MoveTo(start)
	t.Press(event.ButtonLeft)
	t.MoveTo(start.Add(delta))
	t.Release(event.ButtonLeft)
}

// Drag drags the center of the first element matched by finder by delta.
func (t *UITester) Drag(finder Finder, delta rendering.Offset) error {
	e, err := t.find("Drag", finder)
	if err != nil {
		return err
	}
	t.DragFrom(e.Center(), delta)
	return nil
}

// ScrollAt moves the cursor to pos and scrolls by delta logical pixels.
func (t *UITester) ScrollAt(pos, delta rendering.Offset) {
	t.MoveTo(pos)
	t.Input(event.MouseWheel{Unit: event.ScrollPixels, Delta: t.physical(delta)})
}

// Scroll scrolls by delta over the center of the first element matched by
// finder.
func (t *UITester) Scroll(finder Finder, delta rendering.Offset) error {
	e, err := t.find("Scroll", finder)
	if err != nil {
		return err
	}
	t.ScrollAt(e.Center(), delta)
	return nil
}

// PressKey presses and releases key.
func (t *UITester) PressKey(key event.Key) {
	t.Input(event.KeyboardInput{State: event.Pressed, Key: key})
	t.Input(event.KeyboardInput{State: event.Released, Key: key})
}

// TypeText sends every rune of text as a received character.
func (t *UITester) TypeText(text string) {
	for _, r := range text {
		t.Input(event.ReceivedCharacter{Char: r})
	}
}

// EnterText clicks the first element matched by finder, to focus it, and
// types text.
func (t *UITester) EnterText(finder Finder, text string) error {
	if err := t.Click(finder); err != nil {
		return err
	}
	t.TypeText(text)
	return nil
}
