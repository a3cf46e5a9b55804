package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
)

var namedKeys = map[tcell.Key]event.Key{
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyEscape:     event.KeyEscape,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button event.MouseButton
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonRight},
	{tcell.Button3, event.ButtonMiddle},
}

// InputConverter turns tcell events into host input for a UI. Terminals
// report the set of held buttons with every mouse event, so the converter
// remembers the previous set to produce press and release transitions.
type InputConverter struct {
	cell    rendering.Size
	buttons tcell.ButtonMask
	last    rendering.Offset
	moved   bool
}

// NewInputConverter returns a converter for cells of the given pixel size.
func NewInputConverter(cell rendering.Size) *InputConverter {
	return &InputConverter{cell: cell}
}

// Convert returns the inputs equivalent to ev, in order. Events with no
// equivalent, such as resizes, convert to nothing.
func (c *InputConverter) Convert(ev tcell.Event) []event.Input {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return c.mouse(ev)
	case *tcell.EventKey:
		return c.key(ev)
	}
	return nil
}

func (c *InputConverter) mouse(ev *tcell.EventMouse) []event.Input {
	var out []event.Input
	x, y := ev.Position()
	pos := rendering.Offset{
		X: (float64(x) + 0.5) * c.cell.Width,
		Y: (float64(y) + 0.5) * c.cell.Height,
	}
	if !c.moved || pos != c.last {
		c.last, c.moved = pos, true
		out = append(out, event.CursorMoved{Position: pos})
	}

	held := ev.Buttons()
	for _, b := range mouseButtons {
		was, is := c.buttons&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, event.MouseInput{State: event.Pressed, Button: b.button})
		case was && !is:
			out = append(out, event.MouseInput{State: event.Released, Button: b.button})
		}
	}
	c.buttons = held & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var delta rendering.Offset
	switch {
	case held&tcell.WheelUp != 0:
		delta.Y = 1
	case held&tcell.WheelDown != 0:
		delta.Y = -1
	case held&tcell.WheelLeft != 0:
		delta.X = 1
	case held&tcell.WheelRight != 0:
		delta.X = -1
	}
	if delta != (rendering.Offset{}) {
		out = append(out, event.MouseWheel{Unit: event.ScrollLines, Delta: delta})
	}
	return out
}

func (c *InputConverter) key(ev *tcell.EventKey) []event.Input {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return []event.Input{
				event.KeyboardInput{State: event.Pressed, Key: event.KeySpace},
				event.ReceivedCharacter{Char: ' '},
				event.KeyboardInput{State: event.Released, Key: event.KeySpace},
			}
		}
		return []event.Input{event.ReceivedCharacter{Char: ev.Rune()}}
	}
	key, ok := namedKeys[ev.Key()]
	if !ok {
		return nil
	}
	// terminals only report presses
	return []event.Input{
		event.KeyboardInput{State: event.Pressed, Key: key},
		event.KeyboardInput{State: event.Released, Key: key},
	}
}
