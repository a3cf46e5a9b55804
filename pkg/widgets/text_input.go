package widgets

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// ClassFocused is carried by a TextInput while it has keyboard focus.
const ClassFocused = "focused"

const (
	passwordMask = "•"

	// The cursor stays solid this long after an edit, then blinks.
	cursorSolidFor = 750 * time.Millisecond
	cursorBlink    = 500 * time.Millisecond
)

// TextInputStyle is the style of a TextInput.
type TextInputStyle struct {
	BackgroundColor      rendering.Color `yaml:"background_color"`
	BorderColor          rendering.Color `yaml:"border_color"`
	BorderWidth          float64         `yaml:"border_width"`
	BorderRadius         float64         `yaml:"border_radius"`
	CursorColor          rendering.Color `yaml:"cursor_color"`
	CursorWidth          float64         `yaml:"cursor_width"`
	Font                 string          `yaml:"font,omitempty"`
	FontSize             float64         `yaml:"font_size"`
	FontColor            rendering.Color `yaml:"font_color"`
	PlaceholderFontColor rendering.Color `yaml:"placeholder_font_color"`
	Padding              float64         `yaml:"padding"`
}

// TextInput is a single-line text field. A left click inside it takes
// focus, a click elsewhere drops it. While focused it accepts characters
// and deletes the last one on Backspace or Delete.
type TextInput struct {
	widget.Base[TextInputStyle]

	width       *float64
	placeholder string
	maxLen      *int
	isPassword  bool

	text    string
	focused bool

	textLayout        *rendering.TextLayout
	placeholderLayout *rendering.TextLayout

	clock      event.Clock
	created    time.Time
	lastChange time.Time
	onChange   func(string) any
}

// NewTextInput returns an empty TextInput. A nil width takes the available
// width.
func NewTextInput(placeholder string, width *float64) *TextInput {
	t := &TextInput{placeholder: placeholder, width: width}
	t.SetClock(event.SystemClock{})
	return t
}

// TextInputFromSpec builds a TextInput from its spec.
func TextInputFromSpec(s *spec.TextInputSpec) *TextInput {
	t := NewTextInput(s.Placeholder, s.Width)
	t.maxLen = s.MaxLen
	t.isPassword = s.IsPassword
	return t
}

// SetClock replaces the clock driving the cursor blink.
func (t *TextInput) SetClock(clock event.Clock) *TextInput {
	t.clock = clock
	t.created = clock.Now()
	t.lastChange = t.created
	return t
}

// SetMaxLen limits the input to n characters.
func (t *TextInput) SetMaxLen(n int) *TextInput {
	t.maxLen = &n
	return t
}

// SetPassword masks the input.
func (t *TextInput) SetPassword(password bool) *TextInput {
	t.isPassword = password
	t.textLayout = nil
	return t
}

// SetText replaces the current input.
func (t *TextInput) SetText(text string) *TextInput {
	t.text = text
	t.textDirty()
	return t
}

// OnChange sets the function producing the message sent after every edit.
func (t *TextInput) OnChange(message func(text string) any) *TextInput {
	t.onChange = message
	return t
}

// CurrentInput returns the text entered so far.
func (t *TextInput) CurrentInput() string { return t.text }

// Focused reports whether the input has keyboard focus.
func (t *TextInput) Focused() bool { return t.focused }

func (t *TextInput) textDirty() {
	t.textLayout = nil
	t.lastChange = t.clock.Now()
}

func (t *TextInput) displayText() string {
	if t.isPassword {
		return strings.Repeat(passwordMask, utf8.RuneCountInString(t.text))
	}
	return t.text
}

// BaseClass returns "text_input".
func (t *TextInput) BaseClass() string { return "text_input" }

// StyleChanged drops the shaped text and placeholder.
func (t *TextInput) StyleChanged(*TextInputStyle, *widget.Data, *widget.Context) {
	t.textLayout = nil
	t.placeholderLayout = nil
}

// Layout shapes the text and placeholder. The input is one line of text plus
// padding high.
func (t *TextInput) Layout(s *TextInputStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	if t.placeholderLayout == nil {
		t.placeholderLayout = cx.ShapeText(t.placeholder, rendering.TextStyle{
			Color: s.PlaceholderFontColor, FontFamily: s.Font, FontSize: s.FontSize,
		}, 0)
	}
	if t.textLayout == nil {
		t.textLayout = cx.ShapeText(t.displayText(), rendering.TextStyle{
			Color: s.FontColor, FontFamily: s.Font, FontSize: s.FontSize,
		}, 0)
	}
	data.SetSize(rendering.Size{
		Width:  orDefault(t.width, max.Width),
		Height: s.FontSize + 2*s.Padding,
	})
}

func (t *TextInput) cursorVisible() bool {
	now := t.clock.Now()
	if now.Sub(t.lastChange) <= cursorSolidFor {
		return true
	}
	return (now.Sub(t.created)/cursorBlink)%2 == 0
}

// Paint draws the box, the text or placeholder and, while focused, the cursor.
func (t *TextInput) Paint(s *TextInputStyle, data *widget.Data, cx *widget.Context) {
	drawBox(cx.Canvas, data.Bounds(), s.BorderRadius, s.BackgroundColor, s.BorderColor, s.BorderWidth)

	textPos := rendering.Offset{X: s.Padding, Y: s.Padding}
	layout := t.textLayout
	if t.text == "" {
		layout = t.placeholderLayout
	}
	cx.Canvas.DrawText(layout, textPos)

	if t.focused && t.cursorVisible() {
		x := textPos.X
		if t.text != "" {
			x += t.textLayout.Size.Width
		}
		cx.Canvas.DrawLine(
			rendering.Offset{X: x, Y: textPos.Y},
			rendering.Offset{X: x, Y: textPos.Y + s.FontSize},
			rendering.StrokePaint(s.CursorColor, s.CursorWidth),
		)
	}
}

// HandleEvent focuses on click and edits the text while focused.
func (t *TextInput) HandleEvent(data *widget.Data, cx *widget.Context, ev event.Event) {
	wasFocused := t.focused
	edited := false

	switch ev := ev.(type) {
	case event.MousePress:
		if ev.Button == event.ButtonLeft {
			t.focused = data.Bounds().Contains(ev.Pos)
		}
	case event.KeyPress:
		if t.focused && (ev.Key == event.KeyBackspace || ev.Key == event.KeyDelete) && t.text != "" {
			_, n := utf8.DecodeLastRuneInString(t.text)
			t.text = t.text[:len(t.text)-n]
			edited = true
		}
	case event.Character:
		if t.focused && !unicode.IsControl(ev.Char) {
			if t.maxLen == nil || utf8.RuneCountInString(t.text) < *t.maxLen {
				t.text += string(ev.Char)
				edited = true
			}
		}
	}

	if edited {
		t.textDirty()
		if t.onChange != nil {
			cx.SendMessage(t.onChange(t.text))
		}
	}
	if wasFocused != t.focused {
		if t.focused {
			data.AddClass(ClassFocused)
		} else {
			data.RemoveClass(ClassFocused)
		}
	}
}

// HitTest hits anywhere inside the input.
func (t *TextInput) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
