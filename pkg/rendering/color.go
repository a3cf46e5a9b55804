package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(c.A()) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R(), c.G(), c.B(), c.A())
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// ColorParseError describes a malformed color string.
type ColorParseError struct {
	Input  string
	Reason string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// ParseColor parses a color in one of the forms
//
//	rgb(r, g, b)
//	rgba(r, g, b, a)
//	#rrggbb
//	#rrggbbaa
//	<css color name>
//
// Components are decimal bytes. Whitespace between tokens is ignored.
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(in, "rgba"):
		parts, err := parseComponents(s, in[4:], 4)
		if err != nil {
			return 0, err
		}
		return RGBA(parts[0], parts[1], parts[2], parts[3]), nil
	case strings.HasPrefix(in, "rgb"):
		parts, err := parseComponents(s, in[3:], 3)
		if err != nil {
			return 0, err
		}
		return RGB(parts[0], parts[1], parts[2]), nil
	case strings.HasPrefix(in, "#"):
		return parseHex(s, in[1:])
	}
	if named, ok := colornames.Map[strings.ToLower(in)]; ok {
		return RGBA(named.R, named.G, named.B, named.A), nil
	}
	return 0, &ColorParseError{Input: s, Reason: "unknown color type, expected rgb(), rgba(), #hex or a color name"}
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseComponents(input, rest string, want int) ([]uint8, error) {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, &ColorParseError{Input: input, Reason: "expected parenthesis after color type"}
	}
	fields := strings.Split(rest[1:len(rest)-1], ",")
	if len(fields) != want {
		return nil, &ColorParseError{
			Input:  input,
			Reason: fmt.Sprintf("expected %d color components but found %d", want, len(fields)),
		}
	}
	out := make([]uint8, 0, want)
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return nil, &ColorParseError{Input: input, Reason: err.Error()}
		}
		out = append(out, uint8(v))
	}
	return out, nil
}

func parseHex(input, hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return 0, &ColorParseError{Input: input, Reason: "hex colors need 6 or 8 digits"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &ColorParseError{Input: input, Reason: err.Error()}
	}
	if len(hex) == 6 {
		return Color(0xFF000000 | uint32(v)), nil
	}
	// #rrggbbaa
	return Color(uint32(v)>>8 | uint32(v)<<24), nil
}

// UnmarshalYAML decodes a color from its string form.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as rgba(...).
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
