package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type boxStyle struct {
	Padding float64 `yaml:"padding"`
	Color   string  `yaml:"color"`
	Border  struct {
		Width float64 `yaml:"width"`
		Color string  `yaml:"color"`
	} `yaml:"border"`
	Tags []string `yaml:"tags,omitempty"`
}

const baseSheet = `
variables:
  accent: blue
  tags: [one, two]
styles:
  box:
    padding: 1
    color: red
    border:
      width: 1
      color: black
  box & hovered:
    color: $accent
    border:
      width: 2
`

func newEngine(t *testing.T, sheets ...string) *Engine {
	t.Helper()
	e := NewEngine()
	for _, s := range sheets {
		if err := e.AppendSheet([]byte(s)); err != nil {
			t.Fatalf("AppendSheet() error = %v", err)
		}
	}
	return e
}

func TestGetMergesInOrder(t *testing.T) {
	e := newEngine(t, baseSheet)

	plain, err := Get[boxStyle](e, []string{"box"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if plain.Color != "red" || plain.Border.Width != 1 {
		t.Errorf("plain = %+v", plain)
	}

	hovered, err := Get[boxStyle](e, []string{"box", "hovered"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hovered.Color != "blue" {
		t.Errorf("Color = %q, want %q", hovered.Color, "blue")
	}
	if hovered.Border.Width != 2 || hovered.Border.Color != "black" {
		t.Errorf("Border = %+v, want deep merge of width=2 over color=black", hovered.Border)
	}
	if hovered.Padding != 1 {
		t.Errorf("Padding = %v, want 1", hovered.Padding)
	}
}

func TestLaterSheetOverrides(t *testing.T) {
	e := newEngine(t, baseSheet, `
styles:
  box:
    padding: 4
`)
	s, err := Get[boxStyle](e, []string{"box"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.Padding != 4 || s.Color != "red" {
		t.Errorf("style = %+v, want padding 4 merged over red", s)
	}
	if e.NumRules() != 3 {
		t.Errorf("NumRules() = %d, want 3", e.NumRules())
	}
}

func TestNonMappingReplaces(t *testing.T) {
	e := newEngine(t, `
styles:
  a:
    tags: [x, y, z]
  b:
    tags: [w]
`)
	got := e.Resolve([]string{"a", "b"})
	var v struct {
		Tags []string `yaml:"tags"`
	}
	if err := got.Decode(&v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"w"}, v.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestVariablesInSequences(t *testing.T) {
	e := newEngine(t, `
variables:
  x: 10
  pair: [1, 2]
styles:
  a:
    values: [$x, 3, $pair]
`)
	var v struct {
		Values []any `yaml:"values"`
	}
	if err := e.Resolve([]string{"a"}).Decode(&v); err != nil {
		t.Fatal(err)
	}
	want := []any{10, 3, []any{1, 2}}
	if diff := cmp.Diff(want, v.Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestVariableLastWriterWins(t *testing.T) {
	e := newEngine(t, `
variables:
  c: one
styles:
  early:
    c: $c
`, `
variables:
  c: two
styles:
  late:
    c: $c
`)
	var early, late struct {
		C string `yaml:"c"`
	}
	if err := e.Resolve([]string{"early"}).Decode(&early); err != nil {
		t.Fatal(err)
	}
	if err := e.Resolve([]string{"late"}).Decode(&late); err != nil {
		t.Fatal(err)
	}
	if early.C != "one" || late.C != "two" {
		t.Errorf("early = %q, late = %q; want one, two", early.C, late.C)
	}
	if v, ok := e.Variable("c"); !ok || v.Value != "two" {
		t.Errorf("Variable(c) = %v, %v", v, ok)
	}
}

func TestMissingVariable(t *testing.T) {
	e := newEngine(t, baseSheet)
	err := e.AppendSheet([]byte(`
styles:
  other:
    color: $nope
`))
	var mv *MissingVariableError
	if !errors.As(err, &mv) {
		t.Fatalf("AppendSheet() error = %v, want *MissingVariableError", err)
	}
	if mv.Name != "nope" {
		t.Errorf("Name = %q, want %q", mv.Name, "nope")
	}
	if e.NumRules() != 2 {
		t.Errorf("failed sheet should not add rules, NumRules() = %d", e.NumRules())
	}
}

func TestAppendSheetErrors(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
	}{
		{"syntax", "styles: [unterminated"},
		{"not a mapping", "- a\n- b\n"},
		{"unknown key", "colors: {}\n"},
		{"bad query", "styles:\n  'a & ': {}\n"},
		{"styles sequence", "styles: [a]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewEngine().AppendSheet([]byte(tt.sheet)); err == nil {
				t.Errorf("AppendSheet(%q) error = nil, want error", tt.sheet)
			}
		})
	}
	if err := NewEngine().AppendSheet(nil); err != nil {
		t.Errorf("empty sheet error = %v", err)
	}
}

func TestGetCachesByOrderedClassList(t *testing.T) {
	e := newEngine(t, baseSheet)
	first, err := Get[boxStyle](e, []string{"box", "hovered"})
	if err != nil {
		t.Fatal(err)
	}
	again, err := Get[boxStyle](e, []string{"box", "hovered"})
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("expected the cached pointer to be returned")
	}

	swapped, err := Get[boxStyle](e, []string{"hovered", "box"})
	if err != nil {
		t.Fatal(err)
	}
	if swapped == first {
		t.Error("a reordered class list must be a separate cache entry")
	}
	if diff := cmp.Diff(first, swapped); diff != "" {
		t.Errorf("reordered class list should resolve to an equal style (-first +swapped):\n%s", diff)
	}
	if e.CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2", e.CacheSize())
	}

	if err := e.AppendSheet([]byte("styles:\n  hovered:\n    padding: 9\n")); err != nil {
		t.Fatal(err)
	}
	if e.CacheSize() != 0 {
		t.Errorf("CacheSize() after append = %d, want 0", e.CacheSize())
	}
}

func TestGetMissingRequiredField(t *testing.T) {
	e := newEngine(t, `
styles:
  partial:
    padding: 1
    border:
      width: 1
      color: red
`)
	_, err := Get[boxStyle](e, []string{"partial"})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Get() error = %v, want *SchemaError", err)
	}
	if se.Field != "color" {
		t.Errorf("Field = %q, want %q", se.Field, "color")
	}

	_, err = Get[boxStyle](e, []string{"unknown"})
	if !errors.As(err, &se) || se.Field != "padding" {
		t.Errorf("Get(unknown) error = %v, want missing padding", err)
	}
}

func TestGetNoStyle(t *testing.T) {
	if _, err := Get[NoStyle](NewEngine(), []string{"flex"}); err != nil {
		t.Errorf("Get[NoStyle]() error = %v", err)
	}
}

func TestGetTypeError(t *testing.T) {
	e := newEngine(t, `
styles:
  bad:
    padding: wide
    color: red
    border: {width: 1, color: red}
`)
	_, err := Get[boxStyle](e, []string{"bad"})
	var se *SchemaError
	if !errors.As(err, &se) || se.Err == nil {
		t.Errorf("Get() error = %v, want decode SchemaError", err)
	}
}

func TestMatching(t *testing.T) {
	e := newEngine(t, baseSheet)
	got := e.Matching([]string{"hovered", "box"})
	if diff := cmp.Diff([]string{"box", "box & hovered"}, got); diff != "" {
		t.Errorf("Matching mismatch (-want +got):\n%s", diff)
	}
}
