package rendering

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "rgb(0, 0, 0)", want: RGBA(0, 0, 0, 255)},
		{in: "rgba ( 10, 11, 12, 90 )", want: RGBA(10, 11, 12, 90)},
		{in: "rgb(255,128,1)", want: RGB(255, 128, 1)},
		{in: "#ff8000", want: RGB(255, 128, 0)},
		{in: "#ff800080", want: RGBA(255, 128, 0, 128)},
		{in: "white", want: ColorWhite},
		{in: "rgb(1, 2)", wantErr: true},
		{in: "rgb 1, 2, 3", wantErr: true},
		{in: "rgb(256, 0, 0)", wantErr: true},
		{in: "hsl(1, 2, 3)", wantErr: true},
		{in: "#12345", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorYAML(t *testing.T) {
	var v struct {
		Fill Color `yaml:"fill"`
	}
	if err := yaml.Unmarshal([]byte("fill: rgb(1, 2, 3)\n"), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Fill != RGB(1, 2, 3) {
		t.Errorf("Fill = %v, want %v", v.Fill, RGB(1, 2, 3))
	}
	if err := yaml.Unmarshal([]byte("fill: nonsense\n"), &v); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 5)
	for _, p := range []Offset{{10, 10}, {30, 15}, {20, 12}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Offset{{9.9, 10}, {30.1, 15}, {20, 16}} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: -2}
	if got := a.Add(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != (Offset{X: -3, Y: -4}) {
		t.Errorf("Neg = %v", got)
	}
	if !(Size{Width: Infinity, Height: 1}).IsInfinite() {
		t.Error("expected infinite size")
	}
}

func TestBasicShaper(t *testing.T) {
	s := &BasicShaper{}
	layout := s.Shape("hello", TextStyle{FontSize: 13}, 0)
	if got, want := layout.Size, (Size{Width: 35, Height: 13}); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}

	wrapped := s.Shape("hello world", TextStyle{FontSize: 26}, 100)
	want := []TextLine{{Text: "hello", Width: 70}, {Text: "world", Width: 70}}
	if diff := cmp.Diff(want, wrapped.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if wrapped.LineHeight != 26 {
		t.Errorf("LineHeight = %v, want 26", wrapped.LineHeight)
	}
}

func TestMonospaceShaper(t *testing.T) {
	s := MonospaceShaper{CellWidth: 8, CellHeight: 16}
	layout := s.Shape("ab\ncde", TextStyle{}, math.Inf(1))
	if got, want := layout.Size, (Size{Width: 24, Height: 32}); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
}

func TestPathSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	want := [][2]Offset{
		{{0, 0}, {10, 0}},
		{{10, 0}, {10, 10}},
		{{10, 10}, {0, 0}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
	if got := p.Bounds(); got != (Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestPictureRecorder(t *testing.T) {
	var r PictureRecorder
	c := r.BeginRecording(Size{Width: 100, Height: 50})
	c.Save()
	c.Translate(5, 5)
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))
	c.Restore()
	list := r.EndRecording()
	if list.Len() != 4 {
		t.Fatalf("Len = %d, want 4", list.Len())
	}

	var replay PictureRecorder
	target := replay.BeginRecording(list.Size())
	list.Paint(target)
	if got := replay.EndRecording().Len(); got != 4 {
		t.Errorf("replayed Len = %d, want 4", got)
	}
}

func TestTextures(t *testing.T) {
	tex := NewTextures()
	tex.Add("b", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	tex.Add("a", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if _, ok := tex.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
	if diff := cmp.Diff([]string{"a", "b"}, tex.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}
