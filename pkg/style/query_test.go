package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		in   string
		want Predicate
	}{
		{in: "class", want: Class("class")},
		{in: "  padded  ", want: Class("padded")},
		{in: "class1 & class2", want: And{Left: Class("class2"), Right: Class("class1")}},
		{in: "class1 | class2", want: Or{Left: Class("class2"), Right: Class("class1")}},
		{in: "a b", want: And{Left: Class("b"), Right: Class("a")}},
		{
			in:   "a & b | c",
			want: Or{Left: Class("c"), Right: And{Left: Class("b"), Right: Class("a")}},
		},
		{in: "on-hover_(x)", want: Class("on-hover_(x)")},
		{in: "a&b", want: And{Left: Class("b"), Right: Class("a")}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseQuery(tt.in)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, q.Predicate); diff != "" {
				t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if q.Source != tt.in {
				t.Errorf("Source = %q, want %q", q.Source, tt.in)
			}
		})
	}
}

func TestParseQueryErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "a &", "a.b", "| ", "a & *"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseQuery(in)
			var qe *QueryError
			if !errors.As(err, &qe) {
				t.Fatalf("ParseQuery(%q) error = %v, want *QueryError", in, err)
			}
		})
	}
}

func TestQueryMatches(t *testing.T) {
	tests := []struct {
		query   string
		classes []string
		want    bool
	}{
		{"button", []string{"button"}, true},
		{"button", []string{"flex"}, false},
		{"button & hovered", []string{"button", "hovered"}, true},
		{"button & hovered", []string{"button"}, false},
		{"a | b", []string{"b"}, true},
		{"a | b", nil, false},
		// Sequential wrapping: (c) | ((b) & (a)).
		{"a & b | c", []string{"c"}, true},
		{"a & b | c", []string{"a"}, false},
		{"a & b | c", []string{"a", "b"}, true},
		// (c) & ((b) | (a)).
		{"a | b & c", []string{"a"}, false},
		{"a | b & c", []string{"a", "c"}, true},
	}
	for _, tt := range tests {
		q, err := ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q) error = %v", tt.query, err)
		}
		if got := q.Matches(tt.classes); got != tt.want {
			t.Errorf("%q.Matches(%v) = %v, want %v", tt.query, tt.classes, got, tt.want)
		}
	}
}

func TestIsValidClass(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"button", true},
		{"list-item_2", true},
		{"", false},
		{"a b", false},
		{"a&b", false},
	}
	for _, tt := range tests {
		if got := IsValidClass(tt.in); got != tt.want {
			t.Errorf("IsValidClass(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
