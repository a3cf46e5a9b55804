package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Spec is a named widget tree that can be instantiated any number of times.
type Spec struct {
	Name  string `yaml:"name"`
	Child *Node  `yaml:"child"`
}

// Parse decodes and validates a single spec document.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseAll decodes and validates every spec document in r. Documents are
// separated by "---".
func ParseAll(r io.Reader) ([]*Spec, error) {
	dec := yaml.NewDecoder(r)
	var specs []*Spec
	for {
		var s Spec
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return specs, nil
		}
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		specs = append(specs, &s)
	}
}

// ParseFile reads every spec document in the file at path.
func ParseFile(path string) ([]*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs, err := ParseAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// Validate checks the spec name, every widget ID in the tree, and that
// widgets requiring a child have one.
func (s *Spec) Validate() error {
	if err := ValidateIdent(s.Name); err != nil {
		return err
	}
	if s.Child == nil {
		return &MissingChildError{Kind: "spec " + s.Name, Field: "child"}
	}
	seen := make(map[string]bool)
	var err error
	s.Child.Walk(func(n *Node) bool {
		err = n.validate(seen)
		return err == nil
	})
	return err
}

// IDs returns every widget ID in the tree in depth-first order.
func (s *Spec) IDs() []string {
	var ids []string
	if s.Child == nil {
		return nil
	}
	s.Child.Walk(func(n *Node) bool {
		if id := n.Base().ID; id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// ValidateIdent reports whether ident can name a spec or widget: it must
// start with a letter or underscore and contain only letters, digits and
// underscores.
func ValidateIdent(ident string) error {
	if ident == "" {
		return &InvalidIdentError{Ident: ident}
	}
	for i, c := range ident {
		if unicode.IsDigit(c) && i == 0 {
			return &InvalidIdentError{Ident: ident}
		}
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return &InvalidIdentError{Ident: ident}
		}
	}
	return nil
}

// InvalidIdentError is returned for a spec name or widget ID that is not a
// valid identifier.
type InvalidIdentError struct {
	Ident string
}

func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("invalid widget ID '%s'. Widget IDs must be valid identifiers", e.Ident)
}

// DuplicateIDError is returned when two widgets in one spec share an ID.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("widget ID '%s' is used more than once", e.ID)
}

// MissingChildError is returned when a widget that wraps a child has none.
type MissingChildError struct {
	Kind  string
	Field string
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("%s: missing required field '%s'", e.Kind, e.Field)
}

// NodeError is returned for a widget node that is not a single-key mapping
// or a recognizable shorthand.
type NodeError struct {
	Line   int
	Reason string
}

func (e *NodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// Align positions content along an axis.
type Align int

const (
	// Start is left or top.
	Start Align = iota
	// Center is center or middle.
	Center
	// End is right or bottom.
	End
)

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// UnmarshalYAML decodes "Start", "Center" or "End", in any letter case.
func (a *Align) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "start":
		*a = Start
	case "center":
		*a = Center
	case "end":
		*a = End
	default:
		return &NodeError{Line: n.Line, Reason: fmt.Sprintf("unknown alignment %q", s)}
	}
	return nil
}

// Axis is a layout direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// UnmarshalYAML decodes "Horizontal" or "Vertical", in any letter case.
func (a *Axis) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "horizontal":
		*a = Horizontal
	case "vertical":
		*a = Vertical
	default:
		return &NodeError{Line: n.Line, Reason: fmt.Sprintf("unknown axis %q", s)}
	}
	return nil
}
