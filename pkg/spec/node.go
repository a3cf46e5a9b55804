package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Props is the kind-specific part of a widget node.
type Props interface {
	// Base returns the fields shared by every widget kind.
	Base() *BaseSpec
	// Children returns the nested widget nodes in order.
	Children() []*Node
}

// BaseSpec holds the fields every widget kind accepts.
type BaseSpec struct {
	ID      string   `yaml:"id,omitempty"`
	Flex    *float64 `yaml:"flex,omitempty"`
	Classes []string `yaml:"classes,omitempty"`
}

// Base implements Props for kinds that embed BaseSpec.
func (b *BaseSpec) Base() *BaseSpec { return b }

// Node is one widget in a spec tree. In YAML a node is a mapping with a
// single key naming the widget kind:
//
//	Column:
//	  spacing: 10
//	  children:
//	    - Text: "Hello"
//	    - Button:
//	        id: submit
//	        child:
//	          Text: Submit
type Node struct {
	Kind  string
	Props Props
	Line  int
}

var builtinKinds = map[string]func() Props{
	KindColumn:      func() Props { return &FlexSpec{} },
	KindRow:         func() Props { return &FlexSpec{} },
	KindText:        func() Props { return &TextSpec{} },
	KindTextInput:   func() Props { return &TextInputSpec{} },
	KindButton:      func() Props { return &ButtonSpec{} },
	KindContainer:   func() Props { return &ContainerSpec{} },
	KindClickable:   func() Props { return &ClickableSpec{} },
	KindDivider:     func() Props { return &DividerSpec{} },
	KindProgressBar: func() Props { return &ProgressBarSpec{} },
	KindScrollable:  func() Props { return &ScrollableSpec{} },
	KindImage:       func() Props { return &ImageSpec{} },
	KindSlider:      func() Props { return &SliderSpec{} },
	KindPickList:    func() Props { return &PickListSpec{} },
	KindTable:       func() Props { return &TableSpec{} },
	KindTooltip:     func() Props { return &TooltipSpec{} },
}

// IsBuiltin reports whether kind is decoded into one of this package's
// typed specs. Any other kind decodes into a *CustomSpec.
func IsBuiltin(kind string) bool {
	_, ok := builtinKinds[kind]
	return ok
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return &NodeError{Line: value.Line, Reason: "widget must be a mapping with exactly one key naming its kind"}
	}
	key, body := value.Content[0], value.Content[1]
	n.Kind = key.Value
	n.Line = key.Line

	if n.Kind == KindText && body.Kind == yaml.ScalarNode {
		n.Props = &TextSpec{Text: body.Value}
		return nil
	}

	newProps, ok := builtinKinds[n.Kind]
	if !ok {
		custom := &CustomSpec{Raw: body}
		if err := decodeBody(body, custom); err != nil {
			return fmt.Errorf("%s: %w", n.Kind, err)
		}
		n.Props = custom
		return nil
	}
	props := newProps()
	if err := decodeBody(body, props); err != nil {
		return fmt.Errorf("%s: %w", n.Kind, err)
	}
	n.Props = props
	return nil
}

func decodeBody(body *yaml.Node, props Props) error {
	if body.Kind == yaml.ScalarNode && body.ShortTag() == "!!null" {
		return nil
	}
	return body.Decode(props)
}

// Base returns the node's base fields. It is never nil.
func (n *Node) Base() *BaseSpec {
	if n.Props == nil {
		return &BaseSpec{}
	}
	return n.Props.Base()
}

// Children returns the node's nested widgets.
func (n *Node) Children() []*Node {
	if n.Props == nil {
		return nil
	}
	return n.Props.Children()
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children() {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) validate(seen map[string]bool) error {
	if n.Props == nil {
		return &NodeError{Line: n.Line, Reason: fmt.Sprintf("%s: empty widget", n.Kind)}
	}
	if id := n.Base().ID; id != "" {
		if err := ValidateIdent(id); err != nil {
			return err
		}
		if seen[id] {
			return &DuplicateIDError{ID: id}
		}
		seen[id] = true
	}
	for _, field := range requiredChildren[n.Kind] {
		if !hasChild(n.Props, field) {
			return &MissingChildError{Kind: n.Kind, Field: field}
		}
	}
	return nil
}

var requiredChildren = map[string][]string{
	KindButton:     {"child"},
	KindContainer:  {"child"},
	KindClickable:  {"child"},
	KindScrollable: {"child"},
	KindPickList:   {"placeholder"},
	KindTooltip:    {"child", "tooltip"},
}

func hasChild(p Props, field string) bool {
	switch p := p.(type) {
	case *ButtonSpec:
		return p.Child != nil
	case *ContainerSpec:
		return p.Child != nil
	case *ClickableSpec:
		return p.Child != nil
	case *ScrollableSpec:
		return p.Child != nil
	case *PickListSpec:
		return p.Placeholder != nil
	case *TooltipSpec:
		if field == "tooltip" {
			return p.Tooltip != nil
		}
		return p.Child != nil
	}
	return true
}

// CustomSpec holds a widget of a kind this package does not know. The
// application registers a constructor for the kind and decodes its own
// fields from Raw.
type CustomSpec struct {
	BaseSpec `yaml:",inline"`
	Child    *Node   `yaml:"child,omitempty"`
	Nested   []*Node `yaml:"children,omitempty"`

	Raw *yaml.Node `yaml:"-"`
}

// Children implements Props.
func (c *CustomSpec) Children() []*Node {
	if c.Child != nil {
		return append([]*Node{c.Child}, c.Nested...)
	}
	return c.Nested
}

// Decode decodes the widget's YAML body into v.
func (c *CustomSpec) Decode(v any) error {
	if c.Raw == nil || (c.Raw.Kind == yaml.ScalarNode && c.Raw.ShortTag() == "!!null") {
		return nil
	}
	return c.Raw.Decode(v)
}
