package spec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Built-in widget kinds.
const (
	KindColumn      = "Column"
	KindRow         = "Row"
	KindText        = "Text"
	KindTextInput   = "TextInput"
	KindButton      = "Button"
	KindContainer   = "Container"
	KindClickable   = "Clickable"
	KindDivider     = "Divider"
	KindProgressBar = "ProgressBar"
	KindScrollable  = "Scrollable"
	KindImage       = "Image"
	KindSlider      = "Slider"
	KindPickList    = "PickList"
	KindTable       = "Table"
	KindTooltip     = "Tooltip"
)

func childList(child *Node) []*Node {
	if child == nil {
		return nil
	}
	return []*Node{child}
}

// FlexSpec describes a Column or a Row. AlignH and AlignV are horizontal and
// vertical alignment regardless of the main axis.
type FlexSpec struct {
	BaseSpec `yaml:",inline"`
	AlignH   Align   `yaml:"align_h,omitempty"`
	AlignV   Align   `yaml:"align_v,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty"`
	Nested   []*Node `yaml:"children,omitempty"`
}

// Children implements Props.
func (s *FlexSpec) Children() []*Node { return s.Nested }

// TextSpec describes a Text. The shorthand `Text: some text` sets only Text.
type TextSpec struct {
	BaseSpec `yaml:",inline"`
	Text     string `yaml:"text,omitempty"`
	AlignH   Align  `yaml:"align_h,omitempty"`
	AlignV   Align  `yaml:"align_v,omitempty"`
}

// Children implements Props.
func (*TextSpec) Children() []*Node { return nil }

// TextInputSpec describes a TextInput.
type TextInputSpec struct {
	BaseSpec    `yaml:",inline"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Width       *float64 `yaml:"width,omitempty"`
	MaxLen      *int     `yaml:"max_len,omitempty"`
	IsPassword  bool     `yaml:"is_password,omitempty"`
}

// Children implements Props.
func (*TextInputSpec) Children() []*Node { return nil }

// ButtonSpec describes a Button.
type ButtonSpec struct {
	BaseSpec `yaml:",inline"`
	Child    *Node `yaml:"child"`
}

// Children implements Props.
func (s *ButtonSpec) Children() []*Node { return childList(s.Child) }

// ContainerMode selects how a Container sizes itself around its child.
type ContainerMode struct {
	// Fill makes the container take all available space instead of
	// shrinking to its child.
	Fill bool
	// Padding insets the child on every side.
	Padding float64
}

func (m ContainerMode) String() string {
	switch {
	case m.Fill && m.Padding != 0:
		return fmt.Sprintf("FillParentAndPad(%g)", m.Padding)
	case m.Fill:
		return "FillParent"
	case m.Padding != 0:
		return fmt.Sprintf("Pad(%g)", m.Padding)
	default:
		return "Shrink"
	}
}

// UnmarshalYAML decodes one of "Shrink", "FillParent", {Pad: n} or
// {FillParentAndPad: n}.
func (m *ContainerMode) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Value {
		case "Shrink":
			*m = ContainerMode{}
			return nil
		case "FillParent":
			*m = ContainerMode{Fill: true}
			return nil
		}
	case yaml.MappingNode:
		if len(n.Content) == 2 {
			var padding float64
			if err := n.Content[1].Decode(&padding); err != nil {
				return err
			}
			switch n.Content[0].Value {
			case "Pad":
				*m = ContainerMode{Padding: padding}
				return nil
			case "FillParentAndPad":
				*m = ContainerMode{Fill: true, Padding: padding}
				return nil
			}
		}
	}
	return &NodeError{Line: n.Line, Reason: "unknown container mode"}
}

// ContainerSpec describes a Container.
type ContainerSpec struct {
	BaseSpec `yaml:",inline"`
	Mode     ContainerMode `yaml:"mode,omitempty"`
	Child    *Node         `yaml:"child"`
}

// Children implements Props.
func (s *ContainerSpec) Children() []*Node { return childList(s.Child) }

// ClickableSpec describes a Clickable.
type ClickableSpec struct {
	BaseSpec `yaml:",inline"`
	Child    *Node `yaml:"child"`
}

// Children implements Props.
func (s *ClickableSpec) Children() []*Node { return childList(s.Child) }

// DividerSpec describes a Divider.
type DividerSpec struct {
	BaseSpec `yaml:",inline"`
	Axis     Axis    `yaml:"axis,omitempty"`
	Padding  float64 `yaml:"padding,omitempty"`
}

// Children implements Props.
func (*DividerSpec) Children() []*Node { return nil }

// ProgressBarSpec describes a ProgressBar. Unset dimensions fill the
// available space.
type ProgressBarSpec struct {
	BaseSpec `yaml:",inline"`
	Width    *float64 `yaml:"width,omitempty"`
	Height   *float64 `yaml:"height,omitempty"`
	Child    *Node    `yaml:"child,omitempty"`
}

// Children implements Props.
func (s *ProgressBarSpec) Children() []*Node { return childList(s.Child) }

// ScrollableSpec describes a Scrollable.
type ScrollableSpec struct {
	BaseSpec   `yaml:",inline"`
	ScrollAxis Axis  `yaml:"scroll_axis,omitempty"`
	Child      *Node `yaml:"child"`
}

// Children implements Props.
func (s *ScrollableSpec) Children() []*Node { return childList(s.Child) }

// ImageSpec describes an Image. Image names a registered texture.
type ImageSpec struct {
	BaseSpec   `yaml:",inline"`
	Image      string   `yaml:"image,omitempty"`
	Size       *float64 `yaml:"size,omitempty"`
	ZoomToFill bool     `yaml:"zoom_to_fill,omitempty"`
	Child      *Node    `yaml:"child,omitempty"`
}

// Children implements Props.
func (s *ImageSpec) Children() []*Node { return childList(s.Child) }

// SliderSpec describes a Slider.
type SliderSpec struct {
	BaseSpec `yaml:",inline"`
	Width    *float64 `yaml:"width,omitempty"`
}

// Children implements Props.
func (*SliderSpec) Children() []*Node { return nil }

// PickListSpec describes a PickList. Placeholder is shown while closed.
type PickListSpec struct {
	BaseSpec    `yaml:",inline"`
	Width       *float64 `yaml:"width,omitempty"`
	MaxHeight   *float64 `yaml:"max_height,omitempty"`
	Placeholder *Node    `yaml:"placeholder"`
}

// Children implements Props.
func (s *PickListSpec) Children() []*Node { return childList(s.Placeholder) }

// TableSpec describes a Table.
type TableSpec struct {
	BaseSpec  `yaml:",inline"`
	Columns   []string `yaml:"columns,omitempty"`
	EmptyRows int      `yaml:"empty_rows,omitempty"`
}

// Children implements Props.
func (*TableSpec) Children() []*Node { return nil }

// TooltipSpec describes a Tooltip: Child is always shown, Tooltip only
// while the pointer is over Child.
type TooltipSpec struct {
	BaseSpec `yaml:",inline"`
	Child    *Node `yaml:"child"`
	Tooltip  *Node `yaml:"tooltip"`
}

// Children implements Props.
func (s *TooltipSpec) Children() []*Node {
	var out []*Node
	if s.Child != nil {
		out = append(out, s.Child)
	}
	if s.Tooltip != nil {
		out = append(out, s.Tooltip)
	}
	return out
}
