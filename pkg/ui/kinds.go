package ui

import (
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

// KindFunc builds the widget for one spec node. Children listed by the node
// are instantiated and attached by the caller afterwards, in the order the
// node returns them.
type KindFunc func(node *spec.Node) (widget.Dyn, error)

// RegisterKind makes kind available to specs, replacing any earlier
// constructor for it. Nodes of a kind the spec package does not know decode
// into a *spec.CustomSpec, which fn can decode further with its Decode
// method.
func (u *UI) RegisterKind(kind string, fn KindFunc) {
	u.kinds[kind] = fn
}

// HasKind reports whether kind has a registered constructor.
func (u *UI) HasKind(kind string) bool {
	_, ok := u.kinds[kind]
	return ok
}

// typed adapts a constructor taking the node's concrete props.
func typed[P spec.Props, S any, W widget.Widget[S]](build func(P) W) KindFunc {
	return func(node *spec.Node) (widget.Dyn, error) {
		props, ok := node.Props.(P)
		if !ok {
			return nil, &PropsError{Kind: node.Kind, Line: node.Line}
		}
		return widget.Erase[S](build(props)), nil
	}
}

func registerBuiltinKinds(u *UI) {
	u.RegisterKind(spec.KindColumn, typed[*spec.FlexSpec, style.NoStyle](func(s *spec.FlexSpec) *widgets.Flex {
		return widgets.FlexFromSpec(s, widgets.Vertical)
	}))
	u.RegisterKind(spec.KindRow, typed[*spec.FlexSpec, style.NoStyle](func(s *spec.FlexSpec) *widgets.Flex {
		return widgets.FlexFromSpec(s, widgets.Horizontal)
	}))
	u.RegisterKind(spec.KindText, typed[*spec.TextSpec, widgets.TextStyle](widgets.TextFromSpec))
	u.RegisterKind(spec.KindTextInput, typed[*spec.TextInputSpec, widgets.TextInputStyle](widgets.TextInputFromSpec))
	u.RegisterKind(spec.KindButton, typed[*spec.ButtonSpec, widgets.ButtonStyle](widgets.ButtonFromSpec))
	u.RegisterKind(spec.KindContainer, typed[*spec.ContainerSpec, widgets.ContainerStyle](widgets.ContainerFromSpec))
	u.RegisterKind(spec.KindClickable, typed[*spec.ClickableSpec, style.NoStyle](widgets.ClickableFromSpec))
	u.RegisterKind(spec.KindDivider, typed[*spec.DividerSpec, widgets.DividerStyle](widgets.DividerFromSpec))
	u.RegisterKind(spec.KindProgressBar, typed[*spec.ProgressBarSpec, widgets.ProgressBarStyle](widgets.ProgressBarFromSpec))
	u.RegisterKind(spec.KindScrollable, typed[*spec.ScrollableSpec, widgets.ScrollableStyle](widgets.ScrollableFromSpec))
	u.RegisterKind(spec.KindImage, typed[*spec.ImageSpec, style.NoStyle](widgets.ImageFromSpec))
	u.RegisterKind(spec.KindSlider, typed[*spec.SliderSpec, widgets.SliderStyle](widgets.SliderFromSpec))
	u.RegisterKind(spec.KindPickList, typed[*spec.PickListSpec, widgets.PickListStyle](widgets.PickListFromSpec))
	u.RegisterKind(spec.KindTable, typed[*spec.TableSpec, widgets.TableStyle](widgets.TableFromSpec))
	u.RegisterKind(spec.KindTooltip, typed[*spec.TooltipSpec, style.NoStyle](widgets.TooltipFromSpec))
}
