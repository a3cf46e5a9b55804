// Package widgets provides the standard widget set.
//
// Every widget implements widget.Widget for its own style type and is
// placed in a tree with widget.New:
//
//	col := widgets.NewFlex(spec.Vertical).SetSpacing(10)
//	root := widget.New[style.NoStyle](col)
//	col.AddChild(widget.New[widgets.TextStyle](widgets.NewText("Hello")))
//
// Widgets built from a spec tree use the XxxFromSpec constructors.
//
// # Layout Widgets
//
// Flex lays out children along a row or column, distributing remaining
// space between children that carry a flex factor. Container, Button and
// Clickable wrap a single child. Scrollable gives its child unbounded space
// along one axis and scrolls it. Table arranges rows of cells in named
// columns.
//
// # Overlays
//
// Tooltip and PickList paint their popups in the overlay pass so they
// appear above all other content of the window.
package widgets
