package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// ContainerStyle is the style of a Container.
type ContainerStyle struct {
	BorderRadius    float64         `yaml:"border_radius"`
	BorderWidth     float64         `yaml:"border_width"`
	BorderColor     rendering.Color `yaml:"border_color"`
	BackgroundColor rendering.Color `yaml:"background_color"`
}

// Container draws a bordered background behind a single child.
type Container struct {
	widget.Base[ContainerStyle]
	mode spec.ContainerMode
}

// NewContainer returns a Container sized according to mode.
func NewContainer(mode spec.ContainerMode) *Container {
	return &Container{mode: mode}
}

// ContainerFromSpec builds a Container from its spec.
func ContainerFromSpec(s *spec.ContainerSpec) *Container {
	return NewContainer(s.Mode)
}

// Mode returns the sizing mode.
func (c *Container) Mode() spec.ContainerMode { return c.mode }

// BaseClass returns "container".
func (c *Container) BaseClass() string { return "container" }

// Layout places the child according to the container mode.
func (c *Container) Layout(_ *ContainerStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	strategy := widget.Shrink
	if c.mode.Fill {
		strategy = widget.Fill
	}
	data.LayOutChild(strategy, c.mode.Padding, cx, max)
}

// Paint draws the background and border, then the child.
func (c *Container) Paint(s *ContainerStyle, data *widget.Data, cx *widget.Context) {
	drawBox(cx.Canvas, data.Bounds(), s.BorderRadius, s.BackgroundColor, s.BorderColor, s.BorderWidth)
	data.PaintChildren(cx)
}
