package widgets

import (
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

// Image draws a registered texture, keeping its aspect ratio. Children are
// laid out over the image.
type Image struct {
	widget.Base[style.NoStyle]

	texture    string
	width      *float64
	zoomToFill bool
}

// NewImage returns an Image showing the texture registered as texture.
// A nil width takes the available width.
func NewImage(texture string, width *float64) *Image {
	return &Image{texture: texture, width: width}
}

// ImageFromSpec builds an Image from its spec.
func ImageFromSpec(s *spec.ImageSpec) *Image {
	img := NewImage(s.Image, s.Size)
	img.zoomToFill = s.ZoomToFill
	return img
}

// SetImage switches to another texture.
func (i *Image) SetImage(texture string) *Image {
	i.texture = texture
	return i
}

// SetZoomToFill makes the image widen until it also covers the available
// height.
func (i *Image) SetZoomToFill(zoom bool) *Image {
	i.zoomToFill = zoom
	return i
}

// Texture returns the texture name.
func (i *Image) Texture() string { return i.texture }

// BaseClass returns "image".
func (i *Image) BaseClass() string { return "image" }

// Layout keeps the texture's aspect ratio at the given or available width.
func (i *Image) Layout(_ *style.NoStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	bounds := cx.Texture(i.texture).Bounds()
	width := orDefault(i.width, max.Width)
	aspect := 1.0
	if bounds.Dy() > 0 {
		aspect = float64(bounds.Dx()) / float64(bounds.Dy())
	}
	height := width / aspect
	if i.zoomToFill && max.Width/aspect < max.Height {
		width += (max.Height - max.Width/aspect) * aspect
	}

	size := rendering.Size{Width: width, Height: height}
	data.SetSize(size)
	for _, child := range data.Children() {
		child.Layout(cx, size)
	}
}

// Paint draws the texture, or fails fatally if it is not registered.
func (i *Image) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	cx.Canvas.DrawImage(cx.Texture(i.texture), data.Bounds())
	data.PaintChildren(cx)
}

// HitTest hits anywhere inside the image.
func (i *Image) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
