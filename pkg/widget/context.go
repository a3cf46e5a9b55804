package widget

import (
	"fmt"
	"image"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
)

var defaultShaper = &rendering.BasicShaper{}

// Context carries the per-pass collaborators handed to widgets.
type Context struct {
	// Canvas is the drawing surface. It is only valid during paint passes.
	Canvas rendering.Canvas
	// Styles resolves widget styles.
	Styles *style.Engine
	// Messages receives messages sent by widgets.
	Messages *Queue
	// Textures maps texture names to images.
	Textures *rendering.Textures
	// Shaper lays out text. Nil means a rendering.BasicShaper.
	Shaper rendering.TextShaper
}

// SendMessage delivers a message to the application.
func (cx *Context) SendMessage(msg any) {
	cx.Messages.Push(msg)
}

// Texture returns the named texture. A missing texture is a programming
// error and panics.
func (cx *Context) Texture(name string) image.Image {
	if cx.Textures != nil {
		if img, ok := cx.Textures.Get(name); ok {
			return img
		}
	}
	errors.Fatal("widget.Context.Texture", errors.KindResource, fmt.Errorf("texture %q is not registered", name))
	return nil
}

// ShapeText lays out text with the context's shaper.
func (cx *Context) ShapeText(text string, style rendering.TextStyle, maxWidth float64) *rendering.TextLayout {
	if cx.Shaper == nil {
		return defaultShaper.Shape(text, style, maxWidth)
	}
	return cx.Shaper.Shape(text, style, maxWidth)
}
