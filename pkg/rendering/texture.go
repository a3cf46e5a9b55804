package rendering

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"sort"
)

// Textures maps names to decoded images. Widgets look textures up by name
// at paint time.
type Textures struct {
	images map[string]image.Image
}

// NewTextures returns an empty texture registry.
func NewTextures() *Textures {
	return &Textures{images: make(map[string]image.Image)}
}

// Add registers img under name, replacing any previous texture.
func (t *Textures) Add(name string, img image.Image) {
	t.images[name] = img
}

// LoadFile decodes a PNG or JPEG file and registers it under name.
func (t *Textures) LoadFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode texture %q: %w", path, err)
	}
	t.Add(name, img)
	return nil
}

// Get returns the texture registered under name.
func (t *Textures) Get(name string) (image.Image, bool) {
	img, ok := t.images[name]
	return img, ok
}

// Names returns the registered names in sorted order.
func (t *Textures) Names() []string {
	names := make([]string, 0, len(t.images))
	for name := range t.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
