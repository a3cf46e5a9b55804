package term

import "github.com/go-duit/duit/pkg/rendering"

// transformTracker keeps the translation and clip stack of a canvas in
// global pixel coordinates.
type transformTracker struct {
	transform rendering.Offset
	saveStack []savedState
	clips     []rendering.Rect
}

type savedState struct {
	transform rendering.Offset
	clipDepth int
}

func (t *transformTracker) save() {
	t.saveStack = append(t.saveStack, savedState{
		transform: t.transform,
		clipDepth: len(t.clips),
	})
}

func (t *transformTracker) restore() {
	if len(t.saveStack) == 0 {
		return
	}
	state := t.saveStack[len(t.saveStack)-1]
	t.saveStack = t.saveStack[:len(t.saveStack)-1]
	t.transform = state.transform
	t.clips = t.clips[:state.clipDepth]
}

func (t *transformTracker) translate(dx, dy float64) {
	t.transform.X += dx
	t.transform.Y += dy
}

func (t *transformTracker) clipRect(rect rendering.Rect) {
	global := t.global(rect)
	if len(t.clips) > 0 {
		global = t.clips[len(t.clips)-1].Intersect(global)
	}
	t.clips = append(t.clips, global)
}

// global converts a rect from local to global coordinates.
func (t *transformTracker) global(rect rendering.Rect) rendering.Rect {
	return rect.Translate(t.transform.X, t.transform.Y)
}

// clip returns the active clip, if any.
func (t *transformTracker) clip() (rendering.Rect, bool) {
	if len(t.clips) == 0 {
		return rendering.Rect{}, false
	}
	return t.clips[len(t.clips)-1], true
}

func (t *transformTracker) reset() {
	t.transform = rendering.Offset{}
	t.saveStack = t.saveStack[:0]
	t.clips = t.clips[:0]
}
