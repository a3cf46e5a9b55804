package rendering

import "image"

// DisplayList is a frozen sequence of canvas calls that can be replayed onto
// any Canvas.
type DisplayList struct {
	calls []func(Canvas)
	size  Size
}

// Paint replays the recorded calls onto canvas, in recording order.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, call := range d.calls {
		call(canvas)
	}
}

// Size returns the canvas size the list was recorded at.
func (d *DisplayList) Size() Size { return d.size }

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int { return len(d.calls) }

// PictureRecorder captures the calls made on the canvas it hands out. The
// CLI uses it to run a full frame without a terminal.
type PictureRecorder struct {
	calls     []func(Canvas)
	size      Size
	recording bool
}

// BeginRecording discards any earlier calls and returns a canvas of the
// given size whose calls are captured until EndRecording.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.calls = r.calls[:0]
	r.size = size
	r.recording = true
	return recorder{r}
}

// EndRecording stops capturing and returns what was recorded. Calls made on
// the canvas afterwards are dropped.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{size: r.size}
	if r.recording {
		list.calls = append([]func(Canvas){}, r.calls...)
	}
	r.recording = false
	return list
}

func (r *PictureRecorder) record(call func(Canvas)) {
	if r.recording {
		r.calls = append(r.calls, call)
	}
}

// recorder is the Canvas returned by BeginRecording.
type recorder struct{ r *PictureRecorder }

func (c recorder) Save()    { c.r.record(Canvas.Save) }
func (c recorder) Restore() { c.r.record(Canvas.Restore) }
func (c recorder) Size() Size {
	return c.r.size
}

func (c recorder) Translate(dx, dy float64) {
	c.r.record(func(cv Canvas) { cv.Translate(dx, dy) })
}

func (c recorder) ClipRect(rect Rect) {
	c.r.record(func(cv Canvas) { cv.ClipRect(rect) })
}

func (c recorder) DrawRect(rect Rect, paint Paint) {
	c.r.record(func(cv Canvas) { cv.DrawRect(rect, paint) })
}

func (c recorder) DrawRRect(rrect RRect, paint Paint) {
	c.r.record(func(cv Canvas) { cv.DrawRRect(rrect, paint) })
}

func (c recorder) DrawLine(start, end Offset, paint Paint) {
	c.r.record(func(cv Canvas) { cv.DrawLine(start, end, paint) })
}

func (c recorder) DrawPath(path *Path, paint Paint) {
	c.r.record(func(cv Canvas) { cv.DrawPath(path, paint) })
}

func (c recorder) DrawText(layout *TextLayout, position Offset) {
	c.r.record(func(cv Canvas) { cv.DrawText(layout, position) })
}

func (c recorder) DrawImage(img image.Image, dst Rect) {
	c.r.record(func(cv Canvas) { cv.DrawImage(img, dst) })
}
