package rendering

import "image"

// Canvas is the drawing capability a backend hands to the paint and overlay
// passes. The toolkit keeps no canvas state of its own; every Translate and
// ClipRect done by a widget is bracketed by Save and Restore.
//
// Widgets only ever translate. Scaling for high density displays is applied
// by the backend.
type Canvas interface {
	// Save pushes the origin and clip.
	Save()
	// Restore pops what the matching Save pushed.
	Restore()
	// Translate moves the origin.
	Translate(dx, dy float64)
	// ClipRect scissors later drawing to rect, intersected with the current
	// clip.
	ClipRect(rect Rect)

	DrawRect(rect Rect, paint Paint)
	DrawRRect(rrect RRect, paint Paint)
	DrawLine(start, end Offset, paint Paint)
	DrawPath(path *Path, paint Paint)

	// DrawText draws text shaped by a TextShaper with its top-left corner at
	// position.
	DrawText(layout *TextLayout, position Offset)

	// DrawImage draws a texture scaled into dst.
	DrawImage(img image.Image, dst Rect)

	// Size returns the canvas size in logical pixels.
	Size() Size
}
