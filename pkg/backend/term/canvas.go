package term

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-duit/duit/pkg/rendering"
)

const (
	// CellWidth is the default width of a cell in logical pixels.
	CellWidth = 8
	// CellHeight is the default height of a cell in logical pixels.
	CellHeight = 16
)

// DefaultCell is the pixel size of one terminal cell.
var DefaultCell = rendering.Size{Width: CellWidth, Height: CellHeight}

// Shaper returns a text shaper measuring text in default-sized cells.
func Shaper() rendering.TextShaper {
	return rendering.MonospaceShaper{CellWidth: CellWidth, CellHeight: CellHeight}
}

var (
	squareCorners  = [4]rune{'┌', '┐', '└', '┘'}
	roundedCorners = [4]rune{'╭', '╮', '╰', '╯'}
)

// Canvas draws onto a tcell screen. A cell is painted when its center
// falls inside a shape. Fills set the background color and keep whatever
// glyph is there; strokes, lines and text set the glyph and foreground and
// keep the background.
type Canvas struct {
	screen  tcell.Screen
	cell    rendering.Size
	tracker transformTracker
}

// NewCanvas returns a canvas drawing onto screen with cells of the given
// pixel size.
func NewCanvas(screen tcell.Screen, cell rendering.Size) *Canvas {
	return &Canvas{screen: screen, cell: cell}
}

var _ rendering.Canvas = (*Canvas)(nil)

// Clear blanks the screen and resets the transform and clip state.
func (c *Canvas) Clear() {
	c.tracker.reset()
	c.screen.Clear()
}

func (c *Canvas) Save()                        { c.tracker.save() }
func (c *Canvas) Restore()                     { c.tracker.restore() }
func (c *Canvas) Translate(dx, dy float64)     { c.tracker.translate(dx, dy) }
func (c *Canvas) ClipRect(rect rendering.Rect) { c.tracker.clipRect(rect) }

// Size returns the screen size in pixels.
func (c *Canvas) Size() rendering.Size { return c.pixelSize() }

func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.drawBox(rect, paint, squareCorners)
}

func (c *Canvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	corners := squareCorners
	if rrect.UniformRadius() > 0 {
		corners = roundedCorners
	}
	c.drawBox(rrect.Rect, paint, corners)
}

func (c *Canvas) pixelSize() rendering.Size {
	w, h := c.screen.Size()
	return rendering.Size{Width: float64(w) * c.cell.Width, Height: float64(h) * c.cell.Height}
}

// cellSpan is an inclusive range of cells.
type cellSpan struct {
	x0, y0, x1, y1 int
}

func (s cellSpan) empty() bool { return s.x1 < s.x0 || s.y1 < s.y0 }

// span returns the cells whose centers lie in the global rect r. A rect
// narrower than a cell still covers the cell it starts in.
func (c *Canvas) span(r rendering.Rect) cellSpan {
	if r.IsEmpty() {
		return cellSpan{x0: 0, x1: -1}
	}
	first := func(edge, size float64) int { return int(math.Ceil(edge/size - 0.5)) }
	last := func(edge, size float64) int { return int(math.Ceil(edge/size-0.5)) - 1 }
	s := cellSpan{
		x0: first(r.Left, c.cell.Width), x1: last(r.Right, c.cell.Width),
		y0: first(r.Top, c.cell.Height), y1: last(r.Bottom, c.cell.Height),
	}
	if s.x1 < s.x0 {
		s.x1 = s.x0
	}
	if s.y1 < s.y0 {
		s.y1 = s.y0
	}
	return s
}

// visible reports whether the cell can be drawn under the screen bounds and
// the active clip.
func (c *Canvas) visible(x, y int) bool {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	clip, ok := c.tracker.clip()
	if !ok {
		return true
	}
	p := c.center(x, y)
	return p.X >= clip.Left && p.X < clip.Right && p.Y >= clip.Top && p.Y < clip.Bottom
}

func (c *Canvas) center(x, y int) rendering.Offset {
	return rendering.Offset{
		X: (float64(x) + 0.5) * c.cell.Width,
		Y: (float64(y) + 0.5) * c.cell.Height,
	}
}

func (c *Canvas) cellAt(p rendering.Offset) (int, int) {
	return int(math.Floor(p.X / c.cell.Width)), int(math.Floor(p.Y / c.cell.Height))
}

func toColor(c rendering.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (c *Canvas) fill(x, y int, color rendering.Color) {
	if !c.visible(x, y) {
		return
	}
	mainc, combc, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, mainc, combc, style.Background(toColor(color)))
}

func (c *Canvas) glyph(x, y int, r rune, color rendering.Color) {
	if !c.visible(x, y) {
		return
	}
	_, _, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, r, nil, style.Foreground(toColor(color)))
}

func (c *Canvas) drawBox(rect rendering.Rect, paint rendering.Paint, corners [4]rune) {
	if !paint.IsVisible() {
		return
	}
	s := c.span(c.tracker.global(rect))
	if s.empty() {
		return
	}
	if paint.Style == rendering.PaintStyleFill {
		for y := s.y0; y <= s.y1; y++ {
			for x := s.x0; x <= s.x1; x++ {
				c.fill(x, y, paint.Color)
			}
		}
		return
	}

	switch {
	case s.x0 == s.x1 && s.y0 == s.y1:
		c.glyph(s.x0, s.y0, '□', paint.Color)
	case s.y0 == s.y1:
		for x := s.x0; x <= s.x1; x++ {
			c.glyph(x, s.y0, '─', paint.Color)
		}
	case s.x0 == s.x1:
		for y := s.y0; y <= s.y1; y++ {
			c.glyph(s.x0, y, '│', paint.Color)
		}
	default:
		for x := s.x0 + 1; x < s.x1; x++ {
			c.glyph(x, s.y0, '─', paint.Color)
			c.glyph(x, s.y1, '─', paint.Color)
		}
		for y := s.y0 + 1; y < s.y1; y++ {
			c.glyph(s.x0, y, '│', paint.Color)
			c.glyph(s.x1, y, '│', paint.Color)
		}
		c.glyph(s.x0, s.y0, corners[0], paint.Color)
		c.glyph(s.x1, s.y0, corners[1], paint.Color)
		c.glyph(s.x0, s.y1, corners[2], paint.Color)
		c.glyph(s.x1, s.y1, corners[3], paint.Color)
	}
}

// DrawLine draws straight horizontal and vertical lines with box-drawing
// glyphs and anything else with dots.
func (c *Canvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	if !paint.IsVisible() {
		return
	}
	c.line(start.Add(c.tracker.transform), end.Add(c.tracker.transform), paint.Color)
}

func (c *Canvas) line(start, end rendering.Offset, color rendering.Color) {
	x0, y0 := c.cellAt(start)
	x1, y1 := c.cellAt(end)
	r := '·'
	switch {
	case y0 == y1:
		r = '─'
	case x0 == x1:
		r = '│'
	}
	// Bresenham
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.glyph(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DrawPath strokes every segment, or fills the cells inside the path under
// the even-odd rule.
func (c *Canvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	if path == nil || path.IsEmpty() || !paint.IsVisible() {
		return
	}
	at := c.tracker.transform
	segments := path.Segments()
	if paint.Style == rendering.PaintStyleStroke {
		for _, seg := range segments {
			c.line(seg[0].Add(at), seg[1].Add(at), paint.Color)
		}
		return
	}
	s := c.span(c.tracker.global(path.Bounds()))
	for y := s.y0; y <= s.y1; y++ {
		for x := s.x0; x <= s.x1; x++ {
			if insidePath(segments, c.center(x, y).Sub(at)) {
				c.fill(x, y, paint.Color)
			}
		}
	}
}

func insidePath(segments [][2]rendering.Offset, p rendering.Offset) bool {
	inside := false
	for _, seg := range segments {
		a, b := seg[0], seg[1]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// DrawText writes each line of the layout from the cell nearest to
// position.
func (c *Canvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	if layout == nil || layout.Style.Color.A() == 0 {
		return
	}
	p := position.Add(c.tracker.transform)
	col := int(math.Round(p.X / c.cell.Width))
	row := int(math.Round(p.Y / c.cell.Height))
	for i, line := range layout.Lines {
		x := col
		for _, r := range line.Text {
			c.glyph(x, row+i, r, layout.Style.Color)
			x++
		}
	}
}

// DrawImage samples img twice per cell and draws upper half blocks, so
// each cell shows two pixels stacked vertically.
func (c *Canvas) DrawImage(img image.Image, dst rendering.Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	global := c.tracker.global(dst)
	bounds := img.Bounds()
	sample := func(p rendering.Offset) tcell.Color {
		u := (p.X - global.Left) / global.Width()
		v := (p.Y - global.Top) / global.Height()
		x := bounds.Min.X + min(int(u*float64(bounds.Dx())), bounds.Dx()-1)
		y := bounds.Min.Y + min(int(v*float64(bounds.Dy())), bounds.Dy()-1)
		return tcell.FromImageColor(img.At(x, y))
	}
	s := c.span(global)
	for y := s.y0; y <= s.y1; y++ {
		for x := s.x0; x <= s.x1; x++ {
			if !c.visible(x, y) {
				continue
			}
			center := c.center(x, y)
			top := sample(rendering.Offset{X: center.X, Y: center.Y - c.cell.Height/4})
			bottom := sample(rendering.Offset{X: center.X, Y: center.Y + c.cell.Height/4})
			c.screen.SetContent(x, y, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}
