package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand is a single path operation and its point, if any.
type PathCommand struct {
	Op    PathOp
	Point Offset
}

// Path is a polyline shape used for arrows, check marks and handles.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Point: Offset{X: x, Y: y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Point: Offset{X: x, Y: y}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Bounds returns the bounding box of every point in the path.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	seen := false
	for _, c := range p.Commands {
		if c.Op == PathOpClose {
			continue
		}
		seen = true
		r.Left = math.Min(r.Left, c.Point.X)
		r.Top = math.Min(r.Top, c.Point.Y)
		r.Right = math.Max(r.Right, c.Point.X)
		r.Bottom = math.Max(r.Bottom, c.Point.Y)
	}
	if !seen {
		return Rect{}
	}
	return r
}

// Segments returns the path flattened to line segments, including the
// closing segment of closed subpaths.
func (p *Path) Segments() [][2]Offset {
	var out [][2]Offset
	var start, cur Offset
	for _, c := range p.Commands {
		switch c.Op {
		case PathOpMoveTo:
			start, cur = c.Point, c.Point
		case PathOpLineTo:
			out = append(out, [2]Offset{cur, c.Point})
			cur = c.Point
		case PathOpClose:
			if cur != start {
				out = append(out, [2]Offset{cur, start})
			}
			cur = start
		}
	}
	return out
}
