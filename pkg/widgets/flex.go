package widgets

import (
	"log"
	"math"

	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
)

type childUpdateKind int

const (
	childAdd childUpdateKind = iota
	childInsert
	childRemove
	childClear
)

type childUpdate struct {
	kind  childUpdateKind
	child *widget.Pod
	index int
}

// Flex lays out its children along a main axis, flexbox style.
//
// Children without a flex factor are laid out first against the full
// available size. The main-axis space left after them and the spacing is
// divided between the flex children in proportion to their factors.
//
// Structural changes made through AddChild, InsertChild, RemoveChild and
// ClearChildren are queued and applied together at the start of the next
// layout.
type Flex struct {
	widget.Base[style.NoStyle]

	mainAxis   Axis
	mainAlign  Align
	crossAlign Align
	spacing    float64

	queued          []childUpdate
	unboundedWarned bool
}

// NewFlex returns a Flex laying out children along axis with start
// alignment and no spacing.
func NewFlex(axis Axis) *Flex {
	return &Flex{mainAxis: axis}
}

// NewRow returns a horizontal Flex.
func NewRow() *Flex { return NewFlex(Horizontal) }

// NewColumn returns a vertical Flex.
func NewColumn() *Flex { return NewFlex(Vertical) }

// FlexFromSpec builds a Flex from a Row or Column spec.
func FlexFromSpec(s *spec.FlexSpec, axis Axis) *Flex {
	mainAlign, crossAlign := s.AlignH, s.AlignV
	if axis == Vertical {
		mainAlign, crossAlign = crossAlign, mainAlign
	}
	return &Flex{
		mainAxis:   axis,
		mainAlign:  mainAlign,
		crossAlign: crossAlign,
		spacing:    s.Spacing,
	}
}

// Axis returns the main axis.
func (f *Flex) Axis() Axis { return f.mainAxis }

// SetMainAlign sets the alignment along the main axis.
func (f *Flex) SetMainAlign(align Align) *Flex {
	f.mainAlign = align
	return f
}

// SetCrossAlign sets the alignment of each child along the cross axis.
func (f *Flex) SetCrossAlign(align Align) *Flex {
	f.crossAlign = align
	return f
}

// SetSpacing sets the gap between adjacent children.
func (f *Flex) SetSpacing(spacing float64) *Flex {
	f.spacing = spacing
	return f
}

// AddChild queues child to be appended.
func (f *Flex) AddChild(child *widget.Pod) *Flex {
	f.queued = append(f.queued, childUpdate{kind: childAdd, child: child})
	return f
}

// InsertChild queues child to be inserted at index.
func (f *Flex) InsertChild(index int, child *widget.Pod) *Flex {
	f.queued = append(f.queued, childUpdate{kind: childInsert, child: child, index: index})
	return f
}

// RemoveChild queues removal of the child at index.
func (f *Flex) RemoveChild(index int) *Flex {
	f.queued = append(f.queued, childUpdate{kind: childRemove, index: index})
	return f
}

// ClearChildren queues removal of every child.
func (f *Flex) ClearChildren() *Flex {
	f.queued = append(f.queued, childUpdate{kind: childClear})
	return f
}

// PendingUpdates returns the number of queued child changes.
func (f *Flex) PendingUpdates() int { return len(f.queued) }

func (f *Flex) applyQueued(data *widget.Data) {
	for _, u := range f.queued {
		switch u.kind {
		case childAdd:
			u.child.Mount()
			data.AddChild(u.child)
		case childInsert:
			u.child.Mount()
			data.InsertChild(u.index, u.child)
		case childRemove:
			data.RemoveChild(u.index)
		case childClear:
			data.ClearChildren()
		}
	}
	clear(f.queued)
	f.queued = f.queued[:0]
}

// BaseClass returns "flex".
func (f *Flex) BaseClass() string { return "flex" }

// flexFactor returns the child's flex factor if it takes part in flex
// distribution. Along an unbounded main axis no child does.
func (f *Flex) flexFactor(child *widget.Pod, unbounded bool) (float64, bool) {
	factor, ok := child.Data().Flex()
	if !ok || factor <= 0 {
		return 0, false
	}
	if unbounded {
		if !f.unboundedWarned {
			log.Printf("WARNING: flex children used with unbounded %s axis. "+
				"They are laid out at their natural size instead.", f.mainAxis)
			f.unboundedWarned = true
		}
		return 0, false
	}
	return factor, true
}

// Layout applies the queued child edits first. Flex children then share
// the main-axis space left over by the others, in proportion to their factors.
func (f *Flex) Layout(_ *style.NoStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	f.applyQueued(data)

	mainAxis, crossAxis := f.mainAxis, f.mainAxis.Cross()
	maxMain, maxCross := sizeAlong(mainAxis, max), sizeAlong(crossAxis, max)
	unbounded := math.IsInf(maxMain, 1)
	children := data.Children()

	// Non-flex children take their natural size first.
	flexSum, nonFlexSize := 0.0, 0.0
	for _, child := range children {
		if factor, ok := f.flexFactor(child, unbounded); ok {
			flexSum += factor
			continue
		}
		child.Layout(cx, max)
		nonFlexSize += sizeAlong(mainAxis, child.Data().Size())
	}

	totalSpacing := 0.0
	if len(children) > 1 {
		totalSpacing = f.spacing * float64(len(children)-1)
	}
	flexSpace := math.Max(0, maxMain-nonFlexSize-totalSpacing)

	cursor, largestCross := 0.0, 0.0
	for i, child := range children {
		child.Data().SetOrigin(makeOffset(mainAxis, cursor, 0))
		if factor, ok := f.flexFactor(child, unbounded); ok {
			extent := flexSpace * factor / flexSum
			child.Layout(cx, makeSize(mainAxis, extent, maxCross))
			cursor += extent
		} else {
			cursor += sizeAlong(mainAxis, child.Data().Size())
		}
		largestCross = math.Max(largestCross, sizeAlong(crossAxis, child.Data().Size()))
		if i < len(children)-1 {
			cursor += f.spacing
		}
	}

	mainShift := 0.0
	if !unbounded {
		mainShift = alignShift(f.mainAlign, maxMain, cursor)
	}
	offset := rendering.Offset{X: math.Inf(1), Y: math.Inf(1)}
	for _, child := range children {
		d := child.Data()
		m := offsetAlong(mainAxis, d.Origin()) + mainShift
		c := offsetAlong(crossAxis, d.Origin())
		if !math.IsInf(maxCross, 1) {
			c += alignShift(f.crossAlign, maxCross, sizeAlong(crossAxis, d.Size()))
		}
		origin := makeOffset(mainAxis, m, c)
		d.SetOrigin(origin)
		offset.X = math.Min(offset.X, origin.X)
		offset.Y = math.Min(offset.Y, origin.Y)
	}
	if math.IsInf(offset.X, 1) {
		offset.X = 0
	}
	if math.IsInf(offset.Y, 1) {
		offset.Y = 0
	}
	data.SetOffset(offset)
	data.SetSize(makeSize(mainAxis, cursor, largestCross))
}

// Paint paints the children in order.
func (f *Flex) Paint(_ *style.NoStyle, data *widget.Data, cx *widget.Context) {
	data.PaintChildren(cx)
}
