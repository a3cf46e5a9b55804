package widgets_test

import (
	"math"
	"testing"

	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/style"
	"github.com/go-duit/duit/pkg/widget"
	"github.com/go-duit/duit/pkg/widgets"
)

func flexBox(factor float64) *widget.Pod {
	pod := newBox(1000, 10)
	pod.Data().SetFlex(factor)
	return pod
}

func TestFlexDistributesByFactor(t *testing.T) {
	tester := newTester(t)
	tester.SetSize(size(300, 100))
	a, b := flexBox(1), flexBox(2)
	row := withChildren(widget.New[style.NoStyle](widgets.NewRow()), a, b)
	tester.ShowPod(row)

	if got := a.Data().Size().Width; got != 100 {
		t.Errorf("first width = %v, want 100", got)
	}
	if got := b.Data().Size().Width; got != 200 {
		t.Errorf("second width = %v, want 200", got)
	}
	if got := b.Data().Origin(); got != at(100, 0) {
		t.Errorf("second origin = %+v, want (100,0)", got)
	}
	if got := row.Data().Size(); got != size(300, 10) {
		t.Errorf("row size = %+v, want 300x10", got)
	}
}

func TestFlexSpacing(t *testing.T) {
	tester := newTester(t)
	boxes := []*widget.Pod{newBox(20, 5), newBox(30, 5), newBox(40, 5)}
	row := withChildren(widget.New[style.NoStyle](widgets.NewRow().SetSpacing(10)), boxes...)
	tester.ShowPod(row)

	if got := row.Data().Size().Width; got != 110 {
		t.Errorf("row width = %v, want 110", got)
	}
	for i, want := range []float64{0, 30, 70} {
		if got := boxes[i].Data().Origin().X; got != want {
			t.Errorf("box %d x = %v, want %v", i, got, want)
		}
	}
}

func TestFlexSpacingReducesFlexSpace(t *testing.T) {
	tester := newTester(t)
	tester.SetSize(size(100, 100))
	fixed, flexed := newBox(5, 20), newBox(5, 1000)
	flexed.Data().SetFlex(1)
	col := withChildren(widget.New[style.NoStyle](widgets.NewColumn().SetSpacing(10)), fixed, flexed)
	tester.ShowPod(col)

	if got := flexed.Data().Size().Height; got != 70 {
		t.Errorf("flex height = %v, want 70", got)
	}
	if got := flexed.Data().Origin(); got != at(0, 30) {
		t.Errorf("flex origin = %+v, want (0,30)", got)
	}
}

func TestFlexSpaceNeverNegative(t *testing.T) {
	tester := newTester(t)
	tester.SetSize(size(50, 50))
	flexed := flexBox(1)
	row := withChildren(widget.New[style.NoStyle](widgets.NewRow()), newBox(80, 5), flexed)
	tester.ShowPod(row)

	if got := flexed.Data().Size().Width; got != 0 {
		t.Errorf("flex width = %v, want 0", got)
	}
}

func TestFlexNonPositiveFactorIsNotFlex(t *testing.T) {
	tester := newTester(t)
	tester.SetSize(size(300, 100))
	zero := newBox(40, 5)
	zero.Data().SetFlex(0)
	row := withChildren(widget.New[style.NoStyle](widgets.NewRow()), zero, flexBox(1))
	tester.ShowPod(row)

	if got := zero.Data().Size().Width; got != 40 {
		t.Errorf("zero-factor width = %v, want its natural 40", got)
	}
}

func TestFlexAlignment(t *testing.T) {
	tests := []struct {
		name        string
		main, cross widgets.Align
		want        []rendering.Offset
		offset      rendering.Offset
	}{
		{"start", widgets.AlignStart, widgets.AlignStart, []rendering.Offset{at(0, 0), at(20, 0)}, at(0, 0)},
		{"center", widgets.AlignCenter, widgets.AlignCenter, []rendering.Offset{at(125, 45), at(145, 40)}, at(125, 40)},
		{"end", widgets.AlignEnd, widgets.AlignEnd, []rendering.Offset{at(250, 90), at(270, 80)}, at(250, 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := newTester(t)
			tester.SetSize(size(300, 100))
			a, b := newBox(20, 10), newBox(30, 20)
			row := withChildren(widget.New[style.NoStyle](
				widgets.NewRow().SetMainAlign(tt.main).SetCrossAlign(tt.cross)), a, b)
			tester.ShowPod(row)

			for i, pod := range []*widget.Pod{a, b} {
				if got := pod.Data().Origin(); got != tt.want[i] {
					t.Errorf("child %d origin = %+v, want %+v", i, got, tt.want[i])
				}
			}
			if got := row.Data().Offset(); got != tt.offset {
				t.Errorf("offset = %+v, want %+v", got, tt.offset)
			}
		})
	}
}

func TestFlexQueuedChildUpdates(t *testing.T) {
	tester := newTester(t)
	col := widgets.NewColumn()
	pod := widget.New[style.NoStyle](col)
	tester.ShowPod(pod)

	first, second, third := newBox(10, 10), newBox(10, 20), newBox(10, 30)
	col.AddChild(first).AddChild(third).InsertChild(1, second)
	if col.PendingUpdates() != 3 || pod.Data().NumChildren() != 0 {
		t.Fatalf("updates applied before layout: pending %d, children %d",
			col.PendingUpdates(), pod.Data().NumChildren())
	}

	tester.Pump()
	if col.PendingUpdates() != 0 {
		t.Errorf("PendingUpdates() = %d after layout", col.PendingUpdates())
	}
	if pod.Data().NumChildren() != 3 || pod.Data().Child(1) != second {
		t.Fatalf("children not applied in order")
	}
	if !second.Mounted() {
		t.Error("inserted child not mounted")
	}
	if got := third.Data().Origin().Y; got != 30 {
		t.Errorf("third y = %v, want 30", got)
	}

	col.RemoveChild(0)
	tester.Pump()
	if pod.Data().NumChildren() != 2 || pod.Data().Child(0) != second {
		t.Error("RemoveChild(0) did not remove the first child")
	}

	col.ClearChildren().AddChild(first)
	tester.Pump()
	if pod.Data().NumChildren() != 1 || pod.Data().Child(0) != first {
		t.Error("ClearChildren then AddChild should leave one child")
	}
}

func TestFlexUnboundedMainAxis(t *testing.T) {
	row := withChildren(widget.New[style.NoStyle](widgets.NewRow()), flexBox(1), newBox(20, 10))
	row.Mount()
	cx := &widget.Context{Styles: style.NewEngine(), Messages: &widget.Queue{}}
	row.Layout(cx, rendering.Size{Width: math.Inf(1), Height: 100})

	if got := row.Data().Child(0).Data().Size().Width; got != 1000 {
		t.Errorf("flex child width = %v, want natural 1000", got)
	}
	if got := row.Data().Size().Width; got != 1020 {
		t.Errorf("row width = %v, want 1020", got)
	}
}

func TestFlexEmpty(t *testing.T) {
	tester := newTester(t)
	pod := widget.New[style.NoStyle](widgets.NewColumn().SetSpacing(10))
	tester.ShowPod(pod)
	if got := pod.Data().Size(); got != (rendering.Size{}) {
		t.Errorf("empty column size = %+v", got)
	}
	if got := pod.Data().Offset(); got != (rendering.Offset{}) {
		t.Errorf("empty column offset = %+v", got)
	}
}
