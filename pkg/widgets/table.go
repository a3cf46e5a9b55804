package widgets

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-duit/duit/pkg/errors"
	"github.com/go-duit/duit/pkg/event"
	"github.com/go-duit/duit/pkg/rendering"
	"github.com/go-duit/duit/pkg/spec"
	"github.com/go-duit/duit/pkg/widget"
)

// TableStyle is the style of a Table. Rows alternate between the two
// background colors.
type TableStyle struct {
	BackgroundColorA rendering.Color `yaml:"background_color_a"`
	BackgroundColorB rendering.Color `yaml:"background_color_b"`
	BorderColor      rendering.Color `yaml:"border_color"`
	BorderWidth      float64         `yaml:"border_width"`
	MinRowHeight     float64         `yaml:"min_row_height"`
	MinColumnWidth   float64         `yaml:"min_column_width"`
	CellPadding      float64         `yaml:"cell_padding"`
}

type tableRow struct {
	cells  map[string]*widget.Pod
	height float64
}

// Table arranges rows of cells in named columns. Each column is as wide as
// its widest cell and each row as tall as its tallest cell, both padded and
// bounded below by the style minimums. A number of empty rows can follow
// the data rows.
type Table struct {
	widget.Base[TableStyle]

	columns       []string
	columnWidths  map[string]float64
	columnOffsets map[string]float64
	rows          []*tableRow
	emptyRows     int
	emptyRow      tableRow
}

// NewTable returns a Table with the given columns and no rows.
func NewTable(columns []string, emptyRows int) *Table {
	return &Table{
		columns:       slices.Clone(columns),
		columnWidths:  make(map[string]float64),
		columnOffsets: make(map[string]float64),
		emptyRows:     emptyRows,
	}
}

// TableFromSpec builds a Table from its spec.
func TableFromSpec(s *spec.TableSpec) *Table {
	return NewTable(s.Columns, s.EmptyRows)
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// AddRow appends a row. cells maps column names to cell widgets; columns
// without a cell stay empty. Naming an unknown column panics.
func (t *Table) AddRow(cells map[string]*widget.Pod) *Table {
	row := &tableRow{cells: make(map[string]*widget.Pod, len(cells))}
	for name, cell := range cells {
		if !slices.Contains(t.columns, name) {
			errors.Fatal("widgets.Table.AddRow", errors.KindSpec, fmt.Errorf("unknown table column '%s'", name))
		}
		cell.Mount()
		row.cells[name] = cell
	}
	t.rows = append(t.rows, row)
	return t
}

// ClearRows removes every data row.
func (t *Table) ClearRows() *Table {
	t.rows = nil
	return t
}

// AddColumn appends a column.
func (t *Table) AddColumn(name string) *Table {
	t.columns = append(t.columns, name)
	return t
}

// RemoveColumn removes the named column if present. Cells in that column
// are no longer shown.
func (t *Table) RemoveColumn(name string) *Table {
	if i := slices.Index(t.columns, name); i >= 0 {
		t.columns = slices.Delete(t.columns, i, i+1)
	}
	return t
}

// allRows returns the data rows followed by the empty rows.
func (t *Table) allRows() []*tableRow {
	rows := slices.Clone(t.rows)
	for range t.emptyRows {
		rows = append(rows, &t.emptyRow)
	}
	return rows
}

// forEachCell calls fn for every visible cell, row by row in column order.
func (t *Table) forEachCell(fn func(column string, cell *widget.Pod)) {
	for _, row := range t.allRows() {
		for _, column := range t.columns {
			if cell, ok := row.cells[column]; ok {
				fn(column, cell)
			}
		}
	}
}

// BaseClass returns "table".
func (t *Table) BaseClass() string { return "table" }

// Layout sizes each column to its widest cell and each row to its tallest.
func (t *Table) Layout(s *TableStyle, data *widget.Data, cx *widget.Context, max rendering.Size) {
	clear(t.columnWidths)
	clear(t.columnOffsets)

	var size rendering.Size
	for _, row := range t.allRows() {
		rowHeight := 0.0
		for _, column := range t.columns {
			cell, ok := row.cells[column]
			if !ok {
				continue
			}
			cell.Layout(cx, max)
			cell.Data().SetOrigin(rendering.Offset{Y: size.Height + s.CellPadding})
			cellSize := cell.Data().Size()
			rowHeight = math.Max(rowHeight, cellSize.Height)
			t.columnWidths[column] = math.Max(t.columnWidths[column], cellSize.Width)
		}
		row.height = math.Max(rowHeight, s.MinRowHeight) + 2*s.CellPadding
		size.Height += row.height
	}

	for _, column := range t.columns {
		width := math.Max(t.columnWidths[column], s.MinColumnWidth) + 2*s.CellPadding
		t.columnWidths[column] = width
		size.Width += width
	}
	data.SetSize(size)

	cursor := 0.0
	for _, column := range t.columns {
		for _, row := range t.rows {
			if cell, ok := row.cells[column]; ok {
				origin := cell.Data().Origin()
				origin.X = cursor + s.CellPadding
				cell.Data().SetOrigin(origin)
			}
		}
		t.columnOffsets[column] = cursor
		cursor += t.columnWidths[column]
	}
}

// Paint draws the row stripes and the cells.
func (t *Table) Paint(s *TableStyle, _ *widget.Data, cx *widget.Context) {
	y := 0.0
	for i, row := range t.allRows() {
		color := s.BackgroundColorA
		if i%2 == 1 {
			color = s.BackgroundColorB
		}
		for _, column := range t.columns {
			rect := rendering.RectFromLTWH(t.columnOffsets[column], y, t.columnWidths[column], row.height)
			cx.Canvas.DrawRect(rect, rendering.FillPaint(color))
			if s.BorderWidth > 0 {
				cx.Canvas.DrawRect(rect, rendering.StrokePaint(s.BorderColor, s.BorderWidth))
			}
		}
		for _, column := range t.columns {
			if cell, ok := row.cells[column]; ok {
				cell.Paint(cx)
			}
		}
		y += row.height
	}
}

// PaintOverlay runs the overlay pass of every cell.
func (t *Table) PaintOverlay(_ *TableStyle, _ *widget.Data, cx *widget.Context) {
	t.forEachCell(func(_ string, cell *widget.Pod) { cell.PaintOverlay(cx) })
}

// HandleEvent passes the event to every cell.
func (t *Table) HandleEvent(_ *widget.Data, cx *widget.Context, ev event.Event) {
	t.forEachCell(func(_ string, cell *widget.Pod) { cell.HandleEvent(cx, ev) })
}

// HitTest hits anywhere inside the table.
func (t *Table) HitTest(data *widget.Data, pos rendering.Offset) widget.HitTestResult {
	return widget.HitTestResult(data.Bounds().Contains(pos))
}
