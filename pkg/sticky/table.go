// Package sticky provides a table whose header row stays in place while
// the records below it scroll.
package sticky

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Column struct {
	Name       string
	FixedWidth int
	Expansion  int
	Align      int
}

type Records interface {
	Count() int
	GetCell(row, col int, name string) *tview.TableCell
}

type Table struct {
	*tview.Table
	columns     []Column
	records     Records
	headerColor tcell.Color
}

func NewTable(columns []Column) *Table {
	t := &Table{
		columns:     columns,
		Table:       tview.NewTable(),
		headerColor: tview.Styles.SecondaryTextColor,
	}
	t.SetFixed(1, 0)
	t.SetSelectable(true, false)
	t.setHeader()
	return t
}

func (t *Table) Columns() []Column {
	return t.columns
}

func (t *Table) SetHeaderColor(color tcell.Color) *Table {
	t.headerColor = color
	t.setHeader()
	return t
}

func (t *Table) setHeader() {
	for i, col := range t.columns {
		cell := tview.NewTableCell(col.Name).
			SetSelectable(false).
			SetTextColor(t.headerColor).
			SetAttributes(tcell.AttrBold).
			SetAlign(col.Align)
		t.applyWidth(cell, col)
		t.SetCell(0, i, cell)
	}
}

func (t *Table) applyWidth(cell *tview.TableCell, col Column) {
	if col.FixedWidth > 0 {
		cell.SetMaxWidth(col.FixedWidth)
	}
	if col.Expansion > 0 {
		cell.SetExpansion(col.Expansion)
	}
}

// SetRecords replaces the rows below the header. Selection is cleared
// when there is nothing left to select.
func (t *Table) SetRecords(records Records) {
	t.records = records
	t.Clear()
	t.setHeader()
	count := t.RecordCount()
	for row := 0; row < count; row++ {
		for col, column := range t.columns {
			cell := records.GetCell(row, col, column.Name)
			if cell == nil {
				cell = tview.NewTableCell("")
			}
			if cell.Align == tview.AlignLeft && column.Align != tview.AlignLeft {
				cell.SetAlign(column.Align)
			}
			t.applyWidth(cell, column)
			t.SetCell(row+1, col, cell)
		}
	}
	if count == 0 {
		t.ScrollToBeginning()
		return
	}
	if selected, _ := t.GetSelection(); selected < 1 || selected > count {
		t.Select(1, 0)
	}
}

func (t *Table) RecordCount() int {
	if t.records == nil {
		return 0
	}
	return t.records.Count()
}

// SelectedRecord returns the zero-based index of the selected record or -1.
func (t *Table) SelectedRecord() int {
	row, _ := t.GetSelection()
	if row < 1 || row > t.RecordCount() {
		return -1
	}
	return row - 1
}

func (t *Table) SelectRecord(i int) {
	if i < 0 || i >= t.RecordCount() {
		return
	}
	t.Select(i+1, 0)
}
