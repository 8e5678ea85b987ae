package sticky

import (
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

type testRecords []string

func (r testRecords) Count() int {
	return len(r)
}

func (r testRecords) GetCell(row, col int, name string) *tview.TableCell {
	if name == "Skip" {
		return nil
	}
	return tview.NewTableCell(r[row] + ":" + strconv.Itoa(col))
}

var testColumns = []Column{
	{Name: "Name", Expansion: 1},
	{Name: "Size", FixedWidth: 10, Align: tview.AlignRight},
	{Name: "Skip"},
}

func TestNewTable(t *testing.T) {
	t.Parallel()
	table := NewTable(testColumns)
	assert.Equal(t, testColumns, table.Columns())
	assert.Equal(t, 1, table.GetRowCount())
	assert.Equal(t, "Size", table.GetCell(0, 1).Text)
	assert.Equal(t, 0, table.RecordCount())
	assert.Equal(t, -1, table.SelectedRecord())

	table.SetHeaderColor(tcell.ColorRed)
	fg, _, _ := table.GetCell(0, 0).Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestTable_SetRecords(t *testing.T) {
	t.Parallel()
	table := NewTable(testColumns)
	table.SetHeaderColor(tcell.ColorRed)
	table.SetRecords(testRecords{"a", "b", "c"})
	fg, _, _ := table.GetCell(0, 1).Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg, "header survives re-render")

	assert.Equal(t, 4, table.GetRowCount())
	assert.Equal(t, "Name", table.GetCell(0, 0).Text)
	assert.Equal(t, "b:0", table.GetCell(2, 0).Text)
	assert.Equal(t, tview.AlignRight, table.GetCell(2, 1).Align)
	assert.Equal(t, "", table.GetCell(2, 2).Text)
	assert.Equal(t, 0, table.SelectedRecord())

	table.SelectRecord(2)
	assert.Equal(t, 2, table.SelectedRecord())
	table.SelectRecord(5)
	assert.Equal(t, 2, table.SelectedRecord(), "out of range is ignored")

	table.SetRecords(testRecords{"x"})
	assert.Equal(t, 2, table.GetRowCount())
	assert.Equal(t, 0, table.SelectedRecord())

	table.SetRecords(testRecords{})
	assert.Equal(t, 1, table.GetRowCount())
	assert.Equal(t, -1, table.SelectedRecord())
}
