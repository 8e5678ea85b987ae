package filehub

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/sticky"
	"github.com/filetug/filehub/pkg/storagestats"
)

const uploadedLayout = "2006-01-02 15:04"

var fileColumns = []sticky.Column{
	{Name: "Name", Expansion: 1},
	{Name: "Type", FixedWidth: 24},
	{Name: "Size (MB)", Align: tview.AlignRight},
	{Name: "Refs", Align: tview.AlignRight},
	{Name: "Saved (MB)", Align: tview.AlignRight},
	{Name: "Uploaded", FixedWidth: len(uploadedLayout)},
}

// fileRows adapts records to the sticky table.
type fileRows []catalog.FileRecord

func (r fileRows) Count() int {
	return len(r)
}

func (r fileRows) GetCell(row, _ int, name string) *tview.TableCell {
	record := r[row]
	var text string
	switch name {
	case "Name":
		text = record.OriginalFilename
	case "Type":
		text = record.FileType
	case "Size (MB)":
		text = storagestats.BytesToMB(record.Size)
	case "Refs":
		text = strconv.Itoa(record.ReferenceCount)
	case "Saved (MB)":
		text = storagestats.BytesToMB(storagestats.RecordSavedBytes(record))
	case "Uploaded":
		text = record.UploadedAt.Local().Format(uploadedLayout)
	}
	return tview.NewTableCell(tview.Escape(text)).SetReference(record.ID)
}

type filesPanel struct {
	*sticky.Table
	records   fileRows
	rendering bool
}

func newFilesPanel(v *Viewer) *filesPanel {
	p := &filesPanel{
		Table: sticky.NewTable(fileColumns),
	}
	boxed(p.Box, "Files")
	p.SetHeaderColor(Style.TableHeaderColor)
	p.SetSelectionChangedFunc(func(_, _ int) {
		if p.rendering {
			return
		}
		v.onSelected(p.selected())
	})
	return p
}

// show replaces the rows and re-selects selectedID when it is still visible.
func (p *filesPanel) show(records []catalog.FileRecord, total int, selectedID string) {
	p.rendering = true
	defer func() {
		p.rendering = false
	}()
	p.records = records
	p.SetRecords(p.records)
	p.SetTitle(fmt.Sprintf(" Files (%d of %d) ", len(records), total))
	for i, r := range records {
		if r.ID == selectedID {
			p.SelectRecord(i)
			break
		}
	}
}

func (p *filesPanel) selected() *catalog.FileRecord {
	i := p.SelectedRecord()
	if i < 0 || i >= len(p.records) {
		return nil
	}
	return &p.records[i]
}
