package filehub

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/chroma2tcell"
	"github.com/filetug/filehub/pkg/fsutils"
	"github.com/filetug/filehub/pkg/storagestats"
)

var colorizeJSON = chroma2tcell.ColorizeJSONForTview

type detailPanel struct {
	*tview.TextView
}

func newDetailPanel() *detailPanel {
	p := &detailPanel{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true),
	}
	boxed(p.Box, "Details")
	return p
}

func (p *detailPanel) clear() {
	p.SetText("")
}

func (p *detailPanel) show(record catalog.FileRecord) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		p.SetText(tview.Escape(err.Error()))
		return
	}
	text, err := colorizeJSON(string(data), lexers.Get)
	if err != nil {
		text = tview.Escape(string(data))
	}
	saved := storagestats.BytesToMB(storagestats.RecordSavedBytes(record))
	p.SetText(fmt.Sprintf("%s\n\nSize: %s (%d bytes)\nStorage saved by deduplication: %s MB",
		text, fsutils.GetSizeShortText(record.Size), record.Size, saved))
	p.ScrollToBeginning()
}
