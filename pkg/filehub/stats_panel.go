package filehub

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/storagestats"
)

type statsPanel struct {
	*tview.TextView
}

func newStatsPanel() *statsPanel {
	p := &statsPanel{
		TextView: tview.NewTextView().SetDynamicColors(true),
	}
	boxed(p.Box, "Storage")
	return p
}

func (p *statsPanel) setText(text string) {
	p.SetText(tview.Escape(text))
}

func (p *statsPanel) show(d storagestats.DisplayStats) {
	percent := strconv.FormatFloat(d.SavedPercent(), 'f', -1, 64)
	p.SetText(fmt.Sprintf(
		"Total requested: [white]%s MB[-]    Unique storage used: [white]%s MB[-]\n"+
			"Storage saved: [%s]%s MB[-] (%s%%)",
		d.TotalRequested, d.UniqueUsed,
		Style.SavedColor, d.Saved, percent,
	))
}
