// Package filehub is the terminal viewer of the file catalog. It loads the
// records and storage counters, owns the current filter and renders the panels.
package filehub

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/hubstate"
	"github.com/filetug/filehub/pkg/storagestats"
)

type Options struct {
	// APIURL scopes the remembered selection.
	APIURL      string
	DownloadDir string
	Logger      *zap.Logger
	// Location resolves date-only filter bounds. Nil means time.Local.
	Location *time.Location
}

type loadStatus int

const (
	statusLoading loadStatus = iota
	statusFailed
	statusReady
)

const (
	loadingText = "Loading..."
	failedText  = "Error loading files or storage data."
)

var (
	getSelectedFileID  = hubstate.GetSelectedFileID
	saveSelectedFileID = hubstate.SaveSelectedFileID
)

// Viewer is the root primitive. Everything below the load goroutines runs
// on the UI goroutine.
type Viewer struct {
	*tview.Flex
	app     App
	catalog catalogapi.Catalog
	logger  *zap.Logger
	opts    Options

	statsPanel  *statsPanel
	filterPanel *filterPanel
	filesPanel  *filesPanel
	detailPanel *detailPanel
	bottom      *bottom
	center      *tview.Pages
	message     *tview.TextView

	generation uint64
	pending    *pendingLoad
	cancelLoad context.CancelFunc

	status     loadStatus
	records    []catalog.FileRecord
	storage    storagestats.Stats
	spec       catalog.FilterSpec
	visible    []catalog.FileRecord
	selectedID string
	selection  *selectionSaver
}

func NewViewer(app App, c catalogapi.Catalog, opts Options) *Viewer {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	v := &Viewer{
		Flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		app:     app,
		catalog: c,
		logger:  opts.Logger.Named("viewer"),
		opts:    opts,
	}
	v.selection = &selectionSaver{apiURL: opts.APIURL}
	v.selectedID = getSelectedFileID(opts.APIURL)

	v.statsPanel = newStatsPanel()
	v.filterPanel = newFilterPanel(v)
	v.filesPanel = newFilesPanel(v)
	v.detailPanel = newDetailPanel()
	v.bottom = newBottom(v)

	v.message = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(Style.MessageColor)
	boxed(v.message.Box, "Files")

	v.center = tview.NewPages().
		AddPage(pageFiles, v.filesPanel, true, false).
		AddPage(pageMessage, v.message, true, true)

	body := tview.NewFlex().
		AddItem(v.filterPanel, 34, 0, true).
		AddItem(v.center, 0, 3, false).
		AddItem(v.detailPanel, 0, 2, false)

	v.AddItem(v.statsPanel, 5, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(v.bottom, 1, 0, false)

	v.SetInputCapture(v.inputCapture)
	v.render()
	return v
}

const (
	pageFiles   = "files"
	pageMessage = "message"
)

func (v *Viewer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		v.showHelp()
		return nil
	case tcell.KeyF5:
		v.downloadSelected()
		return nil
	case tcell.KeyF7:
		v.showUpload()
		return nil
	case tcell.KeyF8:
		v.confirmDelete()
		return nil
	case tcell.KeyCtrlR:
		v.Reload()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				v.exit()
				return nil
			case 'f', 'F':
				v.app.SetFocus(v.filterPanel)
				return nil
			case 'l', 'L':
				v.app.SetFocus(v.filesPanel)
				return nil
			}
		}
	default:
	}
	return event
}

// SetFilter replaces the current filter and recomputes the view.
func (v *Viewer) SetFilter(spec catalog.FilterSpec) {
	v.spec = spec
	v.recompute()
}

func (v *Viewer) Filter() catalog.FilterSpec {
	return v.spec
}

// Visible returns the records currently shown.
func (v *Viewer) Visible() []catalog.FileRecord {
	return v.visible
}

// recompute is the only place the visible set is derived: current records
// filtered by the current spec.
func (v *Viewer) recompute() {
	v.visible = catalog.Filter(v.records, v.spec)
	v.render()
}

func (v *Viewer) render() {
	switch v.status {
	case statusLoading:
		v.showMessage(loadingText, Style.MessageColor)
		v.statsPanel.setText(loadingText)
		v.detailPanel.clear()
	case statusFailed:
		v.showMessage(failedText, Style.ErrorColor)
		v.statsPanel.setText(failedText)
		v.detailPanel.clear()
	default:
		v.statsPanel.show(storagestats.Format(v.storage))
		v.filesPanel.show(v.visible, len(v.records), v.selectedID)
		v.center.SwitchToPage(pageFiles)
		v.onSelected(v.filesPanel.selected())
	}
}

func (v *Viewer) showMessage(text string, color tcell.Color) {
	v.message.SetTextColor(color)
	v.message.SetText("\n" + text)
	v.center.SwitchToPage(pageMessage)
}

// onSelected updates the detail pane and remembers the selection.
func (v *Viewer) onSelected(record *catalog.FileRecord) {
	if record == nil {
		v.detailPanel.clear()
		return
	}
	v.detailPanel.show(*record)
	if record.ID != v.selectedID {
		v.selectedID = record.ID
		v.selection.store(record.ID)
	}
}

func (v *Viewer) selectedRecord() *catalog.FileRecord {
	if v.status != statusReady {
		return nil
	}
	return v.filesPanel.selected()
}

func (v *Viewer) setStatus(text string) {
	v.bottom.setStatus(text)
}

func (v *Viewer) exit() {
	if v.cancelLoad != nil {
		v.cancelLoad()
	}
	v.selection.wait()
	v.app.Stop()
}
