package filehub

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/storagestats"
)

func frontPage(v *Viewer) string {
	name, _ := v.center.GetFrontPage()
	return name
}

func TestNewViewer_StartsLoading(t *testing.T) {
	f := newViewerFixture(t, "")
	assert.Equal(t, statusLoading, f.viewer.status)
	assert.Equal(t, pageMessage, frontPage(f.viewer))
	assert.Contains(t, f.viewer.message.GetText(true), loadingText)
	assert.True(t, f.viewer.Filter().IsEmpty())
}

func TestViewer_Reload(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)

	v := f.viewer
	assert.Equal(t, []string{"a", "b", "c"}, ids(v.Visible()))
	assert.Equal(t, pageFiles, frontPage(v))
	assert.Equal(t, " Files (3 of 3) ", v.filesPanel.GetTitle())
	assert.Contains(t, v.statsPanel.GetText(true), "Total requested: 10 MB")
	assert.Contains(t, v.statsPanel.GetText(true), "Unique storage used: 7.5 MB")
	assert.Contains(t, v.statsPanel.GetText(true), "Storage saved: 2.5 MB (25%)")
	assert.Equal(t, []string{"a"}, f.savedIDs(), "first row gets selected and remembered")
	assert.Contains(t, v.detailPanel.GetText(true), "report.pdf")
	assert.Nil(t, v.pending)
}

func TestViewer_CombinedFailure(t *testing.T) {
	for _, tt := range []struct {
		name       string
		recordsErr error
		statsErr   error
	}{
		{name: "records_fail", recordsErr: errors.New("connection refused")},
		{name: "stats_fail", statsErr: errors.New("500")},
		{name: "both_fail", recordsErr: errors.New("a"), statsErr: errors.New("b")},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newViewerFixture(t, "")
			f.load(t)

			f.catalog.EXPECT().ListFiles(gomock.Any(), gomock.Any()).Return(testRecords(), tt.recordsErr)
			f.catalog.EXPECT().StorageStats(gomock.Any()).Return(testStats(), tt.statsErr)
			f.viewer.Reload()
			f.app.drain(t, 2)

			v := f.viewer
			assert.Equal(t, statusFailed, v.status)
			assert.Equal(t, pageMessage, frontPage(v))
			assert.Contains(t, v.message.GetText(true), failedText)
			assert.Contains(t, v.statsPanel.GetText(true), failedText)
			assert.Equal(t, "", v.detailPanel.GetText(true))
			assert.Nil(t, v.selectedRecord(), "no partial view")
			assert.Nil(t, v.pending)
		})
	}
}

func TestViewer_StaleLoadDiscarded(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)
	staleGeneration := f.viewer.generation

	fresh := testRecords()[:1]
	f.expectLoad(fresh, storagestats.Stats{})
	f.viewer.Reload()

	f.viewer.onRecordsLoaded(staleGeneration, testRecords(), nil)
	f.viewer.onStatsLoaded(staleGeneration, testStats(), nil)
	assert.Equal(t, statusLoading, f.viewer.status, "stale results must not complete the load")

	f.app.drain(t, 2)
	assert.Equal(t, statusReady, f.viewer.status)
	assert.Equal(t, []string{"a"}, ids(f.viewer.Visible()))
	assert.Contains(t, f.viewer.statsPanel.GetText(true), "Total requested: 0 MB")

	f.viewer.onRecordsLoaded(staleGeneration, testRecords(), nil)
	assert.Equal(t, []string{"a"}, ids(f.viewer.Visible()), "late results after completion are ignored too")
}

func TestViewer_Reload_CancelsPrevious(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)

	cancelled := false
	f.viewer.cancelLoad = func() {
		cancelled = true
	}
	f.expectLoad(testRecords(), testStats())
	f.viewer.Reload()
	f.app.drain(t, 2)
	assert.True(t, cancelled)
}

func TestViewer_SetFilter(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)
	v := f.viewer

	v.SetFilter(catalog.FilterSpec{SearchText: "NOTES"})
	assert.Equal(t, []string{"c"}, ids(v.Visible()))
	assert.Equal(t, " Files (1 of 3) ", v.filesPanel.GetTitle())

	minMB := 1.0
	v.SetFilter(catalog.FilterSpec{MinSizeMB: &minMB, MaxSizeMB: &minMB})
	assert.Equal(t, []string{"b"}, ids(v.Visible()), "exactly 1 MiB passes min=1 and max=1")

	v.SetFilter(catalog.FilterSpec{})
	assert.Equal(t, []string{"a", "b", "c"}, ids(v.Visible()))
}

func TestViewer_FilterAppliedBeforeLoad(t *testing.T) {
	f := newViewerFixture(t, "")
	v := f.viewer

	v.SetFilter(catalog.FilterSpec{Category: catalog.CategoryImage})
	assert.Equal(t, statusLoading, v.status)
	assert.Empty(t, v.Visible())

	f.expectLoad(testRecords(), testStats())
	v.Reload()
	f.app.drain(t, 2)
	assert.Equal(t, []string{"b"}, ids(v.Visible()), "current records filtered by current spec")
}

func TestViewer_RestoresSelection(t *testing.T) {
	f := newViewerFixture(t, "b")
	f.load(t)
	v := f.viewer

	require.NotNil(t, v.selectedRecord())
	assert.Equal(t, "b", v.selectedRecord().ID)
	assert.Empty(t, f.savedIDs(), "restoring the remembered file does not rewrite it")
	assert.Contains(t, v.detailPanel.GetText(true), "photo.png")

	v.filesPanel.SelectRecord(2)
	assert.Equal(t, []string{"c"}, f.savedIDs())
	assert.Contains(t, v.detailPanel.GetText(true), "Notes.txt")

	v.SetFilter(catalog.FilterSpec{SearchText: "zzz"})
	assert.Nil(t, v.selectedRecord())
	assert.Equal(t, "", v.detailPanel.GetText(true))
}

func TestViewer_InputCapture(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)
	v := f.viewer

	t.Run("F1", func(t *testing.T) {
		assert.Nil(t, v.inputCapture(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
		assert.NotNil(t, f.app.root)
		assert.NotEqual(t, v, f.app.root)
		v.closeModal()
		assert.Equal(t, v, f.app.root)
	})

	t.Run("Alt+F", func(t *testing.T) {
		assert.Nil(t, v.inputCapture(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt)))
		assert.Equal(t, v.filterPanel, f.app.focus)
	})

	t.Run("Alt+L", func(t *testing.T) {
		assert.Nil(t, v.inputCapture(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModAlt)))
		assert.Equal(t, v.filesPanel, f.app.focus)
	})

	t.Run("plain_rune_passes", func(t *testing.T) {
		event := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
		assert.Equal(t, event, v.inputCapture(event))
	})

	t.Run("Ctrl+R", func(t *testing.T) {
		f.expectLoad(testRecords(), testStats())
		assert.Nil(t, v.inputCapture(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)))
		assert.Equal(t, statusLoading, v.status)
		f.app.drain(t, 2)
		assert.Equal(t, statusReady, v.status)
	})

	t.Run("Alt+X", func(t *testing.T) {
		assert.Nil(t, v.inputCapture(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)))
		assert.True(t, f.app.stopped)
	})
}

func TestViewer_SelectedRecordWhileLoading(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)

	f.expectLoad(testRecords(), testStats())
	f.viewer.Reload()
	assert.Nil(t, f.viewer.selectedRecord())
	f.viewer.downloadSelected()
	assert.Equal(t, "No file selected", f.viewer.bottom.status.GetText(true))
	f.app.drain(t, 2)
}

var _ catalogapi.Catalog = (*catalogapi.MockCatalog)(nil)
