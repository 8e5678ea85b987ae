package filehub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/fsutils"
	"github.com/filetug/filehub/pkg/storagestats"
)

const testAPIURL = "http://localhost:8000/api"

var testUploadedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testRecords() []catalog.FileRecord {
	return []catalog.FileRecord{
		{ID: "a", OriginalFilename: "report.pdf", FileType: "application/pdf", Size: 2 * fsutils.MiB, UploadedAt: testUploadedAt, ReferenceCount: 1},
		{ID: "b", OriginalFilename: "photo.png", FileType: "image/png", Size: fsutils.MiB, UploadedAt: testUploadedAt.AddDate(0, 0, 1), ReferenceCount: 2},
		{ID: "c", OriginalFilename: "Notes.txt", FileType: "text/plain", Size: 512, UploadedAt: testUploadedAt.AddDate(0, 0, 2), ReferenceCount: 1},
	}
}

func float(v float64) *float64 {
	return &v
}

func testStats() storagestats.Stats {
	return storagestats.Stats{
		TotalRequestedUploadSizeMB: float(10),
		UniqueStorageUsedMB:        float(7.5),
		StorageSavedMB:             float(2.5),
	}
}

type viewerFixture struct {
	viewer  *Viewer
	app     *testApp
	catalog *catalogapi.MockCatalog
	saved   []string
}

// newViewerFixture swaps the state seams; tests using it must not run in parallel.
func newViewerFixture(t *testing.T, rememberedID string) *viewerFixture {
	t.Helper()
	f := &viewerFixture{
		app:     newTestApp(),
		catalog: catalogapi.NewMockCatalog(gomock.NewController(t)),
	}

	oldGet, oldSave := getSelectedFileID, saveSelectedFileID
	t.Cleanup(func() {
		getSelectedFileID, saveSelectedFileID = oldGet, oldSave
	})
	getSelectedFileID = func(apiURL string) string {
		if apiURL != testAPIURL {
			return ""
		}
		return rememberedID
	}
	saveSelectedFileID = func(apiURL, fileID string) {
		assert.Equal(t, testAPIURL, apiURL)
		f.saved = append(f.saved, fileID)
	}

	f.viewer = NewViewer(f.app, f.catalog, Options{
		APIURL:      testAPIURL,
		DownloadDir: t.TempDir(),
		Location:    time.UTC,
	})
	t.Cleanup(f.viewer.selection.wait)
	return f
}

// savedIDs returns the selections written so far, once pending writes finish.
func (f *viewerFixture) savedIDs() []string {
	f.viewer.selection.wait()
	return f.saved
}

func (f *viewerFixture) expectLoad(records []catalog.FileRecord, stats storagestats.Stats) {
	f.catalog.EXPECT().ListFiles(gomock.Any(), catalogapi.ListOptions{}).Return(records, nil)
	f.catalog.EXPECT().StorageStats(gomock.Any()).Return(stats, nil)
}

// load runs one successful reload to completion.
func (f *viewerFixture) load(t *testing.T) {
	t.Helper()
	f.expectLoad(testRecords(), testStats())
	f.viewer.Reload()
	f.app.drain(t, 2)
	require.Equal(t, statusReady, f.viewer.status)
}

func ids(records []catalog.FileRecord) []string {
	result := make([]string, len(records))
	for i, r := range records {
		result[i] = r.ID
	}
	return result
}
