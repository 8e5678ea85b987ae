package filehub

import (
	"errors"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/fsutils"
	"github.com/filetug/filehub/pkg/storagestats"
)

func TestDetailPanel_Show(t *testing.T) {
	p := newDetailPanel()
	p.show(catalog.FileRecord{
		ID:               "b",
		OriginalFilename: "photo.png",
		FileType:         "image/png",
		Size:             fsutils.MiB,
		UploadedAt:       testUploadedAt,
		ReferenceCount:   2,
	})
	text := p.GetText(true)
	assert.Contains(t, text, `"original_filename": "photo.png"`)
	assert.Contains(t, text, "Size: 1MB (1048576 bytes)")
	assert.Contains(t, text, "Storage saved by deduplication: 1.00 MB")

	p.clear()
	assert.Equal(t, "", p.GetText(true))
}

func TestDetailPanel_ColorizeError(t *testing.T) {
	oldColorizeJSON := colorizeJSON
	t.Cleanup(func() {
		colorizeJSON = oldColorizeJSON
	})
	colorizeJSON = func(string, func(string) chroma.Lexer) (string, error) {
		return "", errors.New("no lexer")
	}

	p := newDetailPanel()
	p.show(catalog.FileRecord{ID: "x", OriginalFilename: "plain.txt", ReferenceCount: 1})
	assert.Contains(t, p.GetText(true), `"original_filename": "plain.txt"`)
}

func TestStatsPanel(t *testing.T) {
	t.Parallel()
	p := newStatsPanel()
	p.show(storagestats.Format(storagestats.Stats{}))
	text := p.GetText(true)
	assert.Contains(t, text, "Total requested: 0 MB")
	assert.Contains(t, text, "Storage saved: 0 MB (0%)")

	p.setText(failedText)
	assert.Equal(t, failedText, p.GetText(true))
}

func TestFileRows(t *testing.T) {
	t.Parallel()
	rows := fileRows(testRecords())
	assert.Equal(t, 3, rows.Count())

	expected := map[string]string{
		"Name":       "photo.png",
		"Type":       "image/png",
		"Size (MB)":  "1.00",
		"Refs":       "2",
		"Saved (MB)": "1.00",
		"Uploaded":   testUploadedAt.AddDate(0, 0, 1).Local().Format(uploadedLayout),
	}
	for i, col := range fileColumns {
		cell := rows.GetCell(1, i, col.Name)
		assert.Equal(t, expected[col.Name], cell.Text, col.Name)
		assert.Equal(t, "b", cell.GetReference())
	}
}
