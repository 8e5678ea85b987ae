// Package catalogapi talks to the file hub REST API: it lists cataloged files,
// reads storage-savings counters and performs one-shot upload, delete and
// download calls. It holds no filtering or accounting logic.
package catalogapi

import (
	"context"
	"io"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/storagestats"
)

//go:generate mockgen -destination=mock_catalog.go -package=catalogapi . Catalog

// Catalog is the remote catalog as seen by the viewer.
type Catalog interface {
	ListFiles(ctx context.Context, opts ListOptions) ([]catalog.FileRecord, error)
	StorageStats(ctx context.Context) (storagestats.Stats, error)
	Upload(ctx context.Context, name, contentType string, content io.Reader) (UploadResult, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string, w io.Writer) (int64, error)
}

// UploadResult describes the outcome of an upload.
// Duplicate is set when the server already had the content and only bumped its reference count.
type UploadResult struct {
	File      catalog.FileRecord
	Duplicate bool
	Message   string
}

var _ Catalog = (*Client)(nil)
