package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/fsutils"
	"github.com/filetug/filehub/pkg/storagestats"
)

// ListOptions are narrowed server side before any client filtering.
// Zero values are not sent.
type ListOptions struct {
	Name     string
	FileType string
	MinSize  int64 // bytes
	MaxSize  int64 // bytes
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	if o.FileType != "" {
		q.Set("file_type", o.FileType)
	}
	if o.MinSize > 0 {
		q.Set("min_size", strconv.FormatInt(o.MinSize, 10))
	}
	if o.MaxSize > 0 {
		q.Set("max_size", strconv.FormatInt(o.MaxSize, 10))
	}
	return q
}

// NarrowListing derives server-side options from spec that never drop a record
// spec would keep, so catalog.Filter still decides the final listing.
// The server matches names case-insensitively with SQL, so only ASCII search
// text is sent. Date bounds are never sent: the server compares calendar days
// in its own time zone.
func NarrowListing(spec catalog.FilterSpec) ListOptions {
	var o ListOptions
	if isASCII(spec.SearchText) {
		o.Name = spec.SearchText
	}
	if types := catalog.MIMETypes(spec.Category); len(types) == 1 {
		o.FileType = types[0]
	}
	if spec.MinSizeMB != nil && *spec.MinSizeMB > 0 {
		o.MinSize = int64(math.Ceil(fsutils.MiBToBytes(*spec.MinSizeMB)))
	}
	if spec.MaxSizeMB != nil && *spec.MaxSizeMB > 0 {
		o.MaxSize = int64(math.Floor(fsutils.MiBToBytes(*spec.MaxSizeMB)))
	}
	return o
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// fileDTO mirrors the serializer output. uploaded_at is kept as text because
// servers without time zone support send it without an offset.
type fileDTO struct {
	ID               string `json:"id"`
	File             string `json:"file"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	Size             int64  `json:"size"`
	FileHash         string `json:"file_hash"`
	ReferenceCount   int    `json:"reference_count"`
	UploadedAt       string `json:"uploaded_at"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (d fileDTO) record() (catalog.FileRecord, bool) {
	uploadedAt, ok := parseTimestamp(d.UploadedAt)
	return catalog.FileRecord{
		ID:               d.ID,
		OriginalFilename: d.OriginalFilename,
		FileType:         d.FileType,
		Size:             d.Size,
		UploadedAt:       uploadedAt,
		FileHash:         d.FileHash,
		ReferenceCount:   d.ReferenceCount,
		File:             d.File,
	}, ok
}

// ListFiles fetches every cataloged file in server order.
// Records breaking the catalog invariants are dropped and logged.
func (c *Client) ListFiles(ctx context.Context, opts ListOptions) ([]catalog.FileRecord, error) {
	const op = "list files"
	var dtos []fileDTO
	if err := c.getJSON(ctx, op, c.endpoint(opts.query(), "files"), &dtos); err != nil {
		return nil, err
	}
	records := make([]catalog.FileRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, ok := dto.record()
		if !ok {
			c.logger.Warn("dropping record with unparseable uploaded_at",
				zap.String("id", dto.ID),
				zap.String("uploaded_at", dto.UploadedAt),
			)
			continue
		}
		if !record.IsValid() {
			c.logger.Warn("dropping invalid record",
				zap.String("id", dto.ID),
				zap.Int("reference_count", dto.ReferenceCount),
				zap.Int64("size", dto.Size),
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// StorageStats fetches the deduplication counters.
func (c *Client) StorageStats(ctx context.Context) (storagestats.Stats, error) {
	var stats storagestats.Stats
	err := c.getJSON(ctx, "get storage stats", c.endpoint(nil, "files", "storage-savings"), &stats)
	return stats, err
}

var escapeQuotes = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Upload sends content as a multipart form. The server answers 201 with the new
// record, or 200 with the existing record when the content was already stored.
func (c *Client) Upload(ctx context.Context, name, contentType string, content io.Reader) (UploadResult, error) {
	const op = "upload file"
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes.Replace(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = io.Copy(part, content); err != nil {
		return UploadResult{}, fmt.Errorf("%s: failed to read content: %w", op, err)
	}
	if err = form.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint(nil, "files"), &body)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, op, req, http.StatusCreated, http.StatusOK)
	if err != nil {
		return UploadResult{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var result UploadResult
	var dto fileDTO
	if resp.StatusCode == http.StatusOK {
		var duplicate struct {
			Message string  `json:"message"`
			File    fileDTO `json:"file"`
		}
		if err = json.NewDecoder(resp.Body).Decode(&duplicate); err != nil {
			return UploadResult{}, fmt.Errorf("%s: failed to decode response body: %w", op, err)
		}
		result.Duplicate = true
		result.Message = duplicate.Message
		dto = duplicate.File
	} else if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return UploadResult{}, fmt.Errorf("%s: failed to decode response body: %w", op, err)
	}
	result.File, _ = dto.record()
	c.logger.Info("uploaded",
		zap.String("id", result.File.ID),
		zap.String("name", name),
		zap.Bool("duplicate", result.Duplicate),
	)
	return result, nil
}

// Delete removes one file record.
func (c *Client) Delete(ctx context.Context, id string) error {
	const op = "delete file"
	req, err := http.NewRequest(http.MethodDelete, c.endpoint(nil, "files", id), nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	resp, err := c.do(ctx, op, req, http.StatusNoContent, http.StatusOK)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	c.logger.Info("deleted", zap.String("id", id))
	return nil
}

// Download streams the stored content of a file into w.
func (c *Client) Download(ctx context.Context, id string, w io.Writer) (int64, error) {
	const op = "download file"
	req, err := http.NewRequest(http.MethodGet, c.endpoint(nil, "files", id, "download"), nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	resp, err := c.do(ctx, op, req, http.StatusOK)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%s: failed to read response body: %w", op, err)
	}
	return n, nil
}
