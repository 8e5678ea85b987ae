package filehub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/fsutils"
)

var (
	openFile   = os.Open
	createFile = func(name string) (*os.File, error) {
		return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	}
)

const maxDownloadNameAttempts = 100

func (v *Viewer) downloadSelected() {
	record := v.selectedRecord()
	if record == nil {
		v.setStatus("No file selected")
		return
	}
	v.download(*record)
}

func (v *Viewer) download(record catalog.FileRecord) {
	v.setStatus("Downloading " + record.OriginalFilename + "...")
	go func() {
		path, err := v.downloadTo(record)
		v.app.QueueUpdateDraw(func() {
			if err != nil {
				v.logger.Error("failed to download file", zap.String("id", record.ID), zap.Error(err))
				v.setStatus("Download failed")
				return
			}
			v.setStatus("Saved to " + path)
		})
	}()
}

func (v *Viewer) downloadTo(record catalog.FileRecord) (string, error) {
	if err := fsutils.EnsureDir(v.opts.DownloadDir); err != nil {
		return "", err
	}
	f, path, err := createDownloadFile(v.opts.DownloadDir, record.OriginalFilename)
	if err != nil {
		return "", err
	}
	_, err = v.catalog.Download(context.Background(), record.ID, f)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// createDownloadFile never overwrites: "a.txt" becomes "a (1).txt" and so on.
func createDownloadFile(dir, name string) (*os.File, string, error) {
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		name = "download"
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < maxDownloadNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := createFile(path)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

func (v *Viewer) showUpload() {
	form := tview.NewForm()
	form.AddInputField("Path", "", 0, nil, nil)
	pathField := form.GetFormItemByLabel("Path").(*tview.InputField)
	form.AddButton("Upload", func() {
		path := strings.TrimSpace(pathField.GetText())
		v.closeModal()
		if path != "" {
			v.upload(fsutils.ExpandHome(path))
		}
	})
	form.AddButton("Cancel", v.closeModal)
	form.SetCancelFunc(v.closeModal)
	form.SetBorder(true).SetTitle(" Upload file ")
	v.app.SetRoot(centered(form, 60, 7), true)
	v.app.SetFocus(form)
}

func (v *Viewer) upload(path string) {
	name := filepath.Base(path)
	v.setStatus("Uploading " + name + "...")
	go func() {
		result, err := v.uploadFile(path)
		v.app.QueueUpdateDraw(func() {
			v.onUploaded(name, result, err)
		})
	}()
}

func (v *Viewer) uploadFile(path string) (result catalogapi.UploadResult, err error) {
	f, err := openFile(path)
	if err != nil {
		return result, err
	}
	defer func() {
		_ = f.Close()
	}()
	contentType, err := detectContentType(f)
	if err != nil {
		return result, err
	}
	return v.catalog.Upload(context.Background(), filepath.Base(path), contentType, f)
}

// detectContentType prefers the extension and falls back to sniffing.
// f is rewound afterwards.
func detectContentType(f *os.File) (string, error) {
	if contentType := mime.TypeByExtension(filepath.Ext(f.Name())); contentType != "" {
		return contentType, nil
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func (v *Viewer) onUploaded(name string, result catalogapi.UploadResult, err error) {
	switch {
	case errors.Is(err, catalogapi.ErrNoFile):
		v.setStatus("Upload failed: no file provided")
		return
	case err != nil:
		v.logger.Error("failed to upload file", zap.String("name", name), zap.Error(err))
		v.setStatus("Upload failed")
		return
	case result.Duplicate:
		v.setStatus(fmt.Sprintf("%s is a duplicate of %s", name, result.File.OriginalFilename))
	default:
		v.setStatus("Uploaded " + name)
	}
	if result.File.ID != "" {
		v.selectedID = result.File.ID
	}
	v.Reload()
}

func (v *Viewer) confirmDelete() {
	record := v.selectedRecord()
	if record == nil {
		v.setStatus("No file selected")
		return
	}
	target := *record
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %s?", target.OriginalFilename)).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(_ int, buttonLabel string) {
			v.closeModal()
			if buttonLabel == "Delete" {
				v.delete(target)
			}
		})
	v.app.SetRoot(modal, true)
	v.app.SetFocus(modal)
}

func (v *Viewer) delete(record catalog.FileRecord) {
	v.setStatus("Deleting " + record.OriginalFilename + "...")
	go func() {
		err := v.catalog.Delete(context.Background(), record.ID)
		v.app.QueueUpdateDraw(func() {
			v.onDeleted(record, err)
		})
	}()
}

func (v *Viewer) onDeleted(record catalog.FileRecord, err error) {
	switch {
	case errors.Is(err, catalogapi.ErrNotFound):
		v.setStatus(record.OriginalFilename + " no longer exists")
	case err != nil:
		v.logger.Error("failed to delete file", zap.String("id", record.ID), zap.Error(err))
		v.setStatus("Delete failed")
		return
	default:
		v.setStatus("Deleted " + record.OriginalFilename)
	}
	v.Reload()
}
