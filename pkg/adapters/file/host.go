package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/media"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/oklog/ulid/v2"
)

// Host implements ports.MediaHost using the local filesystem.
//
// Assets are stored as <BasePath>/<public id><ext> and served under
// <BaseURL>/<type>/upload/v<unix>/<public id><ext>, so media.PublicID can
// recover the id from any URL it hands out.
type Host struct {
	BasePath string
	BaseURL  string
	now      func() time.Time
}

var _ ports.MediaHost = (*Host)(nil)

// New creates a new Host. If basePath is empty, it defaults to ".canova/media".
func New(basePath, baseURL string) *Host {
	if basePath == "" {
		basePath = filepath.Join(".canova", "media")
	}
	return &Host{
		BasePath: basePath,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// Upload checks the file type and size, then stores it atomically.
func (h *Host) Upload(ctx context.Context, upload ports.MediaUpload) (ports.Asset, error) {
	kind, err := media.Classify(upload.ContentType, upload.Filename)
	if err != nil {
		return ports.Asset{}, err
	}
	if upload.Size > media.MaxUploadBytes {
		return ports.Asset{}, domain.Invalid("file", "file exceeds %d MB", media.MaxUploadBytes>>20)
	}

	ext := strings.ToLower(path.Ext(upload.Filename))
	publicID := path.Join(media.Folder(kind), strings.ToLower(ulid.Make().String()))
	destPath := filepath.Join(h.BasePath, filepath.FromSlash(publicID)+ext)

	n, err := writeAtomic(destPath, io.LimitReader(upload.Body, media.MaxUploadBytes+1))
	if err != nil {
		return ports.Asset{}, err
	}
	if n > media.MaxUploadBytes {
		_ = os.Remove(destPath)
		return ports.Asset{}, domain.Invalid("file", "file exceeds %d MB", media.MaxUploadBytes>>20)
	}

	return ports.Asset{
		URL:          fmt.Sprintf("%s/%s/upload/v%d/%s%s", h.BaseURL, kind, h.now().Unix(), publicID, ext),
		PublicID:     publicID,
		ResourceType: kind,
		Bytes:        n,
	}, nil
}

// Delete removes the stored file of publicID, whatever its extension.
func (h *Host) Delete(ctx context.Context, publicID string, resourceType ports.ResourceType) error {
	if publicID == "" || strings.Contains(publicID, "..") {
		return domain.Invalid("publicId", "invalid public id %q", publicID)
	}
	matches, err := filepath.Glob(filepath.Join(h.BasePath, filepath.FromSlash(publicID)) + ".*")
	if err != nil {
		return fmt.Errorf("failed to look up media file: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove media file: %w", err)
		}
	}
	return nil
}

// Resolve maps a served path "<type>/upload/v<unix>/<public id><ext>" to the file on disk.
func (h *Host) Resolve(servedPath string) (string, bool) {
	id, ok := media.PublicID("/" + strings.TrimPrefix(servedPath, "/"))
	if !ok || strings.Contains(id, "..") {
		return "", false
	}
	ext := path.Ext(servedPath)
	return filepath.Join(h.BasePath, filepath.FromSlash(id)+ext), true
}

// writeAtomic writes r to destPath through a temp file in the same directory:
// write, fsync, close, rename.
func writeAtomic(destPath string, r io.Reader) (int64, error) {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to ensure media directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	n, err := io.Copy(tmpFile, r)
	if err != nil {
		return 0, fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return 0, fmt.Errorf("failed to rename temp file: %w", err)
	}
	return n, nil
}
