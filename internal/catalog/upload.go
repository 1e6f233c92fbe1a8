package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// MaxUploadBytes is the per-file size cap for gallery images (10MB).
const MaxUploadBytes = 10 * 1024 * 1024

// GalleryUpload is a locally selected image file pending upload. It exists
// only in wizard memory until the multipart gallery update succeeds.
type GalleryUpload struct {
	ID      string // local handle, never sent to the server
	Path    string
	ColSpan int
	RowSpan int
}

// NewGalleryUpload wraps a validated file path with default 1x1 spans.
func NewGalleryUpload(path string) GalleryUpload {
	return GalleryUpload{
		ID:      uuid.NewString(),
		Path:    path,
		ColSpan: 1,
		RowSpan: 1,
	}
}

// UploadName returns a safe multipart filename for the upload, preserving
// the extension so the server can store the asset under a sane name.
// Underscores become dashes first; slug.Make keeps them as-is.
func (u GalleryUpload) UploadName() string {
	base := filepath.Base(u.Path)
	ext := filepath.Ext(base)
	stem := strings.ReplaceAll(strings.TrimSuffix(base, ext), "_", "-")
	name := slug.Make(stem)
	if name == "" {
		name = u.ID
	}
	return name + strings.ToLower(ext)
}

// CheckImageFile verifies that path points to a readable image file no larger
// than MaxUploadBytes. The MIME type is sniffed from content, not guessed
// from the extension.
func CheckImageFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxUploadBytes {
		return fmt.Errorf("file exceeds the 10MB limit (%.1fMB)", float64(info.Size())/(1024*1024))
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("cannot detect file type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("only image files are allowed (got %s)", mt.String())
	}
	return nil
}
