package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const (
	// PDFMediaType is the only media type accepted for a resume.
	PDFMediaType = "application/pdf"

	// AdvertisedMaxFileSize is shown to users as the upload limit. The client
	// does not enforce it.
	AdvertisedMaxFileSize int64 = 10 * 1024 * 1024
)

// Document is an uploaded resume held in memory for the duration of one
// submission.
type Document struct {
	Name      string
	MediaType string
	Content   []byte
	SizeBytes int64
}

// NewDocument wraps in-memory content and declares its media type from the
// content itself.
func NewDocument(name string, content []byte) *Document {
	return &Document{
		Name:      name,
		MediaType: mimetype.Detect(content).String(),
		Content:   content,
		SizeBytes: int64(len(content)),
	}
}

// LoadDocument reads a file into memory. A path that is not a regular file
// yields a nil document and no error, so callers treat it as a rejected drop.
func LoadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return NewDocument(filepath.Base(path), content), nil
}

// SizeKB returns the size in KiB.
func (d *Document) SizeKB() float64 {
	return float64(d.SizeBytes) / 1024
}

// FormatSize renders the size the way the upload panel shows it.
func (d *Document) FormatSize() string {
	return fmt.Sprintf("%.2f KB", d.SizeKB())
}

// ExceedsAdvertisedLimit reports whether the document is larger than the
// advertised upload limit. Informational only.
func (d *Document) ExceedsAdvertisedLimit() bool {
	return d.SizeBytes > AdvertisedMaxFileSize
}
