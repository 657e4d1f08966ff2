// Package attachment stores uploaded binaries and yields retrievable
// references, keeping the employee service agnostic of where the bytes
// actually live.
package attachment

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"hr-records/internal/model"
)

// Store accepts an uploaded binary and returns the reference persisted on
// the owning record. Implementations enforce the type and size limits, so
// a returned reference always points at an accepted object.
type Store interface {
	Save(ctx context.Context, r io.Reader, filename string, declaredType string) (string, error)
}

// Limits is the shared allow-list and size cap applied by every backend.
type Limits struct {
	MaxSize      int64
	AllowedTypes map[string]struct{}
}

func NewLimits(maxSize int64, allowedTypes []string) Limits {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[normalizeType(t)] = struct{}{}
	}
	return Limits{MaxSize: maxSize, AllowedTypes: allowed}
}

// readChecked buffers the upload, rejecting it when the declared type or
// the sniffed content type is outside the allow-list or the body exceeds
// the size cap.
func (l Limits) readChecked(r io.Reader, declaredType string) ([]byte, error) {
	if !l.allows(declaredType) {
		return nil, model.ErrAttachmentType
	}

	data, err := io.ReadAll(io.LimitReader(r, l.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.MaxSize {
		return nil, model.ErrAttachmentTooLarge
	}

	if !l.allows(http.DetectContentType(data)) {
		return nil, model.ErrAttachmentType
	}

	return data, nil
}

func (l Limits) allows(mimeType string) bool {
	_, ok := l.AllowedTypes[normalizeType(mimeType)]
	return ok
}

func normalizeType(mimeType string) string {
	cleaned := strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(cleaned, ";"); idx >= 0 {
		cleaned = strings.TrimSpace(cleaned[:idx])
	}
	// image/jpg is a common alias browsers send for the registered
	// image/jpeg.
	if cleaned == "image/jpg" {
		cleaned = "image/jpeg"
	}
	return cleaned
}

func safeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
