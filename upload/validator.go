package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/forgo/batteries/problem"
)

// Config holds validation constraints for uploaded files.
type Config struct {
	// MaxSizeBytes is the maximum accepted file size. Zero disables the
	// size check.
	MaxSizeBytes int64

	// AllowedMIMETypes is the allow-list of content types, matched
	// against the sniffed type (aliases included). Empty disables the
	// type check.
	AllowedMIMETypes []string
}

// Validator checks uploaded files against a Config.
type Validator struct {
	cfg Config
}

// New creates a Validator with the given constraints.
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate sniffs the true MIME type from the file content, checks it
// against the allow-list, and checks size against the maximum. The read
// position is restored before returning, so on success the file is
// usable as if untouched. Returns the detected MIME type.
func (v *Validator) Validate(f io.ReadSeeker, size int64) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("sniffing content type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding file: %w", err)
	}

	if len(v.cfg.AllowedMIMETypes) > 0 && !allowed(mt, v.cfg.AllowedMIMETypes) {
		return "", problem.NewUnsupportedMediaType(fmt.Sprintf(
			"file type %q is not allowed (allowed types: %s)",
			mt.String(), strings.Join(v.cfg.AllowedMIMETypes, ", "),
		))
	}

	if v.cfg.MaxSizeBytes > 0 && size > v.cfg.MaxSizeBytes {
		return "", problem.NewContentTooLarge(fmt.Sprintf(
			"file size %d bytes exceeds the maximum of %d bytes",
			size, v.cfg.MaxSizeBytes,
		))
	}

	return mt.String(), nil
}

// ValidateFile opens and validates a multipart file header. On success
// the opened file is returned positioned at the start; the caller owns
// closing it. On failure the file is closed and the error returned.
func (v *Validator) ValidateFile(fh *multipart.FileHeader) (multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %q: %w", fh.Filename, err)
	}
	if _, err := v.Validate(f, fh.Size); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// allowed reports whether the detected type or one of its aliases
// matches any entry in the allow-list.
func allowed(mt *mimetype.MIME, allow []string) bool {
	for _, a := range allow {
		if mt.Is(a) {
			return true
		}
	}
	return false
}
