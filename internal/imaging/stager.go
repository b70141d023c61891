// Package imaging validates and buffers a candidate profile image on the
// client before any upload happens.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"mime"
	"os"
	"path/filepath"
	"strings"

	// Preview decoders. JPEG/PNG/GIF from the standard library, the rest
	// from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxBytes is the staging size cap: 5 MiB.
const MaxBytes = 5 << 20

var (
	// ErrNotImage is returned when the declared MIME type is not image/* or
	// the bytes cannot be decoded as an image.
	ErrNotImage = errors.New("not a valid image file")
	// ErrTooLarge is returned when the file exceeds MaxBytes.
	ErrTooLarge = errors.New("image exceeds the 5MB size limit")
)

// StagedImage is a validated image held in memory between selection and
// submission. No network call has happened yet.
type StagedImage struct {
	Path   string // source file
	MIME   string // declared type, from the file extension
	Size   int64  // byte size
	Data   []byte // raw bytes, uploaded verbatim at submission time
	Width  int    // decoded preview dimensions
	Height int
}

// Stage validates the file at path and buffers it for a later upload.
// Checks run in order: declared MIME type must be image/*, then the byte size
// must not exceed MaxBytes, then the bytes must decode. A failed staging
// returns an error and nothing else; any previously staged image is the
// caller's to keep.
func Stage(path string) (*StagedImage, error) {
	declared := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(declared, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if info.Size() > MaxBytes {
		return nil, fmt.Errorf("%w: %.1fMB", ErrTooLarge, float64(info.Size())/(1<<20))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, filepath.Base(path))
	}

	return &StagedImage{
		Path:   path,
		MIME:   declared,
		Size:   info.Size(),
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
