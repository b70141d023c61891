package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestStage_ValidPNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "avatar.png", 24, 16)

	staged, err := Stage(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", staged.MIME)
	assert.Equal(t, 24, staged.Width)
	assert.Equal(t, 16, staged.Height)
	assert.Equal(t, staged.Size, int64(len(staged.Data)))
}

func TestStage_RejectsNonImageType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	staged, err := Stage(path)
	assert.Nil(t, staged)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestStage_RejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.png")
	require.NoError(t, os.WriteFile(path, make([]byte, 6<<20), 0o644))

	staged, err := Stage(path)
	assert.Nil(t, staged)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestStage_RejectsImageExtensionWithBogusBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not jpeg"), 0o644))

	_, err := Stage(path)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestStage_FailureLeavesPreviousStagingUsable(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", 8, 8)

	staged, err := Stage(good)
	require.NoError(t, err)

	oversized := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(oversized, make([]byte, MaxBytes+1), 0o644))
	replacement, err := Stage(oversized)
	require.Error(t, err)
	require.Nil(t, replacement)

	// The earlier result is untouched by the failed attempt.
	assert.Equal(t, good, staged.Path)
	assert.NotEmpty(t, staged.Data)
}

func TestStage_MissingFile(t *testing.T) {
	_, err := Stage(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}
