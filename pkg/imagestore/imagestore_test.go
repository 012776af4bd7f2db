package imagestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n" + "fake image data")
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	webpBytes = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	gifBytes  = []byte("GIF89a" + "rest")
)

func TestSniffMIME(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		mime string
		ok   bool
	}{
		{"png", pngBytes, "image/png", true},
		{"jpeg", jpegBytes, "image/jpeg", true},
		{"webp", webpBytes, "image/webp", true},
		{"gif89a", gifBytes, "image/gif", true},
		{"gif87a", []byte("GIF87a"), "image/gif", true},
		{"pdf", []byte("%PDF-1.4"), "", false},
		{"text", []byte("hello world"), "", false},
		{"empty", nil, "", false},
		{"riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), "", false},
		{"truncated riff", []byte("RIFF"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ok := SniffMIME(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.mime, mime)
		})
	}
}

func TestExtensionForMIME(t *testing.T) {
	assert.Equal(t, ".png", ExtensionForMIME("image/png"))
	assert.Equal(t, ".jpg", ExtensionForMIME("image/jpeg"))
	assert.Equal(t, ".bin", ExtensionForMIME("application/pdf"))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), []string{"image/png", "image/jpeg", "image/webp", "image/gif"})
	require.NoError(t, err)
	return store
}

func TestStoreSaveReadDelete(t *testing.T) {
	store := newTestStore(t)

	filename, mime, err := store.Save("abc123", pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "abc123.png", filename)
	assert.Equal(t, "image/png", mime)

	data, err := store.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	require.NoError(t, store.Delete(filename))
	_, err = store.Read(filename)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(filename))
}

func TestStoreSaveRejectsUnsupported(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Save("abc123", []byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestStoreSaveRejectsDisallowedType(t *testing.T) {
	store, err := New(t.TempDir(), []string{"image/png"})
	require.NoError(t, err)

	_, _, err = store.Save("abc123", jpegBytes)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestStorePathNeverEscapesDirectory(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, []string{"image/png"})
	require.NoError(t, err)

	p := store.Path("../../etc/passwd")
	assert.Equal(t, filepath.Join(dir, "passwd"), p)
}
