// Package imagestore persists uploaded diagram images on the local
// filesystem and owns image-type detection. MIME types are sniffed from
// magic bytes; the client-declared content type is never trusted.
package imagestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedImage marks a payload whose sniffed type is not in the
// allowed set (or not an image at all).
var ErrUnsupportedImage = errors.New("unsupported image type")

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// SniffMIME detects the image type from magic bytes. Returns ("", false)
// when the payload matches none of the supported formats.
func SniffMIME(data []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png", true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg", true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp", true
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif", true
	default:
		return "", false
	}
}

// ExtensionForMIME returns the file extension for a supported MIME type,
// ".bin" otherwise.
func ExtensionForMIME(mime string) string {
	if ext, ok := extensions[mime]; ok {
		return ext
	}
	return ".bin"
}

// Store is a flat-directory blob store: one file per analysis, named
// <id><ext>.
type Store struct {
	dir     string
	allowed map[string]struct{}
}

// New creates the upload directory if needed. allowedTypes restricts which
// sniffed MIME types Save accepts.
func New(dir string, allowedTypes []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Store{dir: dir, allowed: allowed}, nil
}

// Save sniffs the payload, verifies the type is allowed, and writes the
// blob. Returns the stored filename and the detected MIME type.
func (s *Store) Save(id string, data []byte) (string, string, error) {
	mime, ok := SniffMIME(data)
	if !ok {
		return "", "", ErrUnsupportedImage
	}
	if _, ok := s.allowed[mime]; !ok {
		return "", "", ErrUnsupportedImage
	}

	filename := id + ExtensionForMIME(mime)
	if err := os.WriteFile(s.Path(filename), data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing image blob: %w", err)
	}
	return filename, mime, nil
}

// Read loads a stored blob. A missing file surfaces as fs.ErrNotExist.
func (s *Store) Read(filename string) ([]byte, error) {
	return os.ReadFile(s.Path(filename))
}

// Delete removes a stored blob. Deleting a missing file is not an error.
func (s *Store) Delete(filename string) error {
	err := os.Remove(s.Path(filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting image blob: %w", err)
	}
	return nil
}

// Path returns the absolute location of a stored filename. The name is
// flattened to its base so a stored path can never escape the directory.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
