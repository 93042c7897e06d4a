package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported attachment type")
	ErrTooLarge        = errors.New("attachment exceeds size limit")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// Store writes proof-of-payment attachments to local disk and hands back
// a stable reference string for the submission record.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Save validates the file by extension and size, writes it under a fresh
// reference, and returns that reference. The size the client declared is
// checked first, then enforced again while copying.
func (s *Store) Save(filename string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("extension %q: %w", ext, ErrUnsupportedType)
	}

	if size > s.maxBytes {
		return "", fmt.Errorf("%d bytes over %d: %w", size, s.maxBytes, ErrTooLarge)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	ref := uuid.NewString() + ext
	path := filepath.Join(s.dir, ref)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}

	if written > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("stream exceeded %d bytes: %w", s.maxBytes, ErrTooLarge)
	}

	return ref, nil
}
