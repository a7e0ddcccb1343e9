package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default file permissions for snapshot files and their directory.
const (
	defaultFileMode fs.FileMode = 0o600
	defaultDirMode  fs.FileMode = 0o755
)

// FileStore keeps one file per key under a data directory. Saves go
// through a temp file and a rename so a crash mid-write never leaves
// a truncated snapshot behind.
type FileStore struct {
	dir      string
	fileMode fs.FileMode
}

// FileOption applies a configuration option to the FileStore.
type FileOption func(*FileStore)

// WithFileMode sets the permission bits for snapshot files.
func WithFileMode(mode fs.FileMode) FileOption {
	return func(s *FileStore) {
		if mode != 0 {
			s.fileMode = mode
		}
	}
}

// NewFileStore creates a file-backed KV rooted at dir.
func NewFileStore(dir string, opts ...FileOption) *FileStore {
	s := &FileStore{
		dir:      dir,
		fileMode: defaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements KV.
func (s *FileStore) Load(_ context.Context, key string, fallback []byte) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return data, nil
}

// Save implements KV.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, defaultDirMode); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := os.Chmod(tmp.Name(), s.fileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// path validates the key and maps it to a file under the data dir.
// Keys are restricted to a flat, filename-safe alphabet.
func (s *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return filepath.Join(s.dir, key+".json"), nil
}
