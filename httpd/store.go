package httpd

import (
	"os"
	"path/filepath"
)

// FileStore is the byte store behind the files route. Names are
// relative to whatever root the implementation carries; nothing here
// validates them against traversal.
type FileStore interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// DirStore serves files out of a directory on disk. Missing files
// surface as fs.ErrNotExist from the underlying os calls.
type DirStore struct {
	Root string
}

func (d DirStore) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Root, name))
}

func (d DirStore) WriteFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(d.Root, name), data, 0o644)
}
