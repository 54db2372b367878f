// Package control is the external store the engine polls for animation
// change requests. The default store is a plain text file holding a single
// descriptor.
package control

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Requested returns the trimmed contents of the control file. A missing
// file is returned as an error wrapping fs.ErrNotExist.
func (f *File) Requested() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Request replaces the control file contents with name. The write goes
// through a temp file and a rename so a poll never sees a partial value.
func (f *File) Request(name string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating control directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".control-*")
	if err != nil {
		return fmt.Errorf("creating temp control file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strings.TrimSpace(name) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("writing control file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing control file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing control file: %w", err)
	}
	return nil
}
