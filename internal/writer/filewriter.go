// Package writer exposes an atomic file sink for encoded output.
package writer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileWriter streams bytes into a temporary file next to Path and renames it
// over Path on Commit, so readers never observe a partially written file.
type FileWriter struct {
	Path string

	tmp  *os.File
	perm fs.FileMode
	n    int64
}

// Create opens a temporary file in the directory of path. The caller must
// call Commit or Abort.
func Create(path string, perm fs.FileMode) (*FileWriter, error) {
	// Create temp file in same directory to ensure atomic rename
	tmp, err := os.CreateTemp(filepath.Dir(path), ".nbtkit-tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	return &FileWriter{Path: path, tmp: tmp, perm: perm}, nil
}

// Write appends p to the temporary file.
func (w *FileWriter) Write(p []byte) (int, error) {
	if w.tmp == nil {
		return 0, os.ErrClosed
	}
	n, err := w.tmp.Write(p)
	w.n += int64(n)
	return n, err
}

// Written returns the number of bytes written so far.
func (w *FileWriter) Written() int64 { return w.n }

// Commit syncs the temporary file and renames it over Path.
func (w *FileWriter) Commit() error {
	if w.tmp == nil {
		return os.ErrClosed
	}
	tmp := w.tmp
	w.tmp = nil
	tmpPath := tmp.Name()

	if err := tmp.Chmod(w.perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (w *FileWriter) Abort() error {
	if w.tmp == nil {
		return nil
	}
	tmp := w.tmp
	w.tmp = nil
	_ = tmp.Close()
	return os.Remove(tmp.Name())
}

// WriteFile writes data to path atomically via temp file + rename.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	w, err := Create(path, perm)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Abort()
		return fmt.Errorf("write temp file: %w", err)
	}
	return w.Commit()
}
