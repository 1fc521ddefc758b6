package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMapContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.dat")
	want := []byte{0x0a, 0x00, 0x00, 0x00}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !bytes.Equal(m.Bytes(), want) {
		t.Fatalf("contents mismatch: got % x want % x", m.Bytes(), want)
	}
	if m.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", m.Len(), len(want))
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected zero-length mapping, got %d", m.Len())
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMapMissing(t *testing.T) {
	_, err := Map(filepath.Join(t.TempDir(), "nope.dat"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
