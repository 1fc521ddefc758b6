// Package testutil writes throwaway NBT files for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// WriteRaw writes data to name inside a fresh temporary directory and
// returns the path. The directory is removed when the test ends.
//
// Example:
//
//	path := testutil.WriteRaw(t, "level.dat", []byte{0x00})
func WriteRaw(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteTag encodes tag under kind into a fresh temporary file. It bypasses
// the atomic file sink so tests of that sink start from known bytes.
func WriteTag(t testing.TB, name string, tag nbt.Tag, kind compress.Kind) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw, err := compress.NewWriter(f, kind)
	if err != nil {
		t.Fatalf("compress %s: %v", kind, err)
	}
	if err := nbt.Encode(zw, tag, types.EncodeOptions{}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("flush %s: %v", kind, err)
	}
	return path
}
