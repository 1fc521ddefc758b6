package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

func TestConvertCommand(t *testing.T) {
	for _, kind := range compress.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			resetFlags()
			src := writeFixture(t, compress.Gzip)
			dst := filepath.Join(t.TempDir(), "out.dat")
			convertCompression.kind = kind

			output, err := captureOutput(t, func() error {
				return runConvert([]string{src, dst})
			})
			if err != nil {
				t.Fatalf("runConvert() error = %v", err)
			}
			assertContains(t, output, []string{"Wrote", kind.String()})

			got, gotKind, err := nbtfile.Read(dst, nil)
			if err != nil {
				t.Fatal(err)
			}
			if gotKind != kind {
				t.Errorf("compression = %s, want %s", gotKind, kind)
			}
			if !nbt.TagsEqual(fixtureTag(t), got) {
				t.Error("converted tree differs from the source")
			}
		})
	}
}

func TestConvertInPlaceWithBackup(t *testing.T) {
	resetFlags()
	src := writeFixture(t, compress.Gzip)
	before, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	convertCompression.kind = compress.None
	convertBackup = true

	if _, err := captureOutput(t, func() error { return runConvert([]string{src, src}) }); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}
	bak, err := os.ReadFile(src + ".bak")
	if err != nil {
		t.Fatal(err)
	}
	if string(bak) != string(before) {
		t.Error("backup does not match the original file")
	}
}

func TestCompressionFlag(t *testing.T) {
	var v compressionValue
	if err := v.Set("zst"); err != nil || v.kind != compress.Zstd {
		t.Fatalf("Set(zst) = %v, kind %s", err, v.kind)
	}
	if err := v.Set("brotli"); err == nil {
		t.Fatal("expected error for unknown compression")
	}
	if v.Type() != "compression" || v.String() != "zstd" {
		t.Errorf("unexpected flag value %s/%s", v.Type(), v.String())
	}
}
