package main

import (
	"encoding/json"
	"testing"

	"github.com/joshuapare/nbtkit/nbt/compress"
)

func TestInfoCommand(t *testing.T) {
	resetFlags()
	path := writeFixture(t, compress.Zstd)

	output, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertContains(t, output, []string{
		"NBT File Information:",
		"Compression: zstd",
		`Root: TAG_Compound("")`,
		"Values: 10",
		"Max depth: 3",
		"TAG_Double      3",
	})
}

func TestInfoCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := writeFixture(t, compress.None)

	output, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertJSON(t, output)

	var got infoJSON
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatal(err)
	}
	if got.Compression != "none" || got.RootType != "TAG_Compound" {
		t.Errorf("unexpected info: %+v", got)
	}
	if got.FileSize != got.DataSize {
		t.Errorf("raw file: file size %d != data size %d", got.FileSize, got.DataSize)
	}
	if got.Types["TAG_Int_Array"] != 1 {
		t.Errorf("expected one TAG_Int_Array, got %v", got.Types)
	}
}
