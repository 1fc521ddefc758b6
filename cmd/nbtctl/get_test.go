package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		format   printer.Format
		wantJSON bool
		want     string
	}{
		{name: "string", query: "Data.LevelName", format: printer.FormatText, want: `"Test World"`},
		{name: "list element", query: "Data.Pos[2]", format: printer.FormatText, want: "-12.25"},
		{name: "quoted key", query: `Data."minecraft:stone"`, format: printer.FormatSNBT, want: "64"},
		{name: "list snbt", query: "Data.Pos", format: printer.FormatSNBT, want: "[0.5d,70d,-12.25d]"},
		{name: "long json", query: "Data.RandomSeed", format: printer.FormatText, wantJSON: true, want: "8675309"},
	}

	path := writeFixture(t, compress.Gzip)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			getFormat.format = tt.format
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runGet([]string{path, tt.query})
			})
			if err != nil {
				t.Fatalf("runGet() error = %v", err)
			}
			if got := strings.TrimSpace(output); got != tt.want {
				t.Errorf("runGet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetMissingPath(t *testing.T) {
	resetFlags()
	path := writeFixture(t, compress.None)
	_, err := captureOutput(t, func() error {
		return runGet([]string{path, "Data.Nope"})
	})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMalformedPath(t *testing.T) {
	resetFlags()
	path := writeFixture(t, compress.None)
	_, err := captureOutput(t, func() error {
		return runGet([]string{path, "Data..LevelName"})
	})
	if !errors.Is(err, types.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}
