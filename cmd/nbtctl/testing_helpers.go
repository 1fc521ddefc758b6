package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// fixtureTag is a small level.dat-like tree.
func fixtureTag(t *testing.T) nbt.Tag {
	t.Helper()
	root := nbt.NewCompound("")
	c, _ := root.Compound()
	data := nbt.MakeCompound()
	must(t, data.Insert("LevelName", nbt.String("Test World")))
	must(t, data.Insert("RandomSeed", nbt.Long(8675309)))
	must(t, data.Insert("minecraft:stone", nbt.Int(64)))
	pos := nbt.MakeList(types.TagDouble)
	for _, d := range []float64{0.5, 70, -12.25} {
		must(t, pos.Push(nbt.Double(d)))
	}
	must(t, data.Insert("Pos", pos))
	must(t, data.Insert("Heights", nbt.IntArray{1, 2, 3, 4, 5, 6}))
	must(t, c.Insert("Data", data))
	return root
}

// writeFixture stores fixtureTag under kind and returns its path.
func writeFixture(t *testing.T, kind compress.Kind) string {
	t.Helper()
	return testutil.WriteTag(t, "level.dat", fixtureTag(t), kind)
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	logLevel = "info"
	legacyStrings = false
	limitsFlag = limitsValue{name: "default"}
	dumpFormat.format = printer.FormatText
	dumpDepth = 0
	dumpMaxItems = printer.DefaultMaxArrayItems
	dumpNoTypes = false
	getFormat.format = printer.FormatText
	convertCompression = compressionValue{kind: compress.Gzip}
	convertBackup = false
	exportFormat.format = printer.FormatJSON
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
