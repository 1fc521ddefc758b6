package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/internal/writer"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

var exportFormat = newFormatValue(printer.FormatJSON, printer.FormatJSON, printer.FormatYAML, printer.FormatCBOR, printer.FormatSNBT)

func init() {
	cmd := newExportCmd()
	cmd.Flags().VarP(exportFormat, "format", "f", "Export format (json, yaml, cbor, snbt)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> <output>",
		Short: "Export an NBT file to JSON, YAML, CBOR or SNBT",
		Long: `The export command decodes an NBT file and writes it in another format.
Use "-" as output to write to stdout.

Example:
  nbtctl export level.dat level.json
  nbtctl export level.dat level.yaml --format yaml
  nbtctl export level.dat - --format snbt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path, out := args[0], args[1]
	format := exportFormat.format

	printVerbose("Exporting %s as %s\n", path, format)

	tag, _, err := nbtfile.Read(path, fileOptions())
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = format
	var b bytes.Buffer
	if err := printer.New(&b, opts).Print(tag); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	if out == "-" {
		if format.Binary() && isTerminal(os.Stdout) {
			return fmt.Errorf("refusing to write %s to a terminal", format)
		}
		_, err := os.Stdout.Write(b.Bytes())
		return err
	}
	if err := writer.WriteFile(out, b.Bytes(), nbtfile.DefaultPerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	printInfo("Exported %s to %s (%d bytes)\n", path, out, b.Len())
	return nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
