package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

var (
	dumpFormat   = newFormatValue(printer.FormatText, printer.FormatText, printer.FormatSNBT, printer.FormatJSON, printer.FormatYAML)
	dumpDepth    int
	dumpMaxItems int
	dumpNoTypes  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().VarP(dumpFormat, "format", "f", "Output format (text, snbt, json, yaml)")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth to expand (0 = unlimited)")
	cmd.Flags().
		IntVar(&dumpMaxItems, "max-items", printer.DefaultMaxArrayItems, "Array elements to show (0 = all)")
	cmd.Flags().BoolVar(&dumpNoTypes, "no-types", false, "Omit TAG_* type names")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of an NBT file",
		Long: `The dump command decodes an NBT file and prints its whole tree.

Example:
  nbtctl dump level.dat
  nbtctl dump level.dat --depth 2 --max-items 4
  nbtctl dump level.dat --format snbt
  nbtctl dump level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	printVerbose("Reading file: %s\n", path)

	tag, kind, err := nbtfile.Read(path, fileOptions())
	if err != nil {
		return err
	}
	printVerbose("Compression: %s\n", kind)

	opts := printer.DefaultOptions()
	opts.Format = dumpFormat.format
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.MaxDepth = dumpDepth
	opts.MaxArrayItems = dumpMaxItems
	opts.ShowTypes = !dumpNoTypes

	if quiet {
		return nil
	}
	if err := printer.New(os.Stdout, opts).Print(tag); err != nil {
		return fmt.Errorf("failed to print %s: %w", path, err)
	}
	return nil
}
