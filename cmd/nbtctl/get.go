package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/spf13/cobra"
)

var getFormat = newFormatValue(printer.FormatText, printer.FormatText, printer.FormatSNBT, printer.FormatJSON, printer.FormatYAML)

func init() {
	cmd := newGetCmd()
	cmd.Flags().VarP(getFormat, "format", "f", "Output format (text, snbt, json, yaml)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `The get command prints a single value addressed by a path. Compound keys
are separated by '.', list elements are selected with [n], and keys that
contain '.' or '[' can be double-quoted. A leading root name is optional.

Example:
  nbtctl get level.dat Data.LevelName
  nbtctl get level.dat 'Data.Player.Pos[1]'
  nbtctl get level.dat 'Data."minecraft:stone"' --format snbt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, query := args[0], args[1]

	printVerbose("Reading file: %s\n", path)

	tag, _, err := nbtfile.Read(path, fileOptions())
	if err != nil {
		return err
	}
	v, err := nbt.LookupTag(tag, query)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = getFormat.format
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if quiet {
		return nil
	}
	if err := printer.New(os.Stdout, opts).PrintValue(v); err != nil {
		return fmt.Errorf("failed to print %s: %w", query, err)
	}
	return nil
}
