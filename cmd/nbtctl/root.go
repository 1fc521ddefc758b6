package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	logLevel      string
	legacyStrings bool
	limitsFlag    = limitsValue{name: "default"}
)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and convert NBT (Named Binary Tag) files",
	Long: `nbtctl is a tool for inspecting, querying and converting NBT files.
It reads raw, gzip, zlib, zstd and LZ4 compressed files, prints them as a
tree, SNBT, JSON or YAML, and exports them to JSON, YAML, CBOR or SNBT.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level with --verbose (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		BoolVar(&legacyStrings, "legacy-strings", false, "Decode non-UTF-8 strings as Windows-1252 instead of failing")
	rootCmd.PersistentFlags().
		Var(&limitsFlag, "limits", "Decode/encode limits preset (default, relaxed, strict)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// fileOptions builds nbtfile options from the global flags.
func fileOptions() *nbtfile.Options {
	return &nbtfile.Options{
		Decode: types.DecodeOptions{Limits: limitsFlag.limits, LegacyStrings: legacyStrings},
		Encode: types.EncodeOptions{Limits: limitsFlag.limits},
		Logger: logger,
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
