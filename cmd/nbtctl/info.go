package main

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Decode a file and report basic metadata",
		Long: `The info command decodes an NBT file and displays its compression,
sizes, root tag and value counts.

Example:
  nbtctl info level.dat
  nbtctl info level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// infoJSON is the --json shape of info.
type infoJSON struct {
	File        string         `json:"file"`
	Compression string         `json:"compression"`
	FileSize    int64          `json:"file_size"`
	DataSize    int64          `json:"data_size"`
	RootName    string         `json:"root_name"`
	RootType    string         `json:"root_type"`
	Nodes       int            `json:"nodes"`
	MaxDepth    int            `json:"max_depth"`
	Types       map[string]int `json:"types"`
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Reading file: %s\n", path)

	info, err := nbtfile.Stat(path, fileOptions())
	if err != nil {
		return err
	}

	if jsonOut {
		out := infoJSON{
			File:        path,
			Compression: info.Compression.String(),
			FileSize:    info.FileSize,
			DataSize:    info.DataSize,
			RootName:    info.RootName,
			RootType:    info.RootType.String(),
			Nodes:       info.Stats.Nodes,
			MaxDepth:    info.Stats.MaxDepth,
			Types:       make(map[string]int, len(info.Stats.ByType)),
		}
		for id, n := range info.Stats.ByType {
			out.Types[id.String()] = n
		}
		return printJSON(out)
	}

	printInfo("\nNBT File Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Compression: %s\n", info.Compression)
	printInfo("  Size: %s on disk, %s decoded\n", formatSize(info.FileSize), formatSize(info.DataSize))
	printInfo("  Root: %s(%q)\n", info.RootType, info.RootName)
	printInfo("  Values: %d\n", info.Stats.Nodes)
	printInfo("  Max depth: %d\n", info.Stats.MaxDepth)

	printInfo("\nValues by type:\n")
	for id := types.TagByte; id <= types.MaxTagID; id++ {
		if n := info.Stats.ByType[id]; n > 0 {
			printInfo("  %-15s %d\n", id, n)
		}
	}
	return nil
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
