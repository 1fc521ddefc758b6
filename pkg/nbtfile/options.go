package nbtfile

import (
	"io/fs"
	"log/slog"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// DefaultPerm is the mode given to files created by Write.
const DefaultPerm fs.FileMode = 0o644

// Options controls file operations. A nil *Options means the defaults.
type Options struct {
	// Decode controls limits and string handling when reading.
	Decode types.DecodeOptions

	// Encode controls limits when writing.
	Encode types.EncodeOptions

	// CreateBackup copies an existing target to <path>.bak before it is
	// replaced.
	CreateBackup bool

	// Perm is the mode of newly written files.
	// Default: DefaultPerm
	Perm fs.FileMode

	// Logger receives debug-level progress. Nil discards it.
	Logger *slog.Logger
}

func (o *Options) orDefault() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Perm == 0 {
		out.Perm = DefaultPerm
	}
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}
	return out
}
