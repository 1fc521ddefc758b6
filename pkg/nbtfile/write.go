package nbtfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/nbtkit/internal/writer"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Write encodes t under the given compression and atomically replaces the
// file at path.
func Write(path string, t nbt.Tag, kind compress.Kind, opts *Options) error {
	o := opts.orDefault()
	if o.CreateBackup {
		if err := backup(path, o); err != nil {
			return err
		}
	}

	fw, err := writer.Create(path, o.Perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encodeTo(fw, t, kind, o.Encode); err != nil {
		_ = fw.Abort()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := fw.Commit(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	o.Logger.Debug("wrote nbt file",
		"path", path,
		"compression", kind.String(),
		"file_bytes", fw.Written(),
	)
	return nil
}

// Marshal encodes t under the given compression.
func Marshal(t nbt.Tag, kind compress.Kind, opts types.EncodeOptions) ([]byte, error) {
	var b bytes.Buffer
	if err := encodeTo(&b, t, kind, opts); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeTo(w io.Writer, t nbt.Tag, kind compress.Kind, opts types.EncodeOptions) error {
	zw, err := compress.NewWriter(w, kind)
	if err != nil {
		return err
	}
	if err := nbt.Encode(zw, t, opts); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush %s stream: %w", kind, err)
	}
	return nil
}

// backup copies an existing file to <path>.bak. A missing file needs no
// backup.
func backup(path string, o Options) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	if err := writer.WriteFile(path+".bak", data, o.Perm); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	o.Logger.Debug("created backup", "path", path+".bak", "bytes", len(data))
	return nil
}

// Convert re-encodes the file at src under kind and writes it to dst. src
// and dst may be the same path.
func Convert(src, dst string, kind compress.Kind, opts *Options) error {
	t, from, err := Read(src, opts)
	if err != nil {
		return err
	}
	opts.orDefault().Logger.Debug("converting", "src", src, "dst", dst, "from", from.String(), "to", kind.String())
	return Write(dst, t, kind, opts)
}
