package nbtfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Read decodes the single tag stored in the file at path and reports the
// compression it was stored under. Bytes after the tag are an error.
func Read(path string, opts *Options) (nbt.Tag, compress.Kind, error) {
	o := opts.orDefault()
	m, err := mmfile.Map(path)
	if err != nil {
		return nbt.Tag{}, compress.None, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer m.Close()

	t, kind, size, err := decode(m.Bytes(), o.Decode)
	if err != nil {
		return nbt.Tag{}, kind, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	o.Logger.Debug("read nbt file",
		"path", path,
		"compression", kind.String(),
		"file_bytes", m.Len(),
		"data_bytes", size,
	)
	return t, kind, nil
}

// Unmarshal decodes data, which may be compressed, and returns the tag, the
// detected compression and the decompressed size.
func Unmarshal(data []byte, opts types.DecodeOptions) (nbt.Tag, compress.Kind, int64, error) {
	return decode(data, opts)
}

func decode(data []byte, opts types.DecodeOptions) (nbt.Tag, compress.Kind, int64, error) {
	kind := compress.Detect(data)
	if kind == compress.None {
		return decodeRaw(data, opts)
	}
	t, size, err := decodeCompressed(data, kind, opts)
	if err != nil && kind == compress.Zlib {
		// A raw String tag can carry a valid zlib header by accident.
		if rt, _, rsize, rerr := decodeRaw(data, opts); rerr == nil {
			return rt, compress.None, rsize, nil
		}
	}
	return t, kind, size, err
}

func decodeRaw(data []byte, opts types.DecodeOptions) (nbt.Tag, compress.Kind, int64, error) {
	t, err := nbt.UnmarshalOptions(data, opts)
	return t, compress.None, int64(len(data)), err
}

func decodeCompressed(data []byte, kind compress.Kind, opts types.DecodeOptions) (nbt.Tag, int64, error) {
	rc, err := compress.NewKindReader(bytes.NewReader(data), kind)
	if err != nil {
		return nbt.Tag{}, 0, err
	}
	defer rc.Close()

	r := nbt.NewReader(rc, opts)
	t, err := r.ReadTag()
	if err != nil {
		return nbt.Tag{}, r.Offset(), err
	}
	// The decompressed stream must end with the tag.
	var extra [1]byte
	n, err := io.ReadFull(rc, extra[:])
	switch {
	case n > 0:
		rest, _ := io.Copy(io.Discard, rc)
		return nbt.Tag{}, r.Offset(), types.ErrTrailingData.With(nil, "%d bytes after offset %d", rest+1, r.Offset())
	case err != nil && !errors.Is(err, io.EOF):
		return nbt.Tag{}, r.Offset(), types.ErrIO.With(err, "%s stream", kind)
	}
	return t, r.Offset(), nil
}
