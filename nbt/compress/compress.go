// Package compress wraps the compression layers NBT files are commonly
// stored under. The codec itself never compresses; callers put one of these
// adapters between the byte stream and nbt.Reader or nbt.Writer.
package compress

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Kind identifies a compression layer.
type Kind uint8

const (
	None Kind = iota
	Gzip
	Zlib
	Zstd
	LZ4
)

// MagicLen is the longest prefix Detect inspects.
const MagicLen = 4

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseKind parses a compression name. "gz" and "zst" are accepted as
// aliases, and the empty string means None.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zlib":
		return Zlib, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind { return []Kind{None, Gzip, Zlib, Zstd, LZ4} }

// Detect inspects the first bytes of a stream. Uncompressed NBT starts with a
// tag type (0..12). Only the zlib header can collide with that: a raw String
// tag (0x08) whose name length begins with 0x1D, 0x5B, 0x99 or 0xD7 passes
// the header checksum. Callers holding the whole input should retry a raw
// decode when a detected zlib stream fails to inflate.
func Detect(prefix []byte) Kind {
	switch {
	case bytes.HasPrefix(prefix, gzipMagic):
		return Gzip
	case bytes.HasPrefix(prefix, zstdMagic):
		return Zstd
	case bytes.HasPrefix(prefix, lz4Magic):
		return LZ4
	case isZlibHeader(prefix):
		return Zlib
	default:
		return None
	}
}

// isZlibHeader checks CMF/FLG: deflate method, window <= 32K, no preset
// dictionary and a header checksum divisible by 31.
func isZlibHeader(p []byte) bool {
	if len(p) < 2 {
		return false
	}
	cmf, flg := p[0], p[1]
	if cmf&0x0f != 8 || cmf>>4 > 7 {
		return false
	}
	if flg&0x20 != 0 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// NewReader peeks at r, detects its compression and returns a reader of the
// decompressed bytes. Closing the result releases decoder resources but does
// not close r.
func NewReader(r io.Reader) (io.ReadCloser, Kind, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(MagicLen)
	if err != nil && err != io.EOF {
		return nil, None, fmt.Errorf("compress: peek: %w", err)
	}
	k := Detect(prefix)
	rc, err := NewKindReader(br, k)
	if err != nil {
		return nil, k, err
	}
	return rc, k, nil
}

// NewKindReader wraps r with the decoder for k.
func NewKindReader(r io.Reader, k Kind) (io.ReadCloser, error) {
	switch k {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: gzip: %w", err)
		}
		return zr, nil
	case Zlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: zlib: %w", err)
		}
		return zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("compress: zstd: %w", err)
		}
		return zstdReadCloser{zr}, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("compress: unsupported kind %s", k)
	}
}

// zstd.Decoder.Close returns nothing, so it does not satisfy io.Closer.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with the encoder for k. The caller must Close the result
// to flush trailing frames; Close does not close w.
func NewWriter(w io.Writer, k Kind) (io.WriteCloser, error) {
	switch k {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zlib:
		return zlib.NewWriter(w), nil
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("compress: zstd: %w", err)
		}
		return zw, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("compress: unsupported kind %s", k)
	}
}

// Compress returns data encoded with k. For None it returns data unchanged.
func Compress(data []byte, k Kind) ([]byte, error) {
	if k == None {
		return data, nil
	}
	var b bytes.Buffer
	zw, err := NewWriter(&b, k)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %s: %w", k, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress: %s: %w", k, err)
	}
	return b.Bytes(), nil
}

// Decompress detects the compression of data and returns the decoded bytes
// together with the detected kind. Uncompressed input is returned as is.
func Decompress(data []byte) ([]byte, Kind, error) {
	k := Detect(data)
	if k == None {
		return data, None, nil
	}
	rc, err := NewKindReader(bytes.NewReader(data), k)
	if err != nil {
		return nil, k, err
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, k, fmt.Errorf("compress: %s: %w", k, err)
	}
	return out, k, nil
}
