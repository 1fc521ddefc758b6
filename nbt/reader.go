package nbt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Element widths of the integer arrays.
var (
	intWidth  = format.FixedWidth(uint8(types.TagIntArray))
	longWidth = format.FixedWidth(uint8(types.TagLongArray))
)

// Reader decodes tags from a byte source. It reads exactly the bytes of one
// tag per ReadTag call and never reads ahead, so the source can be shared
// with other consumers between calls. A Reader is not safe for concurrent
// use.
type Reader struct {
	src     io.Reader
	br      io.ByteReader // src as a ByteReader, when it is one
	opts    types.DecodeOptions
	limits  types.Limits
	scratch [8]byte
	depth   int
	off     int64
}

// NewReader returns a Reader that decodes from r.
func NewReader(r io.Reader, opts types.DecodeOptions) *Reader {
	rd := &Reader{
		src:    r,
		opts:   opts,
		limits: opts.Limits.Normalize(),
	}
	rd.br, _ = r.(io.ByteReader)
	return rd
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// ReadTag decodes one complete tag: type, name and payload, recursively.
// A stream whose first byte is 0 yields the End tag. When the source is
// empty the error wraps io.EOF; any later shortage wraps
// io.ErrUnexpectedEOF. On error no partial tree is returned.
func (r *Reader) ReadTag() (Tag, error) {
	r.depth = 0
	start := r.off
	id, err := r.readByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Tag{}, types.ErrTruncated.With(io.EOF, "no tag at offset %d", start)
		}
		return Tag{}, r.fail(err, "reading tag type")
	}
	tid := types.TagID(id)
	if tid == types.TagEnd {
		return Tag{Value: End{}}, nil
	}
	if !tid.Valid() {
		return Tag{}, types.ErrUnknownTag.With(nil, "type %d at offset %d", id, start)
	}
	name, err := r.readString("tag name")
	if err != nil {
		return Tag{}, err
	}
	v, err := r.readPayload(tid)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Name: name, Value: v}, nil
}

func (r *Reader) readPayload(id types.TagID) (Value, error) {
	switch id {
	case types.TagByte:
		b, err := r.readByte()
		if err != nil {
			return nil, r.fail(err, "reading byte")
		}
		return Byte(int8(b)), nil
	case types.TagShort:
		b, err := r.readFixed(2)
		if err != nil {
			return nil, r.fail(err, "reading short")
		}
		return Short(buf.I16BE(b)), nil
	case types.TagInt:
		b, err := r.readFixed(4)
		if err != nil {
			return nil, r.fail(err, "reading int")
		}
		return Int(buf.I32BE(b)), nil
	case types.TagLong:
		b, err := r.readFixed(8)
		if err != nil {
			return nil, r.fail(err, "reading long")
		}
		return Long(buf.I64BE(b)), nil
	case types.TagFloat:
		b, err := r.readFixed(4)
		if err != nil {
			return nil, r.fail(err, "reading float")
		}
		return Float(math.Float32frombits(buf.U32BE(b))), nil
	case types.TagDouble:
		b, err := r.readFixed(8)
		if err != nil {
			return nil, r.fail(err, "reading double")
		}
		return Double(math.Float64frombits(buf.U64BE(b))), nil
	case types.TagByteArray:
		n, err := r.readCount("byte array")
		if err != nil {
			return nil, err
		}
		raw, err := r.readRaw(n)
		if err != nil {
			return nil, r.fail(err, "reading byte array")
		}
		return ByteArray(raw), nil
	case types.TagString:
		s, err := r.readString("string")
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case types.TagList:
		return r.readList()
	case types.TagCompound:
		return r.readCompound()
	case types.TagIntArray:
		raw, n, err := r.readArray("int array", intWidth)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			out[i] = buf.I32BE(raw[i*intWidth:])
		}
		return out, nil
	case types.TagLongArray:
		raw, n, err := r.readArray("long array", longWidth)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			out[i] = buf.I64BE(raw[i*longWidth:])
		}
		return out, nil
	default:
		return nil, types.ErrUnknownTag.With(nil, "type %d at offset %d", uint8(id), r.off-1)
	}
}

func (r *Reader) readList() (*List, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	at := r.off
	b, err := r.readByte()
	if err != nil {
		return nil, r.fail(err, "reading list element type")
	}
	elemID := types.TagID(b)
	if !elemID.Valid() {
		return nil, types.ErrUnknownTag.With(nil, "list element type %d at offset %d", b, at)
	}
	n, err := r.readCount("list")
	if err != nil {
		return nil, err
	}
	if elemID == types.TagEnd && n > 0 {
		return nil, types.ErrUnknownTag.With(nil, "list of %s with %d elements at offset %d", elemID, n, at)
	}
	l := &List{elemID: elemID, elems: make([]Value, 0, min(n, format.ReadChunkSize/16))}
	for i := 0; i < n; i++ {
		v, err := r.readPayload(elemID)
		if err != nil {
			return nil, err
		}
		l.elems = append(l.elems, v)
	}
	return l, nil
}

func (r *Reader) readCompound() (*Compound, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	c := MakeCompound()
	for {
		at := r.off
		b, err := r.readByte()
		if err != nil {
			return nil, r.fail(err, "compound missing end marker")
		}
		id := types.TagID(b)
		if id == types.TagEnd {
			return c, nil
		}
		if !id.Valid() {
			return nil, types.ErrUnknownTag.With(nil, "type %d at offset %d", b, at)
		}
		key, err := r.readString("member name")
		if err != nil {
			return nil, err
		}
		v, err := r.readPayload(id)
		if err != nil {
			return nil, err
		}
		// v is never End here, so Insert cannot fail. A repeated key
		// overwrites the earlier member.
		_ = c.Insert(key, v)
	}
}

func (r *Reader) enter() error {
	r.depth++
	if r.depth > r.limits.MaxDepth {
		return types.ErrDepthExceeded.With(nil, "depth %d > %d at offset %d", r.depth, r.limits.MaxDepth, r.off)
	}
	return nil
}

func (r *Reader) leave() { r.depth-- }

// readCount reads a 32-bit element count and checks it against the limits.
func (r *Reader) readCount(what string) (int, error) {
	at := r.off
	b, err := r.readFixed(format.CountSize)
	if err != nil {
		return 0, r.fail(err, "reading %s length", what)
	}
	n := buf.I32BE(b)
	if n < 0 {
		return 0, types.ErrNegativeLength.With(nil, "%s length %d at offset %d", what, n, at)
	}
	if int(n) > r.limits.MaxLength {
		return 0, types.ErrLengthExceeded.With(nil, "%s length %d > %d at offset %d", what, n, r.limits.MaxLength, at)
	}
	return int(n), nil
}

// readArray reads a count followed by count elements of width bytes each.
func (r *Reader) readArray(what string, width int) ([]byte, int, error) {
	n, err := r.readCount(what)
	if err != nil {
		return nil, 0, err
	}
	size, err := buf.ScaledLen(n, width)
	if err != nil {
		return nil, 0, types.ErrLengthExceeded.With(err, "%s", what)
	}
	raw, err := r.readRaw(size)
	if err != nil {
		return nil, 0, r.fail(err, "reading %s", what)
	}
	return raw, n, nil
}

// readString reads a 16-bit byte count followed by that many bytes of text.
func (r *Reader) readString(what string) (string, error) {
	b, err := r.readFixed(format.StringLenSize)
	if err != nil {
		return "", r.fail(err, "reading %s length", what)
	}
	n := int(buf.U16BE(b))
	at := r.off
	raw, err := r.readRaw(n)
	if err != nil {
		return "", r.fail(err, "reading %s", what)
	}
	s, ok := format.DecodeText(raw, r.opts.LegacyStrings)
	if !ok {
		return "", types.ErrInvalidUTF8.With(nil, "%s at offset %d", what, at)
	}
	return s, nil
}

// readRaw reads exactly n bytes. Large payloads grow in bounded chunks so a
// forged length on a short stream fails before allocating the full amount.
func (r *Reader) readRaw(n int) ([]byte, error) {
	if n <= format.ReadChunkSize {
		out := make([]byte, n)
		if err := r.readFull(out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var out bytes.Buffer
	out.Grow(format.ReadChunkSize)
	copied, err := io.CopyN(&out, r.src, int64(n))
	r.off += copied
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// readFixed reads n <= 8 bytes into the scratch buffer. The result is only
// valid until the next read.
func (r *Reader) readFixed(n int) ([]byte, error) {
	b := r.scratch[:n]
	if err := r.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.src, b)
	r.off += int64(n)
	return err
}

func (r *Reader) readByte() (byte, error) {
	if r.br != nil {
		b, err := r.br.ReadByte()
		if err == nil {
			r.off++
		}
		return b, err
	}
	if err := r.readFull(r.scratch[:1]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

// fail classifies a source error. Running out of bytes anywhere inside a tag
// is truncation; anything else is an I/O failure.
func (r *Reader) fail(err error, what string, args ...any) error {
	msg := fmt.Sprintf(what, args...)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return types.ErrTruncated.With(io.ErrUnexpectedEOF, "%s at offset %d", msg, r.off)
	}
	return types.ErrIO.With(err, "%s at offset %d", msg, r.off)
}

// Decode reads one tag from r.
func Decode(r io.Reader, opts types.DecodeOptions) (Tag, error) {
	return NewReader(r, opts).ReadTag()
}

// Unmarshal decodes data, which must hold exactly one tag.
func Unmarshal(data []byte) (Tag, error) {
	return UnmarshalOptions(data, types.DecodeOptions{})
}

// UnmarshalOptions is Unmarshal with explicit options.
func UnmarshalOptions(data []byte, opts types.DecodeOptions) (Tag, error) {
	src := bytes.NewReader(data)
	t, err := Decode(src, opts)
	if err != nil {
		return Tag{}, err
	}
	if src.Len() > 0 {
		return Tag{}, types.ErrTrailingData.With(nil, "%d bytes after offset %d", src.Len(), len(data)-src.Len())
	}
	return t, nil
}
