package nbt

import (
	"bytes"
	"io"
	"math"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Writer encodes tags to a byte sink. Every field is written directly to the
// sink in order; if an error occurs the sink may hold a partial tag. A Writer
// is not safe for concurrent use.
type Writer struct {
	dst     io.Writer
	limits  types.Limits
	scratch [8]byte
	chunk   []byte // staging buffer for array payloads
	depth   int
	n       int64
}

// NewWriter returns a Writer that encodes to w. Element counts are capped
// only by the wire format unless opts sets MaxLength.
func NewWriter(w io.Writer, opts types.EncodeOptions) *Writer {
	limits := opts.Limits.Normalize()
	if opts.Limits.MaxLength <= 0 {
		limits.MaxLength = format.MaxCount
	}
	return &Writer{
		dst:    w,
		limits: limits,
	}
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.n }

// WriteTag encodes t: its type, then (unless it is End) its name and payload.
func (w *Writer) WriteTag(t Tag) error {
	w.depth = 0
	id := t.ID()
	if err := w.writeByte(byte(id)); err != nil {
		return err
	}
	if id == types.TagEnd {
		return nil
	}
	if err := w.writeString(t.Name, "tag name"); err != nil {
		return err
	}
	return w.writePayload(t.Value)
}

func (w *Writer) writePayload(v Value) error {
	switch x := v.(type) {
	case nil, End:
		return nil
	case Byte:
		return w.writeByte(byte(x))
	case Short:
		buf.PutU16BE(w.scratch[:2], uint16(x))
		return w.write(w.scratch[:2])
	case Int:
		buf.PutI32BE(w.scratch[:4], int32(x))
		return w.write(w.scratch[:4])
	case Long:
		buf.PutI64BE(w.scratch[:8], int64(x))
		return w.write(w.scratch[:8])
	case Float:
		buf.PutI32BE(w.scratch[:4], int32(math.Float32bits(float32(x))))
		return w.write(w.scratch[:4])
	case Double:
		buf.PutI64BE(w.scratch[:8], int64(math.Float64bits(float64(x))))
		return w.write(w.scratch[:8])
	case ByteArray:
		if err := w.writeCount(len(x), "byte array"); err != nil {
			return err
		}
		return w.write(x)
	case String:
		return w.writeString(string(x), "string")
	case *List:
		return w.writeList(x)
	case *Compound:
		return w.writeCompound(x)
	case IntArray:
		if err := w.writeCount(len(x), "int array"); err != nil {
			return err
		}
		return w.writeInts(len(x), intWidth, func(b []byte, i int) { buf.PutI32BE(b, x[i]) })
	case LongArray:
		if err := w.writeCount(len(x), "long array"); err != nil {
			return err
		}
		return w.writeInts(len(x), longWidth, func(b []byte, i int) { buf.PutI64BE(b, x[i]) })
	default:
		return types.ErrUnknownTag.With(nil, "value of type %T", v)
	}
}

func (w *Writer) writeList(l *List) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()

	elemID := l.ElementID()
	if err := w.writeByte(byte(elemID)); err != nil {
		return err
	}
	if err := w.writeCount(l.Len(), "list"); err != nil {
		return err
	}
	for i := 0; i < l.Len(); i++ {
		e := l.elems[i]
		if idOf(e) != elemID {
			return types.ErrElementType.With(nil, "element %d is %s in list of %s", i, idOf(e), elemID)
		}
		// Elements are payload-only on the wire.
		if err := w.writePayload(e); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeCompound(c *Compound) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()

	for i := 0; i < c.Len(); i++ {
		key, v := c.keys[i], c.vals[i]
		id := idOf(v)
		if id == types.TagEnd {
			return types.ErrEndValue.With(nil, "compound member %q", key)
		}
		if err := w.writeByte(byte(id)); err != nil {
			return err
		}
		if err := w.writeString(key, "member name"); err != nil {
			return err
		}
		if err := w.writePayload(v); err != nil {
			return err
		}
	}
	return w.writeByte(format.EndMarker)
}

// writeInts stages n fixed-width elements through a bounded buffer.
func (w *Writer) writeInts(n, width int, put func(b []byte, i int)) error {
	if n == 0 {
		return nil
	}
	per := format.ReadChunkSize / width
	if w.chunk == nil {
		w.chunk = make([]byte, per*width)
	}
	for start := 0; start < n; start += per {
		end := min(start+per, n)
		b := w.chunk[:(end-start)*width]
		for i := start; i < end; i++ {
			put(b[(i-start)*width:], i)
		}
		if err := w.write(b); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) enter() error {
	w.depth++
	if w.depth > w.limits.MaxDepth {
		return types.ErrDepthExceeded.With(nil, "depth %d > %d", w.depth, w.limits.MaxDepth)
	}
	return nil
}

func (w *Writer) leave() { w.depth-- }

func (w *Writer) writeCount(n int, what string) error {
	if n > format.MaxCount || n > w.limits.MaxLength {
		return types.ErrLengthExceeded.With(nil, "%s length %d", what, n)
	}
	buf.PutI32BE(w.scratch[:4], int32(n))
	return w.write(w.scratch[:4])
}

func (w *Writer) writeString(s, what string) error {
	valid, fits := format.CheckText(s)
	if !valid {
		return types.ErrInvalidUTF8.With(nil, "%s %q", what, s)
	}
	if !fits {
		return types.ErrStringTooLong.With(nil, "%s is %d bytes, max %d", what, len(s), types.MaxStringBytes)
	}
	buf.PutU16BE(w.scratch[:2], uint16(len(s)))
	if err := w.write(w.scratch[:2]); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	n, err := io.WriteString(w.dst, s)
	w.n += int64(n)
	if err != nil {
		return types.ErrIO.With(err, "writing %s at offset %d", what, w.n)
	}
	return nil
}

func (w *Writer) writeByte(b byte) error {
	w.scratch[0] = b
	return w.write(w.scratch[:1])
}

func (w *Writer) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	n, err := w.dst.Write(b)
	w.n += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return types.ErrIO.With(err, "writing at offset %d", w.n)
	}
	return nil
}

// Encode writes t to w.
func Encode(w io.Writer, t Tag, opts types.EncodeOptions) error {
	return NewWriter(w, opts).WriteTag(t)
}

// Marshal returns the encoding of t.
func Marshal(t Tag) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, t, types.EncodeOptions{}); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Validate reports whether t can be encoded under opts: list homogeneity,
// text validity and length, element counts and nesting depth. It performs a
// full encode into io.Discard.
func Validate(t Tag, opts types.EncodeOptions) error {
	return Encode(io.Discard, t, opts)
}

// EncodedSize returns the number of bytes the encoding of t occupies.
func EncodedSize(t Tag) (int64, error) {
	w := NewWriter(io.Discard, types.EncodeOptions{Limits: types.RelaxedLimits()})
	if err := w.WriteTag(t); err != nil {
		return 0, err
	}
	return w.Written(), nil
}
