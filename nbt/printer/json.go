package printer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// jsonTag prints {"<root name>": value}. Members are emitted in wire order,
// which encoding/json cannot do for maps, so the compact form is built here
// and indented afterwards.
func (p *Printer) jsonTag(b *bytes.Buffer, t nbt.Tag) error {
	return p.jsonDocument(b, func(c *bytes.Buffer) {
		if t.IsEnd() {
			c.WriteString("null")
			return
		}
		c.WriteByte('{')
		jsonString(c, t.Name)
		c.WriteByte(':')
		jsonValue(c, t.Value)
		c.WriteByte('}')
	})
}

func (p *Printer) jsonDocument(b *bytes.Buffer, build func(c *bytes.Buffer)) error {
	var compact bytes.Buffer
	build(&compact)
	if p.opts.IndentSize == 0 {
		b.Write(compact.Bytes())
	} else if err := json.Indent(b, compact.Bytes(), "", strings.Repeat(" ", p.opts.IndentSize)); err != nil {
		return err
	}
	b.WriteByte('\n')
	return nil
}

func jsonValue(b *bytes.Buffer, v nbt.Value) {
	switch x := v.(type) {
	case nbt.Byte:
		b.WriteString(strconv.Itoa(int(x)))
	case nbt.Short:
		b.WriteString(strconv.Itoa(int(x)))
	case nbt.Int:
		b.WriteString(strconv.Itoa(int(x)))
	case nbt.Long:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case nbt.Float:
		jsonFloat(b, float64(x), 32)
	case nbt.Double:
		jsonFloat(b, float64(x), 64)
	case nbt.String:
		jsonString(b, string(x))
	case nbt.ByteArray:
		b.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(int8(e))))
		}
		b.WriteByte(']')
	case nbt.IntArray:
		b.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(e)))
		}
		b.WriteByte(']')
	case nbt.LongArray:
		b.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(e, 10))
		}
		b.WriteByte(']')
	case *nbt.List:
		b.WriteByte('[')
		x.Range(func(i int, e nbt.Value) bool {
			if i > 0 {
				b.WriteByte(',')
			}
			jsonValue(b, e)
			return true
		})
		b.WriteByte(']')
	case *nbt.Compound:
		b.WriteByte('{')
		first := true
		x.Range(func(key string, e nbt.Value) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			jsonString(b, key)
			b.WriteByte(':')
			jsonValue(b, e)
			return true
		})
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}

// jsonFloat writes non-finite values as the strings "NaN", "Infinity" and
// "-Infinity", since JSON numbers cannot express them.
func jsonFloat(b *bytes.Buffer, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		b.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		b.WriteString(`"Infinity"`)
	case math.IsInf(f, -1):
		b.WriteString(`"-Infinity"`)
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func jsonString(b *bytes.Buffer, s string) {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	// Encode cannot fail for a string; it appends a newline we drop.
	_ = enc.Encode(s)
	b.Truncate(b.Len() - 1)
}
