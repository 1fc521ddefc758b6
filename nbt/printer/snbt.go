package printer

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// snbtTag prints the payload of t as stringified NBT. SNBT has no syntax for
// the root name, so it is dropped.
func (p *Printer) snbtTag(b *bytes.Buffer, t nbt.Tag) {
	p.snbtValue(b, t.Value)
	b.WriteByte('\n')
}

func (p *Printer) snbtValue(b *bytes.Buffer, v nbt.Value) {
	switch x := v.(type) {
	case nbt.Byte:
		b.WriteString(strconv.Itoa(int(x)))
		b.WriteByte('b')
	case nbt.Short:
		b.WriteString(strconv.Itoa(int(x)))
		b.WriteByte('s')
	case nbt.Int:
		b.WriteString(strconv.Itoa(int(x)))
	case nbt.Long:
		b.WriteString(strconv.FormatInt(int64(x), 10))
		b.WriteByte('L')
	case nbt.Float:
		snbtFloat(b, float64(x), 32, 'f')
	case nbt.Double:
		snbtFloat(b, float64(x), 64, 'd')
	case nbt.String:
		b.WriteString(snbtQuote(string(x)))
	case nbt.ByteArray:
		b.WriteString("[B;")
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(int8(e))))
			b.WriteByte('b')
		}
		b.WriteByte(']')
	case nbt.IntArray:
		b.WriteString("[I;")
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(e)))
		}
		b.WriteByte(']')
	case nbt.LongArray:
		b.WriteString("[L;")
		for i, e := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(e, 10))
			b.WriteByte('L')
		}
		b.WriteByte(']')
	case *nbt.List:
		b.WriteByte('[')
		x.Range(func(i int, e nbt.Value) bool {
			if i > 0 {
				b.WriteByte(',')
			}
			p.snbtValue(b, e)
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
			b.WriteString(snbtKey(key))
			b.WriteByte(':')
			p.snbtValue(b, e)
			return true
		})
		b.WriteByte('}')
	}
}

// snbtKey leaves keys made of [A-Za-z0-9._+-] bare and quotes the rest.
// snbtFloat writes a suffixed number. SNBT has no literal for non-finite
// values, so those become the strings "NaN", "Infinity" and "-Infinity".
func snbtFloat(b *bytes.Buffer, f float64, bits int, suffix byte) {
	switch {
	case math.IsNaN(f):
		b.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		b.WriteString(`"Infinity"`)
	case math.IsInf(f, -1):
		b.WriteString(`"-Infinity"`)
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
		b.WriteByte(suffix)
	}
}

func snbtKey(key string) string {
	if key == "" {
		return `""`
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '+', c == '-':
		default:
			return snbtQuote(key)
		}
	}
	return key
}

func snbtQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
