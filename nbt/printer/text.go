package printer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// textTag prints a tag in the classic indented tree layout:
//
//	TAG_Compound("hello world"): 1 entry
//	{
//	  TAG_String("name"): "Bananrama"
//	}
func (p *Printer) textTag(b *bytes.Buffer, t nbt.Tag) {
	if t.IsEnd() {
		b.WriteString("TAG_End\n")
		return
	}
	p.textEntry(b, p.label(t.Value, t.Name, true), t.Value, 0)
}

func (p *Printer) textValue(b *bytes.Buffer, v nbt.Value, depth int) {
	p.textEntry(b, "", v, depth)
}

func (p *Printer) textEntry(b *bytes.Buffer, label string, v nbt.Value, depth int) {
	indent := p.indent(depth)
	b.WriteString(indent)
	if label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}

	switch x := v.(type) {
	case *nbt.Compound:
		b.WriteString(plural(x.Len(), "entry", "entries"))
		b.WriteByte('\n')
		if x.Len() == 0 || !p.expand(depth) {
			return
		}
		b.WriteString(indent + "{\n")
		x.Range(func(key string, child nbt.Value) bool {
			p.textEntry(b, p.label(child, key, true), child, depth+1)
			return true
		})
		b.WriteString(indent + "}\n")

	case *nbt.List:
		fmt.Fprintf(b, "%s of %s\n", plural(x.Len(), "entry", "entries"), p.typeName(x.ElementID()))
		if x.Len() == 0 || !p.expand(depth) {
			return
		}
		b.WriteString(indent + "{\n")
		x.Range(func(i int, child nbt.Value) bool {
			p.textEntry(b, p.label(child, fmt.Sprintf("[%d]", i), false), child, depth+1)
			return true
		})
		b.WriteString(indent + "}\n")

	default:
		b.WriteString(p.scalarText(v))
		b.WriteByte('\n')
	}
}

// label names an entry. Compound members carry their key; list elements
// have no name on the wire and are shown by position or as None.
func (p *Printer) label(v nbt.Value, name string, named bool) string {
	if !p.opts.ShowTypes {
		return name
	}
	if !named {
		return v.ID().String() + "(None)"
	}
	return fmt.Sprintf("%s(%q)", v.ID(), name)
}

// typeName is TAG_Double with ShowTypes and double without.
func (p *Printer) typeName(id types.TagID) string {
	if p.opts.ShowTypes {
		return id.String()
	}
	return strings.ToLower(strings.TrimPrefix(id.String(), "TAG_"))
}

func (p *Printer) expand(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}

func (p *Printer) scalarText(v nbt.Value) string {
	switch x := v.(type) {
	case nbt.Byte:
		return strconv.Itoa(int(x))
	case nbt.Short:
		return strconv.Itoa(int(x))
	case nbt.Int:
		return strconv.Itoa(int(x))
	case nbt.Long:
		return strconv.FormatInt(int64(x), 10)
	case nbt.Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case nbt.Double:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case nbt.String:
		return strconv.Quote(string(x))
	case nbt.ByteArray:
		return p.arrayText(len(x), "byte", func(i int) string { return fmt.Sprintf("%02X", x[i]) })
	case nbt.IntArray:
		return p.arrayText(len(x), "int", func(i int) string { return strconv.Itoa(int(x[i])) })
	case nbt.LongArray:
		return p.arrayText(len(x), "long", func(i int) string { return strconv.FormatInt(x[i], 10) })
	case nil, nbt.End:
		return "TAG_End"
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// arrayText prints at most MaxArrayItems elements, then a count of the rest.
func (p *Printer) arrayText(n int, unit string, item func(i int) string) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s]", plural(n, unit, unit+"s"))
	shown := n
	if p.opts.MaxArrayItems > 0 {
		shown = min(n, p.opts.MaxArrayItems)
	}
	for i := 0; i < shown; i++ {
		b.WriteByte(' ')
		b.WriteString(item(i))
	}
	if shown < n {
		fmt.Fprintf(&b, " ... (%d more)", n-shown)
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
