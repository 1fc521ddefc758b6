package printer

import (
	"bytes"
	"math"
	"strconv"

	"github.com/joshuapare/nbtkit/nbt"
	"gopkg.in/yaml.v3"
)

// yamlTag prints a single-entry mapping from the root name to its value.
func (p *Printer) yamlTag(b *bytes.Buffer, t nbt.Tag) error {
	if t.IsEnd() {
		return p.yamlDocument(b, yamlScalar("!!null", "null"))
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, yamlScalar("!!str", t.Name), yamlNode(t.Value))
	return p.yamlDocument(b, root)
}

func (p *Printer) yamlDocument(b *bytes.Buffer, n *yaml.Node) error {
	enc := yaml.NewEncoder(b)
	enc.SetIndent(max(p.opts.IndentSize, 2))
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// yamlNode builds a node tree so compound members keep their order. Arrays
// use flow style to stay compact.
func yamlNode(v nbt.Value) *yaml.Node {
	switch x := v.(type) {
	case nbt.Byte:
		return yamlInt(int64(x))
	case nbt.Short:
		return yamlInt(int64(x))
	case nbt.Int:
		return yamlInt(int64(x))
	case nbt.Long:
		return yamlInt(int64(x))
	case nbt.Float:
		return yamlFloat(float64(x), 32)
	case nbt.Double:
		return yamlFloat(float64(x), 64)
	case nbt.String:
		return yamlScalar("!!str", string(x))
	case nbt.ByteArray:
		seq := yamlFlowSeq(len(x))
		for _, e := range x {
			seq.Content = append(seq.Content, yamlInt(int64(int8(e))))
		}
		return seq
	case nbt.IntArray:
		seq := yamlFlowSeq(len(x))
		for _, e := range x {
			seq.Content = append(seq.Content, yamlInt(int64(e)))
		}
		return seq
	case nbt.LongArray:
		seq := yamlFlowSeq(len(x))
		for _, e := range x {
			seq.Content = append(seq.Content, yamlInt(e))
		}
		return seq
	case *nbt.List:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Content: make([]*yaml.Node, 0, x.Len())}
		x.Range(func(_ int, e nbt.Value) bool {
			seq.Content = append(seq.Content, yamlNode(e))
			return true
		})
		return seq
	case *nbt.Compound:
		m := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*x.Len())}
		x.Range(func(key string, e nbt.Value) bool {
			m.Content = append(m.Content, yamlScalar("!!str", key), yamlNode(e))
			return true
		})
		return m
	default:
		return yamlScalar("!!null", "null")
	}
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlInt(i int64) *yaml.Node {
	return yamlScalar("!!int", strconv.FormatInt(i, 10))
}

func yamlFloat(f float64, bits int) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return yamlScalar("!!float", ".nan")
	case math.IsInf(f, 1):
		return yamlScalar("!!float", ".inf")
	case math.IsInf(f, -1):
		return yamlScalar("!!float", "-.inf")
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !bytes.ContainsAny([]byte(s), ".eE") {
		// Keep a decimal point so the value reads back as a float.
		s += ".0"
	}
	return yamlScalar("!!float", s)
}

func yamlFlowSeq(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: make([]*yaml.Node, 0, n)}
}
