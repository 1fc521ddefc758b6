// Package printer renders decoded tag trees for people and for other tools:
// an indented text tree, stringified NBT (SNBT), JSON, YAML and CBOR.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxArrayItems = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented tree with type names and counts.
	FormatText Format = "text"

	// FormatSNBT outputs stringified NBT on a single line.
	FormatSNBT Format = "snbt"

	// FormatJSON outputs plain JSON values, compound members in wire order.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML, compound members in wire order.
	FormatYAML Format = "yaml"

	// FormatCBOR outputs CBOR with Core Deterministic Encoding.
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatSNBT, FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool { return f == FormatCBOR }

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text, json, yaml).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many container levels the text format expands
	// (0 = unlimited). Deeper containers are summarized on one line.
	MaxDepth int

	// MaxArrayItems limits how many array elements the text format shows.
	// Set to 0 for no limit.
	// Default: 16
	MaxArrayItems int

	// ShowTypes prefixes text entries with their TAG_* type names.
	// Default: true
	ShowTypes bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxArrayItems: DefaultMaxArrayItems,
		ShowTypes:     true,
	}
}

// Printer handles formatted output of tag trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(tag)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize < 0 {
		opts.IndentSize = 0
	}
	return &Printer{writer: w, opts: opts}
}

// Print renders a named tag. Output is buffered and written in one call, so
// nothing reaches the writer when rendering fails.
func (p *Printer) Print(t nbt.Tag) error {
	var b bytes.Buffer
	var err error
	switch p.opts.Format {
	case FormatSNBT:
		p.snbtTag(&b, t)
	case FormatJSON:
		err = p.jsonTag(&b, t)
	case FormatYAML:
		err = p.yamlTag(&b, t)
	case FormatCBOR:
		err = p.cborTag(&b, t)
	case FormatText, "":
		p.textTag(&b, t)
	default:
		return fmt.Errorf("unknown format %q", p.opts.Format)
	}
	if err != nil {
		return err
	}
	_, err = b.WriteTo(p.writer)
	return err
}

// PrintValue renders a bare value, such as the result of nbt.Lookup.
func (p *Printer) PrintValue(v nbt.Value) error {
	var b bytes.Buffer
	var err error
	switch p.opts.Format {
	case FormatSNBT:
		p.snbtValue(&b, v)
		b.WriteByte('\n')
	case FormatJSON:
		err = p.jsonDocument(&b, func(c *bytes.Buffer) { jsonValue(c, v) })
	case FormatYAML:
		err = p.yamlDocument(&b, yamlNode(v))
	case FormatCBOR:
		err = cborEncode(&b, plain(v, false))
	case FormatText, "":
		p.textValue(&b, v, 0)
	default:
		return fmt.Errorf("unknown format %q", p.opts.Format)
	}
	if err != nil {
		return err
	}
	_, err = b.WriteTo(p.writer)
	return err
}

// Sprint renders t with opts and returns the output as a string.
func Sprint(t nbt.Tag, opts Options) (string, error) {
	var b strings.Builder
	if err := New(&b, opts).Print(t); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Printer) indent(depth int) string {
	return strings.Repeat(" ", depth*p.opts.IndentSize)
}
