package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/spf13/pflag"
)

// compressionValue is a pflag.Value accepting compression names.
type compressionValue struct{ kind compress.Kind }

var _ pflag.Value = (*compressionValue)(nil)

func (v *compressionValue) String() string { return v.kind.String() }
func (v *compressionValue) Type() string   { return "compression" }

func (v *compressionValue) Set(s string) error {
	k, err := compress.ParseKind(s)
	if err != nil {
		return err
	}
	v.kind = k
	return nil
}

// formatValue is a pflag.Value restricted to a set of printer formats.
type formatValue struct {
	format  printer.Format
	allowed []printer.Format
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def printer.Format, allowed ...printer.Format) *formatValue {
	return &formatValue{format: def, allowed: allowed}
}

func (v *formatValue) String() string { return string(v.format) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	f, err := printer.ParseFormat(s)
	if err != nil {
		return err
	}
	for _, a := range v.allowed {
		if a == f {
			v.format = f
			return nil
		}
	}
	names := make([]string, len(v.allowed))
	for i, a := range v.allowed {
		names[i] = string(a)
	}
	return fmt.Errorf("format %q not supported here (want %s)", s, strings.Join(names, ", "))
}

// limitsValue selects one of the Limits presets.
type limitsValue struct {
	name   string
	limits types.Limits
}

var _ pflag.Value = (*limitsValue)(nil)

func (v *limitsValue) String() string { return v.name }
func (v *limitsValue) Type() string   { return "preset" }

func (v *limitsValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "default":
		v.limits = types.DefaultLimits()
	case "relaxed":
		v.limits = types.RelaxedLimits()
	case "strict":
		v.limits = types.StrictLimits()
	default:
		return fmt.Errorf("unknown limits preset %q", s)
	}
	v.name = strings.ToLower(s)
	return nil
}
