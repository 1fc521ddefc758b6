package printer

import (
	"github.com/joshuapare/nbtkit/nbt"
)

// Plain converts v to Go-native data: integers become int8..int64, floats
// float32/float64, byte arrays []int8 (NBT bytes are signed), lists []any and
// compounds map[string]any. End converts to nil. Member order is not kept;
// use the JSON or YAML printers when it matters.
func Plain(v nbt.Value) any { return plain(v, true) }

// plain converts v. With signedBytes false, byte arrays stay []byte so
// binary encoders can emit them as byte strings.
func plain(v nbt.Value, signedBytes bool) any {
	switch x := v.(type) {
	case nbt.Byte:
		return int8(x)
	case nbt.Short:
		return int16(x)
	case nbt.Int:
		return int32(x)
	case nbt.Long:
		return int64(x)
	case nbt.Float:
		return float32(x)
	case nbt.Double:
		return float64(x)
	case nbt.String:
		return string(x)
	case nbt.ByteArray:
		if !signedBytes {
			return []byte(x)
		}
		out := make([]int8, len(x))
		for i, b := range x {
			out[i] = int8(b)
		}
		return out
	case nbt.IntArray:
		return []int32(x)
	case nbt.LongArray:
		return []int64(x)
	case *nbt.List:
		out := make([]any, 0, x.Len())
		x.Range(func(_ int, e nbt.Value) bool {
			out = append(out, plain(e, signedBytes))
			return true
		})
		return out
	case *nbt.Compound:
		out := make(map[string]any, x.Len())
		x.Range(func(key string, e nbt.Value) bool {
			out[key] = plain(e, signedBytes)
			return true
		})
		return out
	default:
		return nil
	}
}
