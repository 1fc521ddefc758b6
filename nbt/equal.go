package nbt

import (
	"math"
	"slices"
)

// Equal reports whether a and b are structurally equal. Compound member
// order is ignored; floats compare by bit pattern, so NaN payloads equal
// themselves. Both trees must be acyclic.
func Equal(a, b Value) bool {
	if idOf(a) != idOf(b) {
		return false
	}
	switch x := a.(type) {
	case nil, End:
		return true
	case Byte:
		return x == b.(Byte)
	case Short:
		return x == b.(Short)
	case Int:
		return x == b.(Int)
	case Long:
		return x == b.(Long)
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(x, b.(ByteArray))
	case String:
		return x == b.(String)
	case IntArray:
		return slices.Equal(x, b.(IntArray))
	case LongArray:
		return slices.Equal(x, b.(LongArray))
	case *List:
		y := b.(*List)
		if x.ElementID() != y.ElementID() || x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !Equal(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case *Compound:
		y := b.(*Compound)
		if x.Len() != y.Len() {
			return false
		}
		if x.Len() == 0 {
			return true
		}
		for i, k := range x.keys {
			other, ok := y.Get(k)
			if !ok || !Equal(x.vals[i], other) {
				return false
			}
		}
		return true
	}
	return false
}

// TagsEqual reports whether two tags have equal names and values. Names of
// End tags are not compared.
func TagsEqual(a, b Tag) bool {
	if a.IsEnd() || b.IsEnd() {
		return a.IsEnd() && b.IsEnd()
	}
	return a.Name == b.Name && Equal(a.Value, b.Value)
}

// Clone returns a deep copy of v. The tree must be acyclic.
func Clone(v Value) Value {
	switch x := v.(type) {
	case ByteArray:
		return ByteArray(slices.Clone([]byte(x)))
	case IntArray:
		return IntArray(slices.Clone([]int32(x)))
	case LongArray:
		return LongArray(slices.Clone([]int64(x)))
	case *List:
		if x == nil {
			return x
		}
		out := &List{elemID: x.elemID, elems: make([]Value, len(x.elems))}
		for i, e := range x.elems {
			out.elems[i] = Clone(e)
		}
		return out
	case *Compound:
		if x == nil {
			return x
		}
		out := &Compound{
			keys:  slices.Clone(x.keys),
			vals:  make([]Value, len(x.vals)),
			index: make(map[string]int, len(x.keys)),
		}
		for i, k := range x.keys {
			out.index[k] = i
			out.vals[i] = Clone(x.vals[i])
		}
		return out
	}
	return v
}
