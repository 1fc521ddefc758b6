package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Compound maps names to values. Keys are unique and keep insertion order;
// overwriting a key keeps its original position. The zero value is an empty
// compound ready for use.
type Compound struct {
	keys  []string
	index map[string]int // key -> position in keys/vals
	vals  []Value
}

// MakeCompound returns an empty compound.
func MakeCompound() *Compound { return &Compound{} }

// Insert stores v under key, overwriting any existing member with that key.
// End and nil values are rejected with ErrEndValue.
func (c *Compound) Insert(key string, v Value) error {
	if !storable(v) {
		return types.ErrEndValue.With(nil, "compound member %q", key)
	}
	if i, ok := c.index[key]; ok {
		c.vals[i] = v
		return nil
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.vals = append(c.vals, v)
	return nil
}

// Put inserts t.Value under t.Name.
func (c *Compound) Put(t Tag) error { return c.Insert(t.Name, t.Value) }

// Get returns the member named key.
func (c *Compound) Get(key string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.vals[i], true
}

// Tag returns the member named key as a named Tag.
func (c *Compound) Tag(key string) (Tag, bool) {
	v, ok := c.Get(key)
	if !ok {
		return Tag{}, false
	}
	return Tag{Name: key, Value: v}, true
}

// Has reports whether a member named key exists.
func (c *Compound) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Delete removes the member named key and reports whether it existed.
func (c *Compound) Delete(key string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.vals = append(c.vals[:i], c.vals[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.keys); j++ {
		c.index[c.keys[j]] = j
	}
	return true
}

// Len returns the number of members.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the member names in insertion order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Range calls fn for each member in insertion order until fn returns false.
func (c *Compound) Range(fn func(key string, v Value) bool) {
	if c == nil {
		return
	}
	for i, k := range c.keys {
		if !fn(k, c.vals[i]) {
			return
		}
	}
}

// Typed getters. Each returns ok = false when the member is missing or has
// a different type.

func (c *Compound) GetByte(key string) (int8, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Byte)
	return int8(x), ok && ok2
}

func (c *Compound) GetShort(key string) (int16, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Short)
	return int16(x), ok && ok2
}

func (c *Compound) GetInt(key string) (int32, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Int)
	return int32(x), ok && ok2
}

func (c *Compound) GetLong(key string) (int64, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Long)
	return int64(x), ok && ok2
}

func (c *Compound) GetFloat(key string) (float32, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Float)
	return float32(x), ok && ok2
}

func (c *Compound) GetDouble(key string) (float64, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(Double)
	return float64(x), ok && ok2
}

func (c *Compound) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(String)
	return string(x), ok && ok2
}

func (c *Compound) GetByteArray(key string) ([]byte, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(ByteArray)
	return []byte(x), ok && ok2
}

func (c *Compound) GetIntArray(key string) ([]int32, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(IntArray)
	return []int32(x), ok && ok2
}

func (c *Compound) GetLongArray(key string) ([]int64, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(LongArray)
	return []int64(x), ok && ok2
}

func (c *Compound) GetCompound(key string) (*Compound, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(*Compound)
	return x, ok && ok2 && x != nil
}

func (c *Compound) GetList(key string) (*List, bool) {
	v, ok := c.Get(key)
	x, ok2 := v.(*List)
	return x, ok && ok2 && x != nil
}

// Get returns the member named key when v is a Compound. Any other variant
// yields ok = false; this is not an error.
func Get(v Value, key string) (Value, bool) {
	c, ok := v.(*Compound)
	if !ok {
		return nil, false
	}
	return c.Get(key)
}
