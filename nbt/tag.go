package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Tag is a named value: the unit framed on the wire as type, name, payload.
// The zero Tag is the End sentinel.
type Tag struct {
	Name  string
	Value Value
}

// ID returns the wire discriminator of the tag's value. A nil value reports
// End.
func (t Tag) ID() types.TagID { return idOf(t.Value) }

// TagName returns the tag's name. ok is false for End, which never carries one.
func (t Tag) TagName() (name string, ok bool) {
	if t.ID() == types.TagEnd {
		return "", false
	}
	return t.Name, true
}

// IsEnd reports whether t is the End sentinel.
func (t Tag) IsEnd() bool { return t.ID() == types.TagEnd }

// Compound returns the compound handle when t holds a Compound.
func (t Tag) Compound() (*Compound, bool) {
	c, ok := t.Value.(*Compound)
	return c, ok && c != nil
}

// List returns the list handle when t holds a List.
func (t Tag) List() (*List, bool) {
	l, ok := t.Value.(*List)
	return l, ok && l != nil
}

// Get returns the member named key when t holds a Compound.
func (t Tag) Get(key string) (Value, bool) { return Get(t.Value, key) }

// Named attaches name to v.
func Named(name string, v Value) Tag { return Tag{Name: name, Value: v} }

// NewByte returns a named Byte tag.
func NewByte(name string, v int8) Tag { return Tag{name, Byte(v)} }

// NewShort returns a named Short tag.
func NewShort(name string, v int16) Tag { return Tag{name, Short(v)} }

// NewInt returns a named Int tag.
func NewInt(name string, v int32) Tag { return Tag{name, Int(v)} }

// NewLong returns a named Long tag.
func NewLong(name string, v int64) Tag { return Tag{name, Long(v)} }

// NewFloat returns a named Float tag.
func NewFloat(name string, v float32) Tag { return Tag{name, Float(v)} }

// NewDouble returns a named Double tag.
func NewDouble(name string, v float64) Tag { return Tag{name, Double(v)} }

// NewByteArray returns a named ByteArray tag. The slice is not copied.
func NewByteArray(name string, v []byte) Tag { return Tag{name, ByteArray(v)} }

// NewString returns a named String tag.
func NewString(name, v string) Tag { return Tag{name, String(v)} }

// NewIntArray returns a named IntArray tag. The slice is not copied.
func NewIntArray(name string, v []int32) Tag { return Tag{name, IntArray(v)} }

// NewLongArray returns a named LongArray tag. The slice is not copied.
func NewLongArray(name string, v []int64) Tag { return Tag{name, LongArray(v)} }

// NewCompound returns a named, empty Compound tag. Use Tag.Compound to
// obtain the handle for inserting members.
func NewCompound(name string) Tag { return Tag{name, MakeCompound()} }

// NewList returns a named List tag whose elements all have type elemID.
// It fails with ErrElementType when an element does not match, and with
// ErrEndValue when an element is End or nil.
func NewList(name string, elemID types.TagID, elems ...Value) (Tag, error) {
	l := MakeList(elemID)
	for _, e := range elems {
		if err := l.Push(e); err != nil {
			return Tag{}, err
		}
	}
	return Tag{name, l}, nil
}
