package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Value is the payload of a tag. The set of implementations is closed:
// End, Byte, Short, Int, Long, Float, Double, ByteArray, String, *List,
// *Compound, IntArray and LongArray.
type Value interface {
	// ID returns the wire discriminator of the variant.
	ID() types.TagID
	isValue()
}

type (
	// End is the sentinel that terminates a compound on the wire. It is
	// never stored inside a container.
	End struct{}

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

func (End) ID() types.TagID       { return types.TagEnd }
func (Byte) ID() types.TagID      { return types.TagByte }
func (Short) ID() types.TagID     { return types.TagShort }
func (Int) ID() types.TagID       { return types.TagInt }
func (Long) ID() types.TagID      { return types.TagLong }
func (Float) ID() types.TagID     { return types.TagFloat }
func (Double) ID() types.TagID    { return types.TagDouble }
func (ByteArray) ID() types.TagID { return types.TagByteArray }
func (String) ID() types.TagID    { return types.TagString }
func (*List) ID() types.TagID     { return types.TagList }
func (*Compound) ID() types.TagID { return types.TagCompound }
func (IntArray) ID() types.TagID  { return types.TagIntArray }
func (LongArray) ID() types.TagID { return types.TagLongArray }

func (End) isValue()       {}
func (Byte) isValue()      {}
func (Short) isValue()     {}
func (Int) isValue()       {}
func (Long) isValue()      {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (ByteArray) isValue() {}
func (String) isValue()    {}
func (*List) isValue()     {}
func (*Compound) isValue() {}
func (IntArray) isValue()  {}
func (LongArray) isValue() {}

// idOf returns the ID of v, treating nil as End.
func idOf(v Value) types.TagID {
	if v == nil {
		return types.TagEnd
	}
	return v.ID()
}

// storable reports whether v may live inside a List or Compound.
func storable(v Value) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case End:
		return false
	case *List:
		return x != nil
	case *Compound:
		return x != nil
	}
	return true
}
