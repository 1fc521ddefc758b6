package nbt

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAllTypes returns a small tree that uses every variant at least once.
func buildAllTypes(t *testing.T) Tag {
	t.Helper()
	root := NewCompound("Level")
	c, _ := root.Compound()

	require.NoError(t, c.Put(NewByte("byte", -128)))
	require.NoError(t, c.Put(NewShort("short", 32767)))
	require.NoError(t, c.Put(NewInt("int", math.MinInt32)))
	require.NoError(t, c.Put(NewLong("long", math.MaxInt64)))
	require.NoError(t, c.Put(NewFloat("float", 1234.5)))
	require.NoError(t, c.Put(NewDouble("double", -0.25)))
	require.NoError(t, c.Put(NewByteArray("bytes", []byte{0, 1, 0xfe, 0xff})))
	require.NoError(t, c.Put(NewString("string", "Grüße, 世界")))
	require.NoError(t, c.Put(NewIntArray("ints", []int32{-8, -1, 0, 7})))
	require.NoError(t, c.Put(NewLongArray("longs", []int64{-(1 << 33), 1 << 34})))

	list := MakeList(types.TagCompound)
	for i := int32(0); i < 2; i++ {
		e := MakeCompound()
		require.NoError(t, e.Insert("id", Int(i)))
		require.NoError(t, list.Push(e))
	}
	require.NoError(t, c.Insert("list", list))
	require.NoError(t, c.Insert("empty", MakeList(types.TagEnd)))
	require.NoError(t, c.Insert("nested", MakeCompound()))
	return root
}

func roundTrip(t *testing.T, tag Tag) Tag {
	t.Helper()
	data, err := Marshal(tag)
	require.NoError(t, err)
	back, err := Unmarshal(data)
	require.NoError(t, err)
	return back
}

func TestRoundTripAllTypes(t *testing.T) {
	tag := buildAllTypes(t)
	back := roundTrip(t, tag)
	assert.True(t, TagsEqual(tag, back))
}

func TestRoundTripIsByteExact(t *testing.T) {
	first, err := Marshal(buildAllTypes(t))
	require.NoError(t, err)
	decoded, err := Unmarshal(first)
	require.NoError(t, err)
	second, err := Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundTripCompound(t *testing.T) {
	root := NewCompound("Test")
	c, _ := root.Compound()
	require.NoError(t, c.Insert("value", Int(42)))

	back := roundTrip(t, root)
	assert.True(t, TagsEqual(root, back))
}

func TestRoundTripDoubleExact(t *testing.T) {
	back := roundTrip(t, NewDouble("d", -0.25))
	assert.Equal(t, Double(-0.25), back.Value)
}

func TestRoundTripString300Bytes(t *testing.T) {
	s := strings.Repeat("a", 300)
	data, err := Marshal(NewString("s", s))
	require.NoError(t, err)
	// Length prefix of the payload: 300 = 0x012C.
	assert.Equal(t, []byte{0x01, 0x2c}, data[4:6])

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, String(s), back.Value)
}

func TestRoundTripArrayEdges(t *testing.T) {
	ints := make([]int32, 0, 16)
	for i := int32(-8); i <= 7; i++ {
		ints = append(ints, i)
	}
	longs := make([]int64, 0, 8)
	for i := int64(-4); i < 4; i++ {
		longs = append(longs, i*(1<<33))
	}

	back := roundTrip(t, NewIntArray("ints", ints))
	assert.Equal(t, IntArray(ints), back.Value)

	back = roundTrip(t, NewLongArray("longs", longs))
	assert.Equal(t, LongArray(longs), back.Value)
}

func TestRoundTripListElementsHaveNoNames(t *testing.T) {
	// Build the list from named tags; only their values enter the list.
	l := MakeList(types.TagInt)
	for _, tag := range []Tag{NewInt("first", 1), NewInt("second", 2)} {
		require.NoError(t, l.Push(tag.Value))
	}
	data, err := Marshal(Named("l", l))
	require.NoError(t, err)
	// Element payloads follow the list header directly, with no per-element
	// type byte or name.
	assert.Equal(t, []byte{
		0x09, 0x00, 0x01, 'l',
		0x03, 0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
	}, data)
	assert.False(t, bytes.Contains(data, []byte("first")))

	back, err := Unmarshal(data)
	require.NoError(t, err)
	bl, ok := back.List()
	require.True(t, ok)
	assert.True(t, Equal(l, bl))
}

func TestRoundTripNaN(t *testing.T) {
	nan := Float(math.Float32frombits(0x7fc00001))
	back := roundTrip(t, Named("nan", nan))
	assert.Equal(t, uint32(0x7fc00001), math.Float32bits(float32(back.Value.(Float))))
}

func TestRoundTripMultipleTagsOnOneStream(t *testing.T) {
	var b bytes.Buffer
	w := NewWriter(&b, types.EncodeOptions{})
	tags := []Tag{NewInt("a", 1), NewString("b", "two"), {}, buildAllTypes(t)}
	for _, tag := range tags {
		require.NoError(t, w.WriteTag(tag))
	}

	r := NewReader(&b, types.DecodeOptions{})
	for _, want := range tags {
		got, err := r.ReadTag()
		require.NoError(t, err)
		assert.True(t, TagsEqual(want, got))
	}
	_, err := r.ReadTag()
	require.ErrorIs(t, err, types.ErrTruncated)
}
