package nbt

import (
	"testing"

	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundInsertOverwriteKeepsPosition(t *testing.T) {
	c := MakeCompound()
	require.NoError(t, c.Insert("a", Int(1)))
	require.NoError(t, c.Insert("b", Int(2)))
	require.NoError(t, c.Insert("c", Int(3)))
	require.NoError(t, c.Insert("b", String("two")))

	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, String("two"), v)
}

func TestCompoundRejectsEnd(t *testing.T) {
	c := MakeCompound()
	require.ErrorIs(t, c.Insert("e", End{}), types.ErrEndValue)
	require.ErrorIs(t, c.Insert("n", nil), types.ErrEndValue)

	var nilList *List
	require.ErrorIs(t, c.Insert("l", nilList), types.ErrEndValue)
	assert.Equal(t, 0, c.Len())
}

func TestCompoundPutUsesTagName(t *testing.T) {
	c := MakeCompound()
	require.NoError(t, c.Put(NewString("name", "Steve")))

	tag, ok := c.Tag("name")
	require.True(t, ok)
	assert.True(t, TagsEqual(NewString("name", "Steve"), tag))
}

func TestCompoundDelete(t *testing.T) {
	c := MakeCompound()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Insert(k, Byte(1)))
	}
	assert.True(t, c.Delete("b"))
	assert.False(t, c.Delete("b"))
	assert.Equal(t, []string{"a", "c", "d"}, c.Keys())

	// Index positions stay consistent after the shift.
	require.NoError(t, c.Insert("d", Byte(9)))
	v, _ := c.Get("d")
	assert.Equal(t, Byte(9), v)
	assert.Equal(t, []string{"a", "c", "d"}, c.Keys())
}

func TestCompoundZeroValue(t *testing.T) {
	var c Compound
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("missing")
	assert.False(t, ok)
	require.NoError(t, c.Insert("k", Long(5)))
	assert.True(t, c.Has("k"))
}

func TestCompoundTypedGetters(t *testing.T) {
	c := MakeCompound()
	nested := MakeCompound()
	list := MakeList(types.TagString)
	require.NoError(t, list.Push(String("x")))

	require.NoError(t, c.Insert("b", Byte(-1)))
	require.NoError(t, c.Insert("s", Short(300)))
	require.NoError(t, c.Insert("i", Int(-70000)))
	require.NoError(t, c.Insert("l", Long(1<<40)))
	require.NoError(t, c.Insert("f", Float(1.5)))
	require.NoError(t, c.Insert("d", Double(-0.25)))
	require.NoError(t, c.Insert("str", String("hi")))
	require.NoError(t, c.Insert("ba", ByteArray{9}))
	require.NoError(t, c.Insert("ia", IntArray{1}))
	require.NoError(t, c.Insert("la", LongArray{2}))
	require.NoError(t, c.Insert("c", nested))
	require.NoError(t, c.Insert("list", list))

	b, ok := c.GetByte("b")
	assert.True(t, ok)
	assert.Equal(t, int8(-1), b)
	s, _ := c.GetShort("s")
	assert.Equal(t, int16(300), s)
	i, _ := c.GetInt("i")
	assert.Equal(t, int32(-70000), i)
	l, _ := c.GetLong("l")
	assert.Equal(t, int64(1<<40), l)
	f, _ := c.GetFloat("f")
	assert.Equal(t, float32(1.5), f)
	d, _ := c.GetDouble("d")
	assert.Equal(t, -0.25, d)
	str, _ := c.GetString("str")
	assert.Equal(t, "hi", str)
	ba, _ := c.GetByteArray("ba")
	assert.Equal(t, []byte{9}, ba)
	ia, _ := c.GetIntArray("ia")
	assert.Equal(t, []int32{1}, ia)
	la, _ := c.GetLongArray("la")
	assert.Equal(t, []int64{2}, la)
	gc, ok := c.GetCompound("c")
	assert.True(t, ok)
	assert.Same(t, nested, gc)
	gl, ok := c.GetList("list")
	assert.True(t, ok)
	assert.Equal(t, 1, gl.Len())

	_, ok = c.GetInt("b")
	assert.False(t, ok, "type mismatch")
	_, ok = c.GetString("missing")
	assert.False(t, ok)
}

func TestCompoundRangeStopsEarly(t *testing.T) {
	c := MakeCompound()
	for _, k := range []string{"x", "y", "z"} {
		require.NoError(t, c.Insert(k, Int(0)))
	}
	var seen []string
	c.Range(func(k string, _ Value) bool {
		seen = append(seen, k)
		return k != "y"
	})
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestGetOnNonCompound(t *testing.T) {
	for _, v := range []Value{Int(1), String("s"), MakeList(types.TagInt), End{}, nil} {
		_, ok := Get(v, "k")
		assert.False(t, ok, "%T", v)
	}
}
