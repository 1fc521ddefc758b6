package nbt

import (
	"math"
	"testing"

	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresCompoundOrder(t *testing.T) {
	a := MakeCompound()
	require.NoError(t, a.Insert("x", Int(1)))
	require.NoError(t, a.Insert("y", String("two")))

	b := MakeCompound()
	require.NoError(t, b.Insert("y", String("two")))
	require.NoError(t, b.Insert("x", Int(1)))

	assert.True(t, Equal(a, b))

	require.NoError(t, b.Insert("x", Int(2)))
	assert.False(t, Equal(a, b))
}

func TestEqualComparesFloatBits(t *testing.T) {
	nan := Float(float32(math.NaN()))
	assert.True(t, Equal(nan, nan))
	assert.False(t, Equal(Double(0), Double(math.Copysign(0, -1))), "signed zeros differ on the wire")
	assert.False(t, Equal(Float(1), Double(1)), "different variants")
}

func TestEqualLists(t *testing.T) {
	a := MakeList(types.TagInt)
	b := MakeList(types.TagInt)
	require.NoError(t, a.Push(Int(1)))
	require.NoError(t, b.Push(Int(1)))
	assert.True(t, Equal(a, b))

	require.NoError(t, b.Push(Int(2)))
	assert.False(t, Equal(a, b))

	assert.False(t, Equal(MakeList(types.TagInt), MakeList(types.TagString)), "empty lists keep their element type")
	assert.True(t, Equal(ByteArray(nil), ByteArray{}))
}

func TestTagsEqual(t *testing.T) {
	assert.True(t, TagsEqual(NewInt("a", 1), NewInt("a", 1)))
	assert.False(t, TagsEqual(NewInt("a", 1), NewInt("b", 1)))
	assert.True(t, TagsEqual(Tag{}, Tag{Name: "x", Value: End{}}))
	assert.False(t, TagsEqual(Tag{}, NewInt("", 0)))
}

func TestCloneIsDeep(t *testing.T) {
	inner := MakeCompound()
	require.NoError(t, inner.Insert("arr", IntArray{1, 2, 3}))
	list := MakeList(types.TagCompound)
	require.NoError(t, list.Push(inner))
	root := MakeCompound()
	require.NoError(t, root.Insert("list", list))

	cp := Clone(root).(*Compound)
	require.True(t, Equal(root, cp))

	require.NoError(t, inner.Insert("arr", IntArray{9}))
	assert.False(t, Equal(root, cp), "mutating the original must not affect the clone")

	arr := ByteArray{1, 2}
	arrCopy := Clone(arr).(ByteArray)
	arr[0] = 7
	assert.Equal(t, byte(1), arrCopy[0])
}
