package nbt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/joshuapare/nbtkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helloWorld is the canonical minimal file: a compound named "hello world"
// holding one string member.
var helloWorld = []byte{
	0x0a, 0x00, 0x0b, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
	0x00,
}

func TestReadHelloWorld(t *testing.T) {
	tag, err := Unmarshal(helloWorld)
	require.NoError(t, err)

	assert.Equal(t, "hello world", tag.Name)
	c, ok := tag.Compound()
	require.True(t, ok)
	s, ok := c.GetString("name")
	require.True(t, ok)
	assert.Equal(t, "Bananrama", s)
}

func TestReadConsumesExactlyOneTag(t *testing.T) {
	stream := append(append([]byte{}, helloWorld...), helloWorld...)
	stream = append(stream, 0xff) // unrelated trailing byte

	src := bytes.NewReader(stream)
	r := NewReader(src, types.DecodeOptions{})
	_, err := r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, int64(len(helloWorld)), r.Offset())
	_, err = r.ReadTag()
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len(), "the reader must not read ahead")
}

func TestReadWithoutByteReader(t *testing.T) {
	// OneByteReader hides io.ByteReader and returns one byte per call.
	tag, err := Decode(iotest.OneByteReader(bytes.NewReader(helloWorld)), types.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hello world", tag.Name)
}

func TestReadEndTag(t *testing.T) {
	tag, err := Unmarshal([]byte{0x00})
	require.NoError(t, err)
	assert.True(t, tag.IsEnd())
	_, ok := tag.TagName()
	assert.False(t, ok)
}

func TestReadEmptyStream(t *testing.T) {
	_, err := Unmarshal(nil)
	require.ErrorIs(t, err, types.ErrTruncated)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte{99})
	require.ErrorIs(t, err, types.ErrUnknownTag)
	assert.True(t, types.IsKind(err, types.ErrKindInvalid))
	assert.False(t, types.IsKind(err, types.ErrKindTruncated))

	// Unknown member type inside a compound.
	_, err = Unmarshal([]byte{0x0a, 0x00, 0x00, 0x0d, 0x00, 0x00})
	require.ErrorIs(t, err, types.ErrUnknownTag)

	// Unknown list element type.
	_, err = Unmarshal([]byte{0x09, 0x00, 0x00, 0x20, 0, 0, 0, 0})
	require.ErrorIs(t, err, types.ErrUnknownTag)
}

func TestReadMissingTerminator(t *testing.T) {
	// Compound type and name, then nothing.
	data := []byte{0x0a, 0x00, 0x04, 'r', 'o', 'o', 't'}
	_, err := Unmarshal(data)
	require.ErrorIs(t, err, types.ErrTruncated)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// A complete member but no end marker.
	data = append(data, 0x01, 0x00, 0x01, 'b', 0x05)
	_, err = Unmarshal(data)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestReadTruncatedFields(t *testing.T) {
	full, err := Marshal(buildAllTypes(t))
	require.NoError(t, err)

	// Every strict prefix of a valid encoding is a truncation error.
	for n := 1; n < len(full); n++ {
		_, err := Unmarshal(full[:n])
		require.ErrorIs(t, err, types.ErrTruncated, "prefix length %d", n)
	}
}

func TestReadStringLongerThanInput(t *testing.T) {
	data := []byte{0x08, 0x00, 0x01, 's', 0x01, 0x00, 'a', 'b'}
	_, err := Unmarshal(data)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestReadInvalidUTF8(t *testing.T) {
	data := []byte{0x08, 0x00, 0x01, 's', 0x00, 0x02, 0xc3, 0x28}
	_, err := Unmarshal(data)
	require.ErrorIs(t, err, types.ErrInvalidUTF8)
	assert.True(t, types.IsKind(err, types.ErrKindInvalid))

	// Invalid name bytes fail the same way.
	data = []byte{0x01, 0x00, 0x01, 0xff, 0x05}
	_, err = Unmarshal(data)
	require.ErrorIs(t, err, types.ErrInvalidUTF8)
}

func TestReadLegacyStrings(t *testing.T) {
	data := []byte{0x08, 0x00, 0x01, 's', 0x00, 0x04, 'c', 'a', 'f', 0xe9}
	tag, err := UnmarshalOptions(data, types.DecodeOptions{LegacyStrings: true})
	require.NoError(t, err)
	assert.Equal(t, String("café"), tag.Value)
}

func TestReadNegativeLength(t *testing.T) {
	for _, id := range []byte{0x07, 0x0b, 0x0c} {
		data := []byte{id, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}
		_, err := Unmarshal(data)
		require.ErrorIs(t, err, types.ErrNegativeLength, "type %d", id)
	}
	_, err := Unmarshal([]byte{0x09, 0x00, 0x00, 0x03, 0x80, 0, 0, 0})
	require.ErrorIs(t, err, types.ErrNegativeLength)
}

func TestReadHugeDeclaredLengthFailsWithoutAllocating(t *testing.T) {
	// 16 Mi declared bytes, none present.
	data := []byte{0x07, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, err := Unmarshal(data)
	require.ErrorIs(t, err, types.ErrTruncated)

	// Beyond the configured limit the count itself is rejected.
	data = []byte{0x0c, 0x00, 0x00, 0x7f, 0xff, 0xff, 0xff}
	_, err = Unmarshal(data)
	require.ErrorIs(t, err, types.ErrLengthExceeded)
	assert.True(t, types.IsKind(err, types.ErrKindLimit))
}

func TestReadListOfEnd(t *testing.T) {
	tag, err := Unmarshal([]byte{0x09, 0x00, 0x00, 0x00, 0, 0, 0, 0})
	require.NoError(t, err)
	l, ok := tag.List()
	require.True(t, ok)
	assert.Equal(t, types.TagEnd, l.ElementID())
	assert.Equal(t, 0, l.Len())

	_, err = Unmarshal([]byte{0x09, 0x00, 0x00, 0x00, 0, 0, 0, 1})
	require.ErrorIs(t, err, types.ErrUnknownTag)
}

func nestedLists(depth int) []byte {
	var b bytes.Buffer
	b.Write([]byte{0x09, 0x00, 0x00})
	for i := 1; i < depth; i++ {
		b.Write([]byte{0x09, 0, 0, 0, 1})
	}
	b.Write([]byte{0x03, 0, 0, 0, 0})
	return b.Bytes()
}

func TestReadDepthLimit(t *testing.T) {
	opts := types.DecodeOptions{Limits: types.Limits{MaxDepth: 8}}

	_, err := UnmarshalOptions(nestedLists(8), opts)
	require.NoError(t, err)

	_, err = UnmarshalOptions(nestedLists(9), opts)
	require.ErrorIs(t, err, types.ErrDepthExceeded)

	// Adversarial depth against the default limit.
	_, err = Unmarshal(nestedLists(100_000))
	require.ErrorIs(t, err, types.ErrDepthExceeded)
}

func TestReadDuplicateKeysLastWins(t *testing.T) {
	data := []byte{
		0x0a, 0x00, 0x00,
		0x01, 0x00, 0x01, 'k', 0x01,
		0x01, 0x00, 0x01, 'k', 0x02,
		0x00,
	}
	tag, err := Unmarshal(data)
	require.NoError(t, err)
	c, _ := tag.Compound()
	assert.Equal(t, 1, c.Len())
	b, _ := c.GetByte("k")
	assert.Equal(t, int8(2), b)
}

func TestReadTrailingData(t *testing.T) {
	_, err := Unmarshal(append(append([]byte{}, helloWorld...), 0x00))
	require.ErrorIs(t, err, types.ErrTrailingData)
}

func TestReadSourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := io.MultiReader(bytes.NewReader(helloWorld[:5]), iotest.ErrReader(boom))
	_, err := Decode(src, types.DecodeOptions{})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, types.ErrIO)
	assert.True(t, types.IsKind(err, types.ErrKindIO))
}

func TestReadErrorMentionsOffset(t *testing.T) {
	_, err := Unmarshal([]byte{0x0a, 0x00, 0x00, 0x63})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "offset 3"), err.Error())
}
