// Package format houses the low-level wire layout of the tag format: field
// sizes, framing constants and text decoding, shared by the reader and the
// writer. Public limits such as the string length cap live in pkg/types.
package format

const (
	// StringLenSize is the width of the length prefix of a name or String.
	// Layout:
	//   0x00  byte count (u16, big-endian)
	//   0x02  UTF-8 bytes
	StringLenSize = 2

	// CountSize is the width of the element count prefix of arrays and lists.
	// Layout:
	//   0x00  count (i32, big-endian)
	//   0x04  elements
	CountSize = 4

	// EndMarker terminates the member sequence of a compound.
	EndMarker = 0x00

	// MaxCount is the largest element count a signed 32-bit prefix holds.
	MaxCount = 1<<31 - 1

	// ReadChunkSize bounds a single allocation while reading a variable-length
	// payload. Declared counts are never trusted for up-front allocation; a
	// payload grows in chunks of this size until complete.
	ReadChunkSize = 64 << 10
)

// Fixed payload widths, indexed by type ID. Zero means variable length.
var payloadWidth = [...]int{
	1:  1, // Byte
	2:  2, // Short
	3:  4, // Int
	4:  8, // Long
	5:  4, // Float
	6:  8, // Double
	11: 4, // IntArray element
	12: 8, // LongArray element
}

// FixedWidth returns the payload size of a scalar type, or the element size
// of IntArray/LongArray. It returns 0 for variable-length types.
func FixedWidth(id uint8) int {
	if int(id) >= len(payloadWidth) {
		return 0
	}
	return payloadWidth[id]
}
