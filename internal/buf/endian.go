// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// The tag format is big-endian throughout. Readers return 0 when b is too
// short so callers can bounds-check once per field rather than per helper.

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// I16BE reads a big-endian int16 from b. Returns 0 when b is too short.
func I16BE(b []byte) int16 {
	return int16(U16BE(b))
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32BE reads a big-endian int32 from b. Returns 0 when b is too short.
func I32BE(b []byte) int32 {
	return int32(U32BE(b))
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// I64BE reads a big-endian int64 from b. Returns 0 when b is too short.
func I64BE(b []byte) int64 {
	return int64(U64BE(b))
}

// PutU16BE writes v to the first two bytes of b.
func PutU16BE(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}

// PutI32BE writes v to the first four bytes of b.
func PutI32BE(b []byte, v int32) {
	binary.BigEndian.PutUint32(b, uint32(v))
}

// PutI64BE writes v to the first eight bytes of b.
func PutI64BE(b []byte, v int64) {
	binary.BigEndian.PutUint64(b, uint64(v))
}
