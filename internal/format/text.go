package format

import (
	"unicode/utf8"

	"github.com/joshuapare/nbtkit/pkg/types"
	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts name or String payload bytes to a Go string.
//
// In strict mode invalid UTF-8 yields ok = false. With legacy set, bytes that
// are not valid UTF-8 are decoded as Windows-1252, the single-byte charset
// older writers emitted when they copied raw text into the stream.
func DecodeText(b []byte, legacy bool) (string, bool) {
	if utf8.Valid(b) {
		return string(b), true
	}
	if !legacy {
		return "", false
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(s), true
}

// CheckText reports whether s can be written as a name or String payload:
// valid UTF-8 and at most types.MaxStringBytes bytes.
func CheckText(s string) (validUTF8, fits bool) {
	return utf8.ValidString(s), len(s) <= types.MaxStringBytes
}
