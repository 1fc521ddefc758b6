package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindTruncated ErrKind = iota // source ended inside a field already committed to
	ErrKindInvalid                  // malformed data (unknown type, bad UTF-8, negative length)
	ErrKindLimit                    // configured depth/length limit exceeded
	ErrKindMisuse                   // caller violated a tree-building contract
	ErrKindIO                       // underlying source/sink failure
	ErrKindNotFound                 // missing compound member or list index
)

// String returns a short category name.
func (k ErrKind) String() string {
	switch k {
	case ErrKindTruncated:
		return "truncated"
	case ErrKindInvalid:
		return "invalid"
	case ErrKindLimit:
		return "limit"
	case ErrKindMisuse:
		return "misuse"
	case ErrKindIO:
		return "io"
	case ErrKindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause

	base *Error // sentinel this error was derived from
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return e == t || (e.base != nil && e.base == t)
}

// With derives an error from the sentinel e, appending detail to the message
// and recording cause. errors.Is(result, e) holds.
func (e *Error) With(cause error, format string, args ...any) *Error {
	msg := e.Msg
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	base := e
	if e.base != nil {
		base = e.base
	}
	return &Error{Kind: e.Kind, Msg: msg, Err: cause, base: base}
}

// KindOf returns the category of the first *Error in err's chain.
// ok is false when err carries no typed error.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries a typed error of kind k.
func IsKind(err error, k ErrKind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// Sentinels returned by the codec.
var (
	// ErrTruncated indicates the source ran out of bytes mid-tag.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated input"}
	// ErrUnknownTag indicates a type ID outside 0..12 where a type was expected.
	ErrUnknownTag = &Error{Kind: ErrKindInvalid, Msg: "unknown tag type"}
	// ErrInvalidUTF8 indicates name or String bytes that are not valid UTF-8.
	ErrInvalidUTF8 = &Error{Kind: ErrKindInvalid, Msg: "invalid UTF-8 text"}
	// ErrNegativeLength indicates a count prefix below zero.
	ErrNegativeLength = &Error{Kind: ErrKindInvalid, Msg: "negative length prefix"}
	// ErrTrailingData indicates bytes left over after a complete tag.
	ErrTrailingData = &Error{Kind: ErrKindInvalid, Msg: "trailing data after tag"}
	// ErrStringTooLong indicates text that does not fit the 16-bit length prefix.
	ErrStringTooLong = &Error{Kind: ErrKindInvalid, Msg: "string too long"}
	// ErrDepthExceeded indicates nesting deeper than Limits.MaxDepth.
	ErrDepthExceeded = &Error{Kind: ErrKindLimit, Msg: "nesting depth exceeded"}
	// ErrLengthExceeded indicates an array or list longer than Limits.MaxLength.
	ErrLengthExceeded = &Error{Kind: ErrKindLimit, Msg: "length exceeded"}
	// ErrElementType indicates a list element whose type differs from the list's.
	ErrElementType = &Error{Kind: ErrKindMisuse, Msg: "list element type mismatch"}
	// ErrEndValue indicates an attempt to store End (or nil) as a member or element.
	ErrEndValue = &Error{Kind: ErrKindMisuse, Msg: "end tag cannot be stored"}
	// ErrIO wraps a failure reported by the underlying source or sink.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrNotFound indicates a lookup path that does not resolve.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidPath indicates a lookup path with bad syntax.
	ErrInvalidPath = &Error{Kind: ErrKindInvalid, Msg: "invalid path"}
)

// -----------------------------------------------------------------------------
// Tag Type Identifiers
// -----------------------------------------------------------------------------

// TagID is the one-byte wire discriminator of a tag. The numbers are fixed by
// the format and must never change.
type TagID uint8

const (
	TagEnd       TagID = 0
	TagByte      TagID = 1
	TagShort     TagID = 2
	TagInt       TagID = 3
	TagLong      TagID = 4
	TagFloat     TagID = 5
	TagDouble    TagID = 6
	TagByteArray TagID = 7
	TagString    TagID = 8
	TagList      TagID = 9
	TagCompound  TagID = 10
	TagIntArray  TagID = 11
	TagLongArray TagID = 12

	// MaxTagID is the highest defined type ID.
	MaxTagID = TagLongArray
)

var tagNames = [...]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
	TagIntArray:  "TAG_Int_Array",
	TagLongArray: "TAG_Long_Array",
}

// Valid reports whether id is one of the 13 defined types.
func (id TagID) Valid() bool { return id <= MaxTagID }

// String implements the Stringer interface for TagID.
func (id TagID) String() string {
	if id.Valid() {
		return tagNames[id]
	}
	return fmt.Sprintf("UNKNOWN_TAG_%d", uint8(id))
}

// IsContainer reports whether id holds child tags (List or Compound).
func (id TagID) IsContainer() bool {
	return id == TagList || id == TagCompound
}

// ParseTagID resolves a name as printed by String ("TAG_Int"), or its short
// form ("int", "byte_array"), to a TagID.
func ParseTagID(name string) (TagID, error) {
	for id, full := range tagNames {
		if name == full || equalFoldShort(name, full) {
			return TagID(id), nil
		}
	}
	return 0, ErrUnknownTag.With(nil, "%q", name)
}

// equalFoldShort matches "byte_array" against "TAG_Byte_Array".
func equalFoldShort(short, full string) bool {
	const prefix = "TAG_"
	if len(full) <= len(prefix) || len(short) != len(full)-len(prefix) {
		return false
	}
	rest := full[len(prefix):]
	for i := 0; i < len(short); i++ {
		a, b := short[i], rest[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
