package types

// DecodeOptions controls how a Reader interprets its input.
type DecodeOptions struct {
	// Limits bounds nesting and element counts. Zero fields use defaults.
	Limits Limits

	// LegacyStrings decodes name and String bytes that are not valid UTF-8
	// as Windows-1252 instead of failing with ErrInvalidUTF8. Some older
	// tools wrote raw single-byte text. Off by default.
	LegacyStrings bool
}

// EncodeOptions controls how a Writer emits a tree.
type EncodeOptions struct {
	// Limits bounds nesting and element counts. A zero MaxDepth uses the
	// default; a zero MaxLength leaves counts bounded only by the 32-bit
	// prefix, so any tree that can be decoded can also be written.
	Limits Limits
}
