// Package nbt implements the Named Binary Tag format: a self-describing tree
// of typed, optionally named values and the big-endian byte stream that
// carries it.
//
// # Data model
//
// A Tag pairs a name with a Value. Value is a closed set of 13 payload
// variants whose ID is also the one-byte wire discriminator:
//
//	End(0) Byte(1) Short(2) Int(3) Long(4) Float(5) Double(6) ByteArray(7)
//	String(8) *List(9) *Compound(10) IntArray(11) LongArray(12)
//
// List elements and Compound members are stored as bare Values, so a list
// element cannot carry a name and a member's name is always its key. Only
// *Compound has Insert and only *List has Push; misuse does not compile.
//
// # Reading and writing
//
//	r := nbt.NewReader(f, types.DecodeOptions{})
//	root, err := r.ReadTag()
//
//	w := nbt.NewWriter(f, types.EncodeOptions{})
//	err = w.WriteTag(root)
//
// Reader and Writer work on any io.Reader/io.Writer. Compression is not
// part of the codec; wrap the stream with package compress first.
//
// A Reader consumes exactly the bytes of one tag, so several tags can be
// read back-to-back from one stream. Compound members keep insertion order
// and the Writer emits them in that order, so decoding and re-encoding a
// well-formed stream reproduces it byte for byte.
//
// # Errors
//
// Failures are *types.Error values. Use errors.Is with the sentinels in
// package types (ErrTruncated, ErrUnknownTag, ErrInvalidUTF8, ...) or
// types.KindOf to branch on the category. A failed read never returns a
// partial tree.
package nbt
