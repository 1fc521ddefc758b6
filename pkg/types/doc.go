// Package types defines the shared vocabulary of the nbtkit codec: the wire
// type identifiers, typed errors with stable categories, and the limits and
// options that bound decoding and encoding.
//
// Design goals:
//   - One closed set of type IDs that doubles as the wire discriminator.
//   - Typed errors so callers branch on intent (truncated input vs invalid
//     data vs misuse) rather than on message text.
//   - Paranoid limits; never trust a length prefix for allocation.
//
// This package has no dependencies beyond the standard library.
package types
