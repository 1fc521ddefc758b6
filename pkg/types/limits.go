package types

// ============================================================================
// Codec Limits Constants
// ============================================================================
// The format itself bounds nothing but string length; these limits exist so
// adversarial input cannot drive unbounded recursion or allocation.

const (
	// MaxDepthDefault matches the nesting limit enforced by the game that
	// popularised the format. Real-world files rarely exceed a depth of 20.
	MaxDepthDefault = 512

	// MaxDepthRelaxed allows unusually deep generated trees.
	MaxDepthRelaxed = 4096

	// MaxDepthStrict is a conservative limit for untrusted input.
	MaxDepthStrict = 64

	// MaxLengthDefault bounds the element count of any array or list
	// (16 Mi elements). A full region of chunk data stays well below it.
	MaxLengthDefault = 1 << 24

	// MaxLengthRelaxed accepts any count the 32-bit prefix can express.
	MaxLengthRelaxed = 1<<31 - 1

	// MaxLengthStrict suits constrained environments (64 Ki elements).
	MaxLengthStrict = 1 << 16

	// MaxStringBytes is the largest byte count the unsigned 16-bit string
	// length prefix can express.
	MaxStringBytes = 1<<16 - 1
)

// Limits bounds nesting and element counts during decode and encode.
// A zero field selects the default value for that field.
type Limits struct {
	// MaxDepth is the maximum number of nested List/Compound levels.
	// The root container counts as depth 1.
	MaxDepth int

	// MaxLength is the maximum element count of a ByteArray, IntArray,
	// LongArray or List.
	MaxLength int
}

// DefaultLimits returns limits suitable for ordinary files.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:  MaxDepthDefault,
		MaxLength: MaxLengthDefault,
	}
}

// RelaxedLimits returns permissive limits for trusted, generated data.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:  MaxDepthRelaxed,
		MaxLength: MaxLengthRelaxed,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:  MaxDepthStrict,
		MaxLength: MaxLengthStrict,
	}
}

// Normalize fills zero fields with defaults.
func (l Limits) Normalize() Limits {
	d := DefaultLimits()
	if l.MaxDepth <= 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.MaxLength <= 0 {
		l.MaxLength = d.MaxLength
	}
	return l
}
