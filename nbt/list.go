package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// List is a homogeneous ordered sequence of unnamed values. Every element has
// the list's element type.
type List struct {
	elemID types.TagID
	elems  []Value
}

// MakeList returns an empty list of element type elemID. A list declared with
// element type End adopts the type of the first element pushed, which is how
// writers commonly encode lists that start out empty.
func MakeList(elemID types.TagID) *List { return &List{elemID: elemID} }

// ElementID returns the declared element type.
func (l *List) ElementID() types.TagID {
	if l == nil {
		return types.TagEnd
	}
	return l.elemID
}

// Push appends v. It fails with ErrEndValue for End or nil and with
// ErrElementType when v's type differs from the element type.
func (l *List) Push(v Value) error {
	if !storable(v) {
		return types.ErrEndValue.With(nil, "list element %d", len(l.elems))
	}
	id := v.ID()
	if l.elemID == types.TagEnd && len(l.elems) == 0 {
		l.elemID = id
	}
	if id != l.elemID {
		return types.ErrElementType.With(nil, "pushing %s onto list of %s", id, l.elemID)
	}
	l.elems = append(l.elems, v)
	return nil
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// At returns element i. ok is false when i is out of range.
func (l *List) At(i int) (Value, bool) {
	if l == nil || i < 0 || i >= len(l.elems) {
		return nil, false
	}
	return l.elems[i], true
}

// Range calls fn for each element in order until fn returns false.
func (l *List) Range(fn func(i int, v Value) bool) {
	if l == nil {
		return
	}
	for i, v := range l.elems {
		if !fn(i, v) {
			return
		}
	}
}

// Values returns a copy of the element slice.
func (l *List) Values() []Value {
	if l == nil {
		return nil
	}
	out := make([]Value, len(l.elems))
	copy(out, l.elems)
	return out
}
