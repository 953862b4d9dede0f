package filterview

// Sequence is an ordered, index-addressable container owned by the caller.
//
// Forward traversal runs from 0 to Len()-1 and reverse traversal from Len()-1
// down to 0. Position Len() is the raw end of the sequence.
type Sequence[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at position i, 0 <= i < Len().
	At(i int) T
}

// Addressable is implemented by sequences that can hand out the address of
// an element. [Cursor.Pointer] requires it.
type Addressable[T any] interface {
	// Ref returns a pointer to the element at position i, 0 <= i < Len().
	Ref(i int) *T
}

// Predicate is the constraint placed on the filter function of a [View].
// Any function type with the underlying type func(T) bool satisfies it.
type Predicate[T any] interface {
	~func(T) bool
}

// Items is a slice that satisfies [Sequence] through its pointer.
type Items[T any] []T

// Over reinterprets the slice variable pointed to by items as *Items[T]
// without copying it.
//
// The result aliases *items: appending to or reassigning the caller's slice
// is visible to every view built on it.
//
//	xs := []string{"a", "b"}
//	seq := filterview.Over(&xs)
//	xs = append(xs, "c")
//	seq.Len() // → 3
func Over[T any](items *[]T) *Items[T] {
	return (*Items[T])(items)
}

// Len returns the number of items.
func (s *Items[T]) Len() int { return len(*s) }

// At returns the item at position i.
func (s *Items[T]) At(i int) T { return (*s)[i] }

// Ref returns a pointer to the item at position i. The pointer is only valid
// until the caller's slice is reallocated.
func (s *Items[T]) Ref(i int) *T { return &(*s)[i] }
