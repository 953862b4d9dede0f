package filterview

import "iter"

// View is a non-owning, read-only filter over a backing [Sequence].
//
// A View stores a reference to the sequence and a copy of the predicate; both
// are fixed for its lifetime. No results are cached: every method evaluates
// the predicate against the sequence's contents at call time.
//
// # Creating a view
//
//	xs := []int{1, 2, 3, 4}
//	v := filterview.New(filterview.Over(&xs), func(n int) bool { return n > 2 })
//
// # Type parameters
//
//   - S is the backing sequence type, typically a pointer such as *Items[T].
//     Pointer types give cursors a backing identity to compare; see
//     [Cursor.Equal].
//   - T is the element type.
//   - P is the predicate type, any func(T) bool.
type View[S Sequence[T], T any, P Predicate[T]] struct {
	seq  S
	pred P
}

// New creates a View over seq that exposes the elements for which pred
// returns true. seq is borrowed and must outlive the view and its cursors.
func New[S Sequence[T], T any, P Predicate[T]](seq S, pred P) *View[S, T, P] {
	return &View[S, T, P]{seq: seq, pred: pred}
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursors
// ─────────────────────────────────────────────────────────────────────────────

// Begin returns a cursor on the first matching element, or the end sentinel
// when nothing matches.
func (v *View[S, T, P]) Begin() Cursor[S, T, P] {
	if i := v.firstIndex(); i >= 0 {
		return newCursor[S, T, P](v.seq, v.pred, i, false)
	}
	return newCursor[S, T, P](v.seq, v.pred, v.seq.Len(), true)
}

// End returns the end sentinel: one past the last matching element, found by
// scanning from the back. When nothing matches it sits at Len() and is equal
// to [View.Begin].
//
// Advancing the cursor returned by Begin always reaches a cursor equal to
// End, even when trailing elements of the sequence do not match.
func (v *View[S, T, P]) End() Cursor[S, T, P] {
	if i := v.lastIndex(); i >= 0 {
		return newCursor[S, T, P](v.seq, v.pred, i+1, true)
	}
	return newCursor[S, T, P](v.seq, v.pred, v.seq.Len(), true)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Empty reports whether no element satisfies the predicate.
// It stops at the first match.
func (v *View[S, T, P]) Empty() bool { return v.firstIndex() < 0 }

// Size returns the number of matching elements. The sequence is scanned on
// every call.
func (v *View[S, T, P]) Size() int {
	n := 0
	for i, l := 0, v.seq.Len(); i < l; i++ {
		if v.pred(v.seq.At(i)) {
			n++
		}
	}
	return n
}

// Front returns the first matching element, or [ErrEmptyView].
func (v *View[S, T, P]) Front() (T, error) {
	var zero T
	i := v.firstIndex()
	if i < 0 {
		return zero, ErrEmptyView
	}
	return v.seq.At(i), nil
}

// Back returns the last matching element, or [ErrEmptyView].
// The sequence is scanned from the back.
func (v *View[S, T, P]) Back() (T, error) {
	var zero T
	i := v.lastIndex()
	if i < 0 {
		return zero, ErrEmptyView
	}
	return v.seq.At(i), nil
}

// Predicate returns the view's copy of the predicate.
func (v *View[S, T, P]) Predicate() P { return v.pred }

// Sequence returns the borrowed backing sequence.
func (v *View[S, T, P]) Sequence() S { return v.seq }

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether at least one matching element also satisfies fn.
func (v *View[S, T, P]) Contains(fn func(T) bool) bool {
	return v.Search(fn) >= 0
}

// Search returns the backing-sequence index of the first matching element
// for which fn returns true, or -1.
func (v *View[S, T, P]) Search(fn func(T) bool) int {
	for i, l := 0, v.seq.Len(); i < l; i++ {
		if item := v.seq.At(i); v.pred(item) && fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the matching elements in sequence order.
// It is driven by a [Cursor], so elements are filtered as the loop advances.
//
//	for n := range evens.All() {
//	    fmt.Println(n)
//	}
func (v *View[S, T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := v.Begin(); !c.Done(); c.advance() {
			if !yield(c.seq.At(c.pos)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the matching elements from last to
// first.
func (v *View[S, T, P]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.seq.Len() - 1; i >= 0; i-- {
			if item := v.seq.At(i); v.pred(item) && !yield(item) {
				return
			}
		}
	}
}

func (v *View[S, T, P]) firstIndex() int {
	for i, l := 0, v.seq.Len(); i < l; i++ {
		if v.pred(v.seq.At(i)) {
			return i
		}
	}
	return -1
}

func (v *View[S, T, P]) lastIndex() int {
	for i := v.seq.Len() - 1; i >= 0; i-- {
		if v.pred(v.seq.At(i)) {
			return i
		}
	}
	return -1
}
