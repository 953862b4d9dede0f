// Package filterview provides a lazy, read-only view over an ordered
// sequence that exposes only the elements accepted by a predicate.
//
// # Overview
//
// A [View] borrows a caller-owned [Sequence] and keeps a copy of a predicate.
// Nothing is copied or materialised: every call walks the live contents of
// the backing sequence, so changes made between calls are always visible.
//
//	xs := []int{1, 2, 3, 4, 5, 6}
//	evens := filterview.New(filterview.Over(&xs), func(n int) bool { return n%2 == 0 })
//
//	evens.Size()            // → 3
//	front, _ := evens.Front() // → 2
//	back, _ := evens.Back()   // → 6
//
// # Cursors
//
// [View.Begin] and [View.End] return forward-only [Cursor] values. A cursor
// always rests on a matching element or on the end sentinel:
//
//	for c := evens.Begin(); !c.Equal(evens.End()); c.Next() {
//	    v, _ := c.Value()
//	    fmt.Println(v)
//	}
//
// For ordinary loops prefer the range-over-func adaptors [View.All] and
// [View.Backward].
//
// # Lifetime
//
// The view and its cursors hold a reference to the backing sequence, never a
// copy. The caller keeps the sequence alive for as long as they are in use
// and must not remove or reorder elements while a cursor is being advanced.
// No locking is performed; a view is meant for a single goroutine.
//
// # Errors
//
// Operations whose precondition does not hold return an error wrapping
// [ErrPreconditionViolation] instead of reading past the end:
//
//	if _, err := evens.Front(); errors.Is(err, filterview.ErrEmptyView) {
//	    // nothing matched
//	}
package filterview
