package filterview

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by View and Cursor operations.
//
// Every specific error wraps [ErrPreconditionViolation], so callers that only
// care about misuse can test for the root:
//
//	if errors.Is(err, filterview.ErrPreconditionViolation) {
//	    // caller logic error
//	}
var (
	// ErrPreconditionViolation is the root of all errors in this package. It
	// always signals a caller logic error, never a data-dependent condition.
	ErrPreconditionViolation = errors.New("filterview: precondition violation")

	// ErrEmptyView is returned by [View.Front] and [View.Back] when no element
	// of the backing sequence satisfies the predicate.
	ErrEmptyView = fmt.Errorf("%w: view has no matching elements", ErrPreconditionViolation)

	// ErrCursorAtEnd is returned when a cursor resting on the end sentinel is
	// dereferenced or advanced.
	ErrCursorAtEnd = fmt.Errorf("%w: cursor is at the end of the view", ErrPreconditionViolation)

	// ErrNullCursor is returned when a zero [Cursor] is dereferenced or
	// advanced.
	ErrNullCursor = fmt.Errorf("%w: cursor is not associated with a view", ErrPreconditionViolation)

	// ErrNotAddressable is returned by [Cursor.Pointer] when the backing
	// sequence does not implement [Addressable].
	ErrNotAddressable = fmt.Errorf("%w: backing sequence is not addressable", ErrPreconditionViolation)
)
