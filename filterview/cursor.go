package filterview

import "reflect"

// Cursor is a forward-only position in a [View].
//
// A cursor returned by [View.Begin] or [View.End] rests either on an element
// that satisfies the predicate or on the end sentinel. The zero Cursor is
// unassociated: it can be copied and compared but not dereferenced or
// advanced.
//
// Cursors are values; copying one yields an independent position.
type Cursor[S Sequence[T], T any, P Predicate[T]] struct {
	seq   S
	pred  P
	pos   int
	end   bool
	valid bool
}

// newCursor wraps a position the view has already resolved.
func newCursor[S Sequence[T], T any, P Predicate[T]](seq S, pred P, pos int, end bool) Cursor[S, T, P] {
	return Cursor[S, T, P]{seq: seq, pred: pred, pos: pos, end: end, valid: true}
}

// Next advances to the next matching element (pre-increment).
//
// When no further element matches, the cursor becomes the end sentinel one
// past the element it was on, which is the position [View.End] reports.
// Returns [ErrCursorAtEnd] or [ErrNullCursor] without moving otherwise.
func (c *Cursor[S, T, P]) Next() error {
	if err := c.check(); err != nil {
		return err
	}
	c.advance()
	return nil
}

// PostNext returns a copy of the cursor as it was, then advances the
// receiver (post-increment).
func (c *Cursor[S, T, P]) PostNext() (Cursor[S, T, P], error) {
	prev := *c
	if err := c.Next(); err != nil {
		return prev, err
	}
	return prev, nil
}

// Value returns the element under the cursor.
func (c Cursor[S, T, P]) Value() (T, error) {
	if err := c.check(); err != nil {
		var zero T
		return zero, err
	}
	return c.seq.At(c.pos), nil
}

// Equal reports whether c and other are at the same position of the same
// backing sequence. Two zero cursors are equal; a zero cursor never equals
// an associated one. Predicates are not compared.
//
// Backing identity is only checked when the sequence value is comparable,
// such as *Items[T]. A sequence whose value cannot be compared, for example a
// struct holding a slice, has no identity to check and cursors over it are
// compared by position alone.
func (c Cursor[S, T, P]) Equal(other Cursor[S, T, P]) bool {
	if !c.valid || !other.valid {
		return c.valid == other.valid
	}
	return c.pos == other.pos && sameBacking(c.seq, other.seq)
}

// Pointer returns the address of the element under the cursor. The backing
// sequence must implement [Addressable]; otherwise [ErrNotAddressable] is
// returned.
func (c Cursor[S, T, P]) Pointer() (*T, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	a, ok := any(c.seq).(Addressable[T])
	if !ok {
		return nil, ErrNotAddressable
	}
	return a.Ref(c.pos), nil
}

// Position returns the raw index in the backing sequence, or -1 for a zero
// cursor.
//
// A cursor advanced past the last match reports the index just after that
// match, which is the position [View.End] reports. This is not necessarily
// Len(): trailing elements that do not match are never visited.
func (c Cursor[S, T, P]) Position() int {
	if !c.valid {
		return -1
	}
	return c.pos
}

// Done reports whether the cursor cannot be dereferenced: it is at the end
// sentinel or unassociated.
func (c Cursor[S, T, P]) Done() bool { return !c.valid || c.end }

func (c Cursor[S, T, P]) check() error {
	switch {
	case !c.valid:
		return ErrNullCursor
	case c.end:
		return ErrCursorAtEnd
	}
	return nil
}

func (c *Cursor[S, T, P]) advance() {
	from := c.pos
	for i, l := from+1, c.seq.Len(); i < l; i++ {
		if c.pred(c.seq.At(i)) {
			c.pos = i
			return
		}
	}
	c.pos = from + 1
	c.end = true
}

// sameBacking reports whether a and b refer to the same sequence. Values that
// cannot be compared are treated as the same sequence.
func sameBacking(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return true
	}
	return a == b
}
