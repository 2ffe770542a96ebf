package seq

import (
	"github.com/npillmayer/collections/ownership"
)

// Ref is a shared reference to one element of a sequence.
//
// As long as a Ref is held, the sequence is borrowed for reading and cannot
// grow. Release gives the borrow back.
type Ref[T any] struct {
	seq     *Sequence[T]
	index   int
	release func()
}

// Borrow returns a reference to the element at position i. If i is no valid
// index, Borrow returns nil and false, and nothing is borrowed.
func (s *Sequence[T]) Borrow(i int) (*Ref[T], bool) {
	release := s.state.Share("seq.Borrow")
	if i < 0 || i >= len(s.items) {
		release()
		return nil, false
	}
	return &Ref[T]{seq: s, index: i, release: release}, true
}

// Value returns the referenced element.
func (r *Ref[T]) Value() T {
	if r == nil || r.seq == nil {
		ownership.Fatal("seq.Ref.Value", ErrStaleRef)
	}
	return r.seq.items[r.index]
}

// Index returns the position of the referenced element.
func (r *Ref[T]) Index() int {
	return r.index
}

// Release gives the borrow back. The Ref is unusable afterwards.
func (r *Ref[T]) Release() {
	if r == nil || r.seq == nil {
		return
	}
	r.release()
	r.seq = nil
}
