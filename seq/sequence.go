package seq

import (
	"fmt"
	"iter"

	"github.com/npillmayer/collections/ownership"
)

// Sequence is an owned, growable list of elements of type T.
//
// Sequences are handled by pointer. A sequence created by New, WithCapacity
// or Of is owned by the caller; Take and Drop end the ownership, after which
// every operation on the sequence is fatal.
type Sequence[T any] struct {
	items []T
	state ownership.State
}

// New creates an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// WithCapacity creates an empty sequence with room for n elements.
func WithCapacity[T any](n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	return &Sequence[T]{items: make([]T, 0, n)}
}

// Of creates a sequence from a literal list of elements.
// The elements are copied; vs is not retained.
func Of[T any](vs ...T) *Sequence[T] {
	s := WithCapacity[T](len(vs))
	s.items = append(s.items, vs...)
	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	s.state.Check("seq.Len")
	return len(s.items)
}

// Cap returns the number of elements the sequence can hold without reallocating.
func (s *Sequence[T]) Cap() int {
	s.state.Check("seq.Cap")
	return cap(s.items)
}

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Append adds vs to the end of the sequence.
//
// Append needs exclusive access: it is fatal while any element reference is
// held or an iteration is running, as growing may relocate the elements.
func (s *Sequence[T]) Append(vs ...T) {
	release := s.state.Exclusive("seq.Append")
	defer release()
	c := cap(s.items)
	s.items = append(s.items, vs...)
	if cap(s.items) != c {
		tracer().Debugf("seq: grown from capacity %d to %d", c, cap(s.items))
	}
}

// Index returns the element at position i.
//
// An index outside [0, Len()) is fatal with ErrOutOfRange. Use Get to probe
// for an element without risking a fatal error.
func (s *Sequence[T]) Index(i int) T {
	release := s.state.Share("seq.Index")
	defer release()
	if i < 0 || i >= len(s.items) {
		ownership.Fatal("seq.Index", fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(s.items)))
	}
	return s.items[i]
}

// Get returns the element at position i. If i is not a valid index, Get
// returns the zero value and false.
func (s *Sequence[T]) Get(i int) (T, bool) {
	release := s.state.Share("seq.Get")
	defer release()
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// All returns an iterator over the elements in insertion order.
//
// The sequence is borrowed for reading while the iteration runs.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		release := s.state.Share("seq.All")
		defer release()
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over index/element pairs in insertion order.
func (s *Sequence[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		release := s.state.Share("seq.Enumerate")
		defer release()
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Mut returns an iterator over pointers to the elements, allowing in-place
// modification:
//
//	for _, x := range s.Mut() {
//	    *x += 50
//	}
//
// The sequence is borrowed exclusively while the iteration runs; any other
// access to it from within the loop body is fatal. Yielded pointers must not
// be retained beyond the loop.
func (s *Sequence[T]) Mut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		release := s.state.Exclusive("seq.Mut")
		defer release()
		for i := range s.items {
			if !yield(i, &s.items[i]) {
				return
			}
		}
	}
}

// Take moves the elements out of the sequence. The sequence is invalid after
// Take returns.
func (s *Sequence[T]) Take() []T {
	s.state.Move("seq.Take")
	items := s.items
	s.items = nil
	return items
}

// Drop ends the lifetime of the sequence together with all its elements.
func (s *Sequence[T]) Drop() {
	s.state.Move("seq.Drop")
	clear(s.items)
	s.items = nil
}

// String returns a debug representation of the elements.
func (s *Sequence[T]) String() string {
	if s.state.IsMoved() {
		return "<moved>"
	}
	return fmt.Sprint(s.items)
}
