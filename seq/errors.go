package seq

import "errors"

var (
	// ErrOutOfRange signals an index greater than or equal to the sequence length.
	ErrOutOfRange = errors.New("seq: index out of range")
	// ErrStaleRef signals use of an element reference after it has been released.
	ErrStaleRef = errors.New("seq: reference has been released")
)
