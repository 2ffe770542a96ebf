package text

import "errors"

var (
	// ErrInvalidUTF8 signals invalid UTF-8 source text.
	ErrInvalidUTF8 = errors.New("text: invalid UTF-8")
	// ErrIndexOutOfBounds signals invalid byte offsets for slicing.
	ErrIndexOutOfBounds = errors.New("text: index out of bounds")
	// ErrInvalidBoundary signals an offset inside a multi-byte character.
	ErrInvalidBoundary = errors.New("text: offset is not a char boundary")
	// ErrDecode signals a malformed byte sequence during decoding.
	ErrDecode = errors.New("text: malformed UTF-8 sequence")
)
