package text

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/collections/ownership"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Buffer is an owned, growable UTF-8 text.
//
// A buffer created by
//
//	text.New()
//
// is a valid object and behaves like the empty string.
//
// Buffers are handled by pointer. Appending mutates a buffer in place and
// needs exclusive access to it; Concat and Drop end the ownership of a
// buffer, after which every operation on it is fatal.
//
//	Operation      |  unit
//	---------------+--------
//	Len            |  bytes
//	CharCount      |  runes
//	Slice          |  bytes, on char boundaries
//	Width          |  fixed-width cells
type Buffer struct {
	text  []byte
	state ownership.State
}

// New creates an empty text buffer.
func New() *Buffer {
	return &Buffer{}
}

// WithCapacity creates an empty text buffer with room for n bytes.
func WithCapacity(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{text: make([]byte, 0, n)}
}

// FromLiteral creates a buffer from a Go string.
//
// The input string must be valid UTF-8. Invalid input is fatal with
// ErrInvalidUTF8, as it cannot denote text.
func FromLiteral(s string) *Buffer {
	if !utf8.ValidString(s) {
		ownership.Fatal("text.FromLiteral", ErrInvalidUTF8)
	}
	return &Buffer{text: []byte(s)}
}

// FromBytes creates a buffer from UTF-8 bytes. The bytes are copied.
//
// Returns ErrInvalidUTF8 if b is not valid UTF-8.
func FromBytes(b []byte) (*Buffer, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return &Buffer{text: append([]byte(nil), b...)}, nil
}

// String returns the buffer content as a Go string.
func (b *Buffer) String() string {
	release := b.state.Share("text.String")
	defer release()
	return string(b.text)
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	b.state.Check("text.Len")
	return len(b.text)
}

// Cap returns the number of bytes the buffer can hold without reallocating.
func (b *Buffer) Cap() int {
	b.state.Check("text.Cap")
	return cap(b.text)
}

// IsEmpty reports whether the buffer has no bytes.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Summary returns aggregate byte/rune/line counts for the buffer.
func (b *Buffer) Summary() Summary {
	release := b.state.Share("text.Summary")
	defer release()
	return summarize(b.text)
}

// CharCount returns the number of runes in the buffer.
func (b *Buffer) CharCount() int {
	return b.Summary().Chars
}

// LineCount returns the number of newline characters in the buffer.
func (b *Buffer) LineCount() int {
	return b.Summary().Lines
}

// AppendText appends s to the end of the buffer.
//
// Invalid UTF-8 in s is fatal with ErrInvalidUTF8; the buffer is left unchanged.
func (b *Buffer) AppendText(s string) {
	release := b.state.Exclusive("text.AppendText")
	defer release()
	if !utf8.ValidString(s) {
		ownership.Fatal("text.AppendText", ErrInvalidUTF8)
	}
	c := cap(b.text)
	b.text = append(b.text, s...)
	if cap(b.text) != c {
		tracer().Debugf("text: grown from capacity %d to %d", c, cap(b.text))
	}
}

// AppendRune appends the UTF-8 encoding of r. Invalid runes are appended as
// utf8.RuneError.
func (b *Buffer) AppendRune(r rune) {
	release := b.state.Exclusive("text.AppendRune")
	defer release()
	b.text = utf8.AppendRune(b.text, r)
}

// Concat consumes a and appends a copy of b's text to it, returning the
// result as a new buffer. a must not be used after Concat; b is only read.
//
// Concat(a, a) is fatal: a buffer cannot be given away while being read.
func Concat(a *Buffer, b *Buffer) *Buffer {
	release := b.state.Share("text.Concat")
	defer release()
	a.state.Move("text.Concat")
	out := &Buffer{text: append(a.text, b.text...)}
	a.text = nil
	return out
}

// Format creates a new buffer according to a format specifier, in the manner
// of fmt.Sprintf. Buffers in args are read, not consumed.
func Format(format string, args ...any) *Buffer {
	conv := make([]any, len(args))
	for i, arg := range args {
		if buf, ok := arg.(*Buffer); ok {
			conv[i] = buf.String()
			continue
		}
		conv[i] = arg
	}
	return FromLiteral(fmt.Sprintf(format, conv...))
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this buffer.
// Offsets 0 and Len() are boundaries.
func (b *Buffer) IsCharBoundary(offset int) bool {
	release := b.state.Share("text.IsCharBoundary")
	defer release()
	return isCharBoundary(b.text, offset)
}

// Slice returns a read-only view of the bytes [start,end).
//
// Returns ErrIndexOutOfBounds for offsets outside the buffer and
// ErrInvalidBoundary if either offset splits a multi-byte character.
func (b *Buffer) Slice(start, end int) (View, error) {
	release := b.state.Share("text.Slice")
	defer release()
	return slice(b.text, start, end)
}

// MustSlice is like Slice, but a failure to slice is fatal.
func (b *Buffer) MustSlice(start, end int) View {
	v, err := b.Slice(start, end)
	if err != nil {
		ownership.Fatal("text.MustSlice", fmt.Errorf("%w: [%d,%d)", err, start, end))
	}
	return v
}

// View returns a read-only view of the complete buffer.
func (b *Buffer) View() View {
	release := b.state.Share("text.View")
	defer release()
	return View{text: b.text[:len(b.text):len(b.text)]}
}

// Bytes returns an iterator over the raw bytes of the buffer.
//
// The buffer is borrowed for reading while the iteration runs.
func (b *Buffer) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		release := b.state.Share("text.Bytes")
		defer release()
		for _, c := range b.text {
			if !yield(c) {
				return
			}
		}
	}
}

// Chars returns an iterator over the runes of the buffer.
//
// The buffer is borrowed for reading while the iteration runs. A malformed
// byte sequence is fatal with ErrDecode.
func (b *Buffer) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		release := b.state.Share("text.Chars")
		defer release()
		decodeRunes(b.text, yield)
	}
}

// Graphemes returns an iterator over the grapheme clusters of the buffer,
// i.e. the user-perceived characters. For "नमस्ते" this yields fewer items
// than Chars.
func (b *Buffer) Graphemes() iter.Seq[string] {
	return func(yield func(string) bool) {
		release := b.state.Share("text.Graphemes")
		defer release()
		if len(b.text) == 0 {
			return
		}
		setupGraphemes()
		gstr := grapheme.StringFromString(string(b.text))
		for i := 0; i < gstr.Len(); i++ {
			if !yield(gstr.Nth(i)) {
				return
			}
		}
	}
}

// Width returns the display width of the buffer on a fixed-width console,
// measured in ‘en’s. If context is nil, uax11.LatinContext is used.
func (b *Buffer) Width(context *uax11.Context) int {
	release := b.state.Share("text.Width")
	defer release()
	if len(b.text) == 0 {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes()
	return uax11.StringWidth(grapheme.StringFromString(string(b.text)), context)
}

// Drop ends the lifetime of the buffer.
func (b *Buffer) Drop() {
	b.state.Move("text.Drop")
	b.text = nil
}

// IsMoved reports whether the buffer has been consumed or dropped.
func (b *Buffer) IsMoved() bool {
	return b.state.IsMoved()
}

// --- Helpers ---------------------------------------------------------------

var graphemeSetup sync.Once

func setupGraphemes() {
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
}

func isCharBoundary(text []byte, offset int) bool {
	if offset == len(text) {
		return true
	}
	if offset < 0 || offset > len(text) {
		return false
	}
	return utf8.RuneStart(text[offset])
}

func slice(text []byte, start, end int) (View, error) {
	if start < 0 || end < start || end > len(text) {
		return View{}, ErrIndexOutOfBounds
	}
	if !isCharBoundary(text, start) || !isCharBoundary(text, end) {
		return View{}, ErrInvalidBoundary
	}
	return View{text: text[start:end:end]}, nil
}

func decodeRunes(text []byte, yield func(rune) bool) {
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && n == 1 {
			ownership.Fatal("text.Chars", fmt.Errorf("%w at byte %d", ErrDecode, i))
		}
		if !yield(r) {
			return
		}
		i += n
	}
}
