package text

import (
	"iter"
	"unicode/utf8"
)

// View is a read-only view over a range of a buffer's bytes.
//
// A View is a value type; the zero View is empty. A view keeps the bytes it
// has been created over, appending to the buffer afterwards does not change it.
type View struct {
	text []byte
}

// Len returns the view length in bytes.
func (v View) Len() int {
	return len(v.text)
}

// IsEmpty reports whether the view has no bytes.
func (v View) IsEmpty() bool {
	return len(v.text) == 0
}

// String returns the view text.
func (v View) String() string {
	return string(v.text)
}

// Bytes returns a copied byte slice of the view text.
func (v View) Bytes() []byte {
	return append([]byte(nil), v.text...)
}

// Summary returns aggregate metrics for this view.
func (v View) Summary() Summary {
	return summarize(v.text)
}

// CharCount returns the number of runes in the view.
func (v View) CharCount() int {
	return utf8.RuneCount(v.text)
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this view.
func (v View) IsCharBoundary(offset int) bool {
	return isCharBoundary(v.text, offset)
}

// Slice returns a sub-view [start,end) in view-local byte offsets.
func (v View) Slice(start, end int) (View, error) {
	return slice(v.text, start, end)
}

// Chars returns an iterator over the runes of the view.
func (v View) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		decodeRunes(v.text, yield)
	}
}

// ToBuffer copies the view into a new, owned buffer.
func (v View) ToBuffer() *Buffer {
	return &Buffer{text: v.Bytes()}
}
