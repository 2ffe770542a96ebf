package text

import (
	"unicode/utf8"
)

// CharCursor navigates a buffer by rune positions.
//
// A cursor borrows its buffer for reading until Close is called. Movement is
// in rune steps, while the position is held as a byte offset.
type CharCursor struct {
	buf     *Buffer
	runes   int
	byteOff int
	release func()
}

// NewCharCursor creates a rune-aware cursor at the start of the buffer.
func (b *Buffer) NewCharCursor() *CharCursor {
	return &CharCursor{
		buf:     b,
		release: b.state.Share("text.NewCharCursor"),
	}
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() int {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// RuneOffset returns the number of runes before the cursor.
func (cc *CharCursor) RuneOffset() int {
	if cc == nil {
		return 0
	}
	return cc.runes
}

// Next returns the rune at the current cursor position and advances by one rune.
//
// If the cursor is at end of text or has been closed, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil || cc.buf == nil {
		return 0, false
	}
	text := cc.buf.text
	if cc.byteOff >= len(text) {
		return 0, false
	}
	r, n := utf8.DecodeRune(text[cc.byteOff:])
	if r == utf8.RuneError && n == 1 {
		return 0, false
	}
	cc.byteOff += n
	cc.runes++
	return r, true
}

// Prev returns the rune before the current cursor position and moves back by one rune.
//
// If the cursor is at start of text or has been closed, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil || cc.buf == nil || cc.byteOff == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRune(cc.buf.text[:cc.byteOff])
	if r == utf8.RuneError && n == 1 {
		return 0, false
	}
	cc.byteOff -= n
	cc.runes--
	return r, true
}

// Close gives the borrow of the buffer back. The cursor is unusable afterwards.
func (cc *CharCursor) Close() {
	if cc == nil || cc.buf == nil {
		return
	}
	cc.release()
	cc.buf = nil
}
