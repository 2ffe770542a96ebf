package text

import (
	"errors"
	"io"
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/collections/ownership"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewBufferIsEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := New()
	if !b.IsEmpty() || b.String() != "" {
		t.Fatalf("expected empty buffer, have %q", b.String())
	}
	if b.Summary() != (Summary{}) {
		t.Errorf("expected zero summary, have %v", b.Summary())
	}
}

func TestAppendText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	s1 := FromLiteral("foo")
	s2 := "bar"
	s1.AppendText(s2)
	if s1.String() != "foobar" {
		t.Errorf("expected 'foobar', have %q", s1.String())
	}
	s1.AppendRune('!')
	if s1.String() != "foobar!" || s1.Len() != 7 {
		t.Errorf("expected 'foobar!' of length 7, have %q (%d)", s1.String(), s1.Len())
	}
	err := ownership.Recover(func() { s1.AppendText(string([]byte{0xff})) })
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if s1.String() != "foobar!" {
		t.Errorf("refused append must not change buffer, have %q", s1.String())
	}
}

func TestConcatMovesFirstOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	s3 := FromLiteral("Hello, ")
	s4 := FromLiteral("world!")
	n3, n4 := s3.Len(), s4.Len()
	s5 := Concat(s3, s4)
	if s5.String() != "Hello, world!" {
		t.Errorf("expected 'Hello, world!', have %q", s5.String())
	}
	if s5.Len() != n3+n4 {
		t.Errorf("expected byte length %d, have %d", n3+n4, s5.Len())
	}
	if !s3.IsMoved() {
		t.Fatalf("expected first operand to be moved")
	}
	if err := ownership.Recover(func() { _ = s3.String() }); !errors.Is(err, ownership.ErrUseAfterMove) {
		t.Errorf("expected ErrUseAfterMove for moved operand, got %v", err)
	}
	if s4.String() != "world!" {
		t.Errorf("second operand must stay usable, have %q", s4.String())
	}
}

func TestConcatWithItselfIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	s := FromLiteral("tic")
	err := ownership.Recover(func() { Concat(s, s) })
	if !errors.Is(err, ownership.ErrBorrowConflict) {
		t.Fatalf("expected ErrBorrowConflict, got %v", err)
	}
	if s.String() != "tic" {
		t.Errorf("buffer must stay owned after refused concat, have %q", s.String())
	}
}

func TestFormatDoesNotConsume(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	s6, s7, s8 := FromLiteral("tic"), FromLiteral("tac"), FromLiteral("toe")
	s := Format("%s-%s-%s", s6, s7, s8)
	if s.String() != "tic-tac-toe" {
		t.Errorf("expected 'tic-tac-toe', have %q", s.String())
	}
	if s6.IsMoved() || s7.IsMoved() || s8.IsMoved() {
		t.Errorf("Format must not move its arguments")
	}
	s6.Drop()
	if err := ownership.Recover(func() { Format("%s", s6) }); !errors.Is(err, ownership.ErrUseAfterMove) {
		t.Errorf("expected ErrUseAfterMove formatting a dropped buffer, got %v", err)
	}
}

func TestSliceOnCharBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	hello := FromLiteral("Здравствуйте")
	v, err := hello.Slice(0, 4)
	if err != nil {
		t.Fatalf("unexpected Slice error: %v", err)
	}
	if v.String() != "Зд" {
		t.Errorf("expected 'Зд', have %q", v.String())
	}
	if _, err = hello.Slice(0, 3); !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("expected ErrInvalidBoundary for [0,3), got %v", err)
	}
	if _, err = hello.Slice(0, 100); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for [0,100), got %v", err)
	}
	err = ownership.Recover(func() { hello.MustSlice(0, 3) })
	if !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("expected fatal ErrInvalidBoundary from MustSlice, got %v", err)
	}
	if !hello.IsCharBoundary(2) || hello.IsCharBoundary(1) || !hello.IsCharBoundary(hello.Len()) {
		t.Errorf("unexpected boundary behavior")
	}
	sub, err := v.Slice(2, 4)
	if err != nil || sub.String() != "д" {
		t.Errorf("expected sub-view 'д', have %q (%v)", sub.String(), err)
	}
}

func TestViewKeepsItsBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	b := FromLiteral("abc")
	v := b.View()
	b.AppendText("def")
	if v.String() != "abc" || b.String() != "abcdef" {
		t.Errorf("unexpected view %q / buffer %q", v.String(), b.String())
	}
	owned := v.ToBuffer()
	owned.AppendText("!")
	if v.String() != "abc" || owned.String() != "abc!" {
		t.Errorf("ToBuffer must copy, have view %q, buffer %q", v.String(), owned.String())
	}
}

func TestCharsAndBytesDiffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	b := FromLiteral("नमस्ते")
	chars := slices.Collect(b.Chars())
	bytes := slices.Collect(b.Bytes())
	if len(chars) != 6 {
		t.Errorf("expected 6 chars, have %d", len(chars))
	}
	if len(bytes) <= 6 || len(bytes) != b.Len() {
		t.Errorf("expected %d bytes (more than 6), have %d", b.Len(), len(bytes))
	}
	if b.CharCount() != len(chars) {
		t.Errorf("CharCount %d differs from iteration %d", b.CharCount(), len(chars))
	}
	if string(chars) != b.String() {
		t.Errorf("decoded chars do not reproduce text: %q", string(chars))
	}
	// restartable
	if n := len(slices.Collect(b.Chars())); n != 6 {
		t.Errorf("second iteration yields %d chars", n)
	}
}

func TestGraphemesAndWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	latin := FromLiteral("Hello")
	if g := slices.Collect(latin.Graphemes()); len(g) != 5 {
		t.Errorf("expected 5 graphemes for 'Hello', have %v", g)
	}
	if w := latin.Width(nil); w != 5 {
		t.Errorf("expected width 5 for 'Hello', have %d", w)
	}
	hindi := FromLiteral("नमस्ते")
	g := slices.Collect(hindi.Graphemes())
	if len(g) == 0 || len(g) >= hindi.CharCount() {
		t.Errorf("expected fewer graphemes than chars, have %d graphemes: %q", len(g), g)
	}
	if New().Width(nil) != 0 {
		t.Errorf("expected empty width 0")
	}
}

func TestSummaryCountsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	b := FromLiteral("ab\nсд\n")
	s := b.Summary()
	if s.Bytes != 8 || s.Chars != 6 || s.Lines != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.Add(s) != (Summary{Bytes: 16, Chars: 12, Lines: 4}) {
		t.Errorf("unexpected summary sum %+v", s.Add(s))
	}
}

func TestReaderAndCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	b := FromLiteral("a😀b")
	data, err := io.ReadAll(b.Reader())
	if err != nil || string(data) != "a😀b" {
		t.Fatalf("unexpected reader result %q (%v)", data, err)
	}
	cc := b.NewCharCursor()
	var got []rune
	for r, ok := cc.Next(); ok; r, ok = cc.Next() {
		got = append(got, r)
	}
	if string(got) != "a😀b" || cc.RuneOffset() != 3 || cc.ByteOffset() != b.Len() {
		t.Errorf("unexpected forward scan %q at %d/%d", string(got), cc.RuneOffset(), cc.ByteOffset())
	}
	if r, ok := cc.Prev(); !ok || r != 'b' {
		t.Errorf("expected 'b' going back, have %q", r)
	}
	if r, ok := cc.Prev(); !ok || r != '😀' || cc.ByteOffset() != 1 {
		t.Errorf("expected emoji going back, have %q at %d", r, cc.ByteOffset())
	}
	err = ownership.Recover(func() { b.AppendText("x") })
	if !errors.Is(err, ownership.ErrBorrowConflict) {
		t.Errorf("expected open cursor to block append, got %v", err)
	}
	cc.Close()
	b.AppendText("x")
	if _, ok := cc.Next(); ok {
		t.Errorf("closed cursor must not move")
	}
}

func TestFromBytes(t *testing.T) {
	src := []byte("grüß")
	b, err := FromBytes(src)
	if err != nil {
		t.Fatalf("unexpected FromBytes error: %v", err)
	}
	src[0] = 'X'
	if b.String() != "grüß" {
		t.Errorf("buffer should not alias source bytes, have %q", b.String())
	}
	if _, err = FromBytes([]byte{'a', 0xc3}); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if utf8.RuneCountInString(b.String()) != b.CharCount() {
		t.Errorf("char count mismatch")
	}
}

func TestDecodeErrorIsFatal(t *testing.T) {
	v := View{text: []byte{'a', 0xff}}
	err := ownership.Recover(func() {
		for range v.Chars() {
		}
	})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
