package walkthrough

import (
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/collections/assoc"
	"github.com/npillmayer/collections/cell"
	"github.com/npillmayer/collections/seq"
	"github.com/npillmayer/collections/text"
)

// Run prints the complete walkthrough to w. If config is nil, DefaultConfig
// is used. Run returns the first error encountered writing to w.
func Run(w io.Writer, config *Config) error {
	p := newPrinter(w, config)
	p.linef("Hello, World!")
	sequences(p)
	cells(p)
	buffers(p)
	maps(p)
	return p.err
}

func sequences(p *printer) {
	p.section("Sequences")
	empty := seq.New[int32]()
	p.linef("A new sequence has length %d", empty.Len())
	literal := seq.Of(1, 2, 3)
	p.linef("A literal sequence is %v", literal)

	v3 := seq.New[int]()
	for i := 3; i <= 7; i++ {
		v3.Append(i)
	}
	p.linef("After appending, the sequence is %v (length %d, capacity %d)", v3, v3.Len(), v3.Cap())

	scoped := seq.Of(1, 2, 3, 4)
	scoped.Drop()
	p.linef("A dropped sequence is %v", scoped)

	v := seq.Of(1, 2, 3, 4, 5)
	third := v.Index(2)
	p.linef("The third element of v is %d!", third)
	if third, ok := v.Get(2); ok {
		p.linef("The third element of v is %d!", third)
	} else {
		p.linef("There is no third element in v")
	}
	if _, ok := v.Get(100); !ok {
		p.linef("There is no element at index 100 in v")
	}

	first, _ := v.Borrow(0)
	p.linef("While first = %d is borrowed, v cannot grow", first.Value())
	first.Release()
	v.Append(6)
	p.linef("After releasing first, v has grown to %v", v)

	for i := range v.All() {
		p.linef("%d", i)
	}
	v4 := seq.Of(100, 32, 57)
	for _, i := range v4.Mut() {
		*i += 50
		p.linef("%d", *i)
	}
}

func cells(p *printer) {
	p.section("Tagged cells")
	row := cell.NewRow(cell.Int(3), cell.Text("blue"), cell.Float(10.12))
	for i, c := range row.Enumerate() {
		desc := cell.Match(c,
			func(n cell.Int) string { return "an integer " + n.String() },
			func(f cell.Float) string { return "a float " + f.String() },
			func(t cell.Text) string { return "a text '" + t.String() + "'" },
		)
		p.linef("Cell %d is %s", i+1, desc)
	}
}

func buffers(p *printer) {
	p.section("Text buffers")
	s1 := text.New()
	data := "initial data"
	s1.Drop()
	s1 = text.FromLiteral(data)
	p.linef("s1 is now '%s'", s1)

	s1 = text.FromLiteral("foo")
	s2 := "bar"
	s1.AppendText(s2)
	p.linef("s1 is now '%s'", s1)
	p.linef("s2 is now '%s'", s2)

	s3 := text.FromLiteral("Hello, ")
	s4 := text.FromLiteral("world!")
	s5 := text.Concat(s3, s4) // s3 has been moved
	p.linef("s5 is now '%s'", s5)
	p.linef("s5 has %d bytes, s4 is still '%s'", s5.Len(), s4)

	s6 := text.FromLiteral("tic")
	s7 := text.FromLiteral("tac")
	s8 := text.FromLiteral("toe")
	s := text.Format("%s-%s-%s", s6, s7, s8)
	p.linef("s is now '%s'", s)

	hello := text.FromLiteral("Здравствуйте")
	s9 := hello.MustSlice(0, 4)
	p.linef("The first four bytes of 'hello' are encoded as '%s'", s9)
	p.linef("'hello' has %d bytes, but only %d chars", hello.Len(), hello.CharCount())
	if _, err := hello.Slice(0, 3); err != nil {
		p.linef("The first three bytes of 'hello' cannot be sliced: %v", err)
	}

	namaste := text.FromLiteral("नमस्ते")
	charIdx := 0
	for c := range namaste.Chars() {
		charIdx++
		p.linef("Char %d is %c", charIdx, c)
	}
	byteIdx := 0
	for b := range namaste.Bytes() {
		byteIdx++
		p.linef("Byte %d is %d", byteIdx, b)
	}
	gIdx := 0
	for g := range namaste.Graphemes() {
		gIdx++
		p.linef("Grapheme %d is %s", gIdx, g)
	}
}

func maps(p *printer) {
	p.section("Maps")
	scores := assoc.New[string, int]()
	scores.Insert("Blue", 10)
	scores.Insert("Yellow", 50)
	if score, ok := scores.Get("Blue"); ok {
		p.linef("The score of Blue is %d", score)
	}
	for _, k := range slices.Sorted(scores.Keys()) {
		s, _ := scores.Get(k)
		p.linef("%s: %d", k, s)
	}
	if prev, ok := scores.Insert("Blue", 25); ok {
		p.linef("Blue has been overwritten, previous score was %d", prev)
	}
	scores.EntryOrInsert("Red", 50)
	scores.EntryOrInsert("Blue", 50)
	for _, k := range slices.Sorted(scores.Keys()) {
		s, _ := scores.Get(k)
		p.linef("%s: %d", k, s)
	}

	fieldName := text.FromLiteral("Favorite color")
	fieldValue := text.FromLiteral("Blue")
	prefs := assoc.New[string, string]()
	prefs.Insert(fieldName.String(), fieldValue.String())
	fieldName.Drop() // the map keeps what it has been given
	fieldValue.Drop()
	if color, ok := prefs.Get("Favorite color"); ok {
		p.linef("Favorite color is %s", color)
	}

	counts := assoc.New[string, int]()
	for _, word := range strings.Fields("hello world wonderful world") {
		count := counts.EntryOrInsert(word, 0)
		*count++
	}
	for _, k := range slices.Sorted(counts.Keys()) {
		c, _ := counts.Get(k)
		p.linef("%q occurs %d times", k, c)
	}
}
