package text

import "unicode/utf8"

// Summary aggregates text metrics of a buffer or view.
type Summary struct {
	Bytes int
	Chars int
	Lines int
}

func summarize(b []byte) Summary {
	s := Summary{Bytes: len(b), Chars: utf8.RuneCount(b)}
	for _, c := range b {
		if c == '\n' {
			s.Lines++
		}
	}
	return s
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}
