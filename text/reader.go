package text

import "io"

// Reader returns a reader for the bytes of the buffer.
//
// The reader does not borrow the buffer; each call to Read checks that the
// buffer is still owned and continues at the byte offset where the previous
// call stopped.
func (b *Buffer) Reader() io.Reader {
	return &bufferReader{buf: b}
}

type bufferReader struct {
	buf    *Buffer
	cursor int
}

func (br *bufferReader) Read(p []byte) (n int, err error) {
	release := br.buf.state.Share("text.Reader.Read")
	defer release()
	if br.cursor >= len(br.buf.text) {
		return 0, io.EOF
	}
	n = copy(p, br.buf.text[br.cursor:])
	br.cursor += n
	return n, nil
}
