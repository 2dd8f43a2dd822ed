package readbuf

import (
	"bytes"
	"io"
	"strings"
)

var _ io.Reader = (*BorrowedReader)(nil)

// BorrowedReader pairs a ReadBuffer with one concrete source so the pair can
// be handed to code expecting a plain io.Reader or a fill/consume-style
// buffered reader.
//
// The adapter owns neither side: it must not outlive the buffer or the
// source, and no other operation may touch the buffer while it is borrowed.
type BorrowedReader struct {
	buf *ReadBuffer
	r   io.Reader
}

// Borrow associates the buffer with the given source for the lifetime of the
// returned adapter.
func (b *ReadBuffer) Borrow(r io.Reader) *BorrowedReader {
	return &BorrowedReader{buf: b, r: r}
}

// Read implements io.Reader. A 0-byte read with no error from the underlying
// source is reported as io.EOF, matching io.Reader conventions.
func (br *BorrowedReader) Read(p []byte) (int, error) {
	n, err := br.buf.Read(br.r, p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// ReadExact fills p completely or fails with ErrUnexpectedEOF.
func (br *BorrowedReader) ReadExact(p []byte) error {
	return br.buf.ReadExact(br.r, p)
}

// FillBuf returns the resident bytes, refilling once when empty.
func (br *BorrowedReader) FillBuf() ([]byte, error) {
	return br.buf.FillBuf(br.r)
}

// Consume advances past n bytes previously returned by FillBuf.
func (br *BorrowedReader) Consume(n int) {
	br.buf.Consume(n)
}

// ReadUntil appends bytes through the first delim to dst.
func (br *BorrowedReader) ReadUntil(delim byte, dst *bytes.Buffer) (int, error) {
	return br.buf.ReadUntil(br.r, delim, dst)
}

// ReadToEnd appends all remaining bytes to dst.
func (br *BorrowedReader) ReadToEnd(dst *bytes.Buffer) (int, error) {
	return br.buf.ReadToEnd(br.r, dst)
}

// ReadToString appends all remaining bytes to dst as UTF-8 text.
func (br *BorrowedReader) ReadToString(dst *strings.Builder) (int, error) {
	return br.buf.ReadToString(br.r, dst)
}

// ReadLine appends one '\n'-terminated line to dst.
func (br *BorrowedReader) ReadLine(dst *strings.Builder) (int, error) {
	return br.buf.ReadLine(br.r, dst)
}
