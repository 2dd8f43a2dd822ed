package writebuf

import (
	"io"
)

var _ io.Writer = (*BorrowedWriter)(nil)
var _ Flusher = (*BorrowedWriter)(nil)

// BorrowedWriter pairs a WriteBuffer with one concrete sink so the pair can
// be handed to code expecting a plain io.Writer.
//
// The adapter owns neither side: it must not outlive the buffer or the sink,
// and no other operation may touch the buffer while it is borrowed.
type BorrowedWriter struct {
	buf *WriteBuffer
	w   io.Writer
}

// Borrow associates the buffer with the given sink for the lifetime of the
// returned adapter.
func (b *WriteBuffer) Borrow(w io.Writer) *BorrowedWriter {
	return &BorrowedWriter{buf: b, w: w}
}

// Write implements io.Writer. Unlike WriteBuffer.Write it never returns a
// short count: all of p is accepted (buffered or pushed) unless an error
// occurs, per the io.Writer contract.
func (bw *BorrowedWriter) Write(p []byte) (int, error) {
	if err := bw.buf.WriteAll(bw.w, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush pushes buffered bytes to the sink and flushes the sink itself.
func (bw *BorrowedWriter) Flush() error {
	return bw.buf.Flush(bw.w)
}
