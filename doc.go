/*
Package gobuf provides buffered byte-stream I/O that does not own the
underlying stream.

Unlike bufio, the buffers here never hold a reference to the source or sink:
every operation takes the stream as an explicit argument. One buffer can be
reused across multiple logical streams, and the caller stays in control of
the stream's lifetime and of any locking around shared use.

Buffering (pkg/buffer):
  - readbuf: Fixed-capacity read buffer with delimiter scanning and
    UTF-8-safe string decoding across arbitrary chunk boundaries
  - writebuf: Fixed-capacity write buffer with partial-write recovery

Example usage:

	import (
		"github.com/vnykmshr/gobuf/pkg/buffer/readbuf"
		"github.com/vnykmshr/gobuf/pkg/buffer/writebuf"
	)

	rb := readbuf.Default() // 16KB capacity
	wb := writebuf.Default()

	n, err := rb.Read(conn, p)       // read through the buffer
	_, err = wb.Write(conn, data)    // write through the buffer
	err = wb.Flush(conn)             // drain before the buffer goes away

Both engines expose Borrow to pin a buffer to one stream for the duration of
a scope, yielding a plain io.Reader or io.Writer for code that expects one.
*/
package gobuf
