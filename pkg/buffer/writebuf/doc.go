/*
Package writebuf provides a fixed-capacity write buffer that does not own the
sink it writes to.

Every operation takes the sink as an explicit io.Writer argument. The buffer
only stores pending bytes and a fill cursor, so a single WriteBuffer can be
reused across connections, and the caller decides how the sink's lifetime and
locking work.

Basic usage:

	wb := writebuf.Default() // 16KB; writebuf.New(n) for a custom capacity

	n, err := wb.Write(conn, data) // buffers; pushes at most once when full
	err = wb.WriteAll(conn, data)  // buffers everything, pushing as needed
	err = wb.Flush(conn)           // drain before the buffer goes away

Short writes from Write are normal: the buffer accepts what fits and the
caller continues with the remainder. WriteAll loops for you.

When a sink's Write call fails after accepting part of the data, the unsent
remainder stays buffered in order; a later Flush retries exactly the bytes
the sink has not seen. Nothing is replayed and nothing is dropped.

Flush also invokes the sink's own Flush when it implements writebuf.Flusher
(bufio.Writer does, for example).

Borrow pins the buffer to one sink and yields a plain io.Writer:

	fmt.Fprintf(wb.Borrow(conn), "HELO %s\r\n", host)

The buffer is never drained implicitly: letting a WriteBuffer go out of
scope with pending bytes loses them. Capacity is fixed at construction
(minimum 16 bytes). A WriteBuffer is not safe for concurrent use.
*/
package writebuf
