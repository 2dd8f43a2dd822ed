/*
Package readbuf provides a fixed-capacity read buffer that does not own the
stream it reads from.

Every operation takes the source as an explicit io.Reader argument. The
buffer only stores bytes and cursor positions, so a single ReadBuffer can be
reused across connections, and the caller decides how the stream's lifetime
and locking work.

Basic usage:

	rb := readbuf.Default() // 16KB; readbuf.New(n) for a custom capacity

	p := make([]byte, 512)
	n, err := rb.Read(conn, p) // serves resident bytes, refills at most once

Exact-length and delimiter reads:

	header := make([]byte, 12)
	err := rb.ReadExact(conn, header) // fails with ErrUnexpectedEOF when short

	var frame bytes.Buffer
	n, err := rb.ReadUntil(conn, 0x00, &frame)            // includes the delimiter
	n, err = rb.ReadUntilLimit(conn, 0x00, 4096, &frame)  // capped at 4096 bytes

Text decoding is UTF-8 safe across arbitrary chunk boundaries: the trailing
up-to-4 bytes of every refill are withheld until the next refill (or
end-of-stream) proves the final sequence complete, so multi-byte characters
split across reads are never mangled and malformed input never discards
bytes:

	var line strings.Builder
	n, err := rb.ReadLine(conn, &line) // includes the '\n'

Peek-and-advance, for parsers:

	p, err := rb.FillBuf(conn)
	// inspect p ...
	rb.Consume(len(header))

Borrow pins the buffer to one stream and yields a plain io.Reader:

	dec := json.NewDecoder(rb.Borrow(conn))

Capacity is fixed at construction (minimum 16 bytes) and never grows.
Misuse of the direct-manipulation operations (CopyIntoInternalBuffer past
free space, Consume or Skip past resident data) panics: these are programmer
errors, not runtime conditions. A ReadBuffer is not safe for concurrent use.
*/
package readbuf
