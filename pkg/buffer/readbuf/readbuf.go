package readbuf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	gberrors "github.com/vnykmshr/gobuf/pkg/common/errors"
	"github.com/vnykmshr/gobuf/pkg/common/utf8x"
	"github.com/vnykmshr/gobuf/pkg/common/validation"
)

const (
	// MinSize is the smallest supported buffer capacity.
	MinSize = 16

	// DefaultSize is the capacity used by Default.
	DefaultSize = 16 * 1024
)

// utf8HoldBack is the number of trailing bytes withheld from incremental
// decoding; a multi-byte sequence is at most 4 bytes long, so a sequence
// starting earlier than this is guaranteed to be complete in the buffer.
const utf8HoldBack = 4

// ReadBuffer is a fixed-capacity read buffer that does not own the stream it
// reads from. Every operation that may refill the buffer takes the source as
// an explicit io.Reader argument, so one ReadBuffer can be reused across
// streams and the caller controls the stream's lifetime.
//
// The buffer holds bytes in buf[readCount:fillCount]; bytes before readCount
// were already handed out and are reclaimed by Compact, bytes after fillCount
// are free capacity. A ReadBuffer is not safe for concurrent use; wrap access
// in your own lock when sharing.
type ReadBuffer struct {
	buf       []byte
	readCount int
	fillCount int
}

// New creates a ReadBuffer with the given capacity.
// It panics if size is below MinSize; capacity is a construction-time
// contract, not a runtime condition. Use NewSafe to validate instead.
func New(size int) *ReadBuffer {
	b, err := NewSafe(size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewSafe creates a ReadBuffer with the given capacity, returning a
// ValidationError instead of panicking when size is below MinSize.
func NewSafe(size int) (*ReadBuffer, error) {
	if err := validation.ValidateMinCapacity("readbuf", "size", size, MinSize); err != nil {
		return nil, err
	}
	return &ReadBuffer{buf: make([]byte, size)}, nil
}

// Default creates a ReadBuffer with DefaultSize capacity.
func Default() *ReadBuffer {
	return &ReadBuffer{buf: make([]byte, DefaultSize)}
}

// Size returns the fixed capacity of the internal buffer.
func (b *ReadBuffer) Size() int {
	return len(b.buf)
}

// Available returns the number of unread bytes resident in the buffer.
func (b *ReadBuffer) Available() int {
	return b.fillCount - b.readCount
}

// ReadCount returns the read cursor position: how many bytes at the start of
// the internal buffer were already consumed. Compact resets this to 0.
func (b *ReadBuffer) ReadCount() int {
	return b.readCount
}

// FillCount returns the fill cursor position: how many bytes of the internal
// buffer hold (or held) fetched data.
func (b *ReadBuffer) FillCount() int {
	return b.fillCount
}

// FreeSpace returns the number of bytes at the end of the buffer that can be
// filled without compacting. Already-consumed bytes at the start of the
// buffer do not count; call Compact to reclaim those first.
func (b *ReadBuffer) FreeSpace() int {
	return len(b.buf) - b.fillCount
}

// InternalBuffer returns the resident, unread portion of the internal buffer.
// The next read serves the first byte of the returned slice. The slice aliases
// the buffer: writes through it change what subsequent reads return, and it is
// invalidated by any operation that moves the cursors.
func (b *ReadBuffer) InternalBuffer() []byte {
	return b.buf[b.readCount:b.fillCount]
}

// Compact discards already-consumed bytes and moves the resident bytes to the
// start of the buffer. After Compact the read cursor is always 0. Calling it
// again without intervening reads is a no-op.
func (b *ReadBuffer) Compact() {
	if b.readCount > 0 {
		if b.readCount < b.fillCount {
			copy(b.buf, b.buf[b.readCount:b.fillCount])
		}
		b.fillCount -= b.readCount
		b.readCount = 0
	}
}

// feed compacts the buffer and performs exactly one read into the free space.
// It returns false when the source is exhausted. io.EOF is normalized into
// the false return; any other error is surfaced unchanged, after retaining
// bytes that arrived alongside it.
func (b *ReadBuffer) feed(r io.Reader) (bool, error) {
	b.Compact()

	n, err := r.Read(b.buf[b.fillCount:])
	b.fillCount += n
	if err == io.EOF {
		return n > 0, nil
	}
	if err != nil {
		return n > 0, err
	}
	return n > 0, nil
}

// EnsureReadable returns true if at least one byte can be read. When the
// buffer is empty it performs one read against the source; the fetched bytes
// stay resident for the next read operation.
func (b *ReadBuffer) EnsureReadable(r io.Reader) (bool, error) {
	if b.Available() > 0 {
		return true, nil
	}
	return b.feed(r)
}

// ReadIntoInternalBuffer performs one read from the source directly into the
// buffer's free space, without compacting first. It returns the number of
// bytes read; 0 with a nil error means the source is exhausted.
//
// It panics when FreeSpace is 0, since no byte could possibly be appended.
func (b *ReadBuffer) ReadIntoInternalBuffer(r io.Reader) (int, error) {
	if b.FreeSpace() == 0 {
		panic("readbuf: internal buffer is full")
	}

	n, err := r.Read(b.buf[b.fillCount:])
	b.fillCount += n
	if err == io.EOF {
		return n, nil
	}
	return n, err
}

// CopyIntoInternalBuffer appends the given bytes to the buffer's free space
// so a later read picks them up. It does not compact; call Compact first if
// leading space needs reclaiming.
//
// It panics when the bytes do not fit, without modifying the buffer.
func (b *ReadBuffer) CopyIntoInternalBuffer(data []byte) {
	if space := b.FreeSpace(); space < len(data) {
		panic(fmt.Sprintf("readbuf: internal buffer can only hold %d more bytes, cannot fit %d", space, len(data)))
	}

	copy(b.buf[b.fillCount:], data)
	b.fillCount += len(data)
}

// Skip discards n resident bytes without copying them out.
// It panics when n exceeds Available.
func (b *ReadBuffer) Skip(n int) {
	available := b.Available()
	if n > available {
		panic(fmt.Sprintf("readbuf: attempted to skip %d bytes, but only %d are available", n, available))
	}

	if n == available {
		b.readCount = 0
		b.fillCount = 0
		return
	}
	b.readCount += n
}

// TryRead copies as many resident bytes as possible into p without touching
// the source. It returns 0 when the buffer is empty or p has zero length.
func (b *ReadBuffer) TryRead(p []byte) int {
	if len(p) == 0 {
		return 0
	}

	available := b.Available()
	if available == 0 {
		return 0
	}

	if available >= len(p) {
		copy(p, b.buf[b.readCount:b.readCount+len(p)])
		b.readCount += len(p)
		return len(p)
	}

	copy(p[:available], b.buf[b.readCount:b.fillCount])
	b.readCount = 0
	b.fillCount = 0
	return available
}

// Read copies up to len(p) bytes into p, refilling from the source at most
// once and only when the buffer is empty. The return may be shorter than
// len(p) with no error; 0 with a nil error means the source is exhausted.
func (b *ReadBuffer) Read(r io.Reader, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	return b.TryRead(p), nil
}

// ReadExact fills p completely, refilling from the source as many times as
// needed. It fails with ErrUnexpectedEOF when the source ends first; bytes
// already copied into p are not rolled back, so treat a failure as fatal for
// that read.
func (b *ReadBuffer) ReadExact(r io.Reader, p []byte) error {
	if len(p) == 0 {
		return nil
	}

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return err
		}
		if !ok {
			return gberrors.ErrUnexpectedEOF
		}
	}

	for {
		available := b.Available()
		if available >= len(p) {
			copy(p, b.buf[b.readCount:b.readCount+len(p)])
			b.readCount += len(p)
			return nil
		}

		copy(p[:available], b.buf[b.readCount:b.readCount+available])
		b.readCount = 0
		b.fillCount = 0

		ok, err := b.feed(r)
		if err != nil {
			return err
		}
		if !ok {
			return gberrors.ErrUnexpectedEOF
		}
		p = p[available:]
	}
}

// ReadUntil appends bytes to dst up to and including the first occurrence of
// delim, refilling from the source as needed. It returns the number of bytes
// appended; 0 with a nil error means the source was already exhausted. When
// the source ends before delim is found, everything read so far has been
// appended and no error is reported.
func (b *ReadBuffer) ReadUntil(r io.Reader, delim byte, dst *bytes.Buffer) (int, error) {
	count := 0

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	for {
		if i := bytes.IndexByte(b.buf[b.readCount:b.fillCount], delim); i >= 0 {
			toPush := b.buf[b.readCount : b.readCount+i+1]
			dst.Write(toPush)
			b.readCount += len(toPush)
			return count + len(toPush), nil
		}

		toPush := b.buf[b.readCount:b.fillCount]
		dst.Write(toPush)
		count += len(toPush)
		b.readCount = 0
		b.fillCount = 0

		ok, err := b.feed(r)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
	}
}

// ReadUntilLimit behaves like ReadUntil but never appends more than limit
// bytes to dst. The source may deliver more than limit bytes; the excess
// stays resident for the next call. The delimiter search only covers bytes
// within the limit, so a delimiter past the clamp is left for a later call.
func (b *ReadBuffer) ReadUntilLimit(r io.Reader, delim byte, limit int, dst *bytes.Buffer) (int, error) {
	count := 0

	if limit == 0 {
		return 0, nil
	}

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	for {
		toPush := b.buf[b.readCount:b.fillCount]
		if count+len(toPush) > limit {
			toPush = toPush[:limit-count]
		}

		if i := bytes.IndexByte(toPush, delim); i >= 0 {
			toPush = toPush[:i+1]
			dst.Write(toPush)
			b.readCount += len(toPush)
			return count + len(toPush), nil
		}

		dst.Write(toPush)
		count += len(toPush)
		b.readCount += len(toPush)
		if count >= limit {
			return count, nil
		}

		ok, err := b.feed(r)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
	}
}

// ReadToEnd appends all remaining bytes, resident first and then from the
// source, to dst until the source is exhausted. It returns the total number
// of bytes appended.
func (b *ReadBuffer) ReadToEnd(r io.Reader, dst *bytes.Buffer) (int, error) {
	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	count := 0
	for {
		toPush := b.buf[b.readCount:b.fillCount]
		dst.Write(toPush)
		count += len(toPush)
		b.readCount = 0
		b.fillCount = 0

		ok, err := b.feed(r)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
	}
}

// ReadToString appends all remaining bytes to dst as UTF-8 text. While the
// source still produces data, the trailing 4 bytes of each pass are withheld
// from decoding since a multi-byte sequence may straddle the next refill; at
// end-of-stream the held-back tail is validated exhaustively.
//
// On ErrInvalidUTF8 no bytes are discarded: everything not yet appended to
// dst stays resident and can be retrieved with TryRead or Read. It returns
// the total number of bytes decoded and appended.
func (b *ReadBuffer) ReadToString(r io.Reader, dst *strings.Builder) (int, error) {
	count := 0

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	for {
		toPush := b.buf[b.readCount:b.fillCount]
		idx := 0
		for idx+utf8HoldBack < len(toPush) {
			n, err := utf8x.Next(toPush, idx)
			if err != nil {
				return count, err
			}
			idx += n
		}

		if idx > 0 {
			run := toPush[:idx]
			if !utf8.Valid(run) {
				return count, gberrors.ErrInvalidUTF8
			}
			dst.Write(run)
			count += idx
			b.readCount += idx // feed will compact the rest
		}

		ok, err := b.feed(r)
		if err != nil {
			return count, err
		}
		if ok {
			continue
		}

		// End of stream: the held-back tail (at most 4 bytes) must now form
		// complete sequences on its own.
		tail := b.buf[b.readCount:b.fillCount]
		if len(tail) == 0 {
			return count, nil
		}
		if !utf8x.ValidTail(tail) || !utf8.Valid(tail) {
			return count, gberrors.ErrInvalidUTF8
		}
		dst.Write(tail)
		count += len(tail)
		b.readCount = 0
		b.fillCount = 0
		return count, nil
	}
}

// ReadLine appends text to dst up to and including the first '\n', applying
// the same withhold-tail UTF-8 rule as ReadToString. A run ending at '\n' is
// always a safe decode boundary because '\n' can never be a continuation
// byte. It returns 0 with a nil error at end-of-stream with nothing read.
//
// Unlike bufio-style line readers, no bytes are ever dropped on malformed
// UTF-8: dst may hold the valid prefix, and every undecoded byte stays
// resident for a later raw read. Check Available to see how many.
func (b *ReadBuffer) ReadLine(r io.Reader, dst *strings.Builder) (int, error) {
	count := 0

	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
	}

	for {
		if i := bytes.IndexByte(b.buf[b.readCount:b.fillCount], '\n'); i >= 0 {
			toPush := b.buf[b.readCount : b.readCount+i+1]

			// The run ends in '\n', which can never be a continuation byte,
			// so Next stays in bounds without a lookahead guard.
			idx := 0
			for idx < len(toPush) {
				n, err := utf8x.Next(toPush, idx)
				if err != nil {
					return count, err
				}
				idx += n
			}

			if !utf8.Valid(toPush) {
				return count, gberrors.ErrInvalidUTF8
			}
			dst.Write(toPush)
			b.readCount += len(toPush)
			return count + len(toPush), nil
		}

		toPush := b.buf[b.readCount:b.fillCount]
		idx := 0
		for idx+utf8HoldBack < len(toPush) {
			n, err := utf8x.Next(toPush, idx)
			if err != nil {
				return count, err
			}
			idx += n
		}

		if idx > 0 {
			run := toPush[:idx]
			if !utf8.Valid(run) {
				return count, gberrors.ErrInvalidUTF8
			}
			dst.Write(run)
			count += idx
			b.readCount += idx
		}

		ok, err := b.feed(r)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
	}
}

// FillBuf returns the resident bytes, refilling from the source once when
// the buffer is empty. An empty slice with a nil error means the source is
// exhausted. Pair it with Consume to advance past inspected bytes.
func (b *ReadBuffer) FillBuf(r io.Reader) ([]byte, error) {
	if b.Available() == 0 {
		ok, err := b.feed(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []byte{}, nil
		}
	}

	return b.buf[b.readCount:b.fillCount], nil
}

// Consume advances the read cursor by n, marking bytes returned by FillBuf
// as read. It panics when n would move the cursor past the fill cursor.
func (b *ReadBuffer) Consume(n int) {
	if b.readCount+n > b.fillCount {
		panic(fmt.Sprintf("readbuf: cannot consume %d bytes, only %d are available", n, b.Available()))
	}
	b.readCount += n
}
