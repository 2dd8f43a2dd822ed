package writebuf

import (
	"io"

	"github.com/vnykmshr/gobuf/pkg/common/validation"
)

const (
	// MinSize is the smallest supported buffer capacity.
	MinSize = 16

	// DefaultSize is the capacity used by Default.
	DefaultSize = 16 * 1024
)

// Flusher is the optional flush capability of a sink. Flush forces buffered
// data in the sink itself (not in the WriteBuffer) to reach its destination.
// bufio.Writer and similar types satisfy it.
type Flusher interface {
	Flush() error
}

// WriteBuffer is a fixed-capacity write buffer that does not own the sink it
// writes to. Every operation that may drain the buffer takes the sink as an
// explicit io.Writer argument, so one WriteBuffer can be reused across
// streams and the caller controls the sink's lifetime.
//
// buf[:fillCount] holds bytes accepted from callers but not yet handed to a
// sink. The buffer is never drained implicitly on destruction: call Flush
// before letting it go, or the pending bytes are lost. A WriteBuffer is not
// safe for concurrent use.
type WriteBuffer struct {
	buf       []byte
	fillCount int
}

// New creates a WriteBuffer with the given capacity.
// It panics if size is below MinSize; capacity is a construction-time
// contract, not a runtime condition. Use NewSafe to validate instead.
func New(size int) *WriteBuffer {
	b, err := NewSafe(size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewSafe creates a WriteBuffer with the given capacity, returning a
// ValidationError instead of panicking when size is below MinSize.
func NewSafe(size int) (*WriteBuffer, error) {
	if err := validation.ValidateMinCapacity("writebuf", "size", size, MinSize); err != nil {
		return nil, err
	}
	return &WriteBuffer{buf: make([]byte, size)}, nil
}

// Default creates a WriteBuffer with DefaultSize capacity.
func Default() *WriteBuffer {
	return &WriteBuffer{buf: make([]byte, DefaultSize)}
}

// Size returns the fixed capacity of the internal buffer.
func (b *WriteBuffer) Size() int {
	return len(b.buf)
}

// Available returns the number of bytes that can still be buffered before the
// next write has to push to the sink.
func (b *WriteBuffer) Available() int {
	return len(b.buf) - b.fillCount
}

// Flushable returns the number of buffered bytes awaiting a push to the sink.
func (b *WriteBuffer) Flushable() int {
	return b.fillCount
}

// InternalBuffer returns the buffered, not-yet-pushed bytes. The slice
// aliases the buffer: writes through it change what a later push sends, and
// it is invalidated by any write or flush operation.
func (b *WriteBuffer) InternalBuffer() []byte {
	return b.buf[:b.fillCount]
}

// push drains the buffered bytes into the sink, calling Write as many times
// as needed. When a Write call fails after part of the buffer was sent, the
// unsent remainder is moved to the front so no byte is lost or replayed, and
// the error is surfaced unchanged.
func (b *WriteBuffer) push(w io.Writer) error {
	if b.fillCount == 0 {
		return nil
	}

	count := 0
	for count < b.fillCount {
		n, err := w.Write(b.buf[count:b.fillCount])
		count += n
		if err != nil {
			if count == 0 {
				return err
			}
			copy(b.buf, b.buf[count:b.fillCount])
			b.fillCount -= count
			return err
		}
	}

	b.fillCount = 0
	return nil
}

// Flush pushes all buffered bytes to the sink, then invokes the sink's own
// Flush when it implements Flusher. Either error is propagated unchanged.
func (b *WriteBuffer) Flush(w io.Writer) error {
	if err := b.push(w); err != nil {
		return err
	}
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// TryWrite copies as much of p as fits into the remaining capacity without
// touching the sink, returning the number of bytes copied. A return shorter
// than len(p) means the buffer is now completely full.
func (b *WriteBuffer) TryWrite(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	available := b.Available()
	if available == 0 {
		return 0
	}

	if available < len(p) {
		copy(b.buf[b.fillCount:], p[:available])
		b.fillCount += available
		return available
	}

	copy(b.buf[b.fillCount:b.fillCount+len(p)], p)
	b.fillCount += len(p)
	return len(p)
}

// Write buffers as much of p as possible, pushing to the sink at most once
// and only when the buffer is already full. A short return is normal, not an
// error; at least one byte is accepted on success.
func (b *WriteBuffer) Write(w io.Writer, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	available := b.Available()
	if available == 0 {
		if err := b.push(w); err != nil {
			return 0, err
		}
		available = len(b.buf)
	}

	if available < len(p) {
		copy(b.buf[b.fillCount:], p[:available])
		b.fillCount += available
		return available, nil
	}

	copy(b.buf[b.fillCount:b.fillCount+len(p)], p)
	b.fillCount += len(p)
	return len(p), nil
}

// WriteAll buffers every byte of p, pushing to the sink whenever the buffer
// fills. It returns only once all of p is either resident in the buffer or
// handed to the sink, or an error occurs.
func (b *WriteBuffer) WriteAll(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}

	count := 0
	for {
		rem := len(p) - count
		available := b.Available()

		if available == 0 {
			if err := b.push(w); err != nil {
				return err
			}
			available = len(b.buf)
		}

		if available < rem {
			copy(b.buf[b.fillCount:], p[count:count+available])
			b.fillCount += available
			count += available
			continue
		}

		copy(b.buf[b.fillCount:b.fillCount+rem], p[count:])
		b.fillCount += rem
		return nil
	}
}
