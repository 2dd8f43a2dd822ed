package testutil

import (
	"bytes"
	"io"
)

// ChunkReader wraps a byte slice and delivers at most ChunkSize bytes per
// Read call, regardless of how much the caller asked for. It simulates a
// slow or fragmenting source (a network socket handing out small segments)
// so tests can split data at arbitrary boundaries.
type ChunkReader struct {
	data      []byte
	pos       int
	ChunkSize int
}

// NewChunkReader creates a ChunkReader over data delivering chunkSize bytes
// per call.
func NewChunkReader(data []byte, chunkSize int) *ChunkReader {
	return &ChunkReader{data: data, ChunkSize: chunkSize}
}

// Read implements io.Reader.
func (cr *ChunkReader) Read(p []byte) (int, error) {
	if cr.pos >= len(cr.data) {
		return 0, io.EOF
	}

	n := len(p)
	if n > cr.ChunkSize {
		n = cr.ChunkSize
	}
	if n > len(cr.data)-cr.pos {
		n = len(cr.data) - cr.pos
	}

	copy(p[:n], cr.data[cr.pos:cr.pos+n])
	cr.pos += n
	return n, nil
}

// ErrReader returns the given error on every Read call.
type ErrReader struct {
	Err error
}

// Read implements io.Reader.
func (er *ErrReader) Read([]byte) (int, error) {
	return 0, er.Err
}

// FlakyWriter accepts up to Accept bytes and then fails every Write with
// Err. A Write that straddles the boundary reports the bytes it accepted
// alongside the error, simulating a partial write failure.
type FlakyWriter struct {
	Buf    bytes.Buffer
	Accept int
	Err    error
}

// Write implements io.Writer.
func (fw *FlakyWriter) Write(p []byte) (int, error) {
	remaining := fw.Accept - fw.Buf.Len()
	if remaining <= 0 {
		return 0, fw.Err
	}
	if len(p) <= remaining {
		return fw.Buf.Write(p)
	}
	n, _ := fw.Buf.Write(p[:remaining])
	return n, fw.Err
}

// ShortWriter accepts at most N bytes per Write call with no error,
// exercising drain loops that must retry short writes.
type ShortWriter struct {
	Buf bytes.Buffer
	N   int
}

// Write implements io.Writer.
func (sw *ShortWriter) Write(p []byte) (int, error) {
	if len(p) > sw.N {
		p = p[:sw.N]
	}
	return sw.Buf.Write(p)
}

// FlushRecorder is a sink that records whether and how often its Flush
// capability was invoked.
type FlushRecorder struct {
	Buf     bytes.Buffer
	Flushes int
	Err     error
}

// Write implements io.Writer.
func (fr *FlushRecorder) Write(p []byte) (int, error) {
	return fr.Buf.Write(p)
}

// Flush records the call and returns the configured error, if any.
func (fr *FlushRecorder) Flush() error {
	fr.Flushes++
	return fr.Err
}
