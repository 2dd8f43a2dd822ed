package integration

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/vnykmshr/gobuf/pkg/buffer/readbuf"
	"github.com/vnykmshr/gobuf/pkg/buffer/writebuf"
)

// TestDuplexPipeRoundTrip runs a request/response exchange over an in-memory
// connection with a read and a write buffer on each side, verifying that
// framing survives the transport's arbitrary segmentation.
func TestDuplexPipeRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	const rounds = 50

	var wg sync.WaitGroup
	wg.Add(1)

	// Server: reads one line, echoes it back uppercased.
	go func() {
		defer wg.Done()
		rb := readbuf.New(64)
		wb := writebuf.New(64)

		for i := 0; i < rounds; i++ {
			var line strings.Builder
			n, err := rb.ReadLine(server, &line)
			if err != nil || n == 0 {
				t.Errorf("server read %d: n=%d err=%v", i, n, err)
				return
			}
			if err := wb.WriteAll(server, []byte(strings.ToUpper(line.String()))); err != nil {
				t.Errorf("server write %d: %v", i, err)
				return
			}
			if err := wb.Flush(server); err != nil {
				t.Errorf("server flush %d: %v", i, err)
				return
			}
		}
	}()

	rb := readbuf.New(64)
	wb := writebuf.New(64)

	for i := 0; i < rounds; i++ {
		request := fmt.Sprintf("request number %d\n", i)
		if err := wb.WriteAll(client, []byte(request)); err != nil {
			t.Fatalf("client write %d: %v", i, err)
		}
		if err := wb.Flush(client); err != nil {
			t.Fatalf("client flush %d: %v", i, err)
		}

		var reply strings.Builder
		n, err := rb.ReadLine(client, &reply)
		if err != nil {
			t.Fatalf("client read %d: %v", i, err)
		}
		if n == 0 {
			t.Fatalf("client read %d: unexpected end of stream", i)
		}
		want := strings.ToUpper(request)
		if reply.String() != want {
			t.Fatalf("round %d: got %q, want %q", i, reply.String(), want)
		}
	}

	wg.Wait()
}

// TestBufioInterop chains a ReadBuffer behind a bufio.Reader and a
// WriteBuffer in front of a bufio.Writer, checking that Borrow's io.Reader
// and io.Writer views compose with the standard library.
func TestBufioInterop(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	data := make([]byte, 0x8000)
	rng.Read(data)

	// readbuf -> bufio.Reader
	br := bufio.NewReaderSize(readbuf.New(64).Borrow(bytes.NewReader(data)), 32)
	got, err := io.ReadAll(br)
	if err != nil {
		t.Fatalf("read through bufio: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("read side round trip mismatch")
	}

	// writebuf -> bufio.Writer sink; Flush must propagate to the bufio layer.
	var sink bytes.Buffer
	bw := bufio.NewWriterSize(&sink, 4096)
	wb := writebuf.New(64)
	if err := wb.WriteAll(bw, data); err != nil {
		t.Fatalf("write through bufio: %v", err)
	}
	if err := wb.Flush(bw); err != nil {
		t.Fatalf("flush through bufio: %v", err)
	}
	if !bytes.Equal(sink.Bytes(), data) {
		t.Fatal("write side round trip mismatch")
	}
}

// TestBufferReuseAcrossStreams drives one buffer pair through many
// independent streams in sequence, the reuse pattern the buffers exist for.
func TestBufferReuseAcrossStreams(t *testing.T) {
	rb := readbuf.New(128)
	wb := writebuf.New(128)

	for i := 0; i < 20; i++ {
		data := bytes.Repeat([]byte{byte('a' + i%26)}, 300+i*7)

		var transported bytes.Buffer
		if err := wb.WriteAll(&transported, data); err != nil {
			t.Fatalf("stream %d write: %v", i, err)
		}
		if err := wb.Flush(&transported); err != nil {
			t.Fatalf("stream %d flush: %v", i, err)
		}

		var got bytes.Buffer
		n, err := rb.ReadToEnd(&transported, &got)
		if err != nil {
			t.Fatalf("stream %d read: %v", i, err)
		}
		if n != len(data) || !bytes.Equal(got.Bytes(), data) {
			t.Fatalf("stream %d: round trip mismatch", i)
		}

		if rb.Available() != 0 || wb.Flushable() != 0 {
			t.Fatalf("stream %d: buffers not clean for reuse", i)
		}
	}
}
