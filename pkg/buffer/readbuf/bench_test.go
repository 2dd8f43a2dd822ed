package readbuf

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkRead(b *testing.B) {
	data := randomData(0x10000, 30)
	buf := Default()
	p := make([]byte, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src := bytes.NewReader(data)
		for {
			n, _ := buf.Read(src, p)
			if n == 0 {
				break
			}
		}
	}
}

func BenchmarkReadLine(b *testing.B) {
	data := asciiLines(0x10000, 31)
	buf := Default()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src := bytes.NewReader(data)
		var dst strings.Builder
		for {
			dst.Reset()
			n, _ := buf.ReadLine(src, &dst)
			if n == 0 {
				break
			}
		}
	}
}

func BenchmarkReadToString(b *testing.B) {
	data := asciiLines(0x10000, 32)
	buf := Default()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src := bytes.NewReader(data)
		var dst strings.Builder
		buf.ReadToString(src, &dst)
	}
}

func BenchmarkReadUntil(b *testing.B) {
	data := asciiLines(0x10000, 33)
	buf := Default()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		src := bytes.NewReader(data)
		var dst bytes.Buffer
		for {
			dst.Reset()
			n, _ := buf.ReadUntil(src, '\n', &dst)
			if n == 0 {
				break
			}
		}
	}
}

func BenchmarkTryRead(b *testing.B) {
	buf := Default()
	data := randomData(DefaultSize, 34)
	p := make([]byte, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.CopyIntoInternalBuffer(data)
		for buf.Available() > 0 {
			buf.TryRead(p)
		}
	}
}
