package utf8x

import (
	"testing"

	"github.com/vnykmshr/gobuf/pkg/common/errors"
)

func TestSequenceLen(t *testing.T) {
	tests := []struct {
		name  string
		first byte
		want  int
	}{
		{"ascii", 'a', 1},
		{"ascii nul", 0x00, 1},
		{"ascii del", 0x7F, 1},
		{"two byte leader", 0xC3, 2},
		{"three byte leader", 0xE2, 3},
		{"four byte leader", 0xF0, 4},
		{"continuation byte", 0x80, 0},
		{"continuation byte high", 0xBF, 0},
		{"invalid 0xF8", 0xF8, 0},
		{"invalid 0xFF", 0xFF, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SequenceLen(tt.first); got != tt.want {
				t.Errorf("SequenceLen(%#x) = %d, want %d", tt.first, got, tt.want)
			}
		})
	}
}

func TestIsContinuation(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := b >= 0x80 && b <= 0xBF
		if got := IsContinuation(byte(b)); got != want {
			t.Errorf("IsContinuation(%#x) = %v, want %v", b, got, want)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		p       []byte
		i       int
		want    int
		wantErr bool
	}{
		{"ascii", []byte("hello"), 0, 1, false},
		{"two byte", []byte("é___"), 0, 2, false},       // C3 A9
		{"three byte", []byte("€___"), 0, 3, false},     // E2 82 AC
		{"four byte", []byte("𐍈___"), 0, 4, false},      // F0 90 8D 88
		{"offset ascii", []byte("aé___"), 0, 1, false},
		{"offset two byte", []byte("aé___"), 1, 2, false},
		{"bad leader", []byte{0x80, 'a', 'b', 'c', 'd'}, 0, 0, true},
		{"bad continuation", []byte{0xC3, 'a', 'b', 'c', 'd'}, 0, 0, true},
		{"truncated three byte cont", []byte{0xE2, 0x82, 'x', 'y', 'z'}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.p, tt.i)
			if tt.wantErr {
				if !errors.IsInvalidUTF8(err) {
					t.Fatalf("expected ErrInvalidUTF8, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidTail(t *testing.T) {
	tests := []struct {
		name string
		p    []byte
		want bool
	}{
		{"empty", nil, true},
		{"ascii", []byte("ab"), true},
		{"complete two byte", []byte("é"), true},
		{"complete four byte", []byte("𐍈"), true},
		{"mixed complete", []byte("aé"), true},
		{"truncated two byte", []byte{0xC3}, false},
		{"truncated three byte", []byte{0xE2, 0x82}, false},
		{"truncated four byte", []byte{0xF0, 0x90, 0x8D}, false},
		{"bad continuation", []byte{0xC3, 0x28}, false},
		{"lone continuation", []byte{0x80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTail(tt.p); got != tt.want {
				t.Errorf("ValidTail(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
