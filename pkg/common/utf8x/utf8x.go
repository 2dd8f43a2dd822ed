package utf8x

import (
	gberrors "github.com/vnykmshr/gobuf/pkg/common/errors"
)

// SequenceLen returns the byte length of the UTF-8 sequence announced by its
// leading byte: 1 through 4, or 0 when the byte is not a valid leader.
func SequenceLen(first byte) int {
	switch {
	case first&0b1000_0000 == 0:
		return 1
	case first&0b1110_0000 == 0b1100_0000:
		return 2
	case first&0b1111_0000 == 0b1110_0000:
		return 3
	case first&0b1111_1000 == 0b1111_0000:
		return 4
	}
	return 0
}

// IsContinuation reports whether b carries the 10xxxxxx continuation pattern.
func IsContinuation(b byte) bool {
	return b&0b1100_0000 == 0b1000_0000
}

// Next returns the length in bytes of the UTF-8 sequence starting at p[i],
// validating every continuation byte. It returns ErrInvalidUTF8 when p[i] is
// not a valid leader or a continuation byte is malformed.
//
// Next does not bounds-check the lookahead: the caller must guarantee that
// the full sequence fits in p, either because at least 4 bytes follow i or
// because the run is known to end in a byte that can never be a continuation
// (such as '\n').
func Next(p []byte, i int) (int, error) {
	n := SequenceLen(p[i])
	if n == 0 {
		return 0, gberrors.ErrInvalidUTF8
	}
	for k := 1; k < n; k++ {
		if !IsContinuation(p[i+k]) {
			return 0, gberrors.ErrInvalidUTF8
		}
	}
	return n, nil
}

// ValidTail reports whether p consists of a whole number of complete,
// structurally well-formed sequences. It is the end-of-stream check for the
// held-back tail: once no further bytes can arrive, a sequence that runs past
// the end of p can never be completed.
func ValidTail(p []byte) bool {
	for i := 0; i < len(p); {
		n := SequenceLen(p[i])
		if n == 0 || n > len(p)-i {
			return false
		}
		for k := 1; k < n; k++ {
			if !IsContinuation(p[i+k]) {
				return false
			}
		}
		i += n
	}
	return true
}
