/*
Package utf8x provides the byte-level UTF-8 primitives behind gobuf's
string-decoding operations.

The read buffer decodes text incrementally: it never decodes the trailing
1-4 bytes of a chunk until the next refill (or end-of-stream) proves the
final sequence is complete. These primitives classify leading bytes,
validate continuation bytes, and check a final tail exhaustively:

	n := utf8x.SequenceLen(b)    // 1..4, or 0 for an invalid leader
	ok := utf8x.IsContinuation(b)
	n, err := utf8x.Next(p, i)   // length of the sequence at p[i]
	ok = utf8x.ValidTail(p)      // end-of-stream check for the held-back tail

All functions are pure and allocation-free.
*/
package utf8x
