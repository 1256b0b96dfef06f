// Package bitio implements the append-only bit container and consuming
// bit iterator the codec builds its wire format on top of.
//
// Bit order is canonical MSB-first: bit index i of a BitSequence lives
// in byte i/8 at bit position 7-(i%8). This is the layout spec.md §4.1
// and §6 call the canonical bit order, and it is what every multi-byte
// integer and codebook entry in the wire format is packed in.
//
// Sequences draw their initial backing array from internal/pool's
// size-classed allocator instead of a bare make(), cutting allocation
// churn on the hot path (one Sequence per codebook entry, one per
// frame section); growth beyond that falls through to the runtime's
// own append() reallocation.
package bitio

import (
	"encoding/binary"

	"github.com/Kicer86/manpack/internal/pool"
)

// Sequence is an append-only, MSB-first bit buffer.
type Sequence struct {
	buf []byte
	n   int // length in bits
}

// NewSequence returns an empty Sequence with capacity pre-sized for
// expectedBits bits, drawing its initial backing array from
// internal/pool to cut allocation churn when the codec builds many
// short-lived sequences (one per codebook entry, one per frame
// section) per call.
func NewSequence(expectedBits int) *Sequence {
	nbytes := (expectedBits + 7) / 8
	if nbytes < 128 {
		nbytes = 128
	}
	return &Sequence{buf: pool.Get(nbytes)[:0]}
}

// Release returns the sequence's backing array to the pool. Callers
// must not use s, nor retain any slice returned by s.Bytes(), after
// calling Release — exactly the discipline the teacher's Decoder
// pool documents ("nil external references to avoid holding onto
// input data"). Sequences whose Bytes() escapes to an external caller
// (the codec's final frame output) are never released; they are
// copied out instead, see internal/codec.
func (s *Sequence) Release() {
	pool.Put(s.buf)
	s.buf = nil
	s.n = 0
}

// Len returns the number of bits appended so far.
func (s *Sequence) Len() int { return s.n }

// PushBit appends a single bit (0 or nonzero treated as 1).
func (s *Sequence) PushBit(bit int) {
	if s.n%8 == 0 {
		s.buf = append(s.buf, 0)
	}
	if bit != 0 {
		byteIdx := s.n / 8
		s.buf[byteIdx] |= 1 << uint(7-(s.n%8))
	}
	s.n++
}

// AppendBytes appends the bits of b in MSB-first order, byte by byte.
// When the sequence is currently byte-aligned this is a plain append;
// otherwise each bit is shifted in individually.
func (s *Sequence) AppendBytes(b []byte) {
	if s.n%8 == 0 {
		s.buf = append(s.buf, b...)
		s.n += 8 * len(b)
		return
	}
	for _, by := range b {
		for bit := 7; bit >= 0; bit-- {
			s.PushBit(int((by >> uint(bit)) & 1))
		}
	}
}

// AppendPackedBits appends the first length bits of packed (MSB-first,
// padded with zero bits to a byte boundary — huffman.Code's own
// layout) without allocating an intermediate Sequence. This is the hot
// path used to emit one codeword per pixel in EncodeData; unlike a
// fixed-width accumulator it has no bound on length, which matters
// since a codeword can be up to 255 bits (spec.md §4.6).
func (s *Sequence) AppendPackedBits(packed []byte, length int) {
	for i := 0; i < length; i++ {
		bit := (packed[i/8] >> uint(7-(i%8))) & 1
		s.PushBit(int(bit))
	}
}

// Append appends every bit of other, in order, to s.
func (s *Sequence) Append(other *Sequence) {
	if other == nil || other.n == 0 {
		return
	}
	if s.n%8 == 0 && other.n%8 == 0 {
		s.buf = append(s.buf, other.buf[:other.n/8]...)
		s.n += other.n
		return
	}
	for i := 0; i < other.n; i++ {
		s.PushBit(other.BitAt(i))
	}
}

// AppendUint appends the little-endian two's-complement representation
// of v, truncated to nBytes bytes, in canonical bit order. This is how
// the frame's 64-bit length prefixes and the codebook's words_count and
// word_size fields are packed.
func (s *Sequence) AppendUint(v uint64, nBytes int) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	s.AppendBytes(tmp[:nBytes])
}

// BitAt returns the bit at position i (0 or 1). i must satisfy
// 0 <= i < s.Len(); out-of-range access is a programmer error. An i
// past the backing buffer panics, matching the "reading past end is
// fatal" contract of spec.md §4.1; an i inside the final byte's zero
// padding is not detected and returns 0 (the decoder never calls this
// out of range because it always consults Len() first).
func (s *Sequence) BitAt(i int) int {
	return int((s.buf[i/8] >> uint(7-(i%8))) & 1)
}

// Bytes returns a snapshot of the sequence as bytes, zero-padding the
// final partial byte. The returned slice must not be mutated by the
// caller; it aliases the sequence's internal buffer.
func (s *Sequence) Bytes() []byte {
	nbytes := (s.n + 7) / 8
	return s.buf[:nbytes]
}

// Equal reports whether two sequences have identical length and
// identical bit content.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.n != other.n {
		return false
	}
	for i := 0; i < s.n; i++ {
		if s.BitAt(i) != other.BitAt(i) {
			return false
		}
	}
	return true
}
