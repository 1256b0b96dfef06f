package bitio

import (
	"encoding/binary"

	"github.com/Kicer86/manpack/internal/codecerr"
)

// Iterator is a forward-only, single-pass consumer over a byte slice
// interpreted in canonical MSB-first bit order. Reading never copies or
// splits its backing buffer: advancing is O(1) per bit regardless of
// how many bits have already been consumed. Sub is the one method that
// copies, and only the bits it carves out.
type Iterator struct {
	buf  []byte
	pos  int // next bit index to read
	bits int // total addressable bits (<= 8*len(buf))
}

// NewIterator returns an Iterator over every bit of data.
func NewIterator(data []byte) *Iterator {
	return &Iterator{buf: data, bits: 8 * len(data)}
}

// Remaining returns the number of unconsumed bits.
func (it *Iterator) Remaining() int {
	return it.bits - it.pos
}

// NextBit consumes and returns the next bit. ok is false when the
// iterator is exhausted.
func (it *Iterator) NextBit() (bit int, ok bool) {
	if it.Remaining() <= 0 {
		return 0, false
	}
	byteIdx := it.pos / 8
	shift := uint(7 - (it.pos % 8))
	bit = int((it.buf[byteIdx] >> shift) & 1)
	it.pos++
	return bit, true
}

// ReadBits consumes exactly n bits (0 <= n <= 64) and returns them
// packed into a uint64, the first-consumed bit landing as the most
// significant of the n bits read. It returns codecerr.ErrTruncatedStream
// if fewer than n bits remain.
func (it *Iterator) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 || it.Remaining() < n {
		return 0, codecerr.ErrTruncatedStream
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit, _ := it.NextBit()
		v = (v << 1) | uint64(bit)
	}
	return v, nil
}

// ReadPackedBits consumes exactly n bits and returns them packed
// MSB-first into ceil(n/8) bytes, the same layout huffman.Code stores
// its bits in, zero-padding any unused tail bits of the final byte.
// Unlike ReadBits this has no 64-bit ceiling: a codeword can be up to
// 255 bits long (spec.md §4.6), past what a uint64 can hold.
func (it *Iterator) ReadPackedBits(n int) ([]byte, error) {
	if n < 0 || it.Remaining() < n {
		return nil, codecerr.ErrTruncatedStream
	}
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bit, _ := it.NextBit()
		if bit != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out, nil
}

// ReadUint reads nBytes bytes worth of bits and decodes them as a
// little-endian unsigned integer (the wire format's multi-byte
// integer layout: little-endian bytes, each expanded MSB-first).
func (it *Iterator) ReadUint(nBytes int) (uint64, error) {
	raw, err := it.ReadBytes(nBytes)
	if err != nil {
		return 0, err
	}
	var tmp [8]byte
	copy(tmp[:], raw)
	return binary.LittleEndian.Uint64(tmp[:]), nil
}

// ReadBytes consumes exactly 8*nBytes bits and returns them as a byte
// slice in the same MSB-first-per-byte layout they were appended in.
func (it *Iterator) ReadBytes(nBytes int) ([]byte, error) {
	if it.Remaining() < 8*nBytes {
		return nil, codecerr.ErrTruncatedStream
	}
	out := make([]byte, nBytes)
	for i := 0; i < nBytes; i++ {
		var b byte
		for bit := 0; bit < 8; bit++ {
			v, _ := it.NextBit()
			b = (b << 1) | byte(v)
		}
		out[i] = b
	}
	return out, nil
}

// Sub carves out the next n bits as an independent Iterator and
// advances it past them. Used to split the frame's single bit stream
// into its dict_bits and data_bits sections before parsing each on its
// own.
func (it *Iterator) Sub(n int) (*Iterator, error) {
	if it.Remaining() < n {
		return nil, codecerr.ErrTruncatedStream
	}
	seq := NewSequence(n)
	for i := 0; i < n; i++ {
		bit, _ := it.NextBit()
		seq.PushBit(bit)
	}
	return &Iterator{buf: seq.Bytes(), bits: n}, nil
}
