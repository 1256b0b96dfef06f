// Package word implements §4.2 of the codec spec: little-endian
// conversion between a fixed-width word type and a canonical-order bit
// segment of 8*W(T) bits.
package word

import (
	"github.com/Kicer86/manpack/internal/bitio"
)

// Word is the constraint satisfied by every word type the codec can be
// instantiated over: a fixed-width integer, so 8*Size[T]() bits is
// always well defined, and ordered, so the tree builder's
// canonical-min-word tiebreak is well defined. cmp.Ordered also admits
// floats and strings, neither a meaningful codec word, so Word
// enumerates the integer kinds directly instead (see DESIGN.md).
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~int
}

// Size returns W(T), the fixed binary width of T in bytes, for every
// word type the codec supports.
func Size[T Word]() int {
	var v T
	switch any(v).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32:
		return 4
	case uint64, int64:
		return 8
	case uint, int:
		return 8
	default:
		return 8
	}
}

// ToBitSequence returns the little-endian two's-complement
// representation of value, expanded into canonical bit order, as a
// bitio.Sequence of exactly 8*Size[T]() bits.
func ToBitSequence[T Word](value T) *bitio.Sequence {
	size := Size[T]()
	s := bitio.NewSequence(8 * size)
	s.AppendUint(uint64(value), size)
	return s
}

// FromBitSequence decodes exactly 8*Size[T]() bits, read from it, back
// into a value of type T. The caller must supply exactly that many
// bits; this mirrors spec.md §4.2's "requiring exactly 8*W(T) bits".
func FromBitSequence[T Word](it *bitio.Iterator) (T, error) {
	size := Size[T]()
	v, err := it.ReadUint(size)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(v), nil
}
