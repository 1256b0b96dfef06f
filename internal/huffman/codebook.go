package huffman

import (
	"sort"

	"github.com/Kicer86/manpack/internal/bitio"
	"github.com/Kicer86/manpack/internal/codecerr"
	"github.com/Kicer86/manpack/internal/word"
)

// Serialize encodes book in the bit-for-bit layout of spec.md §4.6:
//
//	words_count : 32-bit LE
//	word_size   :  8-bit
//	words_count * (word : 8*W(T) bits)
//	words_count * (code_len : 8-bit, code : code_len bits)
//
// Entries are emitted in ascending word order so re-encoding the same
// map is byte-reproducible (the format itself does not mandate an
// order; this is the encoder-side determinism policy spec.md §4.6
// requires). An empty codebook serializes to zero bits, so an empty
// input's Frame carries dict_bits_len = 0.
func Serialize[T word.Word](book Codebook[T]) (*bitio.Sequence, error) {
	if len(book) == 0 {
		return bitio.NewSequence(0), nil
	}
	words := make([]T, 0, len(book))
	for w := range book {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool { return words[i] < words[j] })

	size := word.Size[T]()
	seq := bitio.NewSequence(32 + 8 + len(words)*(8*size+8+8))
	seq.AppendUint(uint64(len(words)), 4)
	seq.AppendUint(uint64(size), 1)

	for _, w := range words {
		wordBits := word.ToBitSequence(w)
		seq.Append(wordBits)
		wordBits.Release()
	}
	for _, w := range words {
		code := book[w]
		if code.Len == 0 {
			return nil, codecerr.ErrEmptyCodeSlot
		}
		seq.AppendUint(uint64(code.Len), 1)
		seq.AppendPackedBits(code.Bits, int(code.Len))
	}
	return seq, nil
}

// Deserialize parses a codebook serialized by Serialize from it. On
// completion the iterator must be exhausted (no trailing bits): a
// codebook is always the first section of a Frame, and any leftover
// bits there would silently desynchronize the data section, so
// Deserialize enforces it directly rather than deferring to the
// caller. A section of zero bits is the empty codebook.
func Deserialize[T word.Word](it *bitio.Iterator) (Codebook[T], error) {
	if it.Remaining() == 0 {
		return Codebook[T]{}, nil
	}
	count, err := it.ReadUint(4)
	if err != nil {
		return nil, err
	}
	size, err := it.ReadUint(1)
	if err != nil {
		return nil, err
	}
	if int(size) != word.Size[T]() {
		return nil, codecerr.ErrUnsupportedWordSize
	}

	words := make([]T, count)
	for i := range words {
		w, err := word.FromBitSequence[T](it)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	book := make(Codebook[T], count)
	for _, w := range words {
		length, err := it.ReadUint(1)
		if err != nil {
			return nil, err
		}
		if length == 0 {
			return nil, codecerr.ErrEmptyCodeSlot
		}
		bits, err := it.ReadPackedBits(int(length))
		if err != nil {
			return nil, err
		}
		book[w] = Code{Bits: bits, Len: uint8(length)}
	}

	if it.Remaining() != 0 {
		return nil, codecerr.ErrResidualData
	}
	return book, nil
}
