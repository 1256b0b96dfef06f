// Package codec assembles and splits the self-describing Frame
// spec.md §4.8 and §6 define: a byte-aligned
// `dict_bits_len | dict_bits | data_bits_len | data_bits` stream,
// generic over the fixed-width word type T.
package codec

import (
	"github.com/Kicer86/manpack/internal/bitio"
	"github.com/Kicer86/manpack/internal/codecerr"
	"github.com/Kicer86/manpack/internal/huffman"
	"github.com/Kicer86/manpack/internal/word"
)

// lengthFieldBytes is the width of the dict_bits_len / data_bits_len
// prefixes: 64-bit LE bit counts, per spec.md §4.8.
const lengthFieldBytes = 8

// Encode builds the weight table, Huffman tree and codebook for data,
// then emits the byte-aligned Frame bytes.
func Encode[T word.Word](data []T) ([]byte, error) {
	weights := huffman.Tabulate(data)
	tree := huffman.Build(weights)
	book := huffman.Extract(tree)

	dictBits, err := huffman.Serialize(book)
	if err != nil {
		return nil, err
	}
	dataBits, err := huffman.EncodeData(book, data)
	if err != nil {
		return nil, err
	}

	out := bitio.NewSequence(64 + 64 + dictBits.Len() + dataBits.Len())
	out.AppendUint(uint64(dictBits.Len()), lengthFieldBytes)
	out.Append(dictBits)
	out.AppendUint(uint64(dataBits.Len()), lengthFieldBytes)
	out.Append(dataBits)
	dictBits.Release()
	dataBits.Release()

	// out.Bytes() is copied into a fresh slice before returning: out's
	// backing array came from internal/pool and must not escape to the
	// caller, who is free to retain the frame indefinitely.
	frame := append([]byte(nil), out.Bytes()...)
	return frame, nil
}

// Decode parses a Frame produced by Encode back into the original word
// sequence. Every failure mode is fatal and reported as one of the
// codecerr sentinel errors; there is no partial recovery.
func Decode[T word.Word](data []byte) ([]T, error) {
	it := bitio.NewIterator(data)

	dictLen, err := it.ReadUint(lengthFieldBytes)
	if err != nil {
		return nil, err
	}
	dictIt, err := it.Sub(int(dictLen))
	if err != nil {
		return nil, err
	}
	book, err := huffman.Deserialize[T](dictIt)
	if err != nil {
		return nil, err
	}

	dataLen, err := it.ReadUint(lengthFieldBytes)
	if err != nil {
		return nil, err
	}
	dataIt, err := it.Sub(int(dataLen))
	if err != nil {
		return nil, err
	}
	words, err := huffman.DecodeData(book, dataIt)
	if err != nil {
		return nil, err
	}

	// Only zero pad bits may remain, and fewer than a byte of them.
	if it.Remaining() >= 8 {
		return nil, codecerr.ErrResidualData
	}
	for it.Remaining() > 0 {
		bit, _ := it.NextBit()
		if bit != 0 {
			return nil, codecerr.ErrResidualData
		}
	}

	if words == nil {
		words = []T{}
	}
	return words, nil
}
