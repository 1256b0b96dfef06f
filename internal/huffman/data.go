package huffman

import (
	"github.com/Kicer86/manpack/internal/bitio"
	"github.com/Kicer86/manpack/internal/codecerr"
	"github.com/Kicer86/manpack/internal/word"
)

// EncodeData appends codebook[v]'s code for every word v in data, in
// order, to a fresh bit sequence (spec.md §4.7). A word absent from
// the codebook is a programmer error: the codebook is always built
// from the same data being encoded here.
func EncodeData[T word.Word](book Codebook[T], data []T) (*bitio.Sequence, error) {
	seq := bitio.NewSequence(len(data) * 2)
	for _, v := range data {
		code, ok := book[v]
		if !ok {
			return nil, codecerr.ErrMissingCode
		}
		seq.AppendPackedBits(code.Bits, int(code.Len))
	}
	return seq, nil
}

// DecodeData walks it bit by bit, descending a trie built from book,
// restarting at the root on every leaf hit, and emitting one word per
// leaf reached (spec.md §4.7). A successful decode ends exactly at the
// trie root; anything else — a non-empty in-flight code path, or a
// malformed codebook that descends to a nil child — is reported as
// the relevant fatal error.
func DecodeData[T word.Word](book Codebook[T], it *bitio.Iterator) ([]T, error) {
	trie := buildTrie(book)
	var out []T
	n := trie
	for {
		if n.leaf && n != trie {
			out = append(out, n.value)
			n = trie
		}
		bit, ok := it.NextBit()
		if !ok {
			break
		}
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			return nil, codecerr.ErrInvalidTree
		}
	}
	if n != trie {
		return nil, codecerr.ErrPartialCode
	}
	return out, nil
}
