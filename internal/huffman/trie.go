package huffman

import "github.com/Kicer86/manpack/internal/word"

// decodeTrie is the binary lookup structure data decoding walks
// (spec.md §4.7): built fresh from the codebook, not shared with the
// encode-time Huffman tree, so decode cost is O(bits) regardless of
// how the tree that produced the codebook was built.
type decodeTrie[T word.Word] struct {
	leaf        bool
	value       T
	left, right *decodeTrie[T]
}

// buildTrie inserts every (word, code) pair of book into a fresh trie,
// descending left on a 0 bit and right on a 1 bit and placing the word
// at the path's terminal node.
func buildTrie[T word.Word](book Codebook[T]) *decodeTrie[T] {
	root := &decodeTrie[T]{}
	for w, code := range book {
		n := root
		for i := 0; i < int(code.Len); i++ {
			bit := code.BitAt(i)
			if bit == 0 {
				if n.left == nil {
					n.left = &decodeTrie[T]{}
				}
				n = n.left
			} else {
				if n.right == nil {
					n.right = &decodeTrie[T]{}
				}
				n = n.right
			}
		}
		n.leaf = true
		n.value = w
	}
	return root
}
