package huffman

import "github.com/Kicer86/manpack/internal/word"

// Code is a non-empty sequence of 1..=255 bits, spec.md §3's Code type
// (the upper bound is structural: code_len is serialized as a single
// byte, spec.md §4.6). Bits are packed MSB-first into ceil(Len/8)
// bytes — the first-assigned bit (the root's branch) is bit 0 of Bits
// — with any bits past Len within the final byte left zero. A fixed-
// width integer can't hold this: a canonical tree built over a large
// enough, sufficiently skewed weight table routinely produces codes
// past 64 bits deep (a Fibonacci-weighted alphabet of ~65+ symbols is
// the classic worst case), so Code stores its bits as a byte slice
// instead of packing them into a uint64.
type Code struct {
	Bits []byte
	Len  uint8
}

// BitAt returns the bit at position i (0 <= i < int(c.Len)), MSB-first.
func (c Code) BitAt(i int) int {
	return int((c.Bits[i/8] >> uint(7-(i%8))) & 1)
}

// Equal reports whether two codes have the same length and the same
// bits. Code's slice-valued Bits field makes it otherwise incomparable
// with ==.
func (c Code) Equal(o Code) bool {
	if c.Len != o.Len {
		return false
	}
	for i := 0; i < int(c.Len); i++ {
		if c.BitAt(i) != o.BitAt(i) {
			return false
		}
	}
	return true
}

// Codebook is the prefix-free mapping from words to codes (spec.md
// §3). Build guarantees prefix-freeness by construction: each Code is
// a unique root-to-leaf path in the tree Extract walked.
type Codebook[T word.Word] map[T]Code

// Extract walks root depth-first (left=0, right=1) and returns the
// word -> code mapping. A nil root yields an empty Codebook, matching
// spec.md §4.4's empty-input edge case. When a word appears in more
// than one leaf (Build's single-symbol promotion), the first leaf
// reached, the left one, supplies its code.
func Extract[T word.Word](root *Node[T]) Codebook[T] {
	book := make(Codebook[T])
	if root == nil {
		return book
	}
	var walk func(n *Node[T], path []byte, length int)
	walk = func(n *Node[T], path []byte, length int) {
		if n.Leaf {
			if _, seen := book[n.Value]; !seen {
				book[n.Value] = Code{Bits: path, Len: uint8(length)}
			}
			return
		}
		walk(n.Left, extendPath(path, length, 0), length+1)
		walk(n.Right, extendPath(path, length, 1), length+1)
	}
	walk(root, nil, 0)
	return book
}

// extendPath returns a new, independently-owned byte slice holding
// path's length bits plus one more bit, set to bit. A fresh copy is
// made on every call rather than growing path in place: Extract's walk
// calls this once for Left and once for Right with the same path and
// length, and appending in place would let one sibling's deeper
// recursion overwrite bytes the other sibling still needs.
func extendPath(path []byte, length int, bit int) []byte {
	out := make([]byte, (length+8)/8)
	copy(out, path)
	if bit != 0 {
		out[length/8] |= 1 << uint(7-(length%8))
	}
	return out
}
