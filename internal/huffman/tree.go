package huffman

import (
	"container/heap"

	"github.com/Kicer86/manpack/internal/word"
)

// Node is a Huffman tree node (spec.md §3's HuffmanNode): either a Leaf
// carrying a word, or a Branch owning two children. Ownership is
// strict: a Branch's Left/Right are never shared with another node,
// and Build never produces a cycle.
type Node[T word.Word] struct {
	Leaf        bool
	Value       T
	Left, Right *Node[T]
}

// weightedTree is the (weight, node) pair the priority queue orders
// on, spec.md §3's WeightedTree. minWord caches the canonical-min-word
// tiebreak (§4.4) so merges don't need to re-walk the subtree.
type weightedTree[T word.Word] struct {
	weight  uint64
	minWord T
	node    *Node[T]
}

// nodeHeap is a min-heap on (weight, minWord). Because every leaf word
// appears in exactly one element at any point during the merge, no two
// elements ever share a minWord, so this ordering has no true ties:
// the built tree is fully determined by the input weight table.
type nodeHeap[T word.Word] []*weightedTree[T]

func (h nodeHeap[T]) Len() int { return len(h) }

func (h nodeHeap[T]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].minWord < h[j].minWord
}

func (h nodeHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[T]) Push(x any) {
	*h = append(*h, x.(*weightedTree[T]))
}

func (h *nodeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Build constructs a canonical Huffman tree from a weight table
// (spec.md §4.4). It returns nil for an empty table. A single-symbol
// table is promoted to a 1-bit code by wrapping its leaf in a Branch
// with an unused sibling leaf of the same word, so every code Build's
// result can produce has length >= 1.
func Build[T word.Word](weights map[T]uint64) *Node[T] {
	if len(weights) == 0 {
		return nil
	}

	h := make(nodeHeap[T], 0, len(weights))
	for w, count := range weights {
		h = append(h, &weightedTree[T]{
			weight:  count,
			minWord: w,
			node:    &Node[T]{Leaf: true, Value: w},
		})
	}
	heap.Init(&h)

	if h.Len() == 1 {
		only := h[0]
		return &Node[T]{
			Left:  only.node,
			Right: &Node[T]{Leaf: true, Value: only.node.Value},
		}
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(*weightedTree[T])
		b := heap.Pop(&h).(*weightedTree[T])
		minWord := a.minWord
		if b.minWord < minWord {
			minWord = b.minWord
		}
		heap.Push(&h, &weightedTree[T]{
			weight:  a.weight + b.weight,
			minWord: minWord,
			node:    &Node[T]{Left: a.node, Right: b.node},
		})
	}

	return h[0].node
}
