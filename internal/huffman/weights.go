package huffman

import "github.com/Kicer86/manpack/internal/word"

// Tabulate counts occurrences of each word in data (spec.md §4.3: the
// weight table). Like the Rust prototype's calculate_weights, this is
// a single pass over a map keyed by T; determinism of anything built
// from the result is the tree builder's job, not this function's.
func Tabulate[T word.Word](data []T) map[T]uint64 {
	weights := make(map[T]uint64, len(data))
	for _, w := range data {
		weights[w]++
	}
	return weights
}
