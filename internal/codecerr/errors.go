// Package codecerr holds the sentinel errors shared by the codec's
// internal packages, broken out on their own so that internal/huffman,
// internal/codec, and the root manpack package can all return (and
// check) the same error values without an import cycle.
package codecerr

import "errors"

// Decode-time failures. All of them are fatal: the codec has no
// partial-result or best-effort recovery path.
var (
	// ErrUnsupportedWordSize is returned when a decoded codebook's
	// word_size field disagrees with the decoder's compiled-in W(T).
	ErrUnsupportedWordSize = errors.New("manpack: unsupported word size")

	// ErrTruncatedStream is returned when fewer bits remain in the
	// input than a fixed-width read requires.
	ErrTruncatedStream = errors.New("manpack: truncated stream")

	// ErrResidualData is returned when, after decoding the last
	// declared section, more than 7 bits remain or a pad bit is set.
	ErrResidualData = errors.New("manpack: residual data after frame")

	// ErrPartialCode is returned when data decoding ends with a
	// non-empty in-flight code path (the bit iterator ran out mid-code).
	ErrPartialCode = errors.New("manpack: partial code at end of data")

	// ErrEmptyCodeSlot is returned when a codebook entry has
	// code_len == 0, which the single-symbol promotion rule forbids.
	ErrEmptyCodeSlot = errors.New("manpack: codebook entry has zero-length code")

	// ErrMissingCode is an assertion-class error: the encoder asked for
	// a word that is absent from the codebook it just built from the
	// same input. It should never occur at runtime.
	ErrMissingCode = errors.New("manpack: word missing from codebook")

	// ErrInvalidTree is returned when data decoding follows a bit for
	// which the codebook's decode trie has no branch (corrupt or
	// adversarial input). Codebooks are not checked for prefix-freeness.
	ErrInvalidTree = errors.New("manpack: invalid huffman tree")
)
