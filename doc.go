// Package manpack implements a lossless compressor/decompressor for
// rasterized images whose pixels are fixed-width words (32-bit by
// default).
//
// The core is a generic order-0 Huffman codec (internal/huffman,
// internal/codec): weight tabulation, canonical prefix-code
// construction, bit-level emission of a self-describing code book, and
// symmetric decoding by iterative bit consumption. Around it sits a
// thin image envelope (this package) that prepends the image
// dimensions to the codec's byte stream.
//
//	data, err := manpack.CompressImage(width, height, pixels)
//	w, h, pixels, err := manpack.DecompressImage(data)
//
// See cmd/manpack for a command-line front end over PNG, GIF and JPEG
// input.
package manpack
