package manpack

import (
	"encoding/binary"

	"github.com/Kicer86/manpack/internal/codec"
	"github.com/Kicer86/manpack/internal/metrics"
)

// headerBytes is the width/height image envelope: two 32-bit
// little-endian integers prepended to the codec's Frame bytes.
const headerBytes = 8

// CompressImage encodes pixels (width*height fixed-width words, row
// major, caller's responsibility to match width*height to len(pixels))
// into a self-describing byte stream: an 8-byte width/height header
// followed by the Huffman codec's Frame.
func CompressImage(width, height uint32, pixels []uint32) ([]byte, error) {
	frame, err := codec.Encode(pixels)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerBytes+len(frame))
	binary.LittleEndian.PutUint32(out[0:4], width)
	binary.LittleEndian.PutUint32(out[4:8], height)
	copy(out[headerBytes:], frame)

	metrics.Global.RecordCompress(len(pixels)*4, len(out), countDistinct(pixels))
	return out, nil
}

// DecompressImage parses a stream produced by CompressImage, returning
// the width, height and pixel sequence it encodes. The envelope does
// not enforce width*height == len(pixels); that check is the caller's.
func DecompressImage(data []byte) (width, height uint32, pixels []uint32, err error) {
	if len(data) < headerBytes {
		return 0, 0, nil, ErrTruncatedStream
	}
	width = binary.LittleEndian.Uint32(data[0:4])
	height = binary.LittleEndian.Uint32(data[4:8])

	pixels, err = codec.Decode[uint32](data[headerBytes:])
	if err != nil {
		return 0, 0, nil, err
	}

	metrics.Global.RecordDecompress(len(data), len(pixels)*4)
	return width, height, pixels, nil
}

// countDistinct returns the number of distinct words in pixels, i.e.
// the codebook size CompressImage's internal Huffman tree will have —
// used only for the metrics counter, not for compression itself.
func countDistinct(pixels []uint32) int {
	seen := make(map[uint32]struct{}, len(pixels))
	for _, p := range pixels {
		seen[p] = struct{}{}
	}
	return len(seen)
}
