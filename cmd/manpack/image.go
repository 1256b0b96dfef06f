package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/Kicer86/manpack/internal/pool"
)

// flattenPixels decodes img into a row-major slice of 32-bit ARGB
// words, the format the codec treats as its default word type
// (spec.md's "default T = u32"). The final length is known up front
// (width*height), so the buffer is a single pool.GetUint32 allocation
// indexed directly rather than a grow-by-append slice.
func flattenPixels(img image.Image) (width, height uint32, pixels []uint32) {
	b := img.Bounds()
	width, height = uint32(b.Dx()), uint32(b.Dy())
	pixels = pool.GetUint32(int(width) * int(height))

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels[i] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			i++
		}
	}
	return width, height, pixels
}

// rebuildImage turns a width*height ARGB pixel sequence back into an
// image.NRGBA, the inverse of flattenPixels.
func rebuildImage(width, height uint32, pixels []uint32) (*image.NRGBA, error) {
	if uint64(width)*uint64(height) != uint64(len(pixels)) {
		return nil, fmt.Errorf("width*height (%d) does not match pixel count (%d)", uint64(width)*uint64(height), len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	for i, word := range pixels {
		off := i * 4
		img.Pix[off+0] = byte(word >> 16)
		img.Pix[off+1] = byte(word >> 8)
		img.Pix[off+2] = byte(word)
		img.Pix[off+3] = byte(word >> 24)
	}
	return img, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
