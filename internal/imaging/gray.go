package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts an image to a single-channel intensity image.
//
// Intensity is the BT.601 luminance 0.299*R + 0.587*G + 0.114*B, rounded to
// the nearest integer. The returned image has the same bounds as img.
// Alpha is discarded: a transparent pixel converts from its stored color,
// exactly like an opaque one.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	if bounds.Empty() {
		return gray
	}

	// bild premultiplies, so convert from an opaque copy of the stored color
	opaque := imaging.Clone(img)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	// All three channels of the bild result hold the same value
	rgba := effect.GrayscaleWithWeights(opaque, lumaR, lumaG, lumaB)
	width := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return gray
}
