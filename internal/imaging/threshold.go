package imaging

import "image"

// Binarize applies a fixed-level threshold to gray in place and returns it.
//
// Every pixel with intensity <= cutoff becomes 0 and every other pixel
// becomes maxValue. When invert is true the two outputs are swapped, which
// makes dark strokes on a light background the set pixels.
//
// # Boundary
//
// The comparison is strict: with cutoff 150, intensity 150 maps to 0 and
// intensity 151 maps to maxValue.
func Binarize(gray *image.Gray, cutoff, maxValue uint8, invert bool) *image.Gray {
	below, above := uint8(0), maxValue
	if invert {
		below, above = maxValue, 0
	}

	var lut [256]uint8
	for v := range lut {
		if v <= int(cutoff) {
			lut[v] = below
		} else {
			lut[v] = above
		}
	}

	bounds := gray.Bounds()
	width := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := gray.PixOffset(bounds.Min.X, y)
		row := gray.Pix[off : off+width]
		for x, v := range row {
			row[x] = lut[v]
		}
	}
	return gray
}
