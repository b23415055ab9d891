//go:build !gocv

package detection

import "image"

// Backend names the Hough transform implementation compiled in.
const Backend = "native"

func houghLinesP(bin *image.Gray, p Params) ([]Segment, error) {
	return progressiveHough(bin, p), nil
}
