//go:build gocv

package detection

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Backend names the Hough transform implementation compiled in.
const Backend = "opencv"

// houghLinesP runs OpenCV's HoughLinesP. OpenCV always visits points in the
// DefaultSeed order and has no line limit, so other seeds use the native
// transform and MaxLines truncates the result, which keeps the same first
// segments as stopping early.
func houghLinesP(bin *image.Gray, p Params) ([]Segment, error) {
	if p.Seed != DefaultSeed {
		return progressiveHough(bin, p), nil
	}

	bounds := bin.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Mat wants tightly packed rows; a sub-image shares its parent's stride
	data := make([]byte, width*height)
	for y := 0; y < height; y++ {
		off := bin.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(data[y*width:(y+1)*width], bin.Pix[off:off+width])
	}

	src, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mat: %w", err)
	}
	defer src.Close()

	lines := gocv.NewMat()
	defer lines.Close()

	gocv.HoughLinesPWithParams(src, &lines,
		float32(p.Rho), float32(p.Theta), p.Threshold,
		float32(p.MinLineLength), float32(p.MaxLineGap))

	var segments []Segment
	for i := 0; i < lines.Rows(); i++ {
		segments = append(segments, Segment{
			X1: int(lines.GetIntAt(i, 0)),
			Y1: int(lines.GetIntAt(i, 1)),
			X2: int(lines.GetIntAt(i, 2)),
			Y2: int(lines.GetIntAt(i, 3)),
		})
		if p.MaxLines > 0 && len(segments) >= p.MaxLines {
			break
		}
	}
	return segments, nil
}
