package detection

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// DefaultSeed seeds the point visiting order when Params.Seed is left at its default.
const DefaultSeed uint64 = math.MaxUint64

// fixedShift is the number of fractional bits used while walking a line.
const fixedShift = 16

// Segment represents a detected line segment.
//
// Coordinates are in the pixel space of the binary image passed to
// DetectSegments, including its bounds offset.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Start returns the first endpoint.
func (s Segment) Start() image.Point { return image.Pt(s.X1, s.Y1) }

// End returns the second endpoint.
func (s Segment) End() image.Point { return image.Pt(s.X2, s.Y2) }

// Length returns the Euclidean distance between the endpoints.
func (s Segment) Length() float64 {
	dx := float64(s.X2 - s.X1)
	dy := float64(s.Y2 - s.Y1)
	return math.Sqrt(dx*dx + dy*dy)
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", s.X1, s.Y1, s.X2, s.Y2)
}

// Params configures the probabilistic Hough transform.
type Params struct {
	// Rho is the distance resolution of the accumulator in pixels.
	Rho float64 `json:"rho"`

	// Theta is the angle resolution of the accumulator in radians.
	Theta float64 `json:"theta"`

	// Threshold is the number of votes a (rho, theta) cell needs before a
	// line through the current point is traced.
	Threshold int `json:"threshold"`

	// MinLineLength discards traced segments shorter than this along both axes.
	MinLineLength int `json:"min_line_length"`

	// MaxLineGap is the largest run of missing pixels bridged while tracing.
	MaxLineGap int `json:"max_line_gap"`

	// MaxLines stops detection once this many segments are found. 0 means no limit.
	MaxLines int `json:"max_lines"`

	// Seed drives the point visiting order. 0 is replaced by a fixed non-zero seed.
	Seed uint64 `json:"seed"`
}

// DefaultParams returns the parameters used by the line-detect command:
// 1 pixel, 1 degree, 240 votes and a 50 pixel gap.
func DefaultParams() Params {
	return Params{
		Rho:        1,
		Theta:      math.Pi / 180,
		Threshold:  240,
		MaxLineGap: 50,
		Seed:       DefaultSeed,
	}
}

// Validate reports the first invalid field.
func (p Params) Validate() error {
	if !(p.Rho > 0) {
		return fmt.Errorf("rho must be positive, got %v", p.Rho)
	}
	if !(p.Theta > 0) || p.Theta > math.Pi {
		return fmt.Errorf("theta must be in (0, pi], got %v", p.Theta)
	}
	if p.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", p.Threshold)
	}
	if p.MinLineLength < 0 {
		return errors.New("min_line_length must not be negative")
	}
	if p.MaxLineGap < 0 {
		return errors.New("max_line_gap must not be negative")
	}
	if p.MaxLines < 0 {
		return errors.New("max_lines must not be negative")
	}
	return nil
}

// houghSpace is the (theta, rho) vote accumulator.
type houghSpace struct {
	trig     []float32 // cos, sin pairs per angle, scaled by 1/rho
	numAngle int
	numRho   int
	offset   int
	votes    []int
}

func newHoughSpace(width, height int, rho, theta float64) *houghSpace {
	numAngle := int(math.RoundToEven(math.Pi / theta))
	numRho := int(math.RoundToEven(float64((width+height)*2+1) / rho))
	if numRho < 1 {
		numRho = 1
	}

	irho := 1 / rho
	trig := make([]float32, numAngle*2)
	for n := 0; n < numAngle; n++ {
		trig[n*2] = float32(math.Cos(float64(n)*theta) * irho)
		trig[n*2+1] = float32(math.Sin(float64(n)*theta) * irho)
	}

	return &houghSpace{
		trig:     trig,
		numAngle: numAngle,
		numRho:   numRho,
		offset:   (numRho - 1) / 2,
		votes:    make([]int, numAngle*numRho),
	}
}

// cell returns the accumulator index of (x, y) at angle n.
func (h *houghSpace) cell(x, y, n int) (int, bool) {
	// The explicit conversions keep each product rounded to float32.
	v := float32(float32(x)*h.trig[n*2]) + float32(float32(y)*h.trig[n*2+1])
	r := int(math.RoundToEven(float64(v))) + h.offset
	if r < 0 || r >= h.numRho {
		return 0, false
	}
	return n*h.numRho + r, true
}

// add votes for every line through (x, y) and returns the angle index of
// the first cell that reached the highest count at or above threshold.
func (h *houghSpace) add(x, y, threshold int) (angle, votes int) {
	votes = threshold - 1
	for n := 0; n < h.numAngle; n++ {
		i, ok := h.cell(x, y, n)
		if !ok {
			continue
		}
		h.votes[i]++
		if h.votes[i] > votes {
			votes = h.votes[i]
			angle = n
		}
	}
	return angle, votes
}

func (h *houghSpace) remove(x, y int) {
	for n := 0; n < h.numAngle; n++ {
		if i, ok := h.cell(x, y, n); ok {
			h.votes[i]--
		}
	}
}

// DetectSegments finds line segments in a binary image using the
// progressive probabilistic Hough transform.
//
// Every non-zero pixel of bin is a feature point. Points are visited in a
// pseudo-random order fixed by Params.Seed. Each visited point votes for all
// lines through it; once one of those lines collects Params.Threshold votes
// the line is traced from the point in both directions, bridging runs of at
// most Params.MaxLineGap missing pixels. The traced pixels are removed from
// the image and their votes withdrawn, so each pixel contributes to at most
// one segment.
//
// The transform runs natively unless the binary is built with the gocv tag;
// Backend reports which one is compiled in.
//
// Parameters:
//   - bin: Binary image. Any non-zero value counts as set.
//   - p: Transform parameters, see DefaultParams.
//
// Returns:
//   - []Segment: Detected segments in detection order. Nil when nothing
//     reached the threshold; this is not an error.
//   - error: Non-nil if p is invalid or the backend fails.
func DetectSegments(bin *image.Gray, p Params) ([]Segment, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hough parameters: %w", err)
	}

	bounds := bin.Bounds()
	if bounds.Empty() {
		return nil, nil
	}

	segments, err := houghLinesP(bin, p)
	if err != nil {
		return nil, fmt.Errorf("%s hough transform failed: %w", Backend, err)
	}
	if len(segments) == 0 {
		return nil, nil
	}
	for i := range segments {
		segments[i].X1 += bounds.Min.X
		segments[i].Y1 += bounds.Min.Y
		segments[i].X2 += bounds.Min.X
		segments[i].Y2 += bounds.Min.Y
	}
	return segments, nil
}

// progressiveHough is the native transform. Segments are relative to
// bin.Bounds().Min.
func progressiveHough(bin *image.Gray, p Params) []Segment {
	bounds := bin.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Collect feature points
	mask := make([]bool, width*height)
	points := make([]image.Point, 0)
	for y := 0; y < height; y++ {
		off := bin.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		row := bin.Pix[off : off+width]
		for x, v := range row {
			if v != 0 {
				mask[y*width+x] = true
				points = append(points, image.Pt(x, y))
			}
		}
	}

	space := newHoughSpace(width, height, p.Rho, p.Theta)
	random := newRNG(p.Seed)
	var segments []Segment

	for count := len(points); count > 0; count-- {
		idx := random.intn(count)
		pt := points[idx]
		points[idx] = points[count-1]

		// Already consumed by an earlier segment
		if !mask[pt.Y*width+pt.X] {
			continue
		}

		angle, votes := space.add(pt.X, pt.Y, p.Threshold)
		if votes < p.Threshold {
			continue
		}

		w := newLineWalk(pt, space.trig[angle*2], space.trig[angle*2+1])

		var ends [2]image.Point
		for k := 0; k < 2; k++ {
			gap := 0
			w.each(k, width, height, func(q image.Point) bool {
				if mask[q.Y*width+q.X] {
					gap = 0
					ends[k] = q
					return true
				}
				gap++
				return gap <= p.MaxLineGap
			})
		}

		good := abs(ends[1].X-ends[0].X) >= p.MinLineLength ||
			abs(ends[1].Y-ends[0].Y) >= p.MinLineLength

		// Clear the traced pixels, withdrawing their votes if the segment is kept
		for k := 0; k < 2; k++ {
			w.each(k, width, height, func(q image.Point) bool {
				if i := q.Y*width + q.X; mask[i] {
					if good {
						space.remove(q.X, q.Y)
					}
					mask[i] = false
				}
				return q != ends[k]
			})
		}

		if !good {
			continue
		}

		segments = append(segments, Segment{X1: ends[0].X, Y1: ends[0].Y, X2: ends[1].X, Y2: ends[1].Y})
		if p.MaxLines > 0 && len(segments) >= p.MaxLines {
			break
		}
	}

	return segments
}

// lineWalk steps along a line one pixel at a time on its major axis, using
// fixed-point arithmetic on the minor axis.
type lineWalk struct {
	x0, y0 int
	dx, dy int
	xMajor bool
}

// newLineWalk builds a walk through start along the line whose normal is
// (cos, sin).
func newLineWalk(start image.Point, cos, sin float32) lineWalk {
	a := -sin
	b := cos
	w := lineWalk{x0: start.X, y0: start.Y}

	absA := float32(math.Abs(float64(a)))
	absB := float32(math.Abs(float64(b)))
	const one = float32(1 << fixedShift)

	if absA > absB {
		w.xMajor = true
		w.dx = 1
		if a <= 0 {
			w.dx = -1
		}
		w.dy = int(math.RoundToEven(float64(float32(b*one) / absA)))
		w.y0 = w.y0<<fixedShift + 1<<(fixedShift-1)
	} else {
		w.dy = 1
		if b <= 0 {
			w.dy = -1
		}
		w.dx = int(math.RoundToEven(float64(float32(a*one) / absB)))
		w.x0 = w.x0<<fixedShift + 1<<(fixedShift-1)
	}
	return w
}

// each visits pixels from the start point in direction k (0 forward, 1
// backward) until it leaves the width x height area or visit returns false.
func (w lineWalk) each(k, width, height int, visit func(image.Point) bool) {
	x, y, dx, dy := w.x0, w.y0, w.dx, w.dy
	if k > 0 {
		dx, dy = -dx, -dy
	}
	for ; ; x, y = x+dx, y+dy {
		var q image.Point
		if w.xMajor {
			q = image.Pt(x, y>>fixedShift)
		} else {
			q = image.Pt(x>>fixedShift, y)
		}
		if q.X < 0 || q.X >= width || q.Y < 0 || q.Y >= height {
			return
		}
		if !visit(q) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
