package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Copy returns an NRGBA copy of img with bounds moved to the origin, for
// drawing on without touching the decoded image.
func Copy(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// DrawLine draws a one pixel wide, 8-connected line from p1 to p2 inclusive.
//
// Pixels that fall outside dst's bounds are skipped, so endpoints may lie
// off-image. Only pixels on the line are written; the rest of dst and its
// dimensions are left unchanged.
func DrawLine(dst draw.Image, p1, p2 image.Point, c color.Color) {
	bounds := dst.Bounds()

	dx := abs(p2.X - p1.X)
	dy := -abs(p2.Y - p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}

	// Bresenham with a combined error term covers all octants
	x, y := p1.X, p1.Y
	e := dx + dy
	for {
		if (image.Point{X: x, Y: y}).In(bounds) {
			dst.Set(x, y, c)
		}
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
