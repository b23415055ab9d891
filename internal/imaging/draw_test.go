package imaging

import (
	"image"
	"image/color"
	"testing"
)

var blue = color.NRGBA{0, 0, 255, 255}

// changedPixels returns the points where a and b differ
func changedPixels(a, b *image.NRGBA) []image.Point {
	var pts []image.Point
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

func newWhiteNRGBA(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestDrawLine_Horizontal(t *testing.T) {
	img := newWhiteNRGBA(20, 10)
	orig := newWhiteNRGBA(20, 10)

	DrawLine(img, image.Pt(2, 5), image.Pt(12, 5), blue)

	changed := changedPixels(orig, img)
	if len(changed) != 11 {
		t.Fatalf("expected 11 changed pixels, got %d", len(changed))
	}
	for _, p := range changed {
		if p.Y != 5 || p.X < 2 || p.X > 12 {
			t.Errorf("unexpected pixel %v", p)
		}
		if img.NRGBAAt(p.X, p.Y) != blue {
			t.Errorf("pixel %v not blue", p)
		}
	}
}

func TestDrawLine_Diagonal(t *testing.T) {
	img := newWhiteNRGBA(100, 100)
	DrawLine(img, image.Pt(90, 90), image.Pt(10, 10), blue)

	for i := 10; i <= 90; i++ {
		if img.NRGBAAt(i, i) != blue {
			t.Fatalf("pixel (%d,%d) not drawn", i, i)
		}
	}
	if n := len(changedPixels(newWhiteNRGBA(100, 100), img)); n != 81 {
		t.Errorf("expected 81 changed pixels, got %d", n)
	}
}

func TestDrawLine_Steep8Connected(t *testing.T) {
	img := newWhiteNRGBA(20, 40)
	DrawLine(img, image.Pt(3, 2), image.Pt(9, 35), blue)

	// One pixel per row for a steep line
	for y := 2; y <= 35; y++ {
		count := 0
		for x := 0; x < 20; x++ {
			if img.NRGBAAt(x, y) == blue {
				count++
			}
		}
		if count != 1 {
			t.Errorf("row %d has %d pixels, want 1", y, count)
		}
	}
	if img.NRGBAAt(3, 2) != blue || img.NRGBAAt(9, 35) != blue {
		t.Error("endpoints not drawn")
	}
}

func TestDrawLine_SinglePoint(t *testing.T) {
	img := newWhiteNRGBA(5, 5)
	DrawLine(img, image.Pt(2, 3), image.Pt(2, 3), blue)
	if n := len(changedPixels(newWhiteNRGBA(5, 5), img)); n != 1 {
		t.Errorf("expected 1 changed pixel, got %d", n)
	}
}

func TestDrawLine_Clipped(t *testing.T) {
	img := newWhiteNRGBA(10, 10)
	DrawLine(img, image.Pt(-5, 5), image.Pt(20, 5), blue)

	if img.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("bounds changed to %v", img.Bounds())
	}
	for x := 0; x < 10; x++ {
		if img.NRGBAAt(x, 5) != blue {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}
}

func TestCopy(t *testing.T) {
	src := createTestImage(8, 6, color.RGBA{1, 2, 3, 255})
	dst := Copy(src)

	if dst.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", dst.Bounds(), src.Bounds())
	}
	DrawLine(dst, image.Pt(0, 0), image.Pt(7, 0), blue)
	if src.RGBAAt(0, 0) != (color.RGBA{1, 2, 3, 255}) {
		t.Error("drawing on the copy modified the source")
	}
}

func TestCopy_MovesBoundsToOrigin(t *testing.T) {
	src := createTestImage(10, 10, color.White).SubImage(image.Rect(2, 3, 7, 9))
	dst := Copy(src)
	if dst.Bounds() != image.Rect(0, 0, 5, 6) {
		t.Errorf("bounds = %v, want (0,0)-(5,6)", dst.Bounds())
	}
}
