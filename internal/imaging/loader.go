package imaging

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// LoadError reports that an input image could not be opened or decoded.
//
// It wraps the underlying cause, so errors.Is(err, fs.ErrNotExist) works for
// missing files.
type LoadError struct {
	// Path is the file that failed to load.
	Path string

	// Err is the open or decode error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are JPEG, PNG,
//     GIF, BMP, TIFF and WebP. The format is detected from the file contents,
//     not the extension.
//
// Returns:
//   - image.Image: The decoded image. JPEG images are rotated according to
//     their EXIF orientation tag.
//   - error: A *LoadError if the file does not exist, cannot be read, or is
//     not a decodable image.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that recognized the file contents: "png",
	// "jpeg", "gif", "bmp", "tiff", "webp", or "unknown".
	Format string `json:"format"`

	// HasAlpha reports whether any pixel is not fully opaque. Images whose
	// color model cannot report opacity count as opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Describe returns metadata for an image already loaded from path.
//
// The format is sniffed from the file header, as Load does, so the file
// extension does not matter.
//
// Returns an error only if the file cannot be stat'd or opened.
func Describe(path string, img image.Image) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	format := "unknown"
	if _, name, err := image.DecodeConfig(f); err == nil {
		format = name
	}

	hasAlpha := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
