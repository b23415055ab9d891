// Package imaging provides the image operations used around line detection.
//
// It covers the steps before and after the Hough transform: decoding an input
// file, converting it to grayscale, binarizing it with a fixed threshold,
// drawing detected segments and encoding the annotated result as PNG. All
// operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Decoding
//
// Load accepts JPEG, PNG, GIF, BMP, TIFF and WebP. Failures are reported as a
// *LoadError so callers can tell an unreadable input apart from later errors.
//
// # Buffers
//
// Grayscale allocates a new *image.Gray. Binarize rewrites that buffer in
// place. DrawLine writes into any draw.Image; callers that need to keep the
// decoded image intact should draw onto a copy.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing, unreadable or undecodable input files
//   - Invalid color strings
//   - File creation and PNG encoding failures
package imaging
