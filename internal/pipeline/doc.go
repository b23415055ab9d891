// Package pipeline runs line detection on a single image file.
//
// A run is strictly sequential:
//
//  1. Load: decode the input file.
//  2. Grayscale: BT.601 luminance of a copy of the image.
//  3. Binarize: fixed cutoff, in place.
//  4. Detect: probabilistic Hough transform over the binary image.
//  5. Draw and save: segments are drawn on the color copy, which is written
//     as PNG.
//
// All parameters live in Config; DefaultConfig reproduces the line-detect
// command (sample.jpg in, output.png out, cutoff 150, 240 votes, 50 pixel
// gap, blue segments).
//
// # Outcomes
//
// Run distinguishes three outcomes the caller acts on:
//   - *imaging.LoadError: the input could not be read; nothing was written.
//   - Result.Written == false: no segment reached the vote threshold; the
//     run succeeded but produced no file.
//   - Result.Written == true: the annotated image is at Result.OutputPath.
package pipeline
