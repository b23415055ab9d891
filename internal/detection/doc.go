// Package detection finds straight line segments in binary images.
//
// The package implements the progressive probabilistic Hough transform. Rather
// than accumulating votes from every feature point and then searching the
// accumulator for peaks, it visits points in a pseudo-random order, lets each
// point vote, and traces a segment as soon as a (rho, theta) cell reaches the
// vote threshold. Traced pixels are removed together with their votes, so
// dense images converge after visiting a fraction of their points.
//
// # Accumulator
//
// A line is parameterized by its normal: x*cos(theta) + y*sin(theta) = rho.
// Theta is sampled in [0, pi) with step Params.Theta; rho is quantized with
// step Params.Rho and offset so that negative distances fit the accumulator.
//
// # Tracing
//
// Tracing walks the candidate line one pixel at a time along its major axis
// (the axis along which it changes fastest) and keeps the last set pixel seen
// in each direction. A walk stops when it leaves the image or after more than
// Params.MaxLineGap consecutive unset pixels, which is how collinear pieces
// separated by short gaps merge into one segment.
//
// # Determinism
//
// The visiting order comes from a small multiply-with-carry generator seeded
// with Params.Seed. The same image and parameters always produce the same
// segments in the same order.
//
// # Backends
//
// The transform is pure Go by default. Building with -tags gocv runs
// OpenCV's HoughLinesP instead, which requires OpenCV to be installed.
// OpenCV uses DefaultSeed, so both backends return the same segments for
// default parameters; other seeds always use the Go transform.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Segment endpoints are pixel centers and both are inclusive
package detection
