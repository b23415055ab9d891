package pipeline

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/line-detect/internal/detection"
	"github.com/ironsheep/line-detect/internal/imaging"
)

// Result describes a completed run.
type Result struct {
	InputPath  string              `json:"input_path"`
	OutputPath string              `json:"output_path"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Segments   []detection.Segment `json:"segments"`

	// Written reports whether OutputPath was created or overwritten.
	Written bool `json:"written"`
}

// Run executes load, grayscale, binarize, detect, draw and save in order.
//
// A missing, unreadable or undecodable input yields a *imaging.LoadError and
// no output is touched. Finding no segments is not an error: the result has
// Written set to false and no file is produced unless cfg.SaveWhenEmpty is
// set. Any other error (invalid config, encode or write failure) is returned
// wrapped.
func Run(cfg Config, log logrus.FieldLogger) (*Result, error) {
	lineColor, err := cfg.validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log = log.WithField("input", cfg.InputPath)

	img, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if info, err := imaging.Describe(cfg.InputPath, img); err == nil {
		log.WithFields(logrus.Fields{
			"width":  info.Width,
			"height": info.Height,
			"format": info.Format,
			"bytes":  info.FileSizeBytes,
		}).Debug("image loaded")
	}

	// Detection works on a gray copy; segments are drawn on the color copy
	annotated := imaging.Copy(img)
	bounds := annotated.Bounds()
	result := &Result{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}

	gray := imaging.Grayscale(annotated)
	imaging.Binarize(gray, cfg.ThresholdCutoff, cfg.ThresholdMaxValue, cfg.Invert)
	log.WithFields(logrus.Fields{
		"cutoff": cfg.ThresholdCutoff,
		"invert": cfg.Invert,
	}).Debug("image binarized")

	segments, err := detection.DetectSegments(gray, cfg.Hough)
	if err != nil {
		return nil, errors.Wrap(err, "line detection failed")
	}
	result.Segments = segments
	log.WithFields(logrus.Fields{
		"backend":  detection.Backend,
		"segments": len(segments),
	}).Debug("segments detected")

	if len(segments) == 0 {
		if !cfg.SaveWhenEmpty {
			log.Info("no line segments detected, output not written")
			return result, nil
		}
		log.Info("no line segments detected, saving unannotated image")
	}

	if len(segments) > 0 {
		log.WithField("color", imaging.HexColor(lineColor)).Debug("drawing segments")
	}
	for _, s := range segments {
		imaging.DrawLine(annotated, s.Start(), s.End(), lineColor)
		log.WithField("segment", s.String()).Debug("segment drawn")
	}

	if err := imaging.SavePNG(annotated, cfg.OutputPath); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", cfg.OutputPath)
	}
	result.Written = true

	log.WithFields(logrus.Fields{
		"output":   cfg.OutputPath,
		"segments": len(segments),
	}).Info("annotated image written")

	return result, nil
}
