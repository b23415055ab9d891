package pipeline

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/ironsheep/line-detect/internal/detection"
	"github.com/ironsheep/line-detect/internal/imaging"
)

// Defaults used by the line-detect command.
const (
	DefaultInputPath         = "sample.jpg"
	DefaultOutputPath        = "output.png"
	DefaultThresholdCutoff   = 150
	DefaultThresholdMaxValue = 255
	DefaultLineColor         = "#0000ff"
)

// Config holds every input of a pipeline run.
type Config struct {
	// InputPath is the image to read.
	InputPath string `json:"input_path"`

	// OutputPath receives the annotated PNG. An existing file is overwritten.
	OutputPath string `json:"output_path"`

	// ThresholdCutoff is the highest intensity that binarizes to 0.
	ThresholdCutoff uint8 `json:"threshold_cutoff"`

	// ThresholdMaxValue is written for intensities above the cutoff.
	ThresholdMaxValue uint8 `json:"threshold_max_value"`

	// Invert swaps the binarization outputs so dark pixels become the
	// feature points.
	Invert bool `json:"invert"`

	// Hough configures segment detection.
	Hough detection.Params `json:"hough"`

	// LineColor is the "#rrggbb" color segments are drawn with.
	LineColor string `json:"line_color"`

	// SaveWhenEmpty writes the unannotated image when no segment is found.
	// By default nothing is written in that case.
	SaveWhenEmpty bool `json:"save_when_empty"`
}

// DefaultConfig returns the configuration of the line-detect command.
func DefaultConfig() Config {
	return Config{
		InputPath:         DefaultInputPath,
		OutputPath:        DefaultOutputPath,
		ThresholdCutoff:   DefaultThresholdCutoff,
		ThresholdMaxValue: DefaultThresholdMaxValue,
		Hough:             detection.DefaultParams(),
		LineColor:         DefaultLineColor,
	}
}

// Validate checks the config before any file is touched.
func (c Config) Validate() error {
	_, err := c.validate()
	return err
}

// validate checks the config and returns the parsed line color.
func (c Config) validate() (color.NRGBA, error) {
	if c.InputPath == "" {
		return color.NRGBA{}, errors.New("input_path must be set")
	}
	if c.OutputPath == "" {
		return color.NRGBA{}, errors.New("output_path must be set")
	}
	if c.ThresholdMaxValue == 0 {
		return color.NRGBA{}, errors.New("threshold_max_value must be non-zero")
	}
	if err := c.Hough.Validate(); err != nil {
		return color.NRGBA{}, errors.Wrap(err, "hough")
	}
	lineColor, err := imaging.ParseHexColor(c.LineColor)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(err, "line_color")
	}
	return lineColor, nil
}
