package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/line-detect/internal/imaging"
	"github.com/ironsheep/line-detect/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// loadFailureMessage is printed to stderr when the input image cannot be read.
const loadFailureMessage = "Could not read the image."

const usage = `line-detect - detect straight lines in an image

Usage: line-detect [input [output]]

Reads input (default sample.jpg), detects line segments with a probabilistic
Hough transform and writes the image with the segments drawn in blue to
output (default output.png). Nothing is written when no segment is found.

Options:
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables:
  LINE_DETECT_LOG_LEVEL=debug    Log level: debug, info, warn (default), error
  LINE_DETECT_LOG_FORMAT=json    Log format: text (default) or json
`

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("line-detect %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Print(usage)
			return
		}
	}

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "line-detect: %v\n\n%s", err, usage)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, os.Getenv("LINE_DETECT_LOG_LEVEL"), os.Getenv("LINE_DETECT_LOG_FORMAT"))
	os.Exit(run(cfg, logger, os.Stderr))
}

// parseArgs applies the optional positional input and output paths to the
// default configuration.
func parseArgs(args []string) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if len(args) > 2 {
		return cfg, fmt.Errorf("expected at most 2 arguments, got %d", len(args))
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return cfg, fmt.Errorf("unknown option %q", a)
		}
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}
	return cfg, nil
}

// newLogger configures logging to w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if level == "" || err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if level != "" && err != nil {
		logger.WithField("level", level).Warn("unknown log level, using warn")
	}
	return logger
}

// run executes the pipeline and maps its outcome to an exit status.
func run(cfg pipeline.Config, logger *logrus.Logger, stderr io.Writer) int {
	logger.WithFields(logrus.Fields{
		"version": Version,
		"input":   cfg.InputPath,
		"output":  cfg.OutputPath,
	}).Debug("starting line detection")

	result, err := pipeline.Run(cfg, logger)
	if err != nil {
		var loadErr *imaging.LoadError
		if errors.As(err, &loadErr) {
			logger.WithError(loadErr.Err).WithField("path", loadErr.Path).Debug("load failed")
			fmt.Fprintln(stderr, loadFailureMessage)
			return 1
		}
		logger.WithError(err).Error("line detection failed")
		return 1
	}

	if !result.Written {
		logger.WithField("input", result.InputPath).Debug("no lines found")
	}
	return 0
}
