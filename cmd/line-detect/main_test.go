package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		input   string
		output  string
		wantErr bool
	}{
		{"defaults", nil, "sample.jpg", "output.png", false},
		{"input only", []string{"in.png"}, "in.png", "output.png", false},
		{"input and output", []string{"in.png", "out.png"}, "in.png", "out.png", false},
		{"too many", []string{"a", "b", "c"}, "", "", true},
		{"unknown flag", []string{"--threshold=10"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			if cfg.InputPath != tt.input || cfg.OutputPath != tt.output {
				t.Errorf("paths = %q, %q; want %q, %q", cfg.InputPath, cfg.OutputPath, tt.input, tt.output)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, "debug", "json")
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.Info("hello")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}

	if got := newLogger(&buf, "", "").GetLevel(); got != logrus.WarnLevel {
		t.Errorf("default level = %v, want warn", got)
	}
	if got := newLogger(&buf, "loud", "").GetLevel(); got != logrus.WarnLevel {
		t.Errorf("unknown level = %v, want warn", got)
	}
}

func TestRun_LoadFailureMessage(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := parseArgs([]string{filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "out.png")})

	var stderr, logs bytes.Buffer
	code := run(cfg, newLogger(&logs, "", ""), &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := strings.TrimSpace(stderr.String()); got != "Could not read the image." {
		t.Errorf("stderr = %q", got)
	}
	if _, err := os.Stat(cfg.OutputPath); err == nil {
		t.Error("output should not be created")
	}
}

func TestRun_NoLines(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "blank.png")
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	f, err := os.Create(input)
	if err != nil {
		t.Fatalf("failed to create input: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}
	f.Close()

	cfg, _ := parseArgs([]string{input, filepath.Join(dir, "out.png")})
	var stderr, logs bytes.Buffer
	if code := run(cfg, newLogger(&logs, "", ""), &stderr); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output %q", stderr.String())
	}
}

func TestRun_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "line.png")
	img := image.NewNRGBA(image.Rect(0, 0, 300, 200))
	for x := 10; x < 290; x++ {
		img.Set(x, 100, color.White)
	}
	f, err := os.Create(input)
	if err != nil {
		t.Fatalf("failed to create input: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}
	f.Close()

	cfg, _ := parseArgs([]string{input, filepath.Join(dir, "missing", "out.png")})
	var stderr, logs bytes.Buffer
	if code := run(cfg, newLogger(&logs, "", ""), &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Contains(stderr.String(), "Could not read the image.") {
		t.Error("write failures must not print the load failure message")
	}
	if !strings.Contains(logs.String(), "line detection failed") {
		t.Errorf("expected error log, got %q", logs.String())
	}
}
