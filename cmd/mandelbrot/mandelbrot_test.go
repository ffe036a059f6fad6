package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/willbeason/escape-time/pkg/colorize"
	"github.com/willbeason/escape-time/pkg/render"
	"github.com/willbeason/escape-time/pkg/sink"
	"github.com/willbeason/escape-time/pkg/viewport"
)

func run(args ...string) error {
	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestRun_WritesImage(t *testing.T) {
	for _, mode := range []string{"scalar", "vector"} {
		t.Run(mode, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "m.png")
			err := run("--width", "40", "--height", "30", "--max-iterations", "50",
				"--mode", mode, "--lanes", "8", "--colors", "sine", "-o", path)
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			got, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}

			r, err := render.New(render.Config{
				Viewport:      viewport.Viewport{Width: 40, Height: 30, XScale: 4, YScale: 4},
				MaxIterations: 50,
				Mode:          render.ModeScalar,
				Colors:        colorize.PolicySinusoidal,
			})
			if err != nil {
				t.Fatal(err)
			}
			want, err := r.Render()
			if err != nil {
				t.Fatal(err)
			}
			defer want.Release()

			var buf bytes.Buffer
			for y := 0; y < 30; y++ {
				for x := 0; x < 40; x++ {
					cr, cg, cb, _ := got.At(x, y).RGBA()
					buf.Write([]byte{byte(cr >> 8), byte(cg >> 8), byte(cb >> 8)})
				}
			}
			if !bytes.Equal(buf.Bytes(), want.Pix()) {
				t.Error("written image differs from the scalar reference render")
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  error
	}{
		{"bad mode", []string{"--mode", "gpu", "-o", filepath.Join(dir, "a.png")}, exitFailure, render.ErrConfig},
		{"bad colors", []string{"--colors", "rainbow", "-o", filepath.Join(dir, "a.png")}, exitFailure, colorize.ErrUnknownPolicy},
		{"bad size", []string{"--width", "0", "-o", filepath.Join(dir, "a.png")}, exitFailure, render.ErrConfig},
		{"bad extension", []string{"--width", "8", "--height", "8", "-o", filepath.Join(dir, "a.gif")}, exitFailure, sink.ErrUnknownFormat},
		{"too large", []string{"--width", "1048576", "--height", "4096", "--mode", "scalar", "-o", filepath.Join(dir, "a.png")}, exitAllocation, render.ErrAllocation},
		{"unwritable", []string{"--width", "8", "--height", "8", "-o", filepath.Join(dir, "missing", "a.png")}, exitSink, sink.ErrSink},
		{"extra args", []string{"extra"}, exitFailure, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args...)
			if err == nil {
				t.Fatal("run() succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if got := exitCode(err); got != tt.wantCode {
				t.Errorf("exitCode(%v) = %d, want %d", err, got, tt.wantCode)
			}
		})
	}
}

func TestExitCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", sink.ErrSink)
	if got := exitCode(err); got != exitSink {
		t.Errorf("exitCode() = %d, want %d", got, exitSink)
	}
}
