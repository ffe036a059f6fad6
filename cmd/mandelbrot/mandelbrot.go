package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-time/pkg/colorize"
	"github.com/willbeason/escape-time/pkg/escape"
	"github.com/willbeason/escape-time/pkg/render"
	"github.com/willbeason/escape-time/pkg/sink"
	"github.com/willbeason/escape-time/pkg/viewport"
)

const (
	exitFailure    = 1
	exitAllocation = 2
	exitSink       = 3
)

type options struct {
	width, height  int
	xScale, yScale float64
	maxIterations  int
	lanes          int
	mode           string
	colors         string
	earlyExit      bool
	out            string
	verbose        bool
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set's escape times to an image",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", viewport.DefaultWidth, "image columns")
	flags.IntVar(&opts.height, "height", viewport.DefaultHeight, "image rows")
	flags.Float64Var(&opts.xScale, "x-scale", viewport.DefaultScale, "width of the complex plane shown")
	flags.Float64Var(&opts.yScale, "y-scale", viewport.DefaultScale, "height of the complex plane shown")
	flags.IntVar(&opts.maxIterations, "max-iterations", escape.DefaultMaxIterations, "iteration cap per point")
	flags.IntVar(&opts.lanes, "lanes", escape.DefaultLaneWidth(), "points evaluated per batch in vector mode")
	flags.StringVar(&opts.mode, "mode", render.ModeVector.String(), "evaluator: vector or scalar")
	flags.StringVar(&opts.colors, "colors", colorize.PolicyGrayscale.String(), "color policy: gray or sine")
	flags.BoolVar(&opts.earlyExit, "early-exit", true, "stop a batch once every lane has escaped")
	flags.StringVarP(&opts.out, "out", "o", "out.png", "output file (.png, .bmp, .tif)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-row progress")

	return cmd
}

func (o *options) config() (render.Config, error) {
	mode, err := render.ParseMode(o.mode)
	if err != nil {
		return render.Config{}, err
	}
	colors, err := colorize.ParsePolicy(o.colors)
	if err != nil {
		return render.Config{}, err
	}

	cfg := render.Config{
		Viewport: viewport.Viewport{
			Width:  o.width,
			Height: o.height,
			XScale: o.xScale,
			YScale: o.yScale,
		},
		MaxIterations: o.maxIterations,
		Mode:          mode,
		LaneWidth:     o.lanes,
		EarlyExit:     o.earlyExit,
		Colors:        colors,
	}

	return cfg, cfg.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runCmd(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	out, err := sink.NewFile(opts.out)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := newLogger(opts.verbose)
	r, err := render.New(cfg, render.WithLogger(logger))
	if err != nil {
		return err
	}

	start := time.Now()
	if err := r.Deliver(out); err != nil {
		return err
	}
	logger.Info("wrote image", "path", out.Path, "format", out.Format.String(), "elapsed", time.Since(start))

	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, render.ErrAllocation):
		return exitAllocation
	case errors.Is(err, sink.ErrSink):
		return exitSink
	default:
		return exitFailure
	}
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(exitCode(err))
	}
}
