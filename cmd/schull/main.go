package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/schull"
	"github.com/osuushi/schull/dbg"
	"github.com/osuushi/schull/internal"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Compute the strictly convex hull of a point ring. Input is a file of
// newline separated points in the form "x;y", in ring order, or an SVG file
// whose first polygon is the ring.
//
// The surviving points are printed to stdout in order. The verdict of the
// alpha-shape check, and the trace if asked for, go to stderr.

type options struct {
	inputPath  string
	alpha      float64
	alphaSet   bool
	configPath string
	pngPath    string
	pngScale   float64
	showImage  bool
	trace      bool
	dump       bool
	verbose    bool
	noColor    bool
	cpuProfile string
}

func newApp() (*kingpin.Application, *options) {
	opts := &options{}
	app := kingpin.New("schull", "Strictly convex hull of a 2-D point ring.")

	app.Arg("input", "Point file (x;y per line, or .svg).").Required().StringVar(&opts.inputPath)
	app.Flag("alpha", "Circumradius threshold. Overrides the config file.").Short('a').IsSetByUser(&opts.alphaSet).Float64Var(&opts.alpha)
	app.Flag("config", "YAML config file.").Short('c').StringVar(&opts.configPath)
	app.Flag("png", "Write a debug drawing to this PNG file.").StringVar(&opts.pngPath)
	app.Flag("scale", "Pixels per unit in the debug drawing.").Default("100").Float64Var(&opts.pngScale)
	app.Flag("imgcat", "Print the debug drawing inline (iTerm only).").BoolVar(&opts.showImage)
	app.Flag("trace", "Print each reduction step.").BoolVar(&opts.trace)
	app.Flag("dump", "Pretty-print the hull.").BoolVar(&opts.dump)
	app.Flag("verbose", "Debug logging.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	app.Flag("cpuprofile", "Write a CPU profile to this directory.").StringVar(&opts.cpuProfile)
	return app, opts
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// Everything main does, returning the exit status so that deferred cleanup
// runs before the process exits.
func realMain(args []string) int {
	app, opts := newApp()
	kingpin.MustParse(app.Parse(args))

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	if opts.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.cpuProfile), profile.Quiet).Stop()
	}

	if err := run(opts, logger, os.Stdout, os.Stderr); err != nil {
		logger.Error("failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Hull points go to out; the trace and the verdict go to diag.
func run(opts *options, logger *zap.Logger, out, diag io.Writer) error {
	config, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	points, err := internal.OpenPoints(opts.inputPath)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.String("input", opts.inputPath), zap.Int("count", len(points)))

	hullOpts := []schull.Option{schull.WithLogger(logger)}
	if opts.trace {
		hullOpts = append(hullOpts, schull.WithTracer(func(step schull.Step) {
			fmt.Fprintf(diag, "removed %d (%s) radius=%g active=%d\n",
				step.Removed, dbg.Name(step.Removed), step.Radius, step.ActiveCount)
		}))
	}

	hull, err := schull.ComputeHull(points, config.Alpha, hullOpts...)
	if err != nil {
		return errors.Wrap(err, "computing hull")
	}

	if opts.dump {
		pretty.Fprintf(out, "%# v\n", hull)
	} else {
		for _, p := range hull {
			fmt.Fprintf(out, "%g;%g\n", p.X, p.Y)
		}
	}

	valid, err := schull.Validate(hull, points, config.Alpha)
	if errors.Is(err, schull.ErrRadiusTooSmall) {
		logger.Warn("hull edge has no alpha disk", zap.Error(err))
	} else if err != nil {
		return errors.Wrap(err, "validating hull")
	}

	au := aurora.NewAurora(!opts.noColor)
	if valid {
		fmt.Fprintln(diag, au.Green("strictly convex"))
	} else {
		fmt.Fprintln(diag, au.Red("not strictly convex"))
	}

	if opts.pngPath != "" {
		if err := internal.DrawHull(opts.pngPath, points, hull, config.Alpha, opts.pngScale); err != nil {
			return errors.Wrap(err, "drawing hull")
		}
		if opts.showImage {
			if err := internal.CatImage(opts.pngPath, out); err != nil {
				return errors.Wrap(err, "printing drawing")
			}
		}
	}
	return nil
}

// Defaults, then the config file, then --alpha if given.
func resolveConfig(opts *options) (Config, error) {
	config := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = LoadConfig(opts.configPath); err != nil {
			return Config{}, err
		}
	}
	if opts.alphaSet {
		config.Alpha = opts.alpha
	}
	return config, config.Validate()
}
