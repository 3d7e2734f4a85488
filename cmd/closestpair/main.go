// Command closestpair prints the minimum pairwise Euclidean distance of a
// planar point set.
//
// Usage:
//
//	closestpair [flags] [file|-]
//
// Points are read from the file argument or STDIN, as text ("x y" per line)
// or YAML/JSON; -gen replaces the input with a generated set. The distance
// is printed with -precision decimals (6 by default).
//
// Exit codes: 0 ok, 2 usage or configuration error, 3 input error,
// 4 brute-force cross-check mismatch.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/internal/config"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/internal/pointio"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/pointgen"
)

const (
	exitOK       = 0
	exitUsage    = 2
	exitInput    = 3
	exitMismatch = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	config    string
	format    string
	window    int
	earlyExit bool
	leaf      int
	precision int
	logLevel  string
	pair      bool
	brute     bool
	gen       string
	n         int
	seed      int64
}

func run(args, environ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f flags
	fs := flag.NewFlagSet("closestpair", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "YAML/JSON config file (default $"+config.EnvConfigFile+")")
	fs.StringVar(&f.format, "format", "", "input format: auto, text, yaml, json")
	fs.IntVar(&f.window, "window", 0, "strip neighbours compared per point (>= 7)")
	fs.BoolVar(&f.earlyExit, "early-exit", true, "stop the strip scan once the y-gap reaches the best distance")
	fs.IntVar(&f.leaf, "leaf", 0, "exhaustive base case when r-l <= leaf")
	fs.IntVar(&f.precision, "precision", 0, "decimals printed for the distance")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&f.pair, "pair", false, "also print the closest pair")
	fs.BoolVar(&f.brute, "brute", false, "cross-check against the O(n^2) baseline")
	fs.StringVar(&f.gen, "gen", "", "generate input: uniform, grid, collinear, vertical, circle, clustered, cities")
	fs.IntVar(&f.n, "n", 1000, "number of generated points")
	fs.Int64Var(&f.seed, "seed", 0, "generator seed (0 = default)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "closestpair: at most one input file")
		return exitUsage
	}

	cfg, err := resolveConfig(fs, f, environ)
	if err != nil {
		fmt.Fprintf(stderr, "closestpair: %v\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	pts, err := loadPoints(f, cfg, fs.Arg(0), stdin)
	if err != nil {
		logger.Error("load points", zap.Error(err))
		fmt.Fprintf(stderr, "closestpair: %v\n", err)
		return exitInput
	}
	logger.Debug("points loaded", zap.Int("n", len(pts)), zap.String("source", sourceName(f, fs.Arg(0))))

	opts := cfg.Options()
	start := time.Now()
	res, err := closestpair.Closest(pts, &opts)
	if err != nil {
		logger.Error("closest pair", zap.Error(err))
		fmt.Fprintf(stderr, "closestpair: %v\n", err)
		if errors.Is(err, closestpair.ErrBadOption) {
			return exitUsage
		}
		return exitInput
	}
	logger.Debug("closest pair computed",
		zap.Int("n", len(pts)),
		zap.Float64("distance", res.Distance),
		zap.Int("comparisons", res.Stats.Comparisons),
		zap.Int("strip_points", res.Stats.StripPoints),
		zap.Int("max_depth", res.Stats.MaxDepth),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("window", opts.Window),
		zap.Bool("early_exit", opts.EarlyExit),
	)

	if f.brute {
		start = time.Now()
		ref, err := closestpair.BruteForce(pts)
		if err != nil {
			logger.Error("brute force", zap.Error(err))
			return exitInput
		}
		logger.Debug("brute force computed",
			zap.Float64("distance", ref.Distance),
			zap.Int("comparisons", ref.Stats.Comparisons),
			zap.Duration("elapsed", time.Since(start)),
		)
		if ref.Distance != res.Distance {
			logger.Error("cross-check mismatch",
				zap.Float64("divide_and_conquer", res.Distance),
				zap.Float64("brute_force", ref.Distance),
			)
			fmt.Fprintf(stderr, "closestpair: mismatch: %v != %v\n", res.Distance, ref.Distance)
			return exitMismatch
		}
	}

	if err := pointio.WriteResult(stdout, res, cfg.Precision, f.pair); err != nil {
		logger.Error("write result", zap.Error(err))
		return exitInput
	}

	return exitOK
}

// resolveConfig layers defaults, the config file, the environment and the
// explicitly set flags, then validates the result.
func resolveConfig(fs *flag.FlagSet, f flags, environ []string) (config.Config, error) {
	cfg := config.Defaults()

	path := f.config
	if path == "" {
		path = lookupEnv(environ, config.EnvConfigFile)
	}
	if path != "" {
		fileCfg, err := config.Load(path, nil)
		if err != nil {
			return cfg, err
		}
		cfg = config.Merge(cfg, fileCfg)
	}

	envCfg, err := config.FromEnv(environ)
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, envCfg)

	var over config.Config
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "format":
			over.Format = f.format
		case "window":
			over.Window = f.window
			if f.window == 0 {
				over.Window = -1 // explicit 0 must still fail validation
			}
		case "early-exit":
			over.EarlyExit = &f.earlyExit
		case "leaf":
			over.LeafSize = f.leaf
			if f.leaf == 0 {
				over.LeafSize = -1
			}
		case "precision":
			over.Precision = f.precision
			if f.precision == 0 {
				over.Precision = -1
			}
		case "log-level":
			over.LogLevel = f.logLevel
		}
	})
	cfg = config.Merge(cfg, over)

	return cfg, cfg.Validate()
}

func loadPoints(f flags, cfg config.Config, arg string, stdin io.Reader) ([]geometry.Point, error) {
	if f.gen != "" {
		return generate(f.gen, f.n, f.seed)
	}

	format, err := pointio.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if arg == "" || arg == "-" {
		return pointio.Read(stdin, format)
	}

	if format == pointio.FormatAuto {
		format = pointio.FormatFromPath(arg)
	}
	file, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return pointio.Read(file, format)
}

func generate(name string, n int, seed int64) ([]geometry.Point, error) {
	opt := pointgen.WithSeed(seed)
	switch strings.ToLower(name) {
	case "uniform":
		return pointgen.Uniform(n, opt)
	case "grid":
		side := 1
		for side*side < n {
			side++
		}
		pts, err := pointgen.Grid(side, side, opt)
		if err != nil {
			return nil, err
		}
		return pts[:max(n, 0)], nil
	case "collinear":
		return pointgen.Collinear(n, 0.5, opt)
	case "vertical":
		return pointgen.Vertical(n, opt)
	case "circle":
		return pointgen.Circle(n, opt)
	case "clustered":
		return pointgen.Clustered(n, max(1, n/100), opt)
	case "cities":
		return pointgen.Cities(), nil
	}
	return nil, fmt.Errorf("unknown generator %q", name)
}

func newLogger(w io.Writer, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)).Named("closestpair")
}

func sourceName(f flags, arg string) string {
	switch {
	case f.gen != "":
		return "gen:" + f.gen
	case arg == "" || arg == "-":
		return "stdin"
	}
	return arg
}

func lookupEnv(environ []string, key string) string {
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v
		}
	}
	return ""
}
