// Command satcheck evaluates the collision checks of a YAML scene file.
//
//	satcheck -scene scene.yaml [-workers 4] [-log-level info] [-format text|yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinyuan70940/collision/scene"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type options struct {
	scenePath string
	workers   int
	logLevel  string
	format    string
}

func main() {
	var opts options
	flag.StringVar(&opts.scenePath, "scene", "", "path of the YAML scene file")
	flag.IntVar(&opts.workers, "workers", 0, "number of concurrent workers, overrides the scene setting")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flag.StringVar(&opts.format, "format", "text", "output format: text or yaml")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "satcheck:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if opts.scenePath == "" {
		return fmt.Errorf("-scene is required")
	}

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := scene.LoadFile(opts.scenePath)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", zap.String("path", opts.scenePath), zap.Int("shapes", len(s.Shapes)))

	reports, err := s.Evaluate(ctx, logger, opts.workers)
	if err != nil {
		return err
	}

	return write(out, opts.format, reports)
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func write(out io.Writer, format string, reports []scene.Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, r := range reports {
			if !r.Colliding {
				fmt.Fprintf(out, "%s %s: no collision\n", r.A, r.B)
				continue
			}
			fmt.Fprintf(out, "%s %s: collision, mtv axis (%.4f, %.4f) magnitude %.4f\n",
				r.A, r.B, r.Axis[0], r.Axis[1], r.Magnitude)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
