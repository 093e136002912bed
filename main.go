package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const scenesDir = "scenes"

// options holds the parsed command line
type options struct {
	sceneName string
	output    string
	override  renderer.CameraConfig
	seed      int64
	seedSet   bool
	logLevel  slog.Level
	help      bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	renderer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet registers the command line flags on a fresh flag set writing into opts
func newFlagSet(opts *options, logLevel *string, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name or path to a .json scene file")
	fs.StringVar(&opts.output, "out", "image.ppm", "Output file, or '-' for stdout")
	fs.IntVar(&opts.override.Width, "width", 0, "Image width in pixels (0 keeps the scene's value)")
	fs.IntVar(&opts.override.SamplesPerPixel, "samples", 0, "Samples per pixel (0 keeps the scene's value)")
	fs.IntVar(&opts.override.MaxDepth, "depth", -1, "Maximum bounce depth (-1 keeps the scene's value)")
	fs.Int64Var(&opts.seed, "seed", scene.DefaultSeed, "Sampler seed (overrides the scene's seed when given)")
	fs.StringVar(logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

// parseFlags parses args into options. Flag errors are reported to errOut.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	opts := options{override: renderer.NoOverride()}
	var logLevel string

	fs := newFlagSet(&opts, &logLevel, errOut)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})

	if err := opts.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return opts, fmt.Errorf("invalid -log-level %q: %w", logLevel, err)
	}
	return opts, nil
}

// createScene resolves the scene named on the command line and applies the seed override
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.Create(opts.sceneName)
	if err != nil {
		return nil, err
	}
	if opts.seedSet {
		s.Seed = opts.seed
	}
	return s, nil
}

func run(ctx context.Context, opts options) error {
	s, err := createScene(opts)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.output != "-" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	stats, err := s.Render(ctx, opts.override, out)
	if err != nil {
		return fmt.Errorf("rendering %q: %w", s.Name, err)
	}

	if opts.output != "-" {
		fmt.Fprintf(os.Stderr, "Render saved as %s (%dx%d, %d spp, %.0f samples/s)\n",
			opts.output, stats.Width, stats.Height, stats.SamplesPerPixel, stats.SamplesPerSecond())
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var opts options
	var logLevel string
	newFlagSet(&opts, &logLevel, w).PrintDefaults()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Available scenes:")
	scenes, err := scene.ListScenes(scenesDir)
	if err != nil {
		fmt.Fprintf(w, "  (failed to list scenes: %v)\n", err)
		return
	}
	for _, info := range scenes {
		line := fmt.Sprintf("  %-24s %s", info.ID, info.DisplayName)
		if info.Description != "" {
			line += " - " + info.Description
		}
		fmt.Fprintln(w, line)
	}
}
