package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the command line flags
type options struct {
	scene   string
	backend string
	width   int
	height  int
	aa      int
	workers int
	depth   int
	output  string
	list    bool
}

func defaultOptions() options {
	cfg := renderer.DefaultConfig()
	return options{
		scene:   "default",
		backend: renderer.BackendParallel,
		width:   400,
		height:  225,
		workers: cfg.NumWorkers,
		depth:   cfg.MaxDepth,
		output:  "output",
	}
}

func newRootCommand() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "raytracer",
		Short: "Whitted ray tracer",
		Long: "Renders a preset scene with a sequential, parallel or GPU backend.\n" +
			"Output is saved to <output>/<scene>/render_<timestamp>.png",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				printScenes(cmd)
				return nil
			}
			filename, stats, err := run(opts)
			if err != nil {
				return err
			}
			cmd.Printf("Render completed in %v (%d samples, %.0f rays/s)\n",
				stats.Elapsed, stats.TotalSamples, stats.RaysPerSecond())
			cmd.Printf("Render saved as %s\n", filename)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scene, "scene", opts.scene, "Scene preset: "+strings.Join(scene.Names(), ", "))
	flags.StringVar(&opts.backend, "backend", opts.backend, "Backend: "+strings.Join(renderer.BackendKinds(), ", "))
	flags.IntVar(&opts.width, "width", opts.width, "Image width in pixels")
	flags.IntVar(&opts.height, "height", opts.height, "Image height in pixels")
	flags.IntVar(&opts.aa, "aa", opts.aa, "Antialiasing grid: 0 (off), 2 or 3")
	flags.IntVar(&opts.workers, "workers", opts.workers, "Parallel workers (0 = CPU count)")
	flags.IntVar(&opts.depth, "depth", opts.depth, "Maximum reflection and refraction depth")
	flags.StringVar(&opts.output, "output", opts.output, "Output directory")
	flags.BoolVar(&opts.list, "list", false, "List available scenes and exit")

	// glog registers its flags on the standard flag set
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

// run renders the selected preset and writes it as a PNG, returning the
// file name.
func run(opts options) (string, renderer.RenderStats, error) {
	preset, err := scene.Create(opts.scene, opts.width, opts.height)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	if err := preset.Camera.SetAntialiasing(opts.aa); err != nil {
		return "", renderer.RenderStats{}, err
	}

	cfg := renderer.DefaultConfig()
	cfg.MaxDepth = opts.depth
	cfg.NumWorkers = opts.workers

	backend, err := renderer.NewBackend(opts.backend, cfg, renderer.NewGlogLogger())
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	defer renderer.CloseBackend(backend)

	glog.Infof("Rendering %q at %dx%d with the %s backend", opts.scene, opts.width, opts.height, backend.Name())
	canvas, stats, err := backend.Render(preset.Scene, preset.Camera)
	if err != nil {
		return "", renderer.RenderStats{}, fmt.Errorf("render %s: %w", opts.scene, err)
	}

	// Create output directory for this scene
	outputDir := filepath.Join(opts.output, opts.scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", stats, fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := imaging.Save(canvas.ToImage(), filename); err != nil {
		return "", stats, fmt.Errorf("saving PNG: %w", err)
	}
	return filename, stats, nil
}

func printScenes(cmd *cobra.Command) {
	for _, group := range scene.ListScenes().Groups {
		cmd.Printf("%s:\n", group.Name)
		for _, s := range group.Scenes {
			cmd.Printf("  %-10s %s\n", s.ID, s.Description)
		}
	}
}

func main() {
	defer glog.Flush()
	if err := fang.Execute(context.Background(), newRootCommand()); err != nil {
		os.Exit(1)
	}
}
