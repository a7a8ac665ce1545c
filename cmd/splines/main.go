// Command splines samples the curves of a scene and renders them to a PNG.
// Without -scene it draws the demo scene: a standard, a non-uniform, a
// rational and a NURBS cubic over the same six control points.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	splines "github.com/schardong/Splines"
	"github.com/schardong/Splines/internal/scene"
	"github.com/schardong/Splines/render"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("splines", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		scenePath = fs.String("scene", "", "YAML scene file, the demo scene if empty")
		output    = fs.String("out", "splines.png", "output PNG file")
		dump      = fs.String("dump", "", "also write the scene as YAML to this file")
		step      = fs.Float64("step", 0, "parameter step, overrides the scene")
		width     = fs.Int("width", 0, "image width, overrides the scene")
		height    = fs.Int("height", 0, "image height, overrides the scene")
		closed    = fs.Bool("closed", false, "include the end of clamped domains")
		workers   = fs.Int("workers", 1, "goroutines per curve")
		verbose   = fs.Bool("v", false, "log debug output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	splines.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer splines.SetLogger(nil)

	var (
		s   *scene.Scene
		err error
	)
	if *scenePath == "" {
		s, err = scene.Default()
	} else {
		s, err = scene.Load(*scenePath)
	}
	if err != nil {
		return err
	}

	if *step != 0 {
		if !(*step > 0) {
			return fmt.Errorf("step must be positive, got %g", *step)
		}
		s.Step = *step
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}

	if *dump != "" {
		if err := scene.Save(*dump, s); err != nil {
			return err
		}
	}

	opts := []splines.SampleOption{splines.WithParallel(*workers)}
	if *closed {
		opts = append(opts, splines.WithClosedEnd())
	}

	canvas := render.NewCanvas(s.Width, s.Height)
	defer canvas.Close()

	for _, shape := range s.Shapes {
		splines.Logger().Debug("drawing curve", "name", shape.Name)
		if err := render.DrawShape(canvas, shape.Shape, s.Step, opts...); err != nil {
			return fmt.Errorf("%s: %w", shape.Name, err)
		}
	}

	if err := canvas.SavePNG(*output); err != nil {
		return err
	}

	splines.Logger().Info("done", "curves", len(s.Shapes), "width", s.Width, "height", s.Height)
	return nil
}
