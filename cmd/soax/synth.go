package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/snakefile"
	"github.com/NoSuchProcess/SOAX/volume"
)

func newSynthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth <out.png>",
		Short: "Render straight synthetic filaments into an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runSynth,
	}
	f := cmd.Flags()
	f.Int("width", 128, "image width")
	f.Int("height", 128, "image height")
	f.StringArray("line", nil, "filament as x0,y0,x1,y1 (repeatable)")
	f.Float64("foreground", 1000, "peak intensity added on a filament")
	f.Float64("background", 100, "background intensity")
	f.Float64("sigma", 1.5, "filament profile width")
	f.Float64("noise", 0, "Gaussian noise standard deviation")
	f.Int64("seed", volume.DefaultSeed, "noise seed")
	f.String("truth", "", "also write the filaments as a snake file")

	return cmd
}

func runSynth(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	w, _ := f.GetInt("width")
	h, _ := f.GetInt("height")
	lines, _ := f.GetStringArray("line")
	opts := volume.SynthOptions{}
	opts.Foreground, _ = f.GetFloat64("foreground")
	opts.Background, _ = f.GetFloat64("background")
	opts.Sigma, _ = f.GetFloat64("sigma")
	opts.Noise, _ = f.GetFloat64("noise")
	opts.Seed, _ = f.GetInt64("seed")
	truth, _ := f.GetString("truth")

	curves := make([][]geom.Point, 0, len(lines))
	for _, l := range lines {
		var x0, y0, x1, y1 float64
		if _, err := fmt.Sscanf(l, "%g,%g,%g,%g", &x0, &y0, &x1, &y1); err != nil {
			return errors.Wrapf(err, "line %q", l)
		}
		curves = append(curves, []geom.Point{geom.P(x0, y0, 0), geom.P(x1, y1, 0)})
	}

	img, err := volume.Synthesize(grid.Size{w, h, 1}, curves, opts)
	if err != nil {
		return err
	}
	if err := volume.SaveImage(args[0], img, 0); err != nil {
		return err
	}
	if truth == "" {
		return nil
	}

	frame := snakefile.Frame{}
	for _, c := range curves {
		frame.Curves = append(frame.Curves, snakefile.Curve{Open: true, Points: c})
	}

	return snakefile.WriteFile(truth, &snakefile.Document{Image: args[0], Frames: []snakefile.Frame{frame}})
}
