package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/NoSuchProcess/SOAX/analysis"
	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/multisnake"
	"github.com/NoSuchProcess/SOAX/snakefile"
	"github.com/NoSuchProcess/SOAX/volume"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <image> <snakes>",
		Short: "Measure a saved network against its image and optional ground truth",
		Args:  cobra.ExactArgs(2),
		RunE:  runEvaluate,
	}
	f := cmd.Flags()
	f.String("truth", "", "ground-truth snake file")
	f.Int("frame", 0, "frame of a sequence file")
	f.Float64Slice("center", nil, "center x,y,z for radial measures (default: image center)")
	f.Float64("pixel-size", 1, "physical size of one pixel")
	f.Int("coarse", 5, "coarse graining of the curvature, in snaxels")
	f.Float64("snr-threshold", 4, "local SNR below which a snaxel counts as weak")
	f.Float64("penalizer", 2, "weight of weak snaxels in the F-value")
	f.Int("bins", 10, "radial bins of the point fractions")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	truthPath, _ := f.GetString("truth")
	frame, _ := f.GetInt("frame")
	c, _ := f.GetFloat64Slice("center")
	pixel, _ := f.GetFloat64("pixel-size")
	coarse, _ := f.GetInt("coarse")
	thr, _ := f.GetFloat64("snr-threshold")
	pen, _ := f.GetFloat64("penalizer")
	bins, _ := f.GetInt("bins")

	img, err := volume.LoadImage(args[0], 0)
	if err != nil {
		return err
	}
	doc, err := snakefile.ReadFile(args[1])
	if err != nil {
		return err
	}
	ms, err := multisnake.New(config.Default())
	if err != nil {
		return err
	}
	if err := ms.SetImage(img); err != nil {
		return err
	}
	if _, err := ms.LoadDocument(doc, frame); err != nil {
		return err
	}

	size := img.GridSize()
	center := geom.P(float64(size[0]-1)/2, float64(size[1]-1)/2, float64(size[2]-1)/2)
	switch len(c) {
	case 0:
	case 2, 3:
		center = geom.P(c[0], c[1], 0)
		if len(c) == 3 {
			center.Z = c[2]
		}
	default:
		return errors.Errorf("center needs 2 or 3 coordinates, got %d", len(c))
	}

	w := cmd.OutOrStdout()
	snakes := ms.ConvergedSnakes()
	fmt.Fprintf(w, "Image file\t%s\nSnakes\t%d\nJunctions\t%d\n", args[0], len(snakes), len(ms.Junctions()))

	if truthPath != "" {
		truth, err := snakefile.ReadFile(truthPath)
		if err != nil {
			return err
		}
		if len(truth.Frames) == 0 {
			return errors.Errorf("%s: no curves", truthPath)
		}
		if err := ms.SetComparingSnakes(truth.Frames[0].Curves); err != nil {
			return err
		}
		cmp, err := ms.Compare()
		if err != nil {
			return err
		}
		result, reference := ms.FValues(thr, pen)
		fmt.Fprintf(w, "Vertex error\t%g\nHausdorff\t%g\nF-value\t%g\nGround truth F-value\t%g\n",
			cmp.VertexError, cmp.Hausdorff, result, reference)
	}

	k, err := analysis.Curvature(snakes, coarse, ms.Parameters().Spacing)
	if err != nil {
		return err
	}
	writeSummary(w, "Curvature", analysis.Summarize(k))
	writeSummary(w, "Local SNR", analysis.Summarize(analysis.LocalSNRs(snakes)))

	var theta []float64
	for _, r := range analysis.RadialOrientation(snakes, center, pixel) {
		theta = append(theta, r.Theta)
	}
	writeSummary(w, "Radial theta", analysis.Summarize(theta))

	if len(snakes) > 0 {
		radius := geom.P(float64(size[0]), float64(size[1]), 0).Length() / 2
		fr, err := analysis.PointFractions(snakes, center, radius, bins)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Point fractions (%%)")
		for _, v := range fr {
			fmt.Fprintf(w, "\t%.2f", v)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func writeSummary(w io.Writer, name string, s analysis.Summary) {
	fmt.Fprintf(w, "%s\tn=%d min=%g max=%g mean=%g median=%g std=%g\n",
		name, s.N, s.Min, s.Max, s.Mean, s.Median, s.Std)
}
