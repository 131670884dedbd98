package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/NoSuchProcess/SOAX/multisnake"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/volume"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <image> [slice...]",
		Short: "Extract the network of one image (several slices form a stack)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtract,
	}
	f := cmd.Flags()
	f.StringP("out", "o", "snakes.txt", "snake file to write")
	f.String("jfilament", "", "also write JFilament snakes to this file")
	f.String("overlay", "", "render the network over the image into this PNG")
	f.Int("workers", 1, "evolution workers")
	f.Float64("blur", 0, "Gaussian pre-blur sigma applied while loading")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	p, err := loadParameters(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	blur, _ := f.GetFloat64("blur")
	workers, _ := f.GetInt("workers")
	out, _ := f.GetString("out")
	jf, _ := f.GetString("jfilament")
	overlay, _ := f.GetString("overlay")

	img, err := volume.LoadStack(args, blur)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}
	ms, err := multisnake.New(p, multisnake.WithWorkers(workers), multisnake.WithImageName(args[0]))
	if err != nil {
		return err
	}
	if err := ms.SetImage(img); err != nil {
		return err
	}
	if err := ms.Extract(cmd.Context()); err != nil {
		return err
	}

	if err := ms.SaveFile(out); err != nil {
		return err
	}
	if jf != "" {
		if err := writeJFilament(ms, jf); err != nil {
			return err
		}
	}
	if overlay != "" {
		if err := renderOverlay(overlay, img, ms.ConvergedSnakes(), ms.Junctions()); err != nil {
			return err
		}
	}

	snakes := ms.ConvergedSnakes()
	fmt.Fprintf(cmd.OutOrStdout(), "%s snakes, %s snaxels, %s junctions -> %s\n",
		humanize.Comma(int64(len(snakes))),
		humanize.Comma(int64(snake.TotalPoints(snakes))),
		humanize.Comma(int64(len(ms.Junctions()))),
		out)

	return nil
}

func writeJFilament(ms *multisnake.Multisnake, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := ms.SaveJFilament(f); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}
