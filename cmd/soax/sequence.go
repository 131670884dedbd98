package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NoSuchProcess/SOAX/multisnake"
	"github.com/NoSuchProcess/SOAX/snakefile"
	"github.com/NoSuchProcess/SOAX/store"
	"github.com/NoSuchProcess/SOAX/volume"
)

func newSequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence <frame>...",
		Short: "Extract one network per frame image",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSequence,
	}
	f := cmd.Flags()
	f.StringP("out", "o", "sequence.txt", "sequence snake file to write")
	f.String("store", "", "checkpoint frames into a badger directory")
	f.Float64("blur", 0, "Gaussian pre-blur sigma applied while loading")

	return cmd
}

func runSequence(cmd *cobra.Command, args []string) error {
	p, err := loadParameters(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	blur, _ := f.GetFloat64("blur")
	out, _ := f.GetString("out")
	dir, _ := f.GetString("store")

	frames := make([]*volume.Image, len(args))
	for i, path := range args {
		if frames[i], err = volume.LoadImage(path, blur); err != nil {
			return err
		}
	}

	opts := []multisnake.Option{multisnake.WithImageName(args[0])}
	if dir != "" {
		st, err := store.Open(dir)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, multisnake.WithStore(st))
	}
	ms, err := multisnake.New(p, opts...)
	if err != nil {
		return err
	}
	results, err := ms.ProcessSequence(cmd.Context(), frames)
	if err != nil {
		return err
	}

	doc := &snakefile.Document{
		Image:    args[0],
		Headers:  snakefile.HeadersFromParameters(p),
		Frames:   results,
		Sequence: true,
	}
	if err := snakefile.WriteFile(out, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d frames -> %s\n", len(results), out)

	return nil
}
