// Command soax extracts curvilinear networks from images with stretching open
// active contours.
//
//	soax extract   image [slices...]   extract one network
//	soax sequence  frame...            extract one network per frame
//	soax evaluate  image snakes        measure a saved network
//	soax params                        print the effective parameters
//	soax synth     out.png             render a synthetic filament image
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd()
	root.PersistentFlags().AddGoFlagSet(fset)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "soax",
		Short:         "Extract filament networks with stretching open active contours",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("params", "", "parameter file (key value text, or .yaml/.yml)")
	root.AddCommand(
		newExtractCmd(),
		newSequenceCmd(),
		newEvaluateCmd(),
		newParamsCmd(),
		newSynthCmd(),
	)

	return root
}
