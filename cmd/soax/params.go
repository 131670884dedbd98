package main

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/NoSuchProcess/SOAX/config"
)

// loadParameters reads the --params file, or returns the defaults.
func loadParameters(cmd *cobra.Command) (config.Parameters, error) {
	path, _ := cmd.Flags().GetString("params")
	if path == "" {
		return config.Default(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := config.LoadYAML(path)
		return p, errors.Wrapf(err, "parameters %s", path)
	}
	p, unknown, err := config.LoadText(path)
	if err != nil {
		return p, errors.Wrapf(err, "parameters %s", path)
	}
	for _, k := range unknown {
		klog.Warningf("%s: unknown parameter %q ignored", path, k)
	}

	return p, nil
}

func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadParameters(cmd)
			if err != nil {
				return err
			}
			if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(p)
			}
			_, err = p.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().Bool("yaml", false, "print as YAML")

	return cmd
}
