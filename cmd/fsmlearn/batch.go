package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run an experiment sweep described by a YAML config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBatchConfig(configPath)
			if err != nil {
				return errors.Wrap(err, "loading batch config")
			}
			logger.Info("starting batch run", "directory", cfg.Directory, "algorithmMask", cfg.AlgorithmMask)
			return runRun(cfg.toRunFlags())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the batch YAML config")
	cmd.MarkFlagRequired("config")
	return cmd
}
