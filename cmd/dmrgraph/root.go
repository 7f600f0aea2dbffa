package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dmrgraph/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dmrgraph",
		Short:         "DMR–gene bipartite graph analysis",
		Long:          `dmrgraph builds per-timepoint DMR–gene graphs and reports their components, bicliques, edge classes and dominating sets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd())

	return root
}

// newLogger builds a zap logger from the log section.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	zc.Level = level

	return zc.Build()
}
