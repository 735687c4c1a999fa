// Command pillchase plays mazes with the cluster-pursuit selector and prints
// cluster partitions of layouts.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pillchase/config"
	"github.com/katalvlaran/pillchase/maze"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	layouts    []string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pillchase",
		Short: "Greedy pill pursuit over dynamically tracked pill clusters",
		Long: `pillchase groups the pills of a maze into clusters, keeps the clusters
up to date while pills are eaten, and steers an agent toward the cluster
with the best size-to-distance ratio.

Layouts are ASCII: '#' wall, '.' pill, 'o' power pill, ' ' corridor,
'P' agent start. Without --layout the built-in levels are played.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "pillchase.yaml", "YAML config file")
	root.PersistentFlags().StringSliceVarP(&a.layouts, "layout", "l", nil, "layout file, repeat for more levels")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCmd(a), newClustersCmd(a))

	return root
}

// init loads the config and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if cfg.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// levels returns the layouts to play: --layout files, then config files,
// then the built-in set.
func (a *app) levels() ([]string, error) {
	paths := a.layouts
	if len(paths) == 0 {
		paths = a.cfg.Layouts
	}
	if len(paths) == 0 {
		return maze.Builtin, nil
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout: %w", err)
		}
		out = append(out, strings.TrimRight(string(data), "\n"))
	}

	return out, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
