package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pillchase/maze"
	"github.com/katalvlaran/pillchase/pursuit"
	"github.com/katalvlaran/pillchase/sim"
	"github.com/katalvlaran/pillchase/view"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		watch   bool
		delay   time.Duration
		metrics bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play every level to completion",
		Long: `Plays the configured levels headlessly and prints a summary.

With --watch every tick is rendered to the terminal, cluster colours
included when debug_draw is set in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := a.levels()
			if err != nil {
				return err
			}
			g, err := maze.Parse(levels[0])
			if err != nil {
				return fmt.Errorf("level 0: %w", err)
			}

			runID := uuid.NewString()
			log := a.logger.With(zap.String("run", runID))
			reg := prometheus.NewRegistry()
			opts := append(a.cfg.SelectorOptions(),
				pursuit.WithLogger(log),
				pursuit.WithMetrics(pursuit.NewMetrics(reg)))
			s := pursuit.New(opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			simOpts := []sim.Option{
				sim.WithContext(ctx),
				sim.WithMaxTicks(a.cfg.MaxTicks),
				sim.WithLevels(levels[1:]...),
				sim.WithLogger(log),
			}
			if watch {
				screen, err := tcell.NewScreen()
				if err != nil {
					return fmt.Errorf("failed to open terminal: %w", err)
				}
				if err := screen.Init(); err != nil {
					return fmt.Errorf("failed to open terminal: %w", err)
				}
				defer screen.Fini()
				simOpts = append(simOpts, sim.WithObserver(render(ctx, screen, delay)))
			}

			res, err := sim.Run(g, s, simOpts...)
			if watch {
				// leave the last frame readable before the summary
				time.Sleep(delay)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s\n", runID)
			fmt.Fprintf(out, "levels cleared: %d\nticks: %d\neaten: %d\n", res.Levels, res.Ticks, res.Eaten)
			if metrics {
				if err := printMetrics(cmd, reg); err != nil {
					return err
				}
			}

			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "render every tick in the terminal")
	cmd.Flags().DurationVar(&delay, "delay", 80*time.Millisecond, "pause between rendered ticks")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print pursuit counters after the run")

	return cmd
}

// render returns an observer painting each tick onto screen.
func render(ctx context.Context, screen tcell.Screen, delay time.Duration) func(sim.Tick) error {
	return func(t sim.Tick) error {
		status := fmt.Sprintf("level %d  tick %d  clusters %d  target %d  %s",
			t.Level, t.N, t.Decision.Clusters, t.Decision.Target, t.Decision.Move)
		view.Draw(screen, view.Frame(t.Grid), status)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			return nil
		}
	}
}

func printMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", mf.GetName(), v)
		}
	}

	return nil
}
