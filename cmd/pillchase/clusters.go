package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pillchase/cluster"
	"github.com/katalvlaran/pillchase/maze"
)

func newClustersCmd(a *app) *cobra.Command {
	var (
		level int
		eat   []int
	)
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Print the cluster partition of a level's collectibles",
		Long: `Builds the cluster registry for one level and prints its partition.

Every level starts as a single cluster. --eat removes the listed nodes in
order first, so the splits they cause can be inspected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := a.levels()
			if err != nil {
				return err
			}
			if level < 0 || level >= len(levels) {
				return fmt.Errorf("level %d: have %d levels", level, len(levels))
			}
			g, err := maze.Parse(levels[level])
			if err != nil {
				return fmt.Errorf("level %d: %w", level, err)
			}

			all := append(g.ActivePills(), g.ActivePowerPills()...)
			r := cluster.NewRegistry(g, all,
				cluster.WithMaxSeparation(a.cfg.MaxSeparation),
				cluster.WithLogger(a.logger))

			for _, node := range eat {
				r.RemoveElement(node)
				g.Eat(node)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d collectibles in %d clusters\n", r.Size(), r.Len())
			for i, c := range r.Components() {
				fmt.Fprintf(out, "cluster %d: %d nodes %v\n", i, c.Len(), c.Members())
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "level to partition, counted from 0")
	cmd.Flags().IntSliceVar(&eat, "eat", nil, "nodes to eat before printing")

	return cmd
}
