package main

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aco",
		Short: "Ant Colony Optimization solver for the travelling salesman problem",
		Long: `aco searches for a short closed tour through every node of a distance
matrix using the Ant System: ants build tours biased by pheromone and
inverse distance, pheromone evaporates and is reinforced by every tour.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "Log format: text or json")

	root.AddCommand(newSolveCmd(), newInstancesCmd(), newVersionCmd())

	return root
}
