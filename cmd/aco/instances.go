package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/instance"
)

func newInstancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instances",
		Short: "List the built-in instances usable with solve --preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tNODES\tSTART\tSYMMETRIC\tDESCRIPTION")
			for _, name := range instance.Names() {
				inst, err := instance.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%t\t%s\n", inst.Name, inst.Size(), inst.Start, inst.Symmetric(), inst.Description)
			}

			return w.Flush()
		},
	}
}
