package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OlleLindgren/model-persistence/container"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Print eval metrics, training duration, and save date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extras, err := container.ReadExtras(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "saved:    %s\n", extras.SaveTimestamp)
		fmt.Fprintf(out, "duration: %s\n", extras.DT.Duration())

		if len(extras.EvalMetrics) == 0 {
			fmt.Fprintln(out, "metrics:  (none)")
			return nil
		}
		names := make([]string, 0, len(extras.EvalMetrics))
		for name := range extras.EvalMetrics {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(out, "metrics:")
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %g\n", name, extras.EvalMetrics[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
