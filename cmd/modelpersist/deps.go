package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OlleLindgren/model-persistence/container"
	"github.com/OlleLindgren/model-persistence/depspec"
)

var depsCmd = &cobra.Command{
	Use:   "deps <dir>",
	Short: "Print the flattened X and y dependency lists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, spec := range []struct {
			label string
			file  string
		}{
			{"X", container.XSpecFilename},
			{"y", container.YSpecFilename},
		} {
			loaded, err := depspec.Load(filepath.Join(args[0], spec.file))
			if err != nil {
				return fmt.Errorf("failed to load %s spec: %w", spec.label, err)
			}
			fmt.Fprintf(out, "%s:\n", spec.label)
			for _, name := range loaded.Dependencies() {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)
}
