package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the known target series",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTargets(genOpts.targets)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, target := range table {
			fmt.Fprintf(w, "%s\t%s\t%d lines\t%d bits\t%s\n",
				target.Series, target.Architecture, target.Lines, target.PriorityBits, strings.Join(target.Chips, ","))
		}
		return nil
	},
}

func init() {
	targetsCmd.Flags().StringVarP(&genOpts.targets, "targets", "t", getenv("IRQGEN_TARGETS", ""), "target table overriding the built-in one")
}
