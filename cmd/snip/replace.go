package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/ops"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <pattern> <with> [count]",
	Short: "Replace a pattern",
	Long: `Replace occurrences of a literal pattern in each line, optionally limited
to a finite number of occurrences. A positive count replaces the first
occurrences, a negative count the last ones; zero replaces nothing.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		count, err := optionalCount(args, 2)
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.Replace(pattern, args[1], count))
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <pattern> [count]",
	Short: "Remove a pattern",
	Long: `Delete occurrences of a literal pattern from each line, optionally limited
to a finite number of occurrences. A positive count removes the first
occurrences, a negative count the last ones; zero removes nothing.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		count, err := optionalCount(args, 1)
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.Remove(pattern, count))
	},
}
