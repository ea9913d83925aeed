package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/ops"
)

var splitAtWhitespaceCmd = &cobra.Command{
	Use:   "split-at-whitespace [count]",
	Short: "Split each line at whitespace",
	Long: `Split each line at runs of whitespace, optionally a finite number of times
per line. A negative count yields the last tokens in reverse order; zero
leaves the line whole.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := optionalCount(args, 0)
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.SplitAtWhitespace(count))
	},
}

var splitAtPatCmd = &cobra.Command{
	Use:   "split-at-pat <pattern> [count]",
	Short: "Split each line at a pattern",
	Long: `Split each line at a literal pattern, optionally a finite number of times
per line. A negative count splits from the end, remainder first; zero
leaves the line whole.`,
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
		return runOperation(cmd, ops.SplitAtPat(pattern, count))
	},
}

var splitAtCharCmd = &cobra.Command{
	Use:   "split-at-char <char> [count]",
	Short: "Split each line at a character",
	Long: `Split each line at a single character, optionally a finite number of times
per line. A negative count splits from the end, remainder first; zero
leaves the line whole.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseChar(args[0])
		if err != nil {
			return err
		}
		count, err := optionalCount(args, 1)
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.SplitAtChar(c, count))
	},
}

var splitAtIndexCmd = &cobra.Command{
	Use:   "split-at-index <index>",
	Short: "Split each line at a byte offset",
	Long:  "Split each line into exactly two segments at the given byte offset.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.SplitAtIndex(index))
	},
}
