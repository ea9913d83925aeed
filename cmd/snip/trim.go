package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/ops"
)

var trimCmd = &cobra.Command{
	Use:   "trim [pattern]",
	Short: "Trim whitespace or a pattern from both ends",
	Long: `Strip leading and trailing whitespace from each line, or repeated leading
and trailing occurrences of the pattern when one is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		return runOperation(cmd, ops.Trim(pattern))
	},
}

var trimFromPatCmd = &cobra.Command{
	Use:   "trim-from-pat <pattern>",
	Short: "Trim starting at a pattern",
	Long: `Remove each line's content from the first occurrence of the pattern
(inclusive) to end of line. Lines without the pattern are unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromPat(pattern))
	},
}

var trimFromPatToPatCmd = &cobra.Command{
	Use:   "trim-from-pat-to-pat <start> <end>",
	Short: "Trim between two patterns",
	Long: `Remove each line's content between the first occurrence of the start
pattern (inclusive) and the last occurrence of the end pattern
(exclusive), or through end of line when the end pattern is missing.
Lines without the start pattern are unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		end, err := parsePattern(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromPatToPat(start, end))
	},
}

var trimUntilPatCmd = &cobra.Command{
	Use:   "trim-until-pat <pattern>",
	Short: "Trim until a pattern",
	Long: `Remove each line's content from its beginning up to the first occurrence
of the pattern (exclusive). Lines without the pattern are unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimUntilPat(pattern))
	},
}

var trimToPatCmd = &cobra.Command{
	Use:   "trim-to-pat <pattern>",
	Short: "Trim to a pattern, inclusive",
	Long: `Remove each line's content from its beginning through the first occurrence
of the pattern (inclusive). Lines without the pattern are unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimToPat(pattern))
	},
}

var trimFromIndexCmd = &cobra.Command{
	Use:   "trim-from-index <index>",
	Short: "Trim starting at a byte offset",
	Long: `Remove each line's content from the given byte offset (inclusive) to end
of line. An index of zero means unspecified and leaves the line unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromIndex(index))
	},
}

var trimFromIndexToIndexCmd = &cobra.Command{
	Use:   "trim-from-index-to-index <start> <end>",
	Short: "Trim between two byte offsets",
	Long: `Remove the range between the start offset (inclusive) and the end offset
(exclusive) of each line. An end at or before the start leaves the line
unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		end, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromIndexToIndex(start, end))
	},
}

var trimFromIndexToOffsetCmd = &cobra.Command{
	Use:   "trim-from-index-to-offset <index> <offset>",
	Short: "Trim from a byte offset to an offset from it",
	Long: `Remove offset bytes of each line anchored at the given byte offset. A
negative offset removes the bytes before the anchor instead. An offset
that leaves the line is fatal.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		offset, err := parseOffset(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromIndexToOffset(index, offset))
	},
}

var trimUntilIndexCmd = &cobra.Command{
	Use:   "trim-until-index <index>",
	Short: "Trim until a byte offset",
	Long:  "Remove each line's content from its beginning up to the given byte offset (exclusive).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimUntilIndex(index))
	},
}

var trimFromPatToIndexCmd = &cobra.Command{
	Use:   "trim-from-pat-to-index <pattern> <index>",
	Short: "Trim from a pattern to a byte offset",
	Long: `Remove each line's content from the first occurrence of the pattern
(inclusive) up to the given byte offset (exclusive). The offset must not
fall before the pattern; an offset equal to the pattern position leaves
the line unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromPatToIndex(pattern, index))
	},
}

var trimFromIndexToPatCmd = &cobra.Command{
	Use:   "trim-from-index-to-pat <index> <pattern>",
	Short: "Trim from a byte offset to a pattern",
	Long: `Remove each line's content from the given byte offset (inclusive) up to
the first occurrence of the pattern (exclusive). The pattern must not
occur before the offset; an occurrence at the offset leaves the line
unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		pattern, err := parsePattern(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.TrimFromIndexToPat(index, pattern))
	},
}
