package main

import (
	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/ops"
)

var cutFromPatCmd = &cobra.Command{
	Use:   "cut-from-pat <pattern>",
	Short: "Cut starting at a pattern",
	Long: `Keep each line from the first occurrence of the pattern (inclusive) to end
of line. Lines without the pattern are kept whole.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutFromPat(pattern))
	},
}

var cutFromPatToPatCmd = &cobra.Command{
	Use:   "cut-from-pat-to-pat <start> <end>",
	Short: "Cut between two patterns",
	Long: `Keep each line from the first occurrence of the start pattern (inclusive)
to the last occurrence of the end pattern (exclusive). A missing start
anchors at the beginning of the line, a missing end at its end.`,
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
		return runOperation(cmd, ops.CutFromPatToPat(start, end))
	},
}

var cutFromPatToOffsetCmd = &cobra.Command{
	Use:   "cut-from-pat-to-offset <pattern> <offset>",
	Short: "Cut from a pattern to an offset from it",
	Long: `Keep offset bytes of each line anchored at the first occurrence of the
pattern. A negative offset keeps the bytes before the pattern instead.
An offset that leaves the line is fatal.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		offset, err := parseOffset(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutFromPatToOffset(pattern, offset))
	},
}

var cutUntilPatCmd = &cobra.Command{
	Use:   "cut-until-pat <pattern>",
	Short: "Cut until a pattern",
	Long: `Keep each line from its beginning up to the first occurrence of the
pattern (exclusive). Lines without the pattern are kept whole.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parsePattern(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutUntilPat(pattern))
	},
}

var cutFromIndexCmd = &cobra.Command{
	Use:   "cut-from-index <index>",
	Short: "Cut starting at a byte offset",
	Long:  "Keep each line from the given byte offset (inclusive) to end of line.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutFromIndex(index))
	},
}

var cutFromIndexToIndexCmd = &cobra.Command{
	Use:   "cut-from-index-to-index <start> <end>",
	Short: "Cut between two byte offsets",
	Long:  "Keep the range between the start offset (inclusive) and the end offset (exclusive) of each line.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		end, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutFromIndexToIndex(start, end))
	},
}

var cutFromIndexToOffsetCmd = &cobra.Command{
	Use:   "cut-from-index-to-offset <index> <offset>",
	Short: "Cut from a byte offset to an offset from it",
	Long: `Keep offset bytes of each line anchored at the given byte offset. A
negative offset keeps the bytes before the anchor instead. An offset that
leaves the line is fatal.`,
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
		return runOperation(cmd, ops.CutFromIndexToOffset(index, offset))
	},
}

var cutUntilIndexCmd = &cobra.Command{
	Use:   "cut-until-index <index>",
	Short: "Cut until a byte offset",
	Long: `Keep each line from its beginning up to the given byte offset (exclusive).
An index of zero means unspecified and keeps the whole line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, ops.CutUntilIndex(index))
	},
}

var cutFromPatToIndexCmd = &cobra.Command{
	Use:   "cut-from-pat-to-index <pattern> <index>",
	Short: "Cut from a pattern to a byte offset",
	Long: `Keep each line from the first occurrence of the pattern (inclusive) up to
the given byte offset (exclusive). The offset must not fall before the
pattern; an offset equal to the pattern position keeps the whole line.`,
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
		return runOperation(cmd, ops.CutFromPatToIndex(pattern, index))
	},
}

var cutFromIndexToPatCmd = &cobra.Command{
	Use:   "cut-from-index-to-pat <index> <pattern>",
	Short: "Cut from a byte offset to a pattern",
	Long: `Keep each line from the given byte offset (inclusive) up to the first
occurrence of the pattern (exclusive). The pattern must not occur before
the offset; an occurrence at the offset keeps the whole line.`,
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
		return runOperation(cmd, ops.CutFromIndexToPat(index, pattern))
	},
}
