package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/praetorian-inc/snip/pkg/ops"
)

var rootCmd = &cobra.Command{
	Use:   "snip",
	Short: "Command-line-driven string manipulation tool",
	Long: `Snip transforms text one line at a time: splitting at patterns, characters
or byte offsets, cutting and trimming spans, and replacing literal patterns.

Lines are read from stdin and results are written to stdout; the segments
of a split are newline-joined. Run without a subcommand, snip splits each
line at whitespace.

All indices and offsets are byte offsets into the line. Patterns are
literal substrings, not regular expressions. Negative counts select
occurrences from the end of the line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, ops.Default())
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Add subcommands
	rootCmd.AddCommand(splitAtWhitespaceCmd)
	rootCmd.AddCommand(splitAtPatCmd)
	rootCmd.AddCommand(splitAtCharCmd)
	rootCmd.AddCommand(splitAtIndexCmd)
	rootCmd.AddCommand(cutFromPatCmd)
	rootCmd.AddCommand(cutFromPatToPatCmd)
	rootCmd.AddCommand(cutFromPatToOffsetCmd)
	rootCmd.AddCommand(cutUntilPatCmd)
	rootCmd.AddCommand(cutFromIndexCmd)
	rootCmd.AddCommand(cutFromIndexToIndexCmd)
	rootCmd.AddCommand(cutFromIndexToOffsetCmd)
	rootCmd.AddCommand(cutUntilIndexCmd)
	rootCmd.AddCommand(cutFromPatToIndexCmd)
	rootCmd.AddCommand(cutFromIndexToPatCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(trimFromPatCmd)
	rootCmd.AddCommand(trimFromPatToPatCmd)
	rootCmd.AddCommand(trimUntilPatCmd)
	rootCmd.AddCommand(trimToPatCmd)
	rootCmd.AddCommand(trimFromIndexCmd)
	rootCmd.AddCommand(trimFromIndexToIndexCmd)
	rootCmd.AddCommand(trimFromIndexToOffsetCmd)
	rootCmd.AddCommand(trimUntilIndexCmd)
	rootCmd.AddCommand(trimFromPatToIndexCmd)
	rootCmd.AddCommand(trimFromIndexToPatCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. A fatal condition prints a single
// diagnostic to stderr; the caller maps the returned error to the exit
// status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printFatal(err)
	}
	return err
}

// printFatal writes one colored diagnostic line to stderr, disabling color
// when stderr is not a terminal or NO_COLOR is set.
func printFatal(err error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "snip: %v\n", err)
}
