package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/ops"
	"github.com/praetorian-inc/snip/pkg/stream"
)

// runOperation streams the command's input through op to its output.
func runOperation(cmd *cobra.Command, op ops.Operation) error {
	return stream.New(op).Run(cmd.InOrStdin(), cmd.OutOrStdout())
}

// optionalCount parses the optional count argument at position at, if
// present.
func optionalCount(args []string, at int) (*int, error) {
	if len(args) <= at {
		return nil, nil
	}
	n, err := strconv.Atoi(args[at])
	if err != nil {
		return nil, fmt.Errorf("invalid count %q", args[at])
	}
	return &n, nil
}

// parseIndex parses a non-negative byte index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return n, nil
}

// parseOffset parses a signed byte offset.
func parseOffset(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", arg)
	}
	return n, nil
}

// parseChar parses an argument that must be exactly one character.
func parseChar(arg string) (rune, error) {
	r, size := utf8.DecodeRuneInString(arg)
	if arg == "" || size != len(arg) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("expected a single character, got %q", arg)
	}
	return r, nil
}

// parsePattern validates a non-empty literal pattern.
func parsePattern(arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("pattern must not be empty")
	}
	return arg, nil
}
