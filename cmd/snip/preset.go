package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/snip/pkg/preset"
)

var (
	presetList bool
	presetFile string
)

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Run a named preset operation",
	Long: `Run an operation defined by a named preset. Builtin presets cover common
transformations; additional presets can be loaded from a YAML file with
--file. Use --list to show the available presets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreset,
}

func init() {
	presetCmd.Flags().BoolVar(&presetList, "list", false, "List available presets")
	presetCmd.Flags().StringVar(&presetFile, "file", "", "Load additional presets from a YAML file")
}

func runPreset(cmd *cobra.Command, args []string) error {
	loader := preset.NewLoader()
	presets, err := loader.LoadBuiltin()
	if err != nil {
		return fmt.Errorf("failed to load builtin presets: %w", err)
	}
	if presetFile != "" {
		extra, err := loader.LoadFile(presetFile)
		if err != nil {
			return err
		}
		// User presets take precedence over builtins of the same name.
		presets = append(extra, presets...)
	}

	if presetList {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, p := range presets {
			fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
		}
		return w.Flush()
	}

	if len(args) == 0 {
		return fmt.Errorf("preset name required (use --list to see available presets)")
	}
	p := preset.Find(presets, args[0])
	if p == nil {
		return fmt.Errorf("unknown preset %q", args[0])
	}
	return runOperation(cmd, p.Operation)
}
