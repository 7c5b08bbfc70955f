package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"sx/internal/diag"
	"sx/internal/diagfmt"
	"sx/internal/driver"
	"sx/internal/source"
)

// cmdContext is everything a subcommand needs from flags plus sx.toml.
type cmdContext struct {
	cfg  sxConfig
	opts driver.Options
}

// resolveContext merges the config file with the persistent flags.
// A flag set explicitly on the command line wins over sx.toml.
func resolveContext(cmd *cobra.Command) (*cmdContext, error) {
	cfg, err := loadConfig("")
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	splitNewlines, err := flags.GetBool("split-newlines")
	if err != nil {
		return nil, fmt.Errorf("failed to get split-newlines flag: %w", err)
	}
	newlineDelimits := cfg.Lexer.NewlineDelimits
	if flags.Changed("split-newlines") {
		newlineDelimits = splitNewlines
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorFlag != "" {
		switch colorFlag {
		case "auto", "on", "off":
			cfg.Output.Color = colorFlag
		default:
			return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
		}
	}

	return &cmdContext{
		cfg: cfg,
		opts: driver.Options{
			MaxDiagnostics:  maxDiagnostics,
			NewlineDelimits: newlineDelimits,
		},
	}, nil
}

// useColor resolves the color mode against the given stream.
func (c *cmdContext) useColor(f *os.File) bool {
	switch c.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// formatValue renders a computed number per [output].precision.
func (c *cmdContext) formatValue(value float64) string {
	if c.cfg.Output.Precision < 0 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', c.cfg.Output.Precision, 64)
}

// printDiagnostics pretty-prints the bag to stderr.
func (c *cmdContext) printDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color: c.useColor(os.Stderr),
	})
}
