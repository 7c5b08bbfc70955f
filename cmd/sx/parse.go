package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sx/internal/diagfmt"
	"sx/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sx>",
	Short: "Parse an sx file and print its expression tree",
	Long:  `Parse builds the expression tree for an .sx file and prints it without evaluating`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	parseCmd.Flags().String("indent", "  ", "indentation unit for pretty output")
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, err := resolveContext(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	indent, err := cmd.Flags().GetString("indent")
	if err != nil {
		return fmt.Errorf("failed to get indent flag: %w", err)
	}

	result, err := driver.Parse(args[0], ctx.opts)
	if err != nil {
		if result == nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		ctx.printDiagnostics(result.Bag, result.FileSet)
		os.Exit(1)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree, diagfmt.TreeOpts{
			Indent: indent,
			Color:  ctx.useColor(os.Stdout),
		})
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	case "msgpack":
		return diagfmt.FormatTreeMsgpack(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
