package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sx/internal/driver"
	"sx/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Evaluate expressions interactively",
	Long:  `Repl reads s-expressions line by line and prints each result immediately`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("ui", "auto", "interactive UI (auto|on|off)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx, err := resolveContext(cmd)
	if err != nil {
		return err
	}

	mode, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	useTUI, err := shouldUseTUI(mode)
	if err != nil {
		return err
	}

	if useTUI {
		return runReplTUI(ctx)
	}
	return runReplPlain(ctx)
}

func shouldUseTUI(mode string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdin) && isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", mode)
	}
}

func runReplTUI(ctx *cmdContext) error {
	model := ui.NewReplModel(func(input string) (string, error) {
		result, err := driver.EvalString("<repl>", input, ctx.opts)
		if err != nil {
			return "", replError(result)
		}
		return ctx.formatValue(result.Value), nil
	})

	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}

// replError flattens the first diagnostic into a single-line error for the
// history view.
func replError(result *driver.EvalResult) error {
	items := result.Bag.Items()
	if len(items) == 0 {
		return fmt.Errorf("evaluation failed")
	}
	d := items[0]
	return fmt.Errorf("%s: %s", d.Code.ID(), d.Message)
}

// runReplPlain is the fallback loop for non-terminal stdin (pipes, tests).
func runReplPlain(ctx *cmdContext) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := driver.EvalString("<repl>", line, ctx.opts)
		if err != nil {
			ctx.printDiagnostics(result.Bag, result.FileSet)
			continue
		}
		fmt.Println(ctx.formatValue(result.Value))
	}
	return scanner.Err()
}
