package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sx/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <file.sx>...",
	Short: "Evaluate s-expression files or an inline expression",
	Long:  `Evaluate computes the numeric value of one or more .sx files, or of an inline expression given with -e`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringP("expr", "e", "", "evaluate this expression instead of files")
	evalCmd.Flags().Int("jobs", 0, "max parallel workers for multiple files (0=auto)")
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx, err := resolveContext(cmd)
	if err != nil {
		return err
	}

	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}

	if expr != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine -e with file arguments")
		}
		return evalInline(ctx, expr)
	}

	if len(args) == 0 {
		return fmt.Errorf("nothing to evaluate: pass files or -e EXPR")
	}

	if len(args) == 1 {
		return evalFile(ctx, args[0])
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	return evalBatch(cmd, ctx, args, jobs)
}

func evalInline(ctx *cmdContext, expr string) error {
	result, err := driver.EvalString("<expr>", expr, ctx.opts)
	if err != nil {
		ctx.printDiagnostics(result.Bag, result.FileSet)
		os.Exit(1)
	}
	fmt.Println(ctx.formatValue(result.Value))
	return nil
}

func evalFile(ctx *cmdContext, path string) error {
	result, err := driver.Eval(path, ctx.opts)
	if err != nil {
		if result == nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		ctx.printDiagnostics(result.Bag, result.FileSet)
		os.Exit(1)
	}
	fmt.Println(ctx.formatValue(result.Value))
	return nil
}

func evalBatch(cmd *cobra.Command, ctx *cmdContext, paths []string, jobs int) error {
	results, err := driver.EvalFiles(cmd.Context(), paths, ctx.opts, jobs)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			ctx.printDiagnostics(res.Result.Bag, res.Result.FileSet)
			continue
		}
		fmt.Printf("%s: %s\n", res.Path, ctx.formatValue(res.Result.Value))
	}
	if failed {
		os.Exit(1)
	}
	return nil
}
