package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sx/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sx",
	Short: "s-expression arithmetic calculator",
	Long:  `sx reads s-expression arithmetic like (* 2 (+ 3 4)) and computes the result`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("split-newlines", false, "treat newline as an atom separator, like space")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
