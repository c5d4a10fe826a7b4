package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"textcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "textcheck",
	Short: "Streaming text-anomaly analyzer",
	Long:  `textcheck scans tokenized UTF-8 text and reports encoding, script and tokenization anomalies`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
