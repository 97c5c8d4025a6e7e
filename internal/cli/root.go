package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitDifferences  = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "reportdiff",
	Short: "Compare two versions of a business report",
	Long: "Reportdiff compares two versions of a business report and produces a concise,\n" +
		"neutral summary of visible factual differences. PII is redacted before any\n" +
		"output or LLM call.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(summariseCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print reportdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "reportdiff version %s\n", version)
	},
}
