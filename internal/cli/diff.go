package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"reportdiff/internal/analyse"
	"reportdiff/internal/config"
	"reportdiff/internal/diff"
	"reportdiff/internal/extract"
	"reportdiff/internal/output"
	"reportdiff/internal/redact"
)

var (
	flagFormat        string
	flagOut           string
	flagNoRedact      bool
	flagCategories    string
	flagLLM           string
	flagLLMModel      string
	flagNoCache       bool
	flagFailOnChanges bool
	flagMaxValueChars int
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare two report versions",
	Long: "Extract both documents, redact PII, and report every visible factual\n" +
		"difference. With --llm the redacted diff is also sent to an LLM for a\n" +
		"categorised analysis.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		runDiff(args[0], args[1], cfg)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagCategories != "" {
		m["categoriesFile"] = flagCategories
	}
	if flagNoRedact {
		m["noRedact"] = "true"
	}
	if flagLLM != "" {
		m["llmProvider"] = flagLLM
	}
	if flagLLMModel != "" {
		m["llmModel"] = flagLLMModel
	}
	if flagNoCache {
		m["noCache"] = "true"
	}
	if flagMaxValueChars > 0 {
		m["maxValueChars"] = strconv.Itoa(flagMaxValueChars)
	}
	return m
}

func runDiff(oldPath, newPath string, cfg config.Config) {
	oldDoc, err := extract.File(oldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	newDoc, err := extract.File(newPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if cfg.NoRedact {
		fmt.Fprintln(os.Stderr, "WARNING: PII redaction is disabled")
	} else {
		redactor, err := buildRedactor(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		oldDoc = redactor.Document(oldDoc)
		newDoc = redactor.Document(newDoc)
	}

	diffs := diff.Compare(oldDoc, newDoc)
	report := diff.BuildReport(oldDoc.Filename, newDoc.Filename, diffs)

	if flagLLM != "" {
		if writeLLMAnalysis(diffs, cfg) {
			finishDiff(report)
			return
		}
		// LLM failed; the mechanical summary below is the fallback.
	}

	if err := output.WriteReport(report, cfg.Format, cfg.MaxValueChars, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if flagOut != "" {
		fmt.Fprintf(os.Stderr, "Summary written to %s\n", flagOut)
	}

	finishDiff(report)
}

func buildRedactor(cfg config.Config) (*redact.Redactor, error) {
	if cfg.CategoriesFile == "" {
		return redact.Default(), nil
	}
	cats, err := redact.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	return redact.New(cats), nil
}

// writeLLMAnalysis runs the LLM pass and writes its output. Returns false
// if the call failed and the caller should fall back to the mechanical
// summary.
func writeLLMAnalysis(diffs []diff.Difference, cfg config.Config) bool {
	analysis, err := analyse.Run(context.Background(), diffs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: LLM analysis failed (%v); falling back to mechanical summary\n", err)
		return false
	}

	if flagOut != "" {
		if err := os.WriteFile(flagOut, []byte(analysis+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return true
		}
		fmt.Fprintf(os.Stderr, "Summary written to %s\n", flagOut)
		return true
	}
	fmt.Fprintln(os.Stdout, analysis)
	return true
}

func finishDiff(report *diff.Report) {
	if exitCode == ExitSuccess && flagFailOnChanges && report.TotalChanges > 0 {
		exitCode = ExitDifferences
	}
}

func init() {
	diffCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format (text, json, markdown)")
	diffCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write summary to file instead of stdout")
	diffCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Skip PII redaction (NOT recommended for production use)")
	diffCmd.Flags().StringVar(&flagCategories, "categories", "", "YAML file with custom redaction categories")
	diffCmd.Flags().StringVar(&flagLLM, "llm", "", "Send mechanical diffs to an LLM provider (anthropic, openai, ollama)")
	diffCmd.Flags().StringVar(&flagLLMModel, "llm-model", "", "Override the provider's default model")
	diffCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the analysis cache")
	diffCmd.Flags().BoolVar(&flagFailOnChanges, "fail-on-changes", false, "Exit with code 1 when differences are found")
	diffCmd.Flags().IntVar(&flagMaxValueChars, "max-value-chars", 0, "Truncate printed values at this many characters")
}
