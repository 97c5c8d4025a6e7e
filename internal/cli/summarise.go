package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reportdiff/internal/config"
	"reportdiff/internal/document"
	"reportdiff/internal/extract"
	"reportdiff/internal/summarise"
)

// reportFlags are shared by the single-document commands (summarise,
// metrics), which take the same extraction and redaction options as diff.
type reportFlags struct {
	format     string
	out        string
	categories string
	llm        string
	llmModel   string
	noRedact   bool
	noCache    bool
}

func addReportFlags(cmd *cobra.Command, f *reportFlags) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format (text, json)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&f.noRedact, "no-redact", false, "Skip PII redaction (NOT recommended for production use)")
	cmd.Flags().StringVar(&f.categories, "categories", "", "YAML file with custom redaction categories")
	cmd.Flags().StringVar(&f.llm, "llm", "", "Send extracted content to an LLM provider (anthropic, openai, ollama)")
	cmd.Flags().StringVar(&f.llmModel, "llm-model", "", "Override the provider's default model")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Bypass the analysis cache")
}

func (f *reportFlags) overrides() map[string]string {
	m := make(map[string]string)
	if f.format != "" {
		m["format"] = f.format
	}
	if f.categories != "" {
		m["categoriesFile"] = f.categories
	}
	if f.noRedact {
		m["noRedact"] = "true"
	}
	if f.llm != "" {
		m["llmProvider"] = f.llm
	}
	if f.llmModel != "" {
		m["llmModel"] = f.llmModel
	}
	if f.noCache {
		m["noCache"] = "true"
	}
	return m
}

var (
	summariseFlags reportFlags
	metricsFlags   reportFlags
)

var summariseCmd = &cobra.Command{
	Use:     "summarise <file>",
	Aliases: []string{"summarize"},
	Short:   "Summarise a single report",
	Long: "Extract one document and produce a factual, extractive overview of its\n" +
		"contents: structure, key factual lines, and per-table column statistics.\n" +
		"With --llm the redacted content is sent to an LLM for a polished summary.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(summariseFlags.overrides())
		if err != nil {
			return err
		}
		runSummarise(args[0], cfg)
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics <file>",
	Short: "Extract metrics and KPIs from a report",
	Long: "Extract one document and list every labelled number, currency amount,\n" +
		"percentage, and ratio it contains, with source context. With --llm the\n" +
		"redacted content is sent to an LLM for a higher-recall extraction.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(metricsFlags.overrides())
		if err != nil {
			return err
		}
		runMetrics(args[0], cfg)
		return nil
	},
}

// loadReportDocument extracts and, unless disabled, redacts one document.
func loadReportDocument(path string, cfg config.Config) (document.Content, error) {
	doc, err := extract.File(path)
	if err != nil {
		return document.Content{}, err
	}
	if cfg.NoRedact {
		fmt.Fprintln(os.Stderr, "WARNING: PII redaction is disabled")
		return doc, nil
	}
	redactor, err := buildRedactor(cfg)
	if err != nil {
		return document.Content{}, err
	}
	return redactor.Document(doc), nil
}

func runSummarise(path string, cfg config.Config) {
	doc, err := loadReportDocument(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if summariseFlags.llm != "" {
		out, err := summarise.RunSummary(context.Background(), doc, cfg)
		if err == nil {
			writeReportOutput(out, summariseFlags.out)
			return
		}
		fmt.Fprintf(os.Stderr, "WARNING: LLM summary failed (%v); falling back to mechanical summary\n", err)
	}

	out, err := summarise.Summarise(doc, cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	writeReportOutput(out, summariseFlags.out)
}

func runMetrics(path string, cfg config.Config) {
	doc, err := loadReportDocument(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if metricsFlags.llm != "" {
		out, err := summarise.RunMetrics(context.Background(), doc, cfg)
		if err == nil {
			writeReportOutput(out, metricsFlags.out)
			return
		}
		fmt.Fprintf(os.Stderr, "WARNING: LLM metric extraction failed (%v); falling back to mechanical extraction\n", err)
	}

	out, err := summarise.FormatMetrics(summarise.ExtractMetrics(doc), cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	writeReportOutput(out, metricsFlags.out)
}

// writeReportOutput sends text to the --out file or stdout, mirroring how
// diff writes its summary.
func writeReportOutput(text, outPath string) {
	if outPath == "" {
		fmt.Fprintln(os.Stdout, text)
		return
	}
	if err := os.WriteFile(outPath, []byte(text+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	fmt.Fprintf(os.Stderr, "Summary written to %s\n", outPath)
}

func init() {
	addReportFlags(summariseCmd, &summariseFlags)
	addReportFlags(metricsCmd, &metricsFlags)
}
