package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazyhaar/docroute/batch"
)

var processFlags struct {
	config       string
	input        string
	out          string
	maxSentences int
	perFileJSON  bool
	workers      int
	catalog      string
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process every supported document under a folder",
	Long: `Walks the input folder, extracts and summarizes every .pdf, .docx, and .txt
file, and writes summary.csv plus per-department route_<tag>.jsonl files to
the output folder. Corrupt documents are reported and skipped.

Exit codes: 0 all documents processed, 1 some documents failed,
2 no supported documents found.`,
	RunE: runProcess,
}

func init() {
	f := processCmd.Flags()
	f.StringVarP(&processFlags.config, "config", "c", "", "YAML config file (flags override it)")
	f.StringVarP(&processFlags.input, "input", "i", "", "input folder to scan")
	f.StringVarP(&processFlags.out, "out", "o", "", "output folder for CSV/JSONL")
	f.IntVar(&processFlags.maxSentences, "max-sentences", 0, "summary length cap")
	f.BoolVar(&processFlags.perFileJSON, "per-file-json", false, "also write one JSON per document")
	f.IntVar(&processFlags.workers, "workers", 0, "concurrent workers (default: number of CPUs)")
	f.StringVar(&processFlags.catalog, "catalog", "", "SQLite catalog path (optional)")
}

func runProcess(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(logLevel)

	cfg, err := loadBatchConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	if report.Found == 0 {
		fmt.Fprintf(os.Stderr, "no supported documents under %s\n", cfg.InputDir)
		os.Exit(2)
	}

	fmt.Printf("Processed %d/%d documents in %s. Output: %s\n",
		report.Processed, report.Found, report.Elapsed.Round(time.Millisecond), cfg.OutputDir)
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", f.Path, f.Err)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d document(s) failed", len(report.Failures))
	}
	return nil
}

// loadBatchConfig merges, in increasing precedence: defaults, the YAML
// config file, and explicitly set flags.
func loadBatchConfig(cmd *cobra.Command) (*batch.Config, error) {
	cfg := batch.DefaultConfig()
	if processFlags.config != "" {
		loaded, err := batch.LoadConfig(processFlags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if processFlags.input != "" {
		cfg.InputDir = processFlags.input
	}
	if processFlags.out != "" {
		cfg.OutputDir = processFlags.out
	}
	if processFlags.maxSentences > 0 {
		cfg.MaxSentences = processFlags.maxSentences
	}
	if cmd.Flags().Changed("per-file-json") {
		cfg.PerFileJSON = processFlags.perFileJSON
	}
	if processFlags.workers > 0 {
		cfg.Workers = processFlags.workers
	}
	if processFlags.catalog != "" {
		cfg.CatalogDB = processFlags.catalog
	}

	return cfg, cfg.Validate()
}
