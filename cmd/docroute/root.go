package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "docroute",
	Short: "Summarize and route office documents to department queues",
	Long: "docroute scans folders of PDF, DOCX, and TXT documents, extracts their text,\n" +
		"builds extractive summaries, detects action items, and routes each document\n" +
		"to department queues by keyword rules. Outputs land as CSV and JSONL.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}
