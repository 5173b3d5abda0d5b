package main

import (
	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/docroute/docpipe"
	"github.com/hazyhaar/docroute/pipeline"
)

var mcpFlags struct {
	maxSentences int
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP tool server over stdio",
	Long: `Exposes the document pipeline as MCP tools over stdin/stdout:
process_document, summarize_text, and classify_text. Agent clients spawn
this subcommand and call the tools directly.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().IntVar(&mcpFlags.maxSentences, "max-sentences", 0, "summary length cap")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(logLevel)

	pipe := docpipe.New(docpipe.Config{Logger: logger})
	proc := pipeline.NewProcessor(pipe, pipeline.Config{
		MaxSentences: mcpFlags.maxSentences,
		Logger:       logger,
	})

	srv := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "docroute", Version: version}, nil)
	pipeline.RegisterMCP(srv, pipe, proc)

	logger.Info("mcp server listening on stdio")
	return srv.Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
