package pipeline

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/docroute/docpipe"
)

// RegisterMCP registers the document pipeline as MCP tools so agent clients
// can process files and classify text over stdio.
func RegisterMCP(srv *sdkmcp.Server, pipe *docpipe.Pipeline, proc *Processor) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "process_document",
		Description: "Process one document file (pdf, docx, txt): extract text, summarize, detect action items, assign department tags.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in processDocumentInput) (*sdkmcp.CallToolResult, *Record, error) {
		raw, err := pipe.Read(in.Path)
		if err != nil {
			return nil, nil, err
		}
		rec, err := proc.Process(ctx, raw)
		if err != nil {
			return nil, nil, err
		}
		return nil, rec, nil
	})

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "summarize_text",
		Description: "Produce an extractive summary of plain text and report its detected language.",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in summarizeTextInput) (*sdkmcp.CallToolResult, summarizeTextOutput, error) {
		if in.Text == "" {
			return nil, summarizeTextOutput{}, fmt.Errorf("text is required")
		}
		p := proc
		if in.MaxSentences > 0 {
			cfg := proc.cfg
			cfg.MaxSentences = in.MaxSentences
			p = NewProcessor(proc.extract, cfg)
		}
		lang := DetectLanguage(in.Text, p.cfg.ScriptThreshold)
		summary := sentenceTexts(p.Summarize(Segment(in.Text), lang))
		return nil, summarizeTextOutput{Language: string(lang), Summary: summary}, nil
	})

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "classify_text",
		Description: "Assign department routing tags to plain text using the keyword rule table.",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in classifyTextInput) (*sdkmcp.CallToolResult, classifyTextOutput, error) {
		if in.Text == "" {
			return nil, classifyTextOutput{}, fmt.Errorf("text is required")
		}
		return nil, classifyTextOutput{Tags: proc.Classify(in.Text)}, nil
	})
}

type processDocumentInput struct {
	Path string `json:"path" jsonschema:"absolute or relative path of the document file"`
}

type summarizeTextInput struct {
	Text         string `json:"text" jsonschema:"plain text to summarize"`
	MaxSentences int    `json:"max_sentences,omitempty" jsonschema:"summary length cap (default from server config)"`
}

type summarizeTextOutput struct {
	Language string   `json:"language"`
	Summary  []string `json:"summary_sentences"`
}

type classifyTextInput struct {
	Text string `json:"text" jsonschema:"plain text to classify"`
}

type classifyTextOutput struct {
	Tags []string `json:"tags"`
}
