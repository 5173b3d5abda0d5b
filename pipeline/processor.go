package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hazyhaar/docroute/docpipe"
	"github.com/hazyhaar/docroute/rules"
)

// maxTitleRunes caps the title taken from the first sentence.
const maxTitleRunes = 140

// Config configures the document processor.
type Config struct {
	// MaxSentences caps the extractive summary length (default: 5).
	MaxSentences int `yaml:"max_sentences"`

	// MaxActionItems caps detected action items per document (default: 10).
	MaxActionItems int `yaml:"max_action_items"`

	// LengthDamping is the exponent applied to sentence token count when
	// normalizing scores (default: 0.6). Heuristic constant carried from
	// observed behavior; tune with care.
	LengthDamping float64 `yaml:"length_damping"`

	// ScriptThreshold is the minimum Malayalam-script letter ratio for a
	// document to classify as Malayalam (default: 0.3).
	ScriptThreshold float64 `yaml:"script_threshold"`

	// Rules overrides the built-in rule tables; mainly for tests.
	Rules *rules.Set `yaml:"-"`

	// Logger for debug messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxSentences <= 0 {
		c.MaxSentences = 5
	}
	if c.MaxActionItems <= 0 {
		c.MaxActionItems = 10
	}
	if c.LengthDamping <= 0 {
		c.LengthDamping = 0.6
	}
	if c.ScriptThreshold <= 0 {
		c.ScriptThreshold = 0.3
	}
	if c.Rules == nil {
		c.Rules = rules.Default()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor converts a raw document to normalized plain text.
// *docpipe.Pipeline satisfies it.
type Extractor interface {
	ExtractText(raw *docpipe.RawDocument) (string, error)
}

// Processor runs the per-document pipeline: language detection,
// segmentation, summarization, action-item detection, and tagging. It holds
// only read-only state and is safe for concurrent use.
type Processor struct {
	cfg     Config
	rules   *rules.Set
	extract Extractor
	logger  *slog.Logger

	// now is swappable in tests; records carry a first-seen timestamp.
	now func() time.Time
}

// NewProcessor creates a Processor using the given extractor.
func NewProcessor(extract Extractor, cfg Config) *Processor {
	cfg.defaults()
	return &Processor{
		cfg:     cfg,
		rules:   cfg.Rules,
		extract: extract,
		logger:  cfg.Logger,
		now:     time.Now,
	}
}

// Process converts one raw document into an immutable Record.
//
// The content hash is computed from raw bytes before extraction, so callers
// retain traceability even for failures. Extraction failures return a
// *docpipe.ExtractionError (wrapped); everything else is total. Empty
// extracted text is not an error: it yields an empty summary, no action
// items, and the fallback tag.
func (p *Processor) Process(ctx context.Context, raw *docpipe.RawDocument) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash := docpipe.Hash(raw.Data)

	text, err := p.extract.ExtractText(raw)
	if err != nil {
		return nil, err
	}

	lang := DetectLanguage(text, p.cfg.ScriptThreshold)
	sentences := Segment(text)

	title := filepath.Base(raw.Path)
	if len(sentences) > 0 {
		title = truncateRunes(sentences[0].Text, maxTitleRunes)
	}

	rec := &Record{
		SourcePath:  raw.Path,
		FileName:    filepath.Base(raw.Path),
		ContentHash: hash,
		Language:    lang,
		Title:       title,
		Summary:     sentenceTexts(p.Summarize(sentences, lang)),
		ActionItems: actionTexts(p.DetectActions(sentences)),
		Tags:        p.Classify(text),
		Dates:       p.FindDates(text),
		Amounts:     p.FindAmounts(text),
		FirstSeenAt: p.now().UTC().Format(time.RFC3339),
	}

	p.logger.Debug("document processed",
		"path", raw.Path,
		"language", lang,
		"sentences", len(sentences),
		"tags", rec.Tags,
		"action_items", len(rec.ActionItems))

	return rec, nil
}

// Tokenize lowercases, strips punctuation, and removes stopwords for the
// given language. Unknown-language documents use the English stopword set.
func (p *Processor) Tokenize(text string, lang Language) []string {
	raw := tokenize(text)
	out := raw[:0]
	for _, tok := range raw {
		if !p.rules.IsStop(tok, string(lang)) {
			out = append(out, tok)
		}
	}
	return out
}

func sentenceTexts(sentences []Sentence) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	return out
}

func actionTexts(items []ActionItem) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Text)
	}
	return out
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
