package pipeline

// Language is the dominant language of a document, decided once per document
// and applied uniformly to all of its derived artifacts.
type Language string

const (
	LangEnglish   Language = "en"
	LangMalayalam Language = "ml"
	// LangUnknown is reserved for text with no letters at all; detection
	// never returns it for real prose.
	LangUnknown Language = "unknown"
)

// Sentence is one segment of a document in original order. Score is assigned
// by the summarizer and defaults to 0.
type Sentence struct {
	Index int
	Text  string
	Score float64
}

// ActionItem is a sentence flagged as expressing an obligation or required
// action. Text is the verbatim sentence, never a paraphrase.
type ActionItem struct {
	Text          string
	SentenceIndex int
}

// Record is the immutable output of processing one document. It is the only
// artifact handed to output writers; persistence is their job, not the
// pipeline's.
type Record struct {
	SourcePath  string   `json:"source_path"`
	FileName    string   `json:"file_name"`
	ContentHash string   `json:"file_sha256"`
	Language    Language `json:"language"`
	Title       string   `json:"title"`
	Summary     []string `json:"summary_sentences"`
	ActionItems []string `json:"action_items"`
	Tags        []string `json:"tags"`
	Dates       []string `json:"detected_dates"`
	Amounts     []string `json:"detected_amounts"`
	FirstSeenAt string   `json:"first_seen_at"`
}
