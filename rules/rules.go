// Package rules holds the static rule tables that drive the document
// pipeline: stopword sets, department tag triggers, action-item cue words,
// and date/amount patterns.
//
// Tables are loaded once at startup via Default() and injected into the
// components that need them. Nothing here mutates after construction, so a
// single Set is safe to share across concurrent workers.
package rules

import "regexp"

// TagRule maps one department tag to its trigger phrases. A trigger matches
// as a contiguous substring of the lowercased document text, so multi-word
// triggers only match contiguous occurrences.
type TagRule struct {
	Tag      string
	Triggers []string
}

// Set is the full rule table bundle consumed by the pipeline.
type Set struct {
	stopEN map[string]struct{}
	stopML map[string]struct{}

	// Tags is evaluated in order; order is part of the output contract
	// (route files and CSV columns list tags in rule order).
	Tags []TagRule

	// FallbackTag is assigned when no trigger matches, guaranteeing that
	// every document carries at least one tag.
	FallbackTag string

	// ActionCues qualify a sentence as an action item. Single-word cues
	// match as whole words, multi-word cues as contiguous phrases.
	ActionCues []string

	DatePatterns   []*regexp.Regexp
	AmountPatterns []*regexp.Regexp
}

// Stopwords returns the stopword set for a language code. Anything that is
// not Malayalam ("ml") falls back to the English set, including "unknown" —
// the safe default for undetectable documents.
func (s *Set) Stopwords(lang string) map[string]struct{} {
	if lang == "ml" {
		return s.stopML
	}
	return s.stopEN
}

// IsStop reports whether a normalized token is a stopword for the language.
func (s *Set) IsStop(token, lang string) bool {
	_, ok := s.Stopwords(lang)[token]
	return ok
}

// Default returns the built-in rule tables.
func Default() *Set {
	return &Set{
		stopEN:         toSet(stopwordsEN),
		stopML:         toSet(stopwordsML),
		Tags:           defaultTagRules(),
		FallbackTag:    "General",
		ActionCues:     defaultActionCues(),
		DatePatterns:   compileAll(datePatterns),
		AmountPatterns: compileAll(amountPatterns),
	}
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
