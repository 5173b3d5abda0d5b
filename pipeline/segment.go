package pipeline

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not terminate a sentence.
// Compared lowercased, without the trailing period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {},
	"no": {}, "vs": {}, "etc": {}, "approx": {}, "rs": {},
	"e.g": {}, "i.e": {},
}

// sentence-terminal runes: Latin punctuation plus danda marks used in
// Malayalam and Devanagari text.
func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '।', '॥':
		return true
	}
	return false
}

// Segment splits normalized text into sentences, preserving original order
// and discarding empty fragments. Boundaries are sentence-terminal
// punctuation followed by whitespace (with a guard for common
// abbreviations) and newlines. Empty or whitespace-only input yields nil.
func Segment(text string) []Sentence {
	var sentences []Sentence
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s == "" {
			return
		}
		sentences = append(sentences, Sentence{Index: len(sentences), Text: s})
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if !isTerminal(r) {
			continue
		}
		// Terminal rune: split only when followed by whitespace (or end of
		// text) and the preceding token is not a known abbreviation.
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if next != 0 && !unicode.IsSpace(next) {
			continue
		}
		if r == '.' && isAbbreviation(current.String()) {
			continue
		}
		flush()
	}
	flush()

	return sentences
}

// isAbbreviation reports whether the fragment ends in a guarded
// abbreviation like "Dr." or "e.g.".
func isAbbreviation(fragment string) bool {
	fragment = strings.TrimSuffix(fragment, ".")
	idx := strings.LastIndexFunc(fragment, unicode.IsSpace)
	word := strings.ToLower(fragment[idx+1:])
	_, ok := abbreviations[word]
	return ok
}

// tokenize splits text into lowercased word tokens. A token is a run of
// letters, digits, or combining marks; any other rune is a separator.
// Marks must stay inside tokens: Malayalam vowel signs are category Mc/Mn
// and splitting on them would shred every word. No stopword filtering
// happens here — see Processor.Tokenize.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
