package pipeline

import "strings"

// DetectActions scans sentences for obligation cues and returns one
// ActionItem per qualifying sentence, carrying the verbatim sentence text
// and its index. A sentence qualifies when it contains a cue word (matched
// case-insensitively — whole words for single-word cues, contiguous phrases
// for multi-word cues) or a date-like token. Exact-duplicate texts collapse
// to one entry; the result is capped at MaxActionItems.
//
// No cross-sentence merging and no urgency scoring: presence of a cue is the
// whole signal.
func (p *Processor) DetectActions(sentences []Sentence) []ActionItem {
	var items []ActionItem
	seen := make(map[string]struct{})

	for _, s := range sentences {
		if len(items) >= p.cfg.MaxActionItems {
			break
		}
		if !p.isActionSentence(s.Text) {
			continue
		}
		if _, dup := seen[s.Text]; dup {
			continue
		}
		seen[s.Text] = struct{}{}
		items = append(items, ActionItem{Text: s.Text, SentenceIndex: s.Index})
	}

	return items
}

func (p *Processor) isActionSentence(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range p.rules.ActionCues {
		if containsCue(lower, cue) {
			return true
		}
	}
	for _, pat := range p.rules.DatePatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	return false
}

// containsCue matches a cue against lowercased text. Cues with internal or
// trailing spaces match as contiguous substrings; bare words must appear
// with non-letter boundaries on both sides ("due" must not fire in
// "residue").
func containsCue(lower, cue string) bool {
	if strings.Contains(cue, " ") {
		return strings.Contains(lower, cue)
	}
	for start := 0; ; {
		idx := strings.Index(lower[start:], cue)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(cue)
		if boundaryAt(lower, idx-1) && boundaryAt(lower, end) {
			return true
		}
		start = idx + 1
	}
}

// boundaryAt reports whether position i is outside the string or holds a
// non-word byte. Cue words are ASCII, so byte-level checks suffice.
func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}
