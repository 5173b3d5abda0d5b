package pipeline

import "strings"

// Classify assigns department tags by matching trigger phrases against the
// lowercased document text. Matching is substring-based, so multi-word
// triggers only fire on contiguous occurrences. Rules are evaluated in table
// order, producing a deterministic tag sequence. When nothing matches, the
// fallback tag is assigned — the result is never empty.
func (p *Processor) Classify(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, rule := range p.rules.Tags {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		tags = []string{p.rules.FallbackTag}
	}
	return tags
}
