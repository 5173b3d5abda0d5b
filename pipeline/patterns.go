package pipeline

import "regexp"

// FindDates returns every date-like token in the text, deduplicated while
// preserving first-occurrence order.
func (p *Processor) FindDates(text string) []string {
	return findPatterns(text, p.rules.DatePatterns)
}

// FindAmounts returns every currency amount in the text, deduplicated while
// preserving first-occurrence order.
func (p *Processor) FindAmounts(text string) []string {
	return findPatterns(text, p.rules.AmountPatterns)
}

func findPatterns(text string, patterns []*regexp.Regexp) []string {
	var found []string
	seen := make(map[string]struct{})
	for _, pat := range patterns {
		for _, m := range pat.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			found = append(found, m)
		}
	}
	return found
}
