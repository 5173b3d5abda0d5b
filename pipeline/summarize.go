package pipeline

import (
	"math"
	"sort"
)

// Summarize selects the highest-scoring sentences as an extractive summary.
//
// Scoring: a term-frequency table is built over all non-stopword tokens in
// the document (no IDF — single-document scope); each sentence scores the
// sum of its token frequencies divided by len(tokens)^damping, which curbs
// the long-sentence bias. Ties break toward the earlier index. The selected
// subset is re-sorted by index so the summary reads in document order.
//
// Documents with at most MaxSentences sentences come back whole, in order.
func (p *Processor) Summarize(sentences []Sentence, lang Language) []Sentence {
	maxSentences := p.cfg.MaxSentences
	if len(sentences) == 0 {
		return nil
	}
	if len(sentences) <= maxSentences {
		return sentences
	}

	freq := make(map[string]int)
	tokensBySentence := make([][]string, len(sentences))
	for i, s := range sentences {
		toks := p.Tokenize(s.Text, lang)
		tokensBySentence[i] = toks
		for _, tok := range toks {
			freq[tok]++
		}
	}

	scored := make([]Sentence, len(sentences))
	copy(scored, sentences)
	for i := range scored {
		scored[i].Score = p.scoreSentence(tokensBySentence[i], freq)
	}

	ranked := make([]Sentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	top := ranked[:maxSentences]
	sort.Slice(top, func(i, j int) bool { return top[i].Index < top[j].Index })

	out := make([]Sentence, maxSentences)
	copy(out, top)
	return out
}

func (p *Processor) scoreSentence(tokens []string, freq map[string]int) float64 {
	if len(tokens) == 0 {
		return 0
	}
	sum := 0
	for _, tok := range tokens {
		sum += freq[tok]
	}
	return float64(sum) / math.Pow(float64(len(tokens)), p.cfg.LengthDamping)
}
