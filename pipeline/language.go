package pipeline

import "unicode"

// detectSampleRunes bounds how much text the detector reads. Language is a
// document-level property; the opening of a document is representative.
const detectSampleRunes = 5000

// DetectLanguage classifies the dominant language of text by the proportion
// of Malayalam-script runes among letters. It is deterministic and total:
// insufficient evidence defaults to English; LangUnknown only for zero
// content. threshold is the minimum Malayalam ratio, in (0, 1).
func DetectLanguage(text string, threshold float64) Language {
	letters, malayalam := 0, 0
	seen := 0
	for _, r := range text {
		seen++
		if seen > detectSampleRunes {
			break
		}
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Malayalam, r) {
			malayalam++
		}
	}

	if letters == 0 {
		return LangUnknown
	}
	if float64(malayalam)/float64(letters) >= threshold {
		return LangMalayalam
	}
	return LangEnglish
}
