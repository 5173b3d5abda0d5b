package docpipe

import "unicode"

// PDFQuality captures metrics about PDF text extraction quality. Image-only
// or scanned PDFs yield almost no text per page; font-encoding problems show
// up as non-printable garbage.
type PDFQuality struct {
	PageCount      int
	CharsPerPage   float64
	PrintableRatio float64
}

// NeedsOCR reports whether the PDF likely needs OCR to read properly. The
// pipeline only logs this hint — OCR itself is out of scope.
func (q *PDFQuality) NeedsOCR() bool {
	return q.CharsPerPage < 50 || q.PrintableRatio < 0.85
}

// printableRatio returns the ratio of printable characters in text.
// Private Use Area runes, U+FFFD, and control characters other than
// whitespace count as garbage.
func printableRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func isGarbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	return r < 0x0020 && r != '\n' && r != '\r' && r != '\t'
}
