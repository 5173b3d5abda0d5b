package docpipe

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText interprets raw bytes as UTF-8 text, stripping a leading BOM and
// dropping invalid sequences rather than failing. Plain text never produces
// an extraction error.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ToValidUTF8(string(data), ""), nil
}

// normalizeText canonicalizes whitespace while keeping line structure:
// CRLF/CR become LF, tabs and NBSP become spaces, runs of spaces collapse,
// and the result is trimmed. Newlines survive because the sentence segmenter
// treats them as boundaries.
func normalizeText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	prevSpace := false
	prevCR := false
	for _, r := range text {
		switch r {
		case '\r':
			sb.WriteByte('\n')
			prevCR = true
			prevSpace = false
			continue
		case '\n':
			if prevCR {
				prevCR = false
				continue // second half of CRLF
			}
			sb.WriteByte('\n')
			prevSpace = false
			continue
		case '\t', ' ', '\u00a0':
			prevCR = false
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevCR = false
		prevSpace = false
		sb.WriteRune(r)
	}

	return strings.TrimSpace(sb.String())
}
