package docpipe

import "testing"

func TestDecodeContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Hello) Tj\n10 0 Td\n[(wor) -20 (ld.)] TJ\nT*\n(Next line) '\nET\n")
	got := decodeContentStream(stream)
	want := "Hello world.\n\nNext line"
	if got != want {
		t.Errorf("decodeContentStream = %q, want %q", got, want)
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`line\nbreak`, "line\nbreak"},
		{`tab\there`, "tab\there"},
		{`paren\(inside\)`, "paren(inside)"},
		{`back\\slash`, `back\slash`},
		{`octal\040space`, "octal space"},
		{`short\41bang`, "short!bang"},
	}
	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPDFQualityNeedsOCR(t *testing.T) {
	tests := []struct {
		name string
		q    PDFQuality
		want bool
	}{
		{"healthy", PDFQuality{PageCount: 3, CharsPerPage: 1800, PrintableRatio: 0.99}, false},
		{"scanned", PDFQuality{PageCount: 10, CharsPerPage: 4, PrintableRatio: 1.0}, true},
		{"garbage fonts", PDFQuality{PageCount: 2, CharsPerPage: 900, PrintableRatio: 0.4}, true},
	}
	for _, tt := range tests {
		if got := tt.q.NeedsOCR(); got != tt.want {
			t.Errorf("%s: NeedsOCR() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPrintableRatio(t *testing.T) {
	if r := printableRatio(""); r != 1.0 {
		t.Errorf("empty text ratio = %v, want 1.0", r)
	}
	if r := printableRatio("clean readable text\n"); r != 1.0 {
		t.Errorf("clean text ratio = %v, want 1.0", r)
	}
	if r := printableRatio("ok�"); r >= 1.0 {
		t.Errorf("garbage runes must lower the ratio, got %v", r)
	}
}
