package docpipe

import "fmt"

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatTXT  Format = "txt"
)

// RawDocument is an input file loaded into memory, before extraction.
// It is immutable once created and discarded after extraction.
type RawDocument struct {
	// Path is the absolute source path, kept for traceability.
	Path string
	// Format is the declared type derived from the file extension.
	Format Format
	// Data holds the raw bytes. Content hashing runs over these bytes
	// regardless of whether extraction succeeds.
	Data []byte
}

// ExtractionError reports that raw bytes could not be converted to text
// (corrupt, encrypted, or unsupported sub-format). It is recovered at the
// per-document boundary: callers skip the document and keep going.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }
