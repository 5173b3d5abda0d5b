// Package docpipe converts document files into normalized plain text.
//
// Supported formats:
//   - .pdf   — PDF text extraction (pdfcpu, cross-reference + stream decoding)
//   - .docx  — Microsoft Word (archive/zip → word/document.xml)
//   - .txt   — plain text (UTF-8 with BOM tolerance)
//
// All parsers are pure Go, CGO_ENABLED=0 compatible. Extraction failures are
// reported as *ExtractionError so callers can isolate bad files without
// aborting a batch.
//
// Usage:
//
//	pipe := docpipe.New(docpipe.Config{})
//	raw, err := pipe.Read("/path/to/file.pdf")
//	text, err := pipe.ExtractText(raw)
package docpipe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config configures the extraction pipeline.
type Config struct {
	// MaxFileSize is the maximum file size to load (default: 100 MB).
	MaxFileSize int64 `yaml:"max_file_size"`

	// Logger for debug/warn messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Pipeline is the document extraction engine.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg, logger: cfg.Logger}
}

// Detect returns the document format based on file extension.
func (p *Pipeline) Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	case ".txt", ".text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// Read loads a file into a RawDocument. The path is resolved to absolute
// form and the size guard is applied before any bytes are read.
func (p *Pipeline) Read(path string) (*RawDocument, error) {
	format, err := p.Detect(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %s is %d bytes (max %d)", abs, info.Size(), p.cfg.MaxFileSize)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}

	return &RawDocument{Path: abs, Format: format, Data: data}, nil
}

// ExtractText converts a raw document to normalized plain text. Newlines are
// preserved (the sentence segmenter treats them as boundaries); tabs, NBSP,
// and space runs collapse to single spaces. Failures come back as
// *ExtractionError carrying the source path.
func (p *Pipeline) ExtractText(raw *RawDocument) (string, error) {
	p.logger.Debug("extracting document", "path", raw.Path, "format", raw.Format)

	var text string
	var err error

	switch raw.Format {
	case FormatPDF:
		var quality *PDFQuality
		text, quality, err = extractPDF(raw.Data)
		if err == nil && quality != nil && quality.NeedsOCR() {
			p.logger.Warn("pdf text extraction looks degraded, document may be scanned",
				"path", raw.Path,
				"chars_per_page", quality.CharsPerPage,
				"printable_ratio", quality.PrintableRatio)
		}
	case FormatDocx:
		text, err = extractDocx(raw.Data)
	case FormatTXT:
		text, err = decodeText(raw.Data)
	default:
		err = fmt.Errorf("no parser for format: %s", raw.Format)
	}

	if err != nil {
		return "", &ExtractionError{Path: raw.Path, Cause: err}
	}
	return normalizeText(text), nil
}

// Hash returns the sha256 of raw bytes as 64 lowercase hex characters.
// It is a pure function of the bytes: identical content always yields the
// same hash regardless of path.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SupportedExtensions returns the file extensions the pipeline accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt"}
}

// Supported reports whether the path has a recognized document extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".txt", ".text":
		return true
	}
	return false
}
