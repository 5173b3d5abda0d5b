// Package emit writes pipeline records to the output directory: a CSV
// aggregate (summary.csv), one JSONL route file per department tag, and
// optionally one pretty-printed JSON file per document.
package emit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/hazyhaar/docroute/pipeline"
)

// csvHeader is written once when summary.csv is created. Column order is
// part of the output contract; downstream sheets key on it.
var csvHeader = []string{
	"source_path",
	"file_name",
	"file_sha256",
	"language",
	"title",
	"summary",
	"action_items",
	"tags",
	"detected_dates",
	"detected_amounts",
	"first_seen_at",
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename replaces every byte outside [A-Za-z0-9_.-] with an
// underscore, yielding names safe for any filesystem. Multibyte runes
// collapse to one underscore per byte; traceability comes from the content
// hash, not the name.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// Config configures a Writer.
type Config struct {
	// Dir is the output directory; created if missing.
	Dir string

	// PerFileJSON additionally writes <sanitized file name>.json per record.
	PerFileJSON bool
}

// Writer appends records to the aggregate outputs. All methods are safe for
// concurrent use; a single mutex serializes appends so CSV rows and JSONL
// lines never interleave.
type Writer struct {
	cfg Config

	mu     sync.Mutex
	csvF   *os.File
	csvW   *csv.Writer
	routes map[string]*os.File
}

// NewWriter creates the output directory and opens summary.csv for append,
// writing the header only when the file is new or empty. Route files open
// lazily on first use of each tag.
func NewWriter(cfg Config) (*Writer, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("emit: output directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("emit: create output dir: %w", err)
	}

	csvPath := filepath.Join(cfg.Dir, "summary.csv")
	f, err := os.OpenFile(csvPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("emit: open %s: %w", csvPath, err)
	}

	w := &Writer{
		cfg:    cfg,
		csvF:   f,
		csvW:   csv.NewWriter(f),
		routes: make(map[string]*os.File),
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("emit: stat %s: %w", csvPath, err)
	}
	if info.Size() == 0 {
		if err := w.csvW.Write(csvHeader); err != nil {
			f.Close()
			return nil, fmt.Errorf("emit: write csv header: %w", err)
		}
		w.csvW.Flush()
		if err := w.csvW.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("emit: flush csv header: %w", err)
		}
	}

	return w, nil
}

// Append writes one record to summary.csv, to the route file of each of its
// tags, and (when configured) to a per-file JSON. Output is flushed before
// returning so a crash mid-batch loses at most the in-flight record.
func (w *Writer) Append(rec *pipeline.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.csvW.Write(csvRow(rec)); err != nil {
		return fmt.Errorf("emit: write csv row: %w", err)
	}
	w.csvW.Flush()
	if err := w.csvW.Error(); err != nil {
		return fmt.Errorf("emit: flush csv: %w", err)
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("emit: marshal record: %w", err)
	}
	for _, tag := range rec.Tags {
		f, err := w.routeFile(tag)
		if err != nil {
			return err
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("emit: write route %s: %w", tag, err)
		}
	}

	if w.cfg.PerFileJSON {
		if err := w.writePerFileJSON(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) routeFile(tag string) (*os.File, error) {
	if f, ok := w.routes[tag]; ok {
		return f, nil
	}
	path := filepath.Join(w.cfg.Dir, "route_"+SanitizeFilename(tag)+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("emit: open %s: %w", path, err)
	}
	w.routes[tag] = f
	return f, nil
}

func (w *Writer) writePerFileJSON(rec *pipeline.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("emit: marshal record: %w", err)
	}
	path := filepath.Join(w.cfg.Dir, SanitizeFilename(rec.FileName)+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("emit: write %s: %w", path, err)
	}
	return nil
}

// Close flushes and closes the CSV and every open route file, reporting the
// first error encountered.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	w.csvW.Flush()
	if err := w.csvW.Error(); err != nil {
		firstErr = err
	}
	if err := w.csvF.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	for _, f := range w.routes {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.routes = make(map[string]*os.File)
	return firstErr
}

func csvRow(rec *pipeline.Record) []string {
	return []string{
		rec.SourcePath,
		rec.FileName,
		rec.ContentHash,
		string(rec.Language),
		rec.Title,
		strings.Join(rec.Summary, " • "),
		strings.Join(rec.ActionItems, " | "),
		strings.Join(rec.Tags, "; "),
		strings.Join(rec.Dates, "; "),
		strings.Join(rec.Amounts, "; "),
		rec.FirstSeenAt,
	}
}
