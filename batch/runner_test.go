package batch

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/docroute/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.pdf"), "%PDF")
	writeFile(t, filepath.Join(dir, "nested", "c.docx"), "PK")
	writeFile(t, filepath.Join(dir, "skip.png"), "png")
	writeFile(t, filepath.Join(dir, "notes.md"), "md")

	files, err := FindFiles(dir)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "nested", "c.docx"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("FindFiles = %v, want %v", files, want)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(in, "safety.txt"),
		"Safety circular 12. All staff must attend the briefing on 2025-04-01.")
	writeFile(t, filepath.Join(in, "invoice.txt"),
		"Invoice for vendor payment of Rs. 45,000 is pending.")
	writeFile(t, filepath.Join(in, "roster.txt"),
		"Station controller roster for next week.")
	// Not a zip archive at all; extraction must fail.
	writeFile(t, filepath.Join(in, "broken.docx"), "this is not a docx")

	cfg := DefaultConfig()
	cfg.InputDir = in
	cfg.OutputDir = out
	cfg.Workers = 2
	cfg.CatalogDB = filepath.Join(out, "catalog.db")

	r, err := NewRunner(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if report.Found != 4 || report.Processed != 3 {
		t.Errorf("report: found=%d processed=%d", report.Found, report.Processed)
	}
	if len(report.Failures) != 1 || filepath.Base(report.Failures[0].Path) != "broken.docx" {
		t.Errorf("failures: %+v", report.Failures)
	}

	// CSV got one header plus the three good documents.
	f, err := os.Open(filepath.Join(out, "summary.csv"))
	if err != nil {
		t.Fatalf("open summary.csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read summary.csv: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("csv rows = %d, want 4", len(rows))
	}

	// Route files exist for the matched departments.
	if _, err := os.Stat(filepath.Join(out, "route_Safety.jsonl")); err != nil {
		t.Errorf("route_Safety.jsonl missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "route_Procurement_Finance.jsonl")); err != nil {
		t.Errorf("route_Procurement_Finance.jsonl missing: %v", err)
	}

	// Catalog holds the three processed documents.
	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer store.Close()
	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("catalog count = %d, want 3", n)
	}
}

func TestRunEmptyInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = t.TempDir()

	r, err := NewRunner(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	defer r.Close()

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Found != 0 || report.Processed != 0 || len(report.Failures) != 0 {
		t.Errorf("report: %+v", report)
	}
}

func TestRunIsRerunSafe(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "note.txt"), "Submit the audit report by Friday.")

	cfg := DefaultConfig()
	cfg.InputDir = in
	cfg.OutputDir = out
	cfg.CatalogDB = filepath.Join(out, "catalog.db")

	for i := 0; i < 2; i++ {
		r, err := NewRunner(cfg, quietLogger())
		if err != nil {
			t.Fatalf("NewRunner #%d: %v", i, err)
		}
		if _, err := r.Run(context.Background()); err != nil {
			t.Fatalf("Run #%d: %v", i, err)
		}
		if err := r.Close(); err != nil {
			t.Fatalf("Close #%d: %v", i, err)
		}
	}

	// The CSV appends (two data rows, one header) while the catalog upserts
	// (still one document).
	f, _ := os.Open(filepath.Join(out, "summary.csv"))
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read summary.csv: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("csv rows = %d, want 3", len(rows))
	}

	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer store.Close()
	n, _ := store.Count(context.Background())
	if n != 1 {
		t.Errorf("catalog count = %d, want 1", n)
	}
}
