package emit

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hazyhaar/docroute/pipeline"
)

func sampleRecord(name string, tags ...string) *pipeline.Record {
	return &pipeline.Record{
		SourcePath:  "/in/" + name,
		FileName:    name,
		ContentHash: strings.Repeat("ab", 32),
		Language:    pipeline.LangEnglish,
		Title:       "Quarterly depot report",
		Summary:     []string{"First point.", "Second point."},
		ActionItems: []string{"Submit the annexure by Friday."},
		Tags:        tags,
		Dates:       []string{"2025-03-21"},
		Amounts:     []string{"Rs. 1,200"},
		FirstSeenAt: "2025-03-10T08:30:00Z",
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"report.pdf", "report.pdf"},
		{"Engineering/Rolling Stock", "Engineering_Rolling_Stock"},
		{"a b\tc", "a_b_c"},
		{"safe-name_1.txt", "safe-name_1.txt"},
	}
	for _, tc := range tests {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriterCSVHeaderOnceAcrossReopens(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWriter(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append(sampleRecord("one.txt", "General")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Second run appends to the same CSV without repeating the header.
	w, err = NewWriter(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewWriter (reopen): %v", err)
	}
	if err := w.Append(sampleRecord("two.txt", "General")); err != nil {
		t.Fatalf("Append (reopen): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close (reopen): %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("csv rows = %d, want header + 2 records", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "one.txt" || rows[2][1] != "two.txt" {
		t.Errorf("record rows out of order: %v / %v", rows[1], rows[2])
	}
}

func TestWriterCSVRowJoins(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	rec := sampleRecord("joined.txt", "Safety", "General")
	if err := w.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	w.Close()

	f, _ := os.Open(filepath.Join(dir, "summary.csv"))
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	row := rows[1]
	if row[5] != "First point. • Second point." {
		t.Errorf("summary column = %q", row[5])
	}
	if row[6] != "Submit the annexure by Friday." {
		t.Errorf("action column = %q", row[6])
	}
	if row[7] != "Safety; General" {
		t.Errorf("tags column = %q", row[7])
	}
}

func TestWriterRouteFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Config{Dir: dir})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append(sampleRecord("a.txt", "Safety", "Engineering/Rolling Stock")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Append(sampleRecord("b.txt", "Safety")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	w.Close()

	safety, err := os.ReadFile(filepath.Join(dir, "route_Safety.jsonl"))
	if err != nil {
		t.Fatalf("read route_Safety.jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(safety)), "\n")
	if len(lines) != 2 {
		t.Fatalf("route_Safety.jsonl lines = %d, want 2", len(lines))
	}
	var rec pipeline.Record
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal jsonl line: %v", err)
	}
	if rec.FileName != "a.txt" {
		t.Errorf("first line file_name = %q", rec.FileName)
	}

	if _, err := os.Stat(filepath.Join(dir, "route_Engineering_Rolling_Stock.jsonl")); err != nil {
		t.Errorf("sanitized route file missing: %v", err)
	}
}

func TestWriterPerFileJSON(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Config{Dir: dir, PerFileJSON: true})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append(sampleRecord("annual report.pdf", "General")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	w.Close()

	data, err := os.ReadFile(filepath.Join(dir, "annual_report.pdf.json"))
	if err != nil {
		t.Fatalf("per-file json missing: %v", err)
	}
	var rec pipeline.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal per-file json: %v", err)
	}
	if rec.FileName != "annual report.pdf" {
		t.Errorf("file_name = %q", rec.FileName)
	}
}
