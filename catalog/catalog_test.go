package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/docroute/dbopen"
	"github.com/hazyhaar/docroute/pipeline"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	return NewStore(db)
}

func testRecord(name, hash string) *pipeline.Record {
	return &pipeline.Record{
		SourcePath:  "/in/" + name,
		FileName:    name,
		ContentHash: hash,
		Language:    pipeline.LangEnglish,
		Title:       "Depot maintenance notice",
		Summary:     []string{"Brakes inspected.", "Coaches cleared."},
		ActionItems: []string{"Submit report by Friday."},
		Tags:        []string{"Engineering/Rolling Stock", "Safety"},
		Dates:       []string{"2025-03-21"},
		Amounts:     nil,
		FirstSeenAt: "2025-03-10T08:30:00Z",
	}
}

func TestPutAndGetByHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("notice.pdf", strings.Repeat("a1", 32))
	id, err := s.Put(ctx, rec)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(id, "doc_") {
		t.Errorf("id = %q, want doc_ prefix", id)
	}

	doc, err := s.GetByHash(ctx, rec.ContentHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if doc.ID != id {
		t.Errorf("ID = %q, want %q", doc.ID, id)
	}
	if doc.Title != rec.Title || doc.Language != rec.Language {
		t.Errorf("scalar fields mismatch: %+v", doc)
	}
	if diff := cmp.Diff(rec.Tags, doc.Tags); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rec.Summary, doc.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if len(doc.Amounts) != 0 {
		t.Errorf("Amounts = %v, want empty", doc.Amounts)
	}
}

func TestPutUpsertKeepsIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	hash := strings.Repeat("b2", 32)

	first := testRecord("v1.pdf", hash)
	id1, err := s.Put(ctx, first)
	if err != nil {
		t.Fatalf("first Put: %v", err)
	}

	second := testRecord("v1-moved.pdf", hash)
	second.Title = "Renamed copy of the notice"
	second.FirstSeenAt = "2025-04-01T00:00:00Z"
	id2, err := s.Put(ctx, second)
	if err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if id1 != id2 {
		t.Errorf("upsert changed id: %q then %q", id1, id2)
	}

	doc, err := s.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if doc.Title != second.Title || doc.FileName != "v1-moved.pdf" {
		t.Errorf("mutable fields not refreshed: %+v", doc)
	}
	if doc.FirstSeenAt != first.FirstSeenAt {
		t.Errorf("first_seen_at = %q, want original %q", doc.FirstSeenAt, first.FirstSeenAt)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestGetByHashNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetByHash(context.Background(), strings.Repeat("00", 32))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Deterministic timestamps so ordering is testable.
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	docs := []*pipeline.Record{
		testRecord("brake_audit.pdf", strings.Repeat("01", 32)),
		testRecord("station_roster.docx", strings.Repeat("02", 32)),
		testRecord("kurippu.txt", strings.Repeat("03", 32)),
	}
	docs[1].Tags = []string{"Operations/Stations"}
	docs[1].Title = "Station controller roster"
	docs[2].Language = pipeline.LangMalayalam
	docs[2].Tags = []string{"General"}
	for i, rec := range docs {
		rec.FirstSeenAt = base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		if _, err := s.Put(ctx, rec); err != nil {
			t.Fatalf("Put %s: %v", rec.FileName, err)
		}
	}

	all, err := s.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d docs, want 3", len(all))
	}
	if all[0].FileName != "kurippu.txt" {
		t.Errorf("newest-first ordering broken: first is %q", all[0].FileName)
	}

	byTag, err := s.List(ctx, ListFilter{Tag: "Operations/Stations"})
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].FileName != "station_roster.docx" {
		t.Errorf("tag filter: %+v", byTag)
	}

	byLang, err := s.List(ctx, ListFilter{Language: "ml"})
	if err != nil {
		t.Fatalf("List by language: %v", err)
	}
	if len(byLang) != 1 || byLang[0].FileName != "kurippu.txt" {
		t.Errorf("language filter: %+v", byLang)
	}

	byQuery, err := s.List(ctx, ListFilter{Query: "ROSTER"})
	if err != nil {
		t.Fatalf("List by query: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].FileName != "station_roster.docx" {
		t.Errorf("query filter: %+v", byQuery)
	}

	limited, err := s.List(ctx, ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit not applied: got %d", len(limited))
	}
}
