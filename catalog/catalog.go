// Package catalog persists processed document records in SQLite, keyed by
// content hash so reprocessing a file updates its entry instead of
// duplicating it.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hazyhaar/docroute/dbopen"
	"github.com/hazyhaar/docroute/idgen"
	"github.com/hazyhaar/docroute/pipeline"
)

// Schema for the documents table. Applied by Open; call manually when
// wrapping an existing *sql.DB.
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	file_sha256 TEXT NOT NULL UNIQUE,
	source_path TEXT NOT NULL,
	file_name TEXT NOT NULL,
	language TEXT NOT NULL,
	title TEXT NOT NULL,
	summary TEXT NOT NULL,
	action_items TEXT NOT NULL,
	tags TEXT NOT NULL,
	detected_dates TEXT NOT NULL,
	detected_amounts TEXT NOT NULL,
	first_seen_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_language ON documents(language);
CREATE INDEX IF NOT EXISTS idx_documents_first_seen ON documents(first_seen_at);
`

// ErrNotFound is returned when no document matches the given hash.
var ErrNotFound = errors.New("catalog: document not found")

// Document is a stored record plus its catalog identity.
type Document struct {
	ID        string `json:"id"`
	UpdatedAt string `json:"updated_at"`
	pipeline.Record
}

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	// Tag keeps documents carrying this exact tag.
	Tag string

	// Language keeps documents in this language ("en", "ml", "unknown").
	Language string

	// Query keeps documents whose title or file name contains the string,
	// case-insensitively.
	Query string

	// Limit caps the result set (default 200).
	Limit int
}

// Store persists documents in a SQLite table. Safe for concurrent use; the
// underlying *sql.DB serializes writes under WAL.
type Store struct {
	db    *sql.DB
	newID idgen.Generator

	// now is swappable in tests.
	now func() time.Time
}

// Open opens (creating if needed) a catalog database at path.
func Open(path string) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(Schema))
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return NewStore(db), nil
}

// NewStore wraps an existing database connection. The caller is responsible
// for having applied Schema.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		newID: idgen.Prefixed("doc_", idgen.UUIDv7()),
		now:   time.Now,
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put upserts a record keyed by its content hash and returns the document
// id. A new document gets id "doc_" + UUIDv7; reprocessing an already-seen
// file keeps the original id and first_seen_at and refreshes everything
// else.
func (s *Store) Put(ctx context.Context, rec *pipeline.Record) (string, error) {
	cols, err := encodeLists(rec)
	if err != nil {
		return "", err
	}

	id := s.newID()
	updatedAt := s.now().UTC().Format(time.RFC3339)

	err = dbopen.RunTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO documents
				(id, file_sha256, source_path, file_name, language, title,
				 summary, action_items, tags, detected_dates, detected_amounts,
				 first_seen_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(file_sha256) DO UPDATE SET
				source_path = excluded.source_path,
				file_name = excluded.file_name,
				language = excluded.language,
				title = excluded.title,
				summary = excluded.summary,
				action_items = excluded.action_items,
				tags = excluded.tags,
				detected_dates = excluded.detected_dates,
				detected_amounts = excluded.detected_amounts,
				updated_at = excluded.updated_at`,
			id, rec.ContentHash, rec.SourcePath, rec.FileName,
			string(rec.Language), rec.Title,
			cols.summary, cols.actions, cols.tags, cols.dates, cols.amounts,
			rec.FirstSeenAt, updatedAt)
		if err != nil {
			return err
		}
		// The upsert keeps the existing id on conflict; read back the
		// authoritative one.
		return tx.QueryRowContext(ctx,
			`SELECT id FROM documents WHERE file_sha256 = ?`, rec.ContentHash).Scan(&id)
	})
	if err != nil {
		return "", fmt.Errorf("catalog: put %s: %w", rec.FileName, err)
	}
	return id, nil
}

// GetByHash fetches one document by content hash. Returns ErrNotFound when
// the hash is absent.
func (s *Store) GetByHash(ctx context.Context, hash string) (*Document, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM documents WHERE file_sha256 = ?`, hash)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get %s: %w", hash, err)
	}
	return doc, nil
}

// List returns documents matching the filter, newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]*Document, error) {
	query := selectColumns + ` FROM documents`
	var conds []string
	var args []any

	if f.Tag != "" {
		// Tags are stored as a JSON array of strings; an exact tag always
		// appears quoted.
		conds = append(conds, `tags LIKE ?`)
		args = append(args, `%"`+f.Tag+`"%`)
	}
	if f.Language != "" {
		conds = append(conds, `language = ?`)
		args = append(args, f.Language)
	}
	if f.Query != "" {
		// SQLite LIKE is case-insensitive for ASCII.
		conds = append(conds, `(title LIKE ? OR file_name LIKE ?)`)
		pat := "%" + f.Query + "%"
		args = append(args, pat, pat)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 200
	}
	query += ` ORDER BY first_seen_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: list scan: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("catalog: count: %w", err)
	}
	return n, nil
}

const selectColumns = `SELECT id, file_sha256, source_path, file_name, language, title,
	summary, action_items, tags, detected_dates, detected_amounts,
	first_seen_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*Document, error) {
	var doc Document
	var lang, summary, actions, tags, dates, amounts string
	if err := row.Scan(&doc.ID, &doc.ContentHash, &doc.SourcePath, &doc.FileName,
		&lang, &doc.Title, &summary, &actions, &tags, &dates, &amounts,
		&doc.FirstSeenAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	doc.Language = pipeline.Language(lang)

	for _, col := range []struct {
		raw  string
		dest *[]string
	}{
		{summary, &doc.Summary},
		{actions, &doc.ActionItems},
		{tags, &doc.Tags},
		{dates, &doc.Dates},
		{amounts, &doc.Amounts},
	} {
		if err := json.Unmarshal([]byte(col.raw), col.dest); err != nil {
			return nil, fmt.Errorf("decode list column: %w", err)
		}
	}
	return &doc, nil
}

type listColumns struct {
	summary, actions, tags, dates, amounts string
}

func encodeLists(rec *pipeline.Record) (listColumns, error) {
	var cols listColumns
	for _, col := range []struct {
		src  []string
		dest *string
	}{
		{rec.Summary, &cols.summary},
		{rec.ActionItems, &cols.actions},
		{rec.Tags, &cols.tags},
		{rec.Dates, &cols.dates},
		{rec.Amounts, &cols.amounts},
	} {
		src := col.src
		if src == nil {
			src = []string{}
		}
		data, err := json.Marshal(src)
		if err != nil {
			return cols, fmt.Errorf("catalog: encode list column: %w", err)
		}
		*col.dest = string(data)
	}
	return cols, nil
}
