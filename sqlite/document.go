package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mjaros/pageblocks"
)

// Compile-time interface verification.
var _ pageblocks.DocumentService = (*DocumentService)(nil)

// DocumentService implements pageblocks.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes the xxHash of content as a hex string. The
// importer compares hashes to skip re-importing unchanged pages.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateDocument creates a new document record.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *pageblocks.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ImportedAt.IsZero() {
		doc.ImportedAt = time.Now().UTC()
	}
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, file_path, title, content, content_hash, blocks, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.FilePath, doc.Title, doc.Content, doc.ContentHash,
		doc.Blocks, doc.ImportedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pageblocks.Document, error) {
	row := s.db.QueryRowContext(ctx, selectDocuments+" WHERE id = ?", id)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, pageblocks.Errorf(pageblocks.ENOTFOUND, "document not found")
	}
	return doc, err
}

// FindDocumentBySourceURL retrieves the most recent import of a URL.
func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*pageblocks.Document, error) {
	row := s.db.QueryRowContext(ctx,
		selectDocuments+" WHERE source_url = ? ORDER BY imported_at DESC, rowid DESC LIMIT 1", sourceURL)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, pageblocks.Errorf(pageblocks.ENOTFOUND, "no import recorded for %q", sourceURL)
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter, most recent
// first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter pageblocks.DocumentFilter) ([]*pageblocks.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectDocuments)
	query.WriteString(" WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY imported_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pageblocks.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document record.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return pageblocks.Errorf(pageblocks.ENOTFOUND, "document not found")
	}

	return nil
}

const selectDocuments = "SELECT id, source_url, file_path, title, content, content_hash, blocks, imported_at FROM documents"

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*pageblocks.Document, error) {
	var doc pageblocks.Document
	var importedAt string

	if err := s.Scan(&doc.ID, &doc.SourceURL, &doc.FilePath, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Blocks, &importedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}
	doc.ImportedAt = t

	return &doc, nil
}
