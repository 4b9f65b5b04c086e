package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/fwojciec/coursecat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursecat.ResponseArchive = (*ResponseArchive)(nil)

// ResponseArchive implements coursecat.ResponseArchive using SQLite.
// Responses are keyed by the xxHash of their markup.
type ResponseArchive struct {
	db *DB
}

// NewResponseArchive creates a new ResponseArchive.
func NewResponseArchive(db *DB) *ResponseArchive {
	return &ResponseArchive{db: db}
}

// ArchiveResponse stores resp unless a response with identical markup is
// already archived, in which case the existing entry is returned.
func (a *ResponseArchive) ArchiveResponse(ctx context.Context, resp *coursecat.SearchResponse, reason string) (*coursecat.ArchivedResponse, error) {
	if resp == nil {
		return nil, coursecat.Errorf(coursecat.EINVALID, "response required")
	}

	hash := hashContent(resp.HTML)
	existing, err := a.findByHash(ctx, hash)
	if err == nil {
		return existing, nil
	}
	if coursecat.ErrorCode(err) != coursecat.ENOTFOUND {
		return nil, err
	}

	archived := &coursecat.ArchivedResponse{
		ID:          uuid.New().String(),
		ContentHash: hash,
		Reason:      reason,
		Response:    resp,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO responses (id, content_hash, reason, html, json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, archived.ID, archived.ContentHash, archived.Reason, resp.HTML, string(resp.JSON),
		archived.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return archived, nil
}

// FindArchivedResponses returns every archived response, newest first.
func (a *ResponseArchive) FindArchivedResponses(ctx context.Context) ([]*coursecat.ArchivedResponse, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, content_hash, reason, html, json, created_at
		FROM responses
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var archived []*coursecat.ArchivedResponse
	for rows.Next() {
		r, err := scanArchivedResponse(rows)
		if err != nil {
			return nil, err
		}
		archived = append(archived, r)
	}

	return archived, rows.Err()
}

func (a *ResponseArchive) findByHash(ctx context.Context, hash string) (*coursecat.ArchivedResponse, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, content_hash, reason, html, json, created_at
		FROM responses
		WHERE content_hash = ?
	`, hash)

	r, err := scanArchivedResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, coursecat.Errorf(coursecat.ENOTFOUND, "response not found")
	}
	return r, err
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArchivedResponse(s scanner) (*coursecat.ArchivedResponse, error) {
	var r coursecat.ArchivedResponse
	var resp coursecat.SearchResponse
	var rawJSON, createdAt string

	if err := s.Scan(&r.ID, &r.ContentHash, &r.Reason, &resp.HTML, &rawJSON, &createdAt); err != nil {
		return nil, err
	}
	if rawJSON != "" {
		resp.JSON = json.RawMessage(rawJSON)
	}
	r.Response = &resp

	var err error
	if r.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &r, nil
}
