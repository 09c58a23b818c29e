package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ContentList returns the full catalog in insertion order.
func (s *Store) ContentList(ctx context.Context) ([]Content, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, type, description, thumbnail_url, last_reviewed FROM content ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	var items []Content
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}
	return items, nil
}

// ContentByID fetches a single catalog entry. The boolean is false when the
// id is absent; a missing entry is not an error.
func (s *Store) ContentByID(ctx context.Context, id string) (Content, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, type, description, thumbnail_url, last_reviewed FROM content WHERE id = ?", id)
	item, err := scanContent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Content{}, false, nil
		}
		return Content{}, false, err
	}
	return item, true, nil
}

// AddContent validates and appends a catalog entry. The caller supplies the
// id; NextContentID implements the usual max+1 numbering for entries created
// by hand.
func (s *Store) AddContent(ctx context.Context, c Content) error {
	if strings.TrimSpace(c.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		return validationError("description is required")
	}
	if _, ok := ParseContentType(string(c.Type)); !ok {
		return validationError("unknown content type %q", c.Type)
	}
	return s.insertContent(ctx, c)
}

// UpdateContent replaces the entry matching c.ID. Absent ids are a silent
// no-op.
func (s *Store) UpdateContent(ctx context.Context, c Content) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE content SET title = ?, type = ?, description = ?, thumbnail_url = ? WHERE id = ?",
		c.Title, string(c.Type), c.Description, c.ThumbnailURL, c.ID); err != nil {
		return fmt.Errorf("update content %s: %w", c.ID, err)
	}
	return nil
}

// DeleteContent removes a catalog entry. Reviews pointing at the deleted id
// are left in place; the aggregation layer substitutes a placeholder when it
// joins them.
func (s *Store) DeleteContent(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM content WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete content %s: %w", id, err)
	}
	return nil
}

// SetLastReviewed overwrites the denormalized last-reviewed stamp. The review
// upsert path calls this; an absent id (orphaned review) is a no-op.
func (s *Store) SetLastReviewed(ctx context.Context, contentID string, ts time.Time) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE content SET last_reviewed = ? WHERE id = ?",
		formatTime(ts), contentID); err != nil {
		return fmt.Errorf("set last reviewed for %s: %w", contentID, err)
	}
	return nil
}

// ImportContent appends prospective entries whose ids are not already in the
// catalog and reports how many were inserted. Duplicates are dropped
// silently; the caller only learns the aggregate count.
func (s *Store) ImportContent(ctx context.Context, items []Content) (int, error) {
	existing, err := s.ContentList(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[item.ID] = struct{}{}
	}

	inserted := 0
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if err := s.insertContent(ctx, item); err != nil {
			return inserted, err
		}
		seen[item.ID] = struct{}{}
		inserted++
	}
	return inserted, nil
}

// NextContentID returns max(numeric ids)+1 as a string. Non-numeric ids
// (imported entries) are ignored by the scan.
func (s *Store) NextContentID(ctx context.Context) (string, error) {
	items, err := s.ContentList(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, item := range items {
		if n, err := strconv.Atoi(item.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func (s *Store) insertContent(ctx context.Context, c Content) error {
	var lastReviewed any
	if c.LastReviewed != nil {
		lastReviewed = formatTime(*c.LastReviewed)
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO content (id, title, type, description, thumbnail_url, last_reviewed) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Title, string(c.Type), c.Description, c.ThumbnailURL, lastReviewed); err != nil {
		return fmt.Errorf("insert content %s: %w", c.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (Content, error) {
	var c Content
	var typ string
	var lastReviewed sql.NullString
	if err := row.Scan(&c.ID, &c.Title, &typ, &c.Description, &c.ThumbnailURL, &lastReviewed); err != nil {
		return Content{}, fmt.Errorf("scan content: %w", err)
	}
	c.Type = ContentType(typ)
	if lastReviewed.Valid {
		ts, err := parseTime(lastReviewed.String)
		if err != nil {
			return Content{}, err
		}
		c.LastReviewed = &ts
	}
	return c, nil
}
