package store

import (
	"context"
	"fmt"
	"strings"
)

// Reviews returns every ledger entry in insertion order.
func (s *Store) Reviews(ctx context.Context) ([]Review, error) {
	return s.queryReviews(ctx,
		"SELECT content_id, user_id, rating, personal_notes, timestamp FROM reviews ORDER BY rowid")
}

// ReviewsByContent returns the reviews targeting one content id.
func (s *Store) ReviewsByContent(ctx context.Context, contentID string) ([]Review, error) {
	return s.queryReviews(ctx,
		"SELECT content_id, user_id, rating, personal_notes, timestamp FROM reviews WHERE content_id = ? ORDER BY rowid",
		contentID)
}

// ReviewsByUser returns one person's reviews.
func (s *Store) ReviewsByUser(ctx context.Context, userID string) ([]Review, error) {
	return s.queryReviews(ctx,
		"SELECT content_id, user_id, rating, personal_notes, timestamp FROM reviews WHERE user_id = ? ORDER BY rowid",
		userID)
}

// UpsertReview saves a rating keyed on (ContentID, UserID), replacing any
// earlier entry for the pair. The timestamp is always stamped with the
// current instant, and the content's denormalized last_reviewed field is
// updated to the same instant inside the same transaction so callers never
// observe one write without the other.
func (s *Store) UpsertReview(ctx context.Context, r Review) (Review, error) {
	if strings.TrimSpace(r.ContentID) == "" {
		return Review{}, validationError("content id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return Review{}, validationError("user id is required")
	}
	if r.Rating < 0 || r.Rating > 10 {
		return Review{}, validationError("rating must be between 0 and 10, got %d", r.Rating)
	}

	now := s.now().UTC()
	r.Timestamp = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Review{}, fmt.Errorf("begin upsert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO reviews (content_id, user_id, rating, personal_notes, timestamp)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (content_id, user_id) DO UPDATE SET
             rating = excluded.rating,
             personal_notes = excluded.personal_notes,
             timestamp = excluded.timestamp`,
		r.ContentID, r.UserID, r.Rating, r.PersonalNotes, formatTime(now)); err != nil {
		return Review{}, fmt.Errorf("upsert review (%s, %s): %w", r.ContentID, r.UserID, err)
	}

	// No-op when the review references deleted content.
	if _, err := tx.ExecContext(ctx,
		"UPDATE content SET last_reviewed = ? WHERE id = ?",
		formatTime(now), r.ContentID); err != nil {
		return Review{}, fmt.Errorf("stamp last reviewed for %s: %w", r.ContentID, err)
	}

	if err := tx.Commit(); err != nil {
		return Review{}, fmt.Errorf("commit upsert: %w", err)
	}
	return r, nil
}

// DeleteReview removes the entry for (contentID, userID); absent keys are a
// silent no-op. The content's last_reviewed stamp is deliberately left in
// place (see DESIGN.md).
func (s *Store) DeleteReview(ctx context.Context, contentID, userID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM reviews WHERE content_id = ? AND user_id = ?", contentID, userID); err != nil {
		return fmt.Errorf("delete review (%s, %s): %w", contentID, userID, err)
	}
	return nil
}

// insertReview writes a ledger row with its timestamp preserved. Seeding
// uses it to back-date demo reviews; user-facing writes go through
// UpsertReview.
func (s *Store) insertReview(ctx context.Context, r Review) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO reviews (content_id, user_id, rating, personal_notes, timestamp) VALUES (?, ?, ?, ?, ?)",
		r.ContentID, r.UserID, r.Rating, r.PersonalNotes, formatTime(r.Timestamp)); err != nil {
		return fmt.Errorf("insert review (%s, %s): %w", r.ContentID, r.UserID, err)
	}
	return nil
}

func (s *Store) queryReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		var ts string
		if err := rows.Scan(&r.ContentID, &r.UserID, &r.Rating, &r.PersonalNotes, &ts); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		stamp, err := parseTime(ts)
		if err != nil {
			return nil, err
		}
		r.Timestamp = stamp
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
