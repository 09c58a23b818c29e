package store_test

import (
	"context"
	"errors"
	"testing"

	"medialog/internal/store"
	"medialog/internal/testsupport"
)

func TestUpsertReviewReplacesByKey(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	ctx := context.Background()

	first := testsupport.UpsertReview(t, s, store.Review{ContentID: "5", UserID: store.CurrentUserID, Rating: 6})
	second := testsupport.UpsertReview(t, s, store.Review{ContentID: "5", UserID: store.CurrentUserID, Rating: 9, PersonalNotes: "Better on a reread."})

	reviews, err := s.ReviewsByContent(ctx, "5")
	if err != nil {
		t.Fatalf("ReviewsByContent failed: %v", err)
	}

	mine := 0
	for _, r := range reviews {
		if r.UserID != store.CurrentUserID {
			continue
		}
		mine++
		if r.Rating != 9 {
			t.Fatalf("expected latest rating 9, got %d", r.Rating)
		}
		if r.PersonalNotes != "Better on a reread." {
			t.Fatalf("expected latest notes, got %q", r.PersonalNotes)
		}
		if r.Timestamp.Before(first.Timestamp) {
			t.Fatalf("expected latest timestamp, got %v (first was %v)", r.Timestamp, first.Timestamp)
		}
	}
	if mine != 1 {
		t.Fatalf("expected exactly one review for the (content, user) key, got %d", mine)
	}
	if second.Timestamp.Before(first.Timestamp) {
		t.Fatalf("second upsert timestamp %v precedes first %v", second.Timestamp, first.Timestamp)
	}
}

func TestUpsertReviewStampsLastReviewed(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	ctx := context.Background()

	before, ok, err := s.ContentByID(ctx, "6")
	if err != nil || !ok {
		t.Fatalf("ContentByID failed: ok=%v err=%v", ok, err)
	}
	if before.LastReviewed != nil {
		t.Fatalf("expected unreviewed content to have nil LastReviewed, got %v", before.LastReviewed)
	}

	saved := testsupport.UpsertReview(t, s, store.Review{ContentID: "6", UserID: store.CurrentUserID, Rating: 8})

	after, ok, err := s.ContentByID(ctx, "6")
	if err != nil || !ok {
		t.Fatalf("ContentByID failed: ok=%v err=%v", ok, err)
	}
	if after.LastReviewed == nil {
		t.Fatal("expected LastReviewed to be stamped by the upsert")
	}
	if !after.LastReviewed.Equal(saved.Timestamp) {
		t.Fatalf("LastReviewed %v does not match review timestamp %v", after.LastReviewed, saved.Timestamp)
	}
}

func TestUpsertReviewValidation(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)

	cases := []struct {
		name   string
		review store.Review
	}{
		{"rating too high", store.Review{ContentID: "1", UserID: store.CurrentUserID, Rating: 11}},
		{"rating negative", store.Review{ContentID: "1", UserID: store.CurrentUserID, Rating: -1}},
		{"missing content id", store.Review{UserID: store.CurrentUserID, Rating: 5}},
		{"missing user id", store.Review{ContentID: "1", Rating: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.UpsertReview(context.Background(), tc.review); !errors.Is(err, store.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpsertReviewForDeletedContent(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	ctx := context.Background()

	if err := s.DeleteContent(ctx, "4"); err != nil {
		t.Fatalf("DeleteContent failed: %v", err)
	}

	testsupport.UpsertReview(t, s, store.Review{ContentID: "4", UserID: store.CurrentUserID, Rating: 7})

	reviews, err := s.ReviewsByContent(ctx, "4")
	if err != nil {
		t.Fatalf("ReviewsByContent failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected the dangling review to be stored, got %d entries", len(reviews))
	}
}

func TestDeleteReviewKeepsLastReviewed(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	ctx := context.Background()

	saved := testsupport.UpsertReview(t, s, store.Review{ContentID: "6", UserID: store.CurrentUserID, Rating: 8})
	if err := s.DeleteReview(ctx, "6", store.CurrentUserID); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}

	reviews, err := s.ReviewsByContent(ctx, "6")
	if err != nil {
		t.Fatalf("ReviewsByContent failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected review removed, got %d entries", len(reviews))
	}

	item, ok, err := s.ContentByID(ctx, "6")
	if err != nil || !ok {
		t.Fatalf("ContentByID failed: ok=%v err=%v", ok, err)
	}
	if item.LastReviewed == nil || !item.LastReviewed.Equal(saved.Timestamp) {
		t.Fatalf("LastReviewed must not roll back on delete, got %v", item.LastReviewed)
	}
}

func TestDeleteReviewAbsentKeyIsNoOp(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)

	if err := s.DeleteReview(context.Background(), "1", "nobody"); err != nil {
		t.Fatalf("DeleteReview on absent key should not error: %v", err)
	}
}
