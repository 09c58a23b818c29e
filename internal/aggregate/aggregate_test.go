package aggregate_test

import (
	"context"
	"testing"

	"medialog/internal/aggregate"
	"medialog/internal/store"
	"medialog/internal/testsupport"
)

func TestAverageRatingNilVersusZero(t *testing.T) {
	s := testsupport.MustOpenStore(t)
	agg := aggregate.New(s)
	ctx := context.Background()

	testsupport.AddContent(t, s, store.Content{ID: "1", Title: "Unrated", Type: store.TypeMovie, Description: "d"})
	testsupport.AddContent(t, s, store.Content{ID: "2", Title: "Zero", Type: store.TypeMovie, Description: "d"})
	testsupport.UpsertReview(t, s, store.Review{ContentID: "2", UserID: store.CurrentUserID, Rating: 0})

	unrated, err := agg.AverageRating(ctx, "1")
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if unrated != nil {
		t.Fatalf("expected nil average for unreviewed content, got %v", *unrated)
	}

	zero, err := agg.AverageRating(ctx, "2")
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if zero == nil || *zero != 0 {
		t.Fatalf("expected average 0 for a zero-rated review, got %v", zero)
	}
}

func TestAverageRatingMean(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)

	// Seeded ratings for Inception: 8 (Alice) and 7 (Bob).
	avg, err := agg.AverageRating(context.Background(), "1")
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg == nil || *avg != 7.5 {
		t.Fatalf("expected average 7.5, got %v", avg)
	}
}

func TestAverageRatingsBatchMatchesSingle(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)
	ctx := context.Background()

	batch, err := agg.AverageRatings(ctx)
	if err != nil {
		t.Fatalf("AverageRatings failed: %v", err)
	}

	items, err := s.ContentList(ctx)
	if err != nil {
		t.Fatalf("ContentList failed: %v", err)
	}
	for _, item := range items {
		single, err := agg.AverageRating(ctx, item.ID)
		if err != nil {
			t.Fatalf("AverageRating failed: %v", err)
		}
		got, ok := batch[item.ID]
		if single == nil {
			if ok {
				t.Fatalf("content %s: batch has %v, single has none", item.ID, got)
			}
			continue
		}
		if !ok || got != *single {
			t.Fatalf("content %s: batch %v (present=%v) != single %v", item.ID, got, ok, *single)
		}
	}
}

func TestDanglingReviewGetsPlaceholder(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)
	ctx := context.Background()

	if err := s.DeleteContent(ctx, "3"); err != nil {
		t.Fatalf("DeleteContent failed: %v", err)
	}

	joined, err := agg.ReviewsWithContentByContent(ctx, "3")
	if err != nil {
		t.Fatalf("ReviewsWithContentByContent failed: %v", err)
	}
	if len(joined) != 1 {
		t.Fatalf("expected exactly one joined record, got %d", len(joined))
	}

	got := joined[0]
	if got.Title != aggregate.PlaceholderTitle {
		t.Fatalf("expected placeholder title, got %q", got.Title)
	}
	if got.Description != aggregate.PlaceholderDescription {
		t.Fatalf("expected placeholder description, got %q", got.Description)
	}
	if got.Type != store.DefaultType {
		t.Fatalf("expected default type, got %q", got.Type)
	}
	if got.ThumbnailURL != "" {
		t.Fatalf("expected no thumbnail on placeholder, got %q", got.ThumbnailURL)
	}
	if got.Rating != 9 {
		t.Fatalf("review fields must survive the join, got rating %d", got.Rating)
	}
}

func TestReviewsWithContentByUser(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)

	joined, err := agg.ReviewsWithContentByUser(context.Background(), "1")
	if err != nil {
		t.Fatalf("ReviewsWithContentByUser failed: %v", err)
	}
	if len(joined) != 2 {
		t.Fatalf("expected Alice's 2 reviews, got %d", len(joined))
	}
	for _, r := range joined {
		if r.UserID != "1" {
			t.Fatalf("expected only Alice's reviews, got user %q", r.UserID)
		}
		if r.Title == "" {
			t.Fatal("expected catalog fields to be joined in")
		}
	}
}

func TestFriendReviewersExcludesUnfollowedAndSelf(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)
	ctx := context.Background()

	// The current user and unfollowed Charlie both reviewed Fleabag; neither
	// belongs in the strip.
	reviewers, err := agg.FriendReviewers(ctx, "2")
	if err != nil {
		t.Fatalf("FriendReviewers failed: %v", err)
	}
	if len(reviewers) != 0 {
		t.Fatalf("expected no friend reviewers for Fleabag, got %d", len(reviewers))
	}

	// Inception was reviewed by followed friends Alice and Bob.
	reviewers, err = agg.FriendReviewers(ctx, "1")
	if err != nil {
		t.Fatalf("FriendReviewers failed: %v", err)
	}
	if len(reviewers) != 2 || reviewers[0].Name != "Alice Johnson" || reviewers[1].Name != "Bob Smith" {
		t.Fatalf("expected Alice then Bob, got %+v", reviewers)
	}
}

func TestFriendReviewersReflectsUnfollow(t *testing.T) {
	s := testsupport.MustOpenSeededStore(t)
	agg := aggregate.New(s)
	ctx := context.Background()

	if err := s.Unfollow(ctx, "1"); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}

	reviewers, err := agg.FriendReviewers(ctx, "1")
	if err != nil {
		t.Fatalf("FriendReviewers failed: %v", err)
	}
	if len(reviewers) != 1 || reviewers[0].ID != "2" {
		t.Fatalf("expected only Bob after unfollowing Alice, got %+v", reviewers)
	}
}
