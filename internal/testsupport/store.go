package testsupport

import (
	"context"
	"testing"

	"medialog/internal/store"
)

// MustOpenStore opens an empty store for tests and registers cleanup.
func MustOpenStore(t testing.TB) *store.Store {
	t.Helper()

	s, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// MustOpenSeededStore opens a store preloaded with the demo dataset.
func MustOpenSeededStore(t testing.TB) *store.Store {
	t.Helper()

	s := MustOpenStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("store.Seed: %v", err)
	}
	return s
}

// AddContent inserts a catalog entry for tests using the provided store.
func AddContent(t testing.TB, s *store.Store, c store.Content) {
	t.Helper()

	if err := s.AddContent(context.Background(), c); err != nil {
		t.Fatalf("store.AddContent: %v", err)
	}
}

// UpsertReview saves a review for tests using the provided store.
func UpsertReview(t testing.TB, s *store.Store, r store.Review) store.Review {
	t.Helper()

	saved, err := s.UpsertReview(context.Background(), r)
	if err != nil {
		t.Fatalf("store.UpsertReview: %v", err)
	}
	return saved
}
