package aggregate

import (
	"context"
	"slices"

	"medialog/internal/store"
)

// Placeholder values substituted when a review references deleted content.
const (
	PlaceholderTitle       = "Unknown Content"
	PlaceholderDescription = "This content has been removed."
)

// ReviewWithContent is a ledger entry joined with its catalog record. It is
// derived on every read and never stored.
type ReviewWithContent struct {
	store.Review
	store.Content
}

// Aggregator derives joined views over a store. Every method re-reads the
// underlying collections, so results always reflect the latest mutation.
type Aggregator struct {
	store *store.Store
}

// New wraps a store.
func New(s *store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// ReviewsWithContent left-joins every review with its catalog record. A
// review whose content has been deleted joins against a synthesized
// placeholder instead of being dropped, so rendering never trips over a
// dangling reference.
func (a *Aggregator) ReviewsWithContent(ctx context.Context) ([]ReviewWithContent, error) {
	reviews, err := a.store.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	return a.join(ctx, reviews)
}

// ReviewsWithContentByUser narrows the join to one person's reviews.
func (a *Aggregator) ReviewsWithContentByUser(ctx context.Context, userID string) ([]ReviewWithContent, error) {
	reviews, err := a.store.ReviewsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return a.join(ctx, reviews)
}

// ReviewsWithContentByContent narrows the join to one content item.
func (a *Aggregator) ReviewsWithContentByContent(ctx context.Context, contentID string) ([]ReviewWithContent, error) {
	reviews, err := a.store.ReviewsByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	return a.join(ctx, reviews)
}

func (a *Aggregator) join(ctx context.Context, reviews []store.Review) ([]ReviewWithContent, error) {
	catalog, err := a.store.ContentList(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]store.Content, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	joined := make([]ReviewWithContent, 0, len(reviews))
	for _, r := range reviews {
		content, ok := byID[r.ContentID]
		if !ok {
			content = placeholderContent(r.ContentID)
		}
		joined = append(joined, ReviewWithContent{Review: r, Content: content})
	}
	return joined, nil
}

func placeholderContent(id string) store.Content {
	return store.Content{
		ID:          id,
		Title:       PlaceholderTitle,
		Type:        store.DefaultType,
		Description: PlaceholderDescription,
	}
}

// AverageRating computes the arithmetic mean of all ratings for one content
// item. The pointer is nil when no reviews exist; a lone zero rating yields
// a non-nil zero, so callers can tell "unrated" from "rated 0".
func (a *Aggregator) AverageRating(ctx context.Context, contentID string) (*float64, error) {
	reviews, err := a.store.ReviewsByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg, nil
}

// AverageRatings computes the mean rating for every content id that has at
// least one review, in a single pass over the ledger. A missing key means
// "no reviews". Render passes should use this instead of calling
// AverageRating per card.
func (a *Aggregator) AverageRatings(ctx context.Context) (map[string]float64, error) {
	reviews, err := a.store.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.ContentID] += r.Rating
		counts[r.ContentID]++
	}
	averages := make(map[string]float64, len(sums))
	for id, sum := range sums {
		averages[id] = float64(sum) / float64(counts[id])
	}
	return averages, nil
}

// FriendReviewers returns the followed people, excluding the current user,
// who have reviewed the given content item. Order follows the person
// directory.
func (a *Aggregator) FriendReviewers(ctx context.Context, contentID string) ([]store.Person, error) {
	byContent, err := a.FriendReviewersByContent(ctx)
	if err != nil {
		return nil, err
	}
	return byContent[contentID], nil
}

// FriendReviewersByContent computes the friend-reviewer strip for every
// content id in one pass over the ledger and directory.
func (a *Aggregator) FriendReviewersByContent(ctx context.Context) (map[string][]store.Person, error) {
	people, err := a.store.People(ctx)
	if err != nil {
		return nil, err
	}
	friends := make(map[string]store.Person)
	order := make(map[string]int)
	for i, p := range people {
		if p.ID == store.CurrentUserID || !p.Followed {
			continue
		}
		friends[p.ID] = p
		order[p.ID] = i
	}

	reviews, err := a.store.Reviews(ctx)
	if err != nil {
		return nil, err
	}

	byContent := make(map[string][]store.Person)
	seen := make(map[string]map[string]struct{})
	for _, r := range reviews {
		friend, ok := friends[r.UserID]
		if !ok {
			continue
		}
		if seen[r.ContentID] == nil {
			seen[r.ContentID] = make(map[string]struct{})
		}
		if _, dup := seen[r.ContentID][friend.ID]; dup {
			continue
		}
		seen[r.ContentID][friend.ID] = struct{}{}
		byContent[r.ContentID] = append(byContent[r.ContentID], friend)
	}

	for contentID, reviewers := range byContent {
		slices.SortStableFunc(reviewers, func(a, b store.Person) int {
			return order[a.ID] - order[b.ID]
		})
		byContent[contentID] = reviewers
	}
	return byContent, nil
}
