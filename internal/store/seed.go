package store

import (
	"context"
	"fmt"
	"time"
)

// Seed loads the demo dataset: six people (the current user plus five
// friends), seven catalog entries, and a handful of reviews spread across
// users so friend views and reviewer strips have something to show. Review
// timestamps are back-dated relative to the seed instant so recency sorting
// is visible out of the box.
func (s *Store) Seed(ctx context.Context) error {
	now := s.now().UTC()
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	people := []Person{
		{ID: CurrentUserID, Name: "Elrowe", AvatarURL: "https://picsum.photos/seed/elrowe-avatar/200"},
		{ID: "1", Name: "Alice Johnson", AvatarURL: "https://randomuser.me/api/portraits/women/44.jpg", Followed: true},
		{ID: "2", Name: "Bob Smith", AvatarURL: "https://randomuser.me/api/portraits/men/32.jpg", Followed: true},
		{ID: "3", Name: "Charlie Lee", AvatarURL: "https://randomuser.me/api/portraits/men/65.jpg"},
		{ID: "4", Name: "Diana Prince", AvatarURL: "https://randomuser.me/api/portraits/women/68.jpg", Followed: true},
		{ID: "5", Name: "Eve Adams", AvatarURL: "https://randomuser.me/api/portraits/women/12.jpg"},
	}
	for _, p := range people {
		if err := s.addPerson(ctx, p); err != nil {
			return fmt.Errorf("seed people: %w", err)
		}
	}

	catalog := []Content{
		{ID: "1", Title: "Inception", Type: TypeMovie, Description: "A mind-bending thriller about dreaming within dreams.", ThumbnailURL: "https://picsum.photos/seed/inception/400/300"},
		{ID: "2", Title: "Fleabag", Type: TypeTVShow, Description: "A hilarious and heartbreaking look at a young woman's life in London.", ThumbnailURL: "https://picsum.photos/seed/fleabag/400/300"},
		{ID: "3", Title: "Project Hail Mary", Type: TypeBook, Description: "A lone astronaut must save the Earth from a mysterious threat.", ThumbnailURL: "https://picsum.photos/seed/project-hail-mary/400/300"},
		{ID: "4", Title: "The Office", Type: TypeTVShow, Description: "A mockumentary about the everyday lives of office employees.", ThumbnailURL: "https://picsum.photos/seed/the-office/400/300"},
		{ID: "5", Title: "Dune", Type: TypeBook, Description: "A sci-fi epic about a young nobleman's destiny on a desert planet.", ThumbnailURL: "https://picsum.photos/seed/dune/400/300"},
		{ID: "6", Title: "The Matrix", Type: TypeMovie, Description: "A hacker discovers the shocking truth about his reality.", ThumbnailURL: "https://picsum.photos/seed/the-matrix/400/300"},
		{ID: "7", Title: "The Legend of Zelda: Breath of the Wild", Type: TypeVideoGame, Description: "An epic open-world adventure game set in Hyrule.", ThumbnailURL: "https://picsum.photos/seed/zelda/400/300"},
	}
	for _, c := range catalog {
		if err := s.insertContent(ctx, c); err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
	}

	reviews := []Review{
		{ContentID: "3", UserID: CurrentUserID, Rating: 9, Timestamp: daysAgo(3)},
		{ContentID: "2", UserID: CurrentUserID, Rating: 10, PersonalNotes: "The 'hot priest' season is a masterpiece of television.", Timestamp: daysAgo(1)},
		{ContentID: "1", UserID: "1", Rating: 8, Timestamp: daysAgo(5)},
		{ContentID: "5", UserID: "1", Rating: 9, Timestamp: daysAgo(2)},
		{ContentID: "1", UserID: "2", Rating: 7, Timestamp: daysAgo(9)},
		{ContentID: "2", UserID: "3", Rating: 6, Timestamp: daysAgo(4)},
		{ContentID: "7", UserID: "4", Rating: 10, Timestamp: daysAgo(6)},
	}
	for _, r := range reviews {
		if err := s.insertReview(ctx, r); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
	}

	// Denormalized recency stamps: newest review per content item.
	latest := make(map[string]time.Time, len(reviews))
	for _, r := range reviews {
		if current, ok := latest[r.ContentID]; !ok || r.Timestamp.After(current) {
			latest[r.ContentID] = r.Timestamp
		}
	}
	for contentID, ts := range latest {
		if err := s.SetLastReviewed(ctx, contentID, ts); err != nil {
			return fmt.Errorf("seed last reviewed: %w", err)
		}
	}
	return nil
}
