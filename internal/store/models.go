package store

import (
	"strings"
	"time"
)

// ContentType classifies a catalog entry.
type ContentType string

const (
	TypeMovie     ContentType = "movie"
	TypeTVShow    ContentType = "tv-show"
	TypeBook      ContentType = "book"
	TypeVideoGame ContentType = "video-game"
)

// DefaultType is the catalog's primary type. It is used when an imported row
// carries an unrecognized media type and when a deleted content record is
// replaced by a placeholder.
const DefaultType = TypeMovie

// CurrentUserID is the reserved person id for the local user. It is excluded
// from friend lists and friend-reviewer computations.
const CurrentUserID = "me"

var allTypes = []ContentType{TypeMovie, TypeTVShow, TypeBook, TypeVideoGame}

// ContentTypes returns every known content type in display order.
func ContentTypes() []ContentType {
	out := make([]ContentType, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseContentType maps a string onto a known content type. The boolean is
// false when the value is not one of the four catalog types.
func ParseContentType(value string) (ContentType, bool) {
	candidate := ContentType(strings.TrimSpace(strings.ToLower(value)))
	for _, t := range allTypes {
		if candidate == t {
			return t, true
		}
	}
	return DefaultType, false
}

// Person is a directory entry. The current user sits in the same table as
// everyone else and is distinguished only by CurrentUserID.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Followed  bool   `json:"followed"`
}

// Content is a canonical media item. LastReviewed is denormalized from the
// review ledger so recency sorts do not require a join; it is nil until the
// first review targeting the item is saved.
type Content struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         ContentType `json:"type"`
	Description  string      `json:"description"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	LastReviewed *time.Time  `json:"lastReviewed,omitempty"`
}

// Review is a single person's rating of a single content item. The natural
// key is (ContentID, UserID); at most one review exists per pair.
type Review struct {
	ContentID     string    `json:"contentId"`
	UserID        string    `json:"userId"`
	Rating        int       `json:"rating"`
	PersonalNotes string    `json:"personalNotes,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
