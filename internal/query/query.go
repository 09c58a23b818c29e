package query

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"medialog/internal/store"
)

// SortKey selects the primary sort field.
type SortKey string

const (
	SortTitle        SortKey = "title"
	SortRating       SortKey = "rating"
	SortLastReviewed SortKey = "last-reviewed"
)

// Direction orders results ascending or descending. The multiplier applies
// to the secondary title tie-break as well, so toggling direction reverses
// the entire effective order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ReviewedFilter narrows a collection by whether the viewer has reviewed
// each item.
type ReviewedFilter string

const (
	ReviewedAll  ReviewedFilter = "all"
	ReviewedOnly ReviewedFilter = "reviewed"
	NotReviewed  ReviewedFilter = "not-reviewed"
)

// TypeFilter is a set of enabled content types. The zero value (or an empty
// set) behaves like the "all" sentinel and passes everything.
type TypeFilter struct {
	All   bool
	Types map[store.ContentType]struct{}
}

// AllTypes is the pass-everything filter.
func AllTypes() TypeFilter {
	return TypeFilter{All: true}
}

// Types builds a filter enabling exactly the given types.
func Types(types ...store.ContentType) TypeFilter {
	set := make(map[store.ContentType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return TypeFilter{Types: set}
}

func (f TypeFilter) matches(t store.ContentType) bool {
	if f.All || len(f.Types) == 0 {
		return true
	}
	_, ok := f.Types[t]
	return ok
}

// Fields is the view of an item the pipeline filters and sorts on. Callers
// supply an extractor so the same pipeline serves raw catalog entries and
// joined review records alike.
type Fields struct {
	Title       string
	Description string
	Type        store.ContentType

	// Rated reports whether a rating exists; an unrated item ranks as zero.
	Rated  bool
	Rating float64

	// Reviewed is keyed against the viewer's own review set.
	Reviewed bool

	// HasTimestamp guards Timestamp; items without one always sort last.
	HasTimestamp bool
	Timestamp    time.Time
}

// Criteria combines the filters and sort settings for one render pass.
type Criteria struct {
	Types    TypeFilter
	Reviewed ReviewedFilter
	Search   string

	SortBy    SortKey
	Direction Direction

	// Collator orders titles; nil falls back to an unset-locale collator.
	Collator *collate.Collator
}

// Apply filters and sorts items, returning a new slice. Field extraction
// happens once per item, not once per comparison, so average ratings and
// similar derived values are not recomputed while sorting. The sort is
// deterministic: equal primary keys fall back to a title comparison with the
// same direction multiplier.
func Apply[T any](items []T, crit Criteria, fields func(T) Fields) []T {
	type entry struct {
		item   T
		fields Fields
	}

	search := strings.ToLower(strings.TrimSpace(crit.Search))
	entries := make([]entry, 0, len(items))
	for _, item := range items {
		f := fields(item)
		if !crit.Types.matches(f.Type) {
			continue
		}
		if !matchesReviewed(crit.Reviewed, f.Reviewed) {
			continue
		}
		if !matchesSearch(search, f) {
			continue
		}
		entries = append(entries, entry{item: item, fields: f})
	}

	col := crit.Collator
	if col == nil {
		col = collate.New(language.Und)
	}
	direction := 1
	if crit.Direction == Descending {
		direction = -1
	}

	compareTitles := func(a, b Fields) int {
		return col.CompareString(a.Title, b.Title) * direction
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch crit.SortBy {
		case SortRating:
			ra, rb := effectiveRating(a.fields), effectiveRating(b.fields)
			if ra != rb {
				if ra < rb {
					return -direction
				}
				return direction
			}
		case SortLastReviewed:
			// "No data" is always deprioritized, regardless of direction.
			switch {
			case !a.fields.HasTimestamp && !b.fields.HasTimestamp:
			case !a.fields.HasTimestamp:
				return 1
			case !b.fields.HasTimestamp:
				return -1
			case !a.fields.Timestamp.Equal(b.fields.Timestamp):
				if a.fields.Timestamp.Before(b.fields.Timestamp) {
					return -direction
				}
				return direction
			}
		}
		return compareTitles(a.fields, b.fields)
	})

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	return out
}

func matchesReviewed(filter ReviewedFilter, reviewed bool) bool {
	switch filter {
	case ReviewedOnly:
		return reviewed
	case NotReviewed:
		return !reviewed
	default:
		return true
	}
}

func matchesSearch(search string, f Fields) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Title), search) ||
		strings.Contains(strings.ToLower(f.Description), search)
}

// effectiveRating ranks unrated items as zero, the convention the Discover
// view uses so catalog entries without reviews sink below everything rated.
func effectiveRating(f Fields) float64 {
	if !f.Rated {
		return 0
	}
	return f.Rating
}

// ParseSortKey maps CLI input onto a sort key. "avg-rating" and "timestamp"
// are accepted aliases for the rating and recency keys.
func ParseSortKey(value string) (SortKey, bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "title":
		return SortTitle, true
	case "rating", "avg-rating":
		return SortRating, true
	case "last-reviewed", "lastreviewed", "timestamp":
		return SortLastReviewed, true
	}
	return SortTitle, false
}

// ParseReviewedFilter maps CLI input onto a reviewed filter.
func ParseReviewedFilter(value string) (ReviewedFilter, bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "all":
		return ReviewedAll, true
	case "reviewed":
		return ReviewedOnly, true
	case "not-reviewed", "unreviewed":
		return NotReviewed, true
	}
	return ReviewedAll, false
}

// ParseTypeFilter parses a comma-separated type list, with "all" (or an
// empty string) enabling everything.
func ParseTypeFilter(value string) (TypeFilter, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || trimmed == "all" {
		return AllTypes(), true
	}
	set := make(map[store.ContentType]struct{})
	for _, part := range strings.Split(trimmed, ",") {
		t, ok := store.ParseContentType(part)
		if !ok {
			return AllTypes(), false
		}
		set[t] = struct{}{}
	}
	return TypeFilter{Types: set}, true
}
