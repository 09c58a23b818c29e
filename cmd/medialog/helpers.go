package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"medialog/internal/store"
)

// formatReviewDate renders a review timestamp the way the cards show it:
// relative for the last week, absolute beyond that.
func formatReviewDate(ts, now time.Time) string {
	days := int(now.Sub(ts).Hours() / 24)
	switch {
	case days <= 0:
		return "Reviewed today"
	case days == 1:
		return "Reviewed yesterday"
	case days < 7:
		return fmt.Sprintf("Reviewed %d days ago", days)
	default:
		return "Reviewed on " + ts.Format("Jan 2, 2006")
	}
}

var titleCaser = cases.Title(language.English)

// typeLabel produces the human label for a content type ("tv-show" reads as
// "TV Show", the rest title-case their words).
func typeLabel(t store.ContentType) string {
	if t == store.TypeTVShow {
		return "TV Show"
	}
	return titleCaser.String(strings.ReplaceAll(string(t), "-", " "))
}

func formatRating(rating int) string {
	return fmt.Sprintf("%d/10", rating)
}

func formatAverage(avg float64, ok bool) string {
	if !ok {
		return "—"
	}
	return strconv.FormatFloat(avg, 'f', -1, 64)
}

// resolvePerson matches an argument against the directory, by id first and
// then by case-insensitive name.
func resolvePerson(people []store.Person, arg string) (store.Person, bool) {
	trimmed := strings.TrimSpace(arg)
	for _, p := range people {
		if p.ID == trimmed {
			return p, true
		}
	}
	for _, p := range people {
		if strings.EqualFold(p.Name, trimmed) {
			return p, true
		}
	}
	return store.Person{}, false
}

// personName renders a person id, falling back to the raw id when the
// directory has no matching entry.
func personName(people []store.Person, id string) string {
	for _, p := range people {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func friendNames(friends []store.Person) string {
	if len(friends) == 0 {
		return ""
	}
	names := make([]string, len(friends))
	for i, f := range friends {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
