package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"

	"medialog/internal/config"
	"medialog/internal/query"
)

// viewFlags is the filter/sort flag set shared by the ratings and discover
// views. Unset flags fall back to the configured UI defaults.
type viewFlags struct {
	types     string
	search    string
	reviewed  string
	sortBy    string
	direction string
	view      string
	jsonOut   bool

	withReviewed bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.types, "type", "t", "all", "Comma-separated content types (movie, tv-show, book, video-game) or \"all\"")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive substring match on title or description")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort key: title, rating, or last-reviewed")
	cmd.Flags().StringVar(&f.direction, "direction", "", "Sort direction: asc or desc")
	cmd.Flags().StringVar(&f.view, "view", "", "Layout: grid or list")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Emit JSON instead of a rendered view")
	if f.withReviewed {
		cmd.Flags().StringVar(&f.reviewed, "reviewed", "all", "Filter by your review state: all, reviewed, or not-reviewed")
	}
}

func (f *viewFlags) criteria(cfg *config.Config) (query.Criteria, error) {
	types, ok := query.ParseTypeFilter(f.types)
	if !ok {
		return query.Criteria{}, fmt.Errorf("unknown content type in %q", f.types)
	}

	sortValue := f.sortBy
	if sortValue == "" {
		sortValue = cfg.UI.SortBy
	}
	sortBy, ok := query.ParseSortKey(sortValue)
	if !ok {
		return query.Criteria{}, fmt.Errorf("unknown sort key %q", sortValue)
	}

	directionValue := f.direction
	if directionValue == "" {
		directionValue = cfg.UI.SortDirection
	}
	var direction query.Direction
	switch directionValue {
	case "asc":
		direction = query.Ascending
	case "desc":
		direction = query.Descending
	default:
		return query.Criteria{}, fmt.Errorf("direction must be asc or desc, got %q", directionValue)
	}

	reviewed, ok := query.ParseReviewedFilter(f.reviewed)
	if !ok {
		return query.Criteria{}, fmt.Errorf("reviewed filter must be all, reviewed, or not-reviewed, got %q", f.reviewed)
	}

	return query.Criteria{
		Types:     types,
		Reviewed:  reviewed,
		Search:    f.search,
		SortBy:    sortBy,
		Direction: direction,
		Collator:  collate.New(cfg.LocaleTag()),
	}, nil
}

func (f *viewFlags) layout(cfg *config.Config) (string, error) {
	layout := f.view
	if layout == "" {
		layout = cfg.UI.View
	}
	if layout != "grid" && layout != "list" {
		return "", fmt.Errorf("view must be grid or list, got %q", layout)
	}
	return layout, nil
}
