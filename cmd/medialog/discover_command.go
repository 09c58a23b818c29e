package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"medialog/internal/query"
	"medialog/internal/store"
)

// discoverRow is one catalog entry enriched with the derived columns the
// Discover view shows.
type discoverRow struct {
	store.Content
	Average    *float64       `json:"averageRating,omitempty"`
	Reviewed   bool           `json:"reviewed"`
	ReviewedBy []store.Person `json:"reviewedBy,omitempty"`
}

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	flags := &viewFlags{withReviewed: true}

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Browse the catalog with average ratings and friend reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			agg, err := ctx.aggregator(cmd.Context())
			if err != nil {
				return err
			}

			catalog, err := s.ContentList(cmd.Context())
			if err != nil {
				return err
			}
			averages, err := agg.AverageRatings(cmd.Context())
			if err != nil {
				return err
			}
			reviewers, err := agg.FriendReviewersByContent(cmd.Context())
			if err != nil {
				return err
			}
			mine, err := s.ReviewsByUser(cmd.Context(), store.CurrentUserID)
			if err != nil {
				return err
			}
			reviewedByMe := make(map[string]struct{}, len(mine))
			for _, r := range mine {
				reviewedByMe[r.ContentID] = struct{}{}
			}

			rows := make([]discoverRow, 0, len(catalog))
			for _, c := range catalog {
				row := discoverRow{Content: c, ReviewedBy: reviewers[c.ID]}
				if avg, ok := averages[c.ID]; ok {
					row.Average = &avg
				}
				_, row.Reviewed = reviewedByMe[c.ID]
				rows = append(rows, row)
			}

			crit, err := flags.criteria(cfg)
			if err != nil {
				return err
			}
			filtered := query.Apply(rows, crit, discoverFields)

			if flags.jsonOut {
				return writeJSON(cmd, filtered)
			}

			layout, err := flags.layout(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Discover")
			if len(filtered) == 0 {
				fmt.Fprintln(out, "Nothing matches the current filters.")
				return nil
			}

			if layout == "grid" {
				renderDiscoverCards(out, filtered)
				return nil
			}
			tableRows := make([][]string, 0, len(filtered))
			for _, row := range filtered {
				tableRows = append(tableRows, []string{
					row.Title,
					typeLabel(row.Type),
					formatAverage(deref(row.Average), row.Average != nil),
					yesNo(row.Reviewed),
					friendNames(row.ReviewedBy),
					lastReviewedLabel(row.LastReviewed),
				})
			}
			table := renderTable(
				[]string{"Title", "Type", "Avg", "Mine", "Reviewed By", "Last Reviewed"},
				tableRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(out, table)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func discoverFields(row discoverRow) query.Fields {
	f := query.Fields{
		Title:       row.Title,
		Description: row.Description,
		Type:        row.Type,
		Reviewed:    row.Reviewed,
	}
	if row.Average != nil {
		f.Rated = true
		f.Rating = *row.Average
	}
	if row.LastReviewed != nil {
		f.HasTimestamp = true
		f.Timestamp = *row.LastReviewed
	}
	return f
}

func renderDiscoverCards(out io.Writer, rows []discoverRow) {
	now := time.Now()
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  [%s]", row.Title, typeLabel(row.Type))
		if row.Average != nil {
			fmt.Fprintf(out, "  avg %s/10", formatAverage(*row.Average, true))
		}
		fmt.Fprintln(out)
		if row.Description != "" {
			fmt.Fprintf(out, "  %s\n", row.Description)
		}
		if row.LastReviewed != nil {
			fmt.Fprintf(out, "  %s\n", formatReviewDate(*row.LastReviewed, now))
		}
		if names := friendNames(row.ReviewedBy); names != "" {
			fmt.Fprintf(out, "  Reviewed by %s\n", names)
		}
	}
}

func lastReviewedLabel(ts *time.Time) string {
	if ts == nil {
		return "—"
	}
	return formatReviewDate(*ts, time.Now())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
