package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"medialog/internal/aggregate"
	"medialog/internal/query"
	"medialog/internal/store"
)

func newRatingsCommand(ctx *commandContext) *cobra.Command {
	var friendArg string
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "ratings",
		Short: "Show your ratings, or a friend's",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			agg := aggregate.New(s)

			people, err := s.People(cmd.Context())
			if err != nil {
				return err
			}

			viewerID := store.CurrentUserID
			viewerName := cfg.Profile.Name
			if friendArg != "" {
				friend, ok := resolvePerson(people, friendArg)
				if !ok {
					// Unknown person: degrade to the raw id with no reviews
					// rather than failing.
					viewerID = friendArg
					viewerName = friendArg
				} else {
					viewerID = friend.ID
					viewerName = friend.Name
				}
			}

			reviews, err := agg.ReviewsWithContentByUser(cmd.Context(), viewerID)
			if err != nil {
				return err
			}

			crit, err := flags.criteria(cfg)
			if err != nil {
				return err
			}
			filtered := query.Apply(reviews, crit, reviewFields)

			if flags.jsonOut {
				return writeJSON(cmd, filtered)
			}

			layout, err := flags.layout(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if viewerID == store.CurrentUserID {
				fmt.Fprintf(out, "Ratings for %s\n", viewerName)
			} else {
				fmt.Fprintf(out, "%s's Ratings\n", viewerName)
			}

			if len(filtered) == 0 {
				fmt.Fprintln(out, ratingsEmptyMessage(viewerID, viewerName, len(reviews)))
				return nil
			}

			if layout == "grid" {
				renderReviewCards(out, filtered)
				return nil
			}
			rows := make([][]string, 0, len(filtered))
			for _, r := range filtered {
				rows = append(rows, []string{
					r.Title,
					typeLabel(r.Type),
					formatRating(r.Rating),
					formatReviewDate(r.Timestamp, time.Now()),
					truncate(r.PersonalNotes, 48),
				})
			}
			table := renderTable(
				[]string{"Title", "Type", "Rating", "Reviewed", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			)
			fmt.Fprintln(out, table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&friendArg, "friend", "f", "", "Show a friend's ratings (id or name)")
	flags.register(cmd)
	return cmd
}

func reviewFields(r aggregate.ReviewWithContent) query.Fields {
	return query.Fields{
		Title:        r.Title,
		Description:  r.Description,
		Type:         r.Type,
		Rated:        true,
		Rating:       float64(r.Rating),
		Reviewed:     true,
		HasTimestamp: true,
		Timestamp:    r.Timestamp,
	}
}

func ratingsEmptyMessage(viewerID, viewerName string, total int) string {
	if total > 0 {
		return "No reviews match the current filters."
	}
	if viewerID == store.CurrentUserID {
		return "You haven't added any reviews yet. Run 'medialog review set' to get started!"
	}
	return fmt.Sprintf("%s hasn't added any reviews yet.", viewerName)
}

func renderReviewCards(out io.Writer, reviews []aggregate.ReviewWithContent) {
	now := time.Now()
	for i, r := range reviews {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  [%s]  %s\n", r.Title, typeLabel(r.Type), formatRating(r.Rating))
		fmt.Fprintf(out, "  %s\n", formatReviewDate(r.Timestamp, now))
		if r.Description != "" {
			fmt.Fprintf(out, "  %s\n", r.Description)
		}
		if r.PersonalNotes != "" {
			fmt.Fprintf(out, "  Notes: %s\n", r.PersonalNotes)
		}
	}
}
