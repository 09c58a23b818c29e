package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"medialog/internal/store"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Save or remove your reviews",
	}

	reviewCmd.AddCommand(newReviewSetCommand(ctx))
	reviewCmd.AddCommand(newReviewDeleteCommand(ctx))

	return reviewCmd
}

func newReviewSetCommand(ctx *commandContext) *cobra.Command {
	var rating int
	var notes string

	cmd := &cobra.Command{
		Use:   "set CONTENT_ID",
		Short: "Rate a content item (replaces any earlier rating)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}

			saved, err := s.UpsertReview(cmd.Context(), store.Review{
				ContentID:     args[0],
				UserID:        store.CurrentUserID,
				Rating:        rating,
				PersonalNotes: notes,
			})
			if err != nil {
				return err
			}

			title := args[0]
			if item, ok, err := s.ContentByID(cmd.Context(), args[0]); err == nil && ok {
				title = item.Title
			}
			ctx.ensureLogger().Debug("review saved", "content_id", saved.ContentID, "rating", saved.Rating)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %q\n", formatRating(saved.Rating), title)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating from 0 to 10 (required)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Personal notes")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newReviewDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONTENT_ID",
		Short: "Remove your review of a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.DeleteReview(cmd.Context(), args[0], store.CurrentUserID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted review for %s\n", args[0])
			return nil
		},
	}
}
