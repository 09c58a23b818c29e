package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"medialog/internal/csvimport"
	"medialog/internal/store"
)

func newContentCommand(ctx *commandContext) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Manage the content catalog",
	}

	contentCmd.AddCommand(newContentListCommand(ctx))
	contentCmd.AddCommand(newContentAddCommand(ctx))
	contentCmd.AddCommand(newContentUpdateCommand(ctx))
	contentCmd.AddCommand(newContentDeleteCommand(ctx))
	contentCmd.AddCommand(newContentImportCommand(ctx))

	return contentCmd
}

func newContentListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every catalog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			items, err := s.ContentList(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.ID,
					item.Title,
					typeLabel(item.Type),
					truncate(item.Description, 56),
					lastReviewedLabel(item.LastReviewed),
				})
			}
			table := renderTable(
				[]string{"ID", "Title", "Type", "Description", "Last Reviewed"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newContentAddCommand(ctx *commandContext) *cobra.Command {
	var title, typeFlag, description, thumbnail string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}

			contentType, ok := store.ParseContentType(typeFlag)
			if !ok {
				return fmt.Errorf("unknown content type %q (movie, tv-show, book, video-game)", typeFlag)
			}

			id, err := s.NextContentID(cmd.Context())
			if err != nil {
				return err
			}
			item := store.Content{
				ID:           id,
				Title:        title,
				Type:         contentType,
				Description:  description,
				ThumbnailURL: thumbnail,
			}
			if err := s.AddContent(cmd.Context(), item); err != nil {
				return err
			}
			ctx.ensureLogger().Debug("content added", "id", id, "title", title)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q as %s (id %s)\n", title, typeLabel(contentType), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&typeFlag, "type", string(store.DefaultType), "Content type")
	cmd.Flags().StringVar(&description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "Thumbnail URL")
	return cmd
}

func newContentUpdateCommand(ctx *commandContext) *cobra.Command {
	var title, typeFlag, description, thumbnail string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}

			item, ok, err := s.ContentByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No catalog entry with id %s\n", args[0])
				return nil
			}

			if cmd.Flags().Changed("title") {
				item.Title = title
			}
			if cmd.Flags().Changed("type") {
				contentType, ok := store.ParseContentType(typeFlag)
				if !ok {
					return fmt.Errorf("unknown content type %q", typeFlag)
				}
				item.Type = contentType
			}
			if cmd.Flags().Changed("description") {
				item.Description = description
			}
			if cmd.Flags().Changed("thumbnail") {
				item.ThumbnailURL = thumbnail
			}

			if err := s.UpdateContent(cmd.Context(), item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&typeFlag, "type", "", "New content type")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "New thumbnail URL")
	return cmd
}

func newContentDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a catalog entry (its reviews stay behind)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.DeleteContent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newContentImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import catalog entries from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}

			items := csvimport.Parse(string(data), time.Now())
			inserted, err := s.ImportContent(cmd.Context(), items)
			if err != nil {
				return err
			}
			ctx.ensureLogger().Debug("csv import finished", "parsed", len(items), "inserted", inserted)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s)\n", inserted)
			return nil
		},
	}
}
