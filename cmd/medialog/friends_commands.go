package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"medialog/internal/store"
)

func newFriendsCommand(ctx *commandContext) *cobra.Command {
	var search string
	var jsonOut bool

	friendsCmd := &cobra.Command{
		Use:   "friends",
		Short: "List people and manage who you follow",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			people, err := s.People(cmd.Context())
			if err != nil {
				return err
			}

			needle := strings.ToLower(strings.TrimSpace(search))
			filtered := make([]store.Person, 0, len(people))
			for _, p := range people {
				if p.ID == store.CurrentUserID {
					continue
				}
				if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
					continue
				}
				filtered = append(filtered, p)
			}

			if jsonOut {
				return writeJSON(cmd, filtered)
			}
			if len(filtered) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No people found.")
				return nil
			}
			rows := make([][]string, 0, len(filtered))
			for _, p := range filtered {
				followed := ""
				if p.Followed {
					followed = "following"
				}
				rows = append(rows, []string{p.ID, p.Name, followed})
			}
			table := renderTable(
				[]string{"ID", "Name", "Status"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	friendsCmd.Flags().StringVarP(&search, "search", "s", "", "Filter people by name")
	friendsCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")

	friendsCmd.AddCommand(newFollowCommand(ctx, true))
	friendsCmd.AddCommand(newFollowCommand(ctx, false))

	return friendsCmd
}

func newFollowCommand(ctx *commandContext, follow bool) *cobra.Command {
	use, short := "follow PERSON", "Follow a person (id or name)"
	if !follow {
		use, short = "unfollow PERSON", "Unfollow a person (id or name)"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore(cmd.Context())
			if err != nil {
				return err
			}
			people, err := s.People(cmd.Context())
			if err != nil {
				return err
			}

			// Unknown people fall through to the raw argument; the store
			// treats an unknown id as a no-op.
			id, name := args[0], args[0]
			if person, ok := resolvePerson(people, args[0]); ok {
				id, name = person.ID, person.Name
			}

			if follow {
				err = s.Follow(cmd.Context(), id)
			} else {
				err = s.Unfollow(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			if follow {
				fmt.Fprintf(cmd.OutOrStdout(), "Following %s\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s\n", name)
			}
			return nil
		},
	}
}
