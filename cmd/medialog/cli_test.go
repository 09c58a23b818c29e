package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with a config path that does not exist,
// so every invocation runs on defaults plus the seeded demo data.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cfgPath := filepath.Join(t.TempDir(), "absent.toml")
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func decodeJSONList(t *testing.T, out string) []map[string]any {
	t.Helper()
	var items []map[string]any
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("expected JSON list, got %q: %v", out, err)
	}
	return items
}

func TestFriendsListsEveryoneButTheCurrentUser(t *testing.T) {
	out, err := runCLI(t, "friends")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	requireContains(t, out, "Alice Johnson")
	requireContains(t, out, "Eve Adams")
	if strings.Contains(out, "Elrowe") {
		t.Fatalf("current user must not appear in the friends list:\n%s", out)
	}
}

func TestFriendsSearchFilters(t *testing.T) {
	out, err := runCLI(t, "friends", "--search", "bob")
	if err != nil {
		t.Fatalf("friends --search: %v", err)
	}
	requireContains(t, out, "Bob Smith")
	if strings.Contains(out, "Alice Johnson") {
		t.Fatalf("search should exclude Alice:\n%s", out)
	}
}

func TestFriendsFollowByName(t *testing.T) {
	out, err := runCLI(t, "friends", "follow", "charlie lee")
	if err != nil {
		t.Fatalf("friends follow: %v", err)
	}
	requireContains(t, out, "Following Charlie Lee")
}

func TestRatingsDefaultSortsByRatingDescending(t *testing.T) {
	out, err := runCLI(t, "ratings", "--json")
	if err != nil {
		t.Fatalf("ratings --json: %v", err)
	}
	items := decodeJSONList(t, out)
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded reviews, got %d", len(items))
	}
	if items[0]["title"] != "Fleabag" || items[1]["title"] != "Project Hail Mary" {
		t.Fatalf("expected rating-descending order, got %v then %v", items[0]["title"], items[1]["title"])
	}
}

func TestRatingsForFriend(t *testing.T) {
	out, err := runCLI(t, "ratings", "--friend", "Alice Johnson", "--json")
	if err != nil {
		t.Fatalf("ratings --friend: %v", err)
	}
	items := decodeJSONList(t, out)
	if len(items) != 2 {
		t.Fatalf("expected Alice's 2 reviews, got %d", len(items))
	}
	for _, item := range items {
		if item["userId"] != "1" {
			t.Fatalf("expected Alice's reviews only, got %v", item["userId"])
		}
	}
}

func TestRatingsUnknownFriendDegrades(t *testing.T) {
	out, err := runCLI(t, "ratings", "--friend", "nobody-here")
	if err != nil {
		t.Fatalf("ratings with unknown friend must not fail: %v", err)
	}
	requireContains(t, out, "nobody-here hasn't added any reviews yet.")
}

func TestDiscoverFilterComposition(t *testing.T) {
	out, err := runCLI(t, "discover", "--type", "movie,book", "--search", "hacker", "--json")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	items := decodeJSONList(t, out)
	if len(items) != 1 || items[0]["title"] != "The Matrix" {
		t.Fatalf("expected exactly The Matrix, got %v", items)
	}
}

func TestDiscoverNotReviewedFilter(t *testing.T) {
	out, err := runCLI(t, "discover", "--reviewed", "not-reviewed", "--json")
	if err != nil {
		t.Fatalf("discover --reviewed: %v", err)
	}
	items := decodeJSONList(t, out)
	// Seven seeded items minus the two the current user has reviewed.
	if len(items) != 5 {
		t.Fatalf("expected 5 unreviewed items, got %d", len(items))
	}
	for _, item := range items {
		if item["title"] == "Fleabag" || item["title"] == "Project Hail Mary" {
			t.Fatalf("reviewed item leaked through the filter: %v", item["title"])
		}
	}
}

func TestDiscoverShowsFriendReviewers(t *testing.T) {
	out, err := runCLI(t, "discover", "--view", "list", "--sort", "title", "--direction", "asc")
	if err != nil {
		t.Fatalf("discover list view: %v", err)
	}
	requireContains(t, out, "Alice Johnson, Bob Smith")
}

func TestContentImport(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "import.csv")
	data := "Name,Media Type,Notes,Thumbnail\n" +
		`"Dune","novel","Epic desert saga","cover.jpg (https://example.com/dune.jpg)"` + "\n"
	if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := runCLI(t, "content", "import", csvPath)
	if err != nil {
		t.Fatalf("content import: %v", err)
	}
	requireContains(t, out, "Imported 1 item(s)")
}

func TestContentImportMalformedHeaderYieldsZero(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(csvPath, []byte("Title,Kind\nDune,book\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := runCLI(t, "content", "import", csvPath)
	if err != nil {
		t.Fatalf("content import: %v", err)
	}
	requireContains(t, out, "Imported 0 item(s)")
}

func TestContentAddValidationFails(t *testing.T) {
	_, err := runCLI(t, "content", "add", "--title", "", "--description", "x")
	if err == nil {
		t.Fatal("expected validation error for a missing title")
	}
}

func TestReviewSetRejectsOutOfRangeRating(t *testing.T) {
	_, err := runCLI(t, "review", "set", "1", "--rating", "11")
	if err == nil {
		t.Fatal("expected validation error for rating 11")
	}
}

func TestReviewSetSaves(t *testing.T) {
	out, err := runCLI(t, "review", "set", "5", "--rating", "9", "--notes", "Spice must flow")
	if err != nil {
		t.Fatalf("review set: %v", err)
	}
	requireContains(t, out, `Saved 9/10 for "Dune"`)
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, err = runCLI(t, "config", "validate", "--path", target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}
