package store

import (
	"context"
	"fmt"
)

// People returns every person, including the current user, in insertion
// order.
func (s *Store) People(ctx context.Context) ([]Person, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, avatar_url, followed FROM people ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		var p Person
		var followed int
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarURL, &followed); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p.Followed = followed != 0
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}

// Follow marks a person as followed. Unknown ids are a silent no-op and
// repeated calls are idempotent.
func (s *Store) Follow(ctx context.Context, id string) error {
	return s.setFollowed(ctx, id, true)
}

// Unfollow clears a person's followed flag with the same no-op semantics as
// Follow.
func (s *Store) Unfollow(ctx context.Context, id string) error {
	return s.setFollowed(ctx, id, false)
}

func (s *Store) setFollowed(ctx context.Context, id string, followed bool) error {
	value := 0
	if followed {
		value = 1
	}
	if _, err := s.db.ExecContext(ctx,
		"UPDATE people SET followed = ? WHERE id = ?", value, id); err != nil {
		return fmt.Errorf("set followed: %w", err)
	}
	return nil
}

func (s *Store) addPerson(ctx context.Context, p Person) error {
	followed := 0
	if p.Followed {
		followed = 1
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO people (id, name, avatar_url, followed) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.AvatarURL, followed); err != nil {
		return fmt.Errorf("insert person %s: %w", p.ID, err)
	}
	return nil
}
