package store

import (
	"context"
	"fmt"
)

// AmbiguityError reports a catalog returning more than one table entry
// for a single name. A healthy SQLite catalog can never do this, so it
// signals catalog corruption or a name-collision bug; nothing recovers
// from it.
type AmbiguityError struct {
	Table   string
	Matches int
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("catalog ambiguity: %d tables named %q", e.Matches, e.Table)
}

// EnsureTable creates the named table from createSQL if the catalog
// has no entry for it, and does nothing if exactly one entry exists.
// Idempotent. No compatibility check is made against an existing
// table's schema - callers derive createSQL deterministically, so a
// surviving table is assumed to match.
func (s *Store) EnsureTable(ctx context.Context, table, createSQL string) error {
	matches, err := s.catalogMatches(ctx, table)
	if err != nil {
		return fmt.Errorf("ensure table %s: %w", table, err)
	}

	switch len(matches) {
	case 0:
		if _, err := s.db.ExecContext(ctx, createSQL); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
		return nil
	case 1:
		if matches[0] != table {
			return &AmbiguityError{Table: table, Matches: 1}
		}
		return nil
	default:
		return &AmbiguityError{Table: table, Matches: len(matches)}
	}
}

// HasTable reports whether the catalog has exactly one entry for the
// named table.
func (s *Store) HasTable(ctx context.Context, table string) (bool, error) {
	matches, err := s.catalogMatches(ctx, table)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	if len(matches) > 1 {
		return false, &AmbiguityError{Table: table, Matches: len(matches)}
	}
	return len(matches) == 1, nil
}

// TableNames returns the names of all user tables in the catalog, in
// name order.
func (s *Store) TableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type='table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// catalogMatches returns the catalog entries matching one table name.
func (s *Store) catalogMatches(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		matches = append(matches, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	return matches, nil
}
