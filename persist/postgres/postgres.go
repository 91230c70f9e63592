// Package postgres implements the engine's data-access collaborator on top
// of PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradeway/access/types"
)

const peerAssignmentQuery = `
SELECT user_id
FROM peer_assign
WHERE g_id = $1 AND grader_id = $2`

const gradingSectionsQuery = `
SELECT s.section_name, m.submitter_id, m.is_team,
       COALESCE(array_agg(tm.user_id) FILTER (WHERE tm.user_id IS NOT NULL), '{}'::text[])
FROM grading_section s
JOIN grading_section_member m
  ON m.g_id = s.g_id AND m.section_name = s.section_name
LEFT JOIN team_member tm
  ON m.is_team AND tm.team_id = m.submitter_id
WHERE s.g_id = $1 AND s.grader_id = $2
GROUP BY s.section_name, m.submitter_id, m.is_team
ORDER BY s.section_name, m.submitter_id`

// Store is a types.Store backed by PostgreSQL
type Store struct {
	pool *pgxpool.Pool
	l    logr.Logger
}

// New creates a Store over an existing connection pool
func New(pool *pgxpool.Pool, opts ...StoreOption) *Store {
	s := &Store{
		pool: pool,
		l:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger sets logger for the store
func WithLogger(l logr.Logger) StoreOption {
	return func(s *Store) {
		s.l = l
	}
}

// StoreOption controls how to init a store
type StoreOption func(*Store)

// PeerAssignment returns the users grader must peer-grade for the gradeable.
// No rows means no assignment: the result is an empty set, not an error.
func (s *Store) PeerAssignment(ctx context.Context, gradeableID, graderID string) (map[string]struct{}, error) {
	s.l.V(6).Info("peer assignment lookup", "gradeable", gradeableID, "grader", graderID)

	rows, err := s.pool.Query(ctx, peerAssignmentQuery, gradeableID, graderID)
	if err != nil {
		return nil, fmt.Errorf("query peer assignment: %w", err)
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan peer assignment: %w", err)
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read peer assignment: %w", err)
	}

	return out, nil
}

// GradingSections returns the grading sections assigned to grader for the
// gradeable, with team submitters expanded to their members
func (s *Store) GradingSections(ctx context.Context, gradeableID, graderID string) ([]types.GradingSection, error) {
	s.l.V(6).Info("grading sections lookup", "gradeable", gradeableID, "grader", graderID)

	rows, err := s.pool.Query(ctx, gradingSectionsQuery, gradeableID, graderID)
	if err != nil {
		return nil, fmt.Errorf("query grading sections: %w", err)
	}
	defer rows.Close()

	var (
		out     []types.GradingSection
		current *types.GradingSection
	)
	for rows.Next() {
		var (
			name    string
			sub     types.Submitter
			members []string
		)
		if err := rows.Scan(&name, &sub.ID, &sub.IsTeam, &members); err != nil {
			return nil, fmt.Errorf("scan grading section: %w", err)
		}
		if sub.IsTeam {
			sub.Members = members
		}

		if current == nil || current.Name != name {
			out = append(out, types.GradingSection{Name: name})
			current = &out[len(out)-1]
		}
		current.Submitters = append(current.Submitters, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read grading sections: %w", err)
	}

	return out, nil
}
