package types

import "context"

// Store is the read-only data-access collaborator the engine queries when a
// rule carries section or peer checks. Implementations must be safe for
// concurrent use; the engine never writes through this interface.
type Store interface {
	// PeerAssignment returns the set of user ids the grader must peer-grade
	// for the gradeable. It must return an empty set, not an error, when no
	// assignment exists: absence means "not assigned".
	PeerAssignment(ctx context.Context, gradeableID, graderID string) (map[string]struct{}, error)

	// GradingSections returns the grading sections assigned to the grader for
	// the gradeable, empty when the grader has none.
	GradingSections(ctx context.Context, gradeableID, graderID string) ([]GradingSection, error)
}
