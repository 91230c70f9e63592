package types

import "context"

// Engine decides whether an actor may perform a named grading action.
// The rule table behind an Engine is immutable after construction, so a
// single Engine is safe to share across concurrent checks.
type Engine interface {
	// IsAllowed evaluates the rule registered for action against the actor
	// and the contextual arguments. A false result with a nil error is a
	// policy denial; ErrUnknownAction and ErrMissingArgument signal caller
	// defects and are never folded into a denial.
	IsAllowed(ctx context.Context, actor Actor, action string, args Args) (bool, error)

	// RuleFor returns the rule registered for action,
	// or ErrUnknownAction when the action is not registered
	RuleFor(action string) (Rule, error)

	// Rules returns a copy of the loaded rule table, sorted by action name
	Rules() []Rule
}
