package types

// Actor is the explicit evaluation context for one authorization check:
// who is asking, and whether their request carried a valid CSRF token.
// It is constructed fresh per check and discarded after.
type Actor struct {
	// Role is the actor's privilege tier, RoleNone when unauthenticated
	Role Role

	// ID is the actor's user id, empty when unauthenticated
	ID string

	// CSRFValid reports whether the request carried a valid CSRF token
	CSRFValid bool
}

// Args is the per-call argument bag supplying contextual entities to checks
// that need them. A rule demanding an absent argument is a caller defect and
// surfaces as ErrMissingArgument, not as a denial.
type Args struct {
	Gradeable *Gradeable
	Component *Component
}
