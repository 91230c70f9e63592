package types

import "errors"

// exported errors
var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrMissingArgument = errors.New("missing required argument")
	ErrNoStore         = errors.New("data store is not configured")
	ErrInvalidRole     = errors.New("invalid role, it should be one of none, student, limited_access_grader, full_access_grader, and instructor")
)
