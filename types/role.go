package types

import "strings"

// Role is an actor's privilege tier in a course.
// Roles are totally ordered by privilege: Instructor > FullAccessGrader >
// LimitedAccessGrader > Student > None. The ordering is load-bearing for
// minimum-role comparisons and must stay contiguous.
type Role uint8

const (
	RoleNone Role = iota
	RoleStudent
	RoleLimitedAccessGrader
	RoleFullAccessGrader
	RoleInstructor
)

// Rank returns the grading group number of the role.
// Privilege increases as rank decreases: Instructor is rank 1, Student rank 4,
// an unauthenticated actor ranks below every real role.
func (r Role) Rank() int {
	switch r {
	case RoleInstructor:
		return 1
	case RoleFullAccessGrader:
		return 2
	case RoleLimitedAccessGrader:
		return 3
	case RoleStudent:
		return 4
	}
	return 5
}

// HasAtLeast tells if r is at least as privileged as min
func (r Role) HasAtLeast(min Role) bool {
	return r.Rank() <= min.Rank()
}

// Allowance returns the allowance flag an authorization rule must carry
// for an actor holding this role to pass the role gate
func (r Role) Allowance() Flag {
	switch r {
	case RoleInstructor:
		return AllowInstructor
	case RoleFullAccessGrader:
		return AllowFullAccessGrader
	case RoleLimitedAccessGrader:
		return AllowLimitedAccessGrader
	case RoleStudent:
		return AllowStudent
	}
	return AllowLoggedOut
}

var roleNames = map[Role]string{
	RoleNone:                "none",
	RoleStudent:             "student",
	RoleLimitedAccessGrader: "limited_access_grader",
	RoleFullAccessGrader:    "full_access_grader",
	RoleInstructor:          "instructor",
}

func (r Role) String() string {
	n, ok := roleNames[r]
	if !ok {
		return "unknown"
	}
	return n
}

// ParseRole parses a serialized Role
func ParseRole(s string) (Role, error) {
	for r, n := range roleNames {
		if strings.EqualFold(s, n) {
			return r, nil
		}
	}
	return RoleNone, ErrInvalidRole
}
