package types

import "strings"

// Flag is a single capability or requirement in an authorization rule.
// Flags are powers of two to achieve efficient set operations, like union,
// intersection, complement. A flag value is also a union of flags.
type Flag uint32

// primitive flags: role allowances, contextual checks, and derived
// argument-requirement markers
const (
	AllowInstructor Flag = 1 << iota
	AllowFullAccessGrader
	AllowLimitedAccessGrader
	AllowStudent
	AllowLoggedOut

	CheckMinGroup
	CheckGradingSection
	CheckPeerAssignment
	CheckHasSubmission
	CheckCsrf
	AllowSelfGradeable
	CheckComponentPeer

	// RequiresGradeable and RequiresComponent are derived from the contextual
	// checks present when a rule is registered; rules never set them directly
	RequiresGradeable
	RequiresComponent

	NoFlags Flag = 0

	// minimum-role groups, expanded to primitive allowances here so the
	// evaluator only ever sees primitive flags
	AllowMinInstructor          = AllowInstructor
	AllowMinFullAccessGrader    = AllowMinInstructor | AllowFullAccessGrader
	AllowMinLimitedAccessGrader = AllowMinFullAccessGrader | AllowLimitedAccessGrader
	AllowMinStudent             = AllowMinLimitedAccessGrader | AllowStudent

	// GradeableChecks is the union of checks that read the gradeable argument
	GradeableChecks = CheckMinGroup | CheckGradingSection | CheckPeerAssignment |
		CheckHasSubmission | AllowSelfGradeable

	// ComponentChecks is the union of checks that read the component argument
	ComponentChecks = CheckComponentPeer
)

var flagNames = map[Flag]string{
	AllowInstructor:          "allow_instructor",
	AllowFullAccessGrader:    "allow_full_access_grader",
	AllowLimitedAccessGrader: "allow_limited_access_grader",
	AllowStudent:             "allow_student",
	AllowLoggedOut:           "allow_logged_out",
	CheckMinGroup:            "check_min_group",
	CheckGradingSection:      "check_grading_section",
	CheckPeerAssignment:      "check_peer_assignment",
	CheckHasSubmission:       "check_has_submission",
	CheckCsrf:                "check_csrf",
	AllowSelfGradeable:       "allow_self_gradeable",
	CheckComponentPeer:       "check_component_peer",
	RequiresGradeable:        "requires_gradeable",
	RequiresComponent:        "requires_component",
}

// IsIn tells if all flags in f are members of g: f is subset of g
func (f Flag) IsIn(g Flag) bool {
	return f|g == g
}

// Includes tells if all flags in g are members of f: f is superset of g
func (f Flag) Includes(g Flag) bool {
	return g.IsIn(f)
}

// Difference returns set of flags belong to f but not g: complement of g in f
func (f Flag) Difference(g Flag) Flag {
	return f &^ g
}

// Split a union of flags to slice of single flags
func (f Flag) Split() []Flag {
	out := make([]Flag, 0)
	op := Flag(1)
	for op <= f {
		if op&f > 0 {
			out = append(out, op)
		}
		op <<= 1
	}
	return out
}

func (f Flag) String() string {
	fs := f.Split()
	ns := make([]string, 0, len(fs))
	for _, f := range fs {
		n, ok := flagNames[f]
		if !ok {
			n = "unknown"
		}
		ns = append(ns, n)
	}
	return strings.Join(ns, "|")
}
