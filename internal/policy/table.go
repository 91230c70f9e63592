package policy

import (
	"fmt"
	"sort"

	"github.com/gradeway/access/types"
)

// Table maps action names to authorization rules. It is populated during
// engine construction and read-only thereafter, so it is safe to share
// across concurrent evaluations without locking.
type Table struct {
	rules map[string]types.Rule
}

// NewTable creates an empty rule table
func NewTable() *Table {
	return &Table{rules: make(map[string]types.Rule)}
}

// Register adds a rule for action. Registering the same action twice is a
// programmer error and panics: the table is meant to be enumerated exactly
// once at startup. The argument-requirement markers are derived here from
// the contextual checks present; values set by the caller are discarded.
func (t *Table) Register(action string, flags types.Flag) {
	if action == "" {
		panic("policy: rule with empty action name")
	}
	if _, ok := t.rules[action]; ok {
		panic(fmt.Sprintf("policy: action %q registered twice", action))
	}

	flags = flags.Difference(types.RequiresGradeable | types.RequiresComponent)
	if flags&types.GradeableChecks != types.NoFlags {
		flags |= types.RequiresGradeable
	}
	if flags&types.ComponentChecks != types.NoFlags {
		flags |= types.RequiresComponent
	}

	t.rules[action] = types.Rule{Action: action, Flags: flags}
}

// RuleFor returns the rule registered for action
func (t *Table) RuleFor(action string) (types.Rule, error) {
	r, ok := t.rules[action]
	if !ok {
		return types.Rule{}, fmt.Errorf("%w: %s", types.ErrUnknownAction, action)
	}
	return r, nil
}

// Rules returns a copy of the table, sorted by action name
func (t *Table) Rules() []types.Rule {
	out := make([]types.Rule, 0, len(t.rules))
	for _, r := range t.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// DefaultTable enumerates the built-in grading actions
func DefaultTable() *Table {
	t := NewTable()

	t.Register("grading.status",
		types.AllowMinStudent|types.CheckMinGroup)
	t.Register("grading.details",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment)
	t.Register("grading.grade",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment)
	t.Register("grading.save_one_component",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment|
			types.CheckHasSubmission|types.CheckComponentPeer|types.CheckCsrf)
	t.Register("grading.save_general_comment",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment|
			types.CheckHasSubmission|types.CheckCsrf)
	t.Register("grading.get_mark_data",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment|
			types.AllowSelfGradeable|types.CheckComponentPeer)
	t.Register("grading.get_gradeable_comment",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckGradingSection|types.CheckPeerAssignment|
			types.AllowSelfGradeable)
	t.Register("grading.view_component",
		types.AllowMinStudent|types.CheckMinGroup|types.CheckPeerAssignment|
			types.AllowSelfGradeable|types.CheckComponentPeer)
	t.Register("grading.add_one_new_mark",
		types.AllowMinFullAccessGrader|types.CheckMinGroup|types.CheckCsrf)
	t.Register("grading.delete_one_mark",
		types.AllowMinFullAccessGrader|types.CheckMinGroup|types.CheckCsrf)
	t.Register("grading.verify_grader",
		types.AllowMinFullAccessGrader|types.CheckMinGroup)
	t.Register("grading.verify_all",
		types.AllowMinFullAccessGrader|types.CheckMinGroup)
	t.Register("grading.import_teams",
		types.AllowMinFullAccessGrader|types.CheckCsrf)
	t.Register("grading.export_teams",
		types.AllowMinFullAccessGrader)
	t.Register("grading.submit_team_form",
		types.AllowMinInstructor|types.CheckCsrf)

	return t
}
