package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/gradeway/access/types"
)

type engine struct {
	table *Table
	store types.Store
	now   func() time.Time
	l     logr.Logger
}

// New creates an evaluation engine over the given rule table.
// store may be nil when no registered rule carries section or peer checks;
// evaluating such a check without a store fails with types.ErrNoStore.
func New(table *Table, store types.Store, now func() time.Time, l logr.Logger) types.Engine {
	if now == nil {
		now = time.Now
	}
	return &engine{
		table: table,
		store: store,
		now:   now,
		l:     l,
	}
}

// RuleFor returns the rule registered for action
func (e *engine) RuleFor(action string) (types.Rule, error) {
	return e.table.RuleFor(action)
}

// Rules returns a copy of the loaded rule table
func (e *engine) Rules() []types.Rule {
	return e.table.Rules()
}

// IsAllowed evaluates the rule for action against the actor and arguments.
// Gates run in a fixed order and short-circuit on the first denial.
func (e *engine) IsAllowed(ctx context.Context, actor types.Actor, action string, args types.Args) (bool, error) {
	rule, err := e.table.RuleFor(action)
	if err != nil {
		return false, err
	}

	e.l.V(6).Info("evaluate", "action", action, "role", actor.Role, "actor", actor.ID)

	// logged-out gate: anonymous actors pass only on explicitly open actions
	if actor.Role == types.RoleNone {
		if !rule.Flags.Includes(types.AllowLoggedOut) {
			e.l.V(6).Info("deny: not logged in", "action", action)
			return false, nil
		}
	} else if !rule.Flags.Includes(actor.Role.Allowance()) {
		e.l.V(6).Info("deny: role not allowed", "action", action, "role", actor.Role)
		return false, nil
	}

	if rule.Flags.Includes(types.CheckCsrf) && !actor.CSRFValid {
		e.l.V(6).Info("deny: invalid csrf token", "action", action, "actor", actor.ID)
		return false, nil
	}

	if rule.NeedsGradeable() {
		g := args.Gradeable
		if g == nil {
			return false, fmt.Errorf("%w: action %s needs a gradeable", types.ErrMissingArgument, action)
		}

		if rule.Flags.Includes(types.CheckMinGroup) && !meetsMinGroup(actor.Role, g) {
			e.l.V(6).Info("deny: below minimum grading role", "action", action,
				"role", actor.Role, "min", g.MinGradingRole)
			return false, nil
		}

		if rule.Flags.Includes(types.CheckHasSubmission) && !g.HasSubmission() {
			e.l.V(6).Info("deny: no active submission", "action", action, "gradeable", g.ID)
			return false, nil
		}

		if rule.Flags.Includes(types.CheckGradingSection) && actor.Role == types.RoleLimitedAccessGrader {
			in, err := e.inAssignedSection(ctx, actor, g)
			if err != nil {
				return false, err
			}
			if !in {
				e.l.V(6).Info("deny: submitter outside assigned sections", "action", action,
					"actor", actor.ID, "gradeable", g.ID)
				return false, nil
			}
		}

		if rule.Flags.Includes(types.CheckPeerAssignment) && actor.Role == types.RoleStudent {
			// self access is always allowed on self-gradeable actions
			if !(rule.Flags.Includes(types.AllowSelfGradeable) && g.Submitter.HasMember(actor.ID)) {
				assigned, err := e.isPeerAssigned(ctx, actor, g)
				if err != nil {
					return false, err
				}
				if !assigned {
					e.l.V(6).Info("deny: not peer assigned", "action", action,
						"actor", actor.ID, "gradeable", g.ID)
					return false, nil
				}
			}
		}
	}

	if rule.NeedsComponent() {
		c := args.Component
		if c == nil {
			return false, fmt.Errorf("%w: action %s needs a component", types.ErrMissingArgument, action)
		}

		if rule.Flags.Includes(types.CheckComponentPeer) && actor.Role == types.RoleStudent &&
			!componentAllowsPeer(c) {
			e.l.V(6).Info("deny: component not peer eligible", "action", action, "component", c.ID)
			return false, nil
		}
	}

	e.l.V(6).Info("allow", "action", action, "role", actor.Role, "actor", actor.ID)
	return true, nil
}
