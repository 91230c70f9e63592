package policy

import (
	"context"
	"fmt"

	"github.com/gradeway/access/types"
)

// meetsMinGroup tells if role satisfies the gradeable's minimum grading role.
// Two bypasses: a full access grader may see gradeables with no manual
// grading component, and a student may see peer-graded gradeables.
func meetsMinGroup(role types.Role, g *types.Gradeable) bool {
	if role.HasAtLeast(g.MinGradingRole) {
		return true
	}
	if role == types.RoleFullAccessGrader && !g.TAGrading {
		return true
	}
	if role == types.RoleStudent && g.PeerGrading {
		return true
	}
	return false
}

// inAssignedSection tells if the gradeable's submitter falls in one of the
// grading sections assigned to the actor. Always false before grading opens.
func (e *engine) inAssignedSection(ctx context.Context, actor types.Actor, g *types.Gradeable) (bool, error) {
	if e.now().Before(g.GradeStart) {
		return false, nil
	}
	if e.store == nil {
		return false, types.ErrNoStore
	}

	sections, err := e.store.GradingSections(ctx, g.ID, actor.ID)
	if err != nil {
		return false, fmt.Errorf("list grading sections: %w", err)
	}
	for _, s := range sections {
		if s.Contains(g.Submitter) {
			return true, nil
		}
	}
	return false, nil
}

// isPeerAssigned tells if the actor must peer-grade the gradeable's
// submitter, team-aware on the submitter side
func (e *engine) isPeerAssigned(ctx context.Context, actor types.Actor, g *types.Gradeable) (bool, error) {
	if !g.PeerGrading {
		return false, nil
	}
	if e.store == nil {
		return false, types.ErrNoStore
	}

	peers, err := e.store.PeerAssignment(ctx, g.ID, actor.ID)
	if err != nil {
		return false, fmt.Errorf("peer assignment lookup: %w", err)
	}

	if g.Submitter.IsTeam {
		for _, m := range g.Submitter.Members {
			if _, ok := peers[m]; ok {
				return true, nil
			}
		}
		return false, nil
	}

	_, ok := peers[g.Submitter.ID]
	return ok, nil
}

// componentAllowsPeer reads the component's peer-eligibility flag
func componentAllowsPeer(c *types.Component) bool {
	return c.Peer
}
