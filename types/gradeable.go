package types

import "time"

// Submitter is the user or team that owns a submission.
// Team submitters carry their member user ids so checks against user-level
// records stay team-aware.
type Submitter struct {
	ID      string
	IsTeam  bool
	Members []string
}

// HasMember tells if the submitter is, or contains, the given user
func (s Submitter) HasMember(userID string) bool {
	if userID == "" {
		return false
	}
	if !s.IsTeam {
		return s.ID == userID
	}
	for _, m := range s.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Matches tells if two submitter references point at the same user or team,
// matching by team membership for team assignments and by user identity
// otherwise
func (s Submitter) Matches(other Submitter) bool {
	if s.IsTeam == other.IsTeam {
		return s.ID == other.ID
	}
	if s.IsTeam {
		return s.HasMember(other.ID)
	}
	return other.HasMember(s.ID)
}

// Gradeable is a gradable assignment/submission unit, read-only to the
// engine. The canonical representation: no parallel legacy shape exists.
type Gradeable struct {
	ID string

	// MinGradingRole is the least privileged role permitted to grade
	MinGradingRole Role

	// GradeStart is when grading opens for limited access graders
	GradeStart time.Time

	// PeerGrading reports whether students peer-grade this gradeable
	PeerGrading bool

	// TAGrading reports whether the gradeable has a manual grading component
	TAGrading bool

	TeamAssignment bool
	Submitter      Submitter

	// ActiveVersion is the active submission version, 0 when nothing was
	// submitted
	ActiveVersion int
}

// HasSubmission tells if the gradeable has an active submission
func (g Gradeable) HasSubmission() bool {
	return g.ActiveVersion > 0
}

// Component is one scoring component of a gradeable
type Component struct {
	ID    string
	Title string

	// Peer reports whether student peer graders may score this component
	Peer bool
}

// GradingSection groups submitters assigned to one grader for workload
// division
type GradingSection struct {
	Name       string
	Submitters []Submitter
}

// Contains tells if the section holds the given submitter, team-aware
func (s GradingSection) Contains(sub Submitter) bool {
	for _, m := range s.Submitters {
		if m.Matches(sub) {
			return true
		}
	}
	return false
}
