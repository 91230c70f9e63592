package fake

import (
	"context"
	"sync"

	"github.com/gradeway/access/types"
)

// Store is a seedable in-memory types.Store for tests and small deployments
type Store struct {
	mu       sync.RWMutex
	peers    map[string]map[string]map[string]struct{}
	sections map[string]map[string][]types.GradingSection
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		peers:    make(map[string]map[string]map[string]struct{}),
		sections: make(map[string]map[string][]types.GradingSection),
	}
}

// AssignPeer records that grader must peer-grade the given users on the
// gradeable
func (s *Store) AssignPeer(gradeableID, graderID string, granteeIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.peers[gradeableID] == nil {
		s.peers[gradeableID] = make(map[string]map[string]struct{})
	}
	if s.peers[gradeableID][graderID] == nil {
		s.peers[gradeableID][graderID] = make(map[string]struct{})
	}
	for _, id := range granteeIDs {
		s.peers[gradeableID][graderID][id] = struct{}{}
	}
}

// AssignSection assigns a grading section to grader for the gradeable
func (s *Store) AssignSection(gradeableID, graderID string, section types.GradingSection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sections[gradeableID] == nil {
		s.sections[gradeableID] = make(map[string][]types.GradingSection)
	}
	s.sections[gradeableID][graderID] = append(s.sections[gradeableID][graderID], section)
}

// PeerAssignment returns the users grader must peer-grade for the gradeable,
// an empty set when no assignment exists
func (s *Store) PeerAssignment(_ context.Context, gradeableID, graderID string) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{})
	for id := range s.peers[gradeableID][graderID] {
		out[id] = struct{}{}
	}
	return out, nil
}

// GradingSections returns the sections assigned to grader for the gradeable
func (s *Store) GradingSections(_ context.Context, gradeableID, graderID string) ([]types.GradingSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assigned := s.sections[gradeableID][graderID]
	out := make([]types.GradingSection, len(assigned))
	copy(out, assigned)
	return out, nil
}
