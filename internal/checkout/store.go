package checkout

import "sync"

// Store maps session IDs to checkout drafts, mirroring the cart store.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// Get returns the session's draft. A missing draft, or one left behind by
// a completed order, is replaced with a blank draft on the info step.
func (s *Store) Get(sessionID string) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	if !ok || d.Step() == StepSubmitted {
		d = NewDraft()
		s.drafts[sessionID] = d
	}
	return d
}
