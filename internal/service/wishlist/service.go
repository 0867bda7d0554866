package wishlist

import (
	"sort"
	"sync"
)

// Service tracks liked product ids per session. Membership is a plain set
// with session lifetime; nothing is persisted.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]map[string]struct{}
}

func New() *Service {
	return &Service{sessions: make(map[string]map[string]struct{})}
}

// Toggle adds the product if absent and removes it if present, returning the
// resulting membership.
func (s *Service) Toggle(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[sessionID]
	if !ok {
		set = make(map[string]struct{})
		s.sessions[sessionID] = set
	}

	if _, liked := set[productID]; liked {
		delete(set, productID)
		return false
	}
	set[productID] = struct{}{}
	return true
}

func (s *Service) Contains(sessionID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, liked := s.sessions[sessionID][productID]
	return liked
}

// List returns the session's liked product ids, sorted for stable responses.
func (s *Service) List(sessionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions[sessionID]))
	for id := range s.sessions[sessionID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
