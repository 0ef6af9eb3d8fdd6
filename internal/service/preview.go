package service

import (
	"sync"
	"time"
)

// DefaultPreviewTTL bounds how long an unconfirmed preview stays valid.
const DefaultPreviewTTL = 10 * time.Minute

// PreviewStore holds at most one pending plan preview per user.
// Generating a new preview replaces the old one; confirming or expiry
// removes it. Safe for concurrent use.
type PreviewStore struct {
	mu       sync.Mutex
	previews map[string]*PlanPreview
	ttl      time.Duration
	now      func() time.Time
}

// NewPreviewStore creates a store with the given TTL; a non-positive
// TTL falls back to DefaultPreviewTTL.
func NewPreviewStore(ttl time.Duration) *PreviewStore {
	if ttl <= 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewStore{
		previews: make(map[string]*PlanPreview),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Put stores a preview for the user, stamping its expiry.
func (s *PreviewStore) Put(userID string, p *PlanPreview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p.CreatedAt = now
	p.ExpiresAt = now.Add(s.ttl)
	s.previews[userID] = p
}

// Get returns the user's pending preview, or false if none exists or it
// has expired. Expired entries are dropped on access.
func (s *PreviewStore) Get(userID string) (*PlanPreview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.previews[userID]
	if !ok {
		return nil, false
	}
	if s.now().After(p.ExpiresAt) {
		delete(s.previews, userID)
		return nil, false
	}
	return p, true
}

// Delete removes the user's pending preview, if any.
func (s *PreviewStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.previews, userID)
}
