// Package sessions owns the lifetime of per-client state stores.
package sessions

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/snap-point/tour-guide-api/state"
)

var ErrSessionNotFound = errors.New("session not found")

// StoreFactory builds the store a new session starts with.
type StoreFactory interface {
	NewStore() *state.Store
}

type Session struct {
	ID        string
	Store     *state.Store
	CreatedAt time.Time

	lastSeen time.Time
}

type Manager struct {
	factory StoreFactory
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// ManagerOption customizes a Manager at construction.
type ManagerOption func(*Manager)

// WithClock replaces the wall clock used for idle expiry.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

func NewManager(factory StoreFactory, ttl time.Duration, opts ...ManagerOption) *Manager {
	m := &Manager{
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start creates a session with a freshly seeded store.
func (m *Manager) Start() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		Store:     m.factory.NewStore(),
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a live session and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.lastSeen = now
	return s, nil
}

// End discards a session and its state.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes idle sessions and returns how many were dropped.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Printf("Expired %d idle sessions, %d active", n, m.Len())
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.lastSeen) > m.ttl
}
