package life

import (
	"sync"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

// Repo is a single user's state store, as consumed by the HTTP handlers, the
// chat service and the MCP server. Implementations serialize whole
// read-modify-write cycles so concurrent requests from one user cannot
// interleave.
type Repo interface {
	// Get returns the user's state, creating the default state on first use.
	Get() (*PlayerState, error)
	// Put overwrites the user's state.
	Put(s *PlayerState) error
	// Mutate loads the state, applies fn under the store lock, and persists
	// the result when fn reports true. The returned state reflects fn's
	// mutations either way.
	Mutate(fn func(s *PlayerState) bool) (*PlayerState, error)
}

// MemoryRepo is an in-memory Repo for tests.
type MemoryRepo struct {
	mu    sync.Mutex
	rules config.GameRules
	state *PlayerState
}

var _ Repo = (*MemoryRepo)(nil)

// NewMemoryRepo returns an empty in-memory repo using the given rules for
// default states.
func NewMemoryRepo(rules config.GameRules) *MemoryRepo {
	return &MemoryRepo{rules: rules}
}

func (m *MemoryRepo) Get() (*PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = NewPlayerState(m.rules)
	}
	return m.state.Clone(), nil
}

func (m *MemoryRepo) Put(s *PlayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = normalizeState(s.Clone(), m.rules)
	return nil
}

func (m *MemoryRepo) Mutate(fn func(s *PlayerState) bool) (*PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		m.state = NewPlayerState(m.rules)
	}
	work := m.state.Clone()
	if fn(work) {
		m.state = work.Clone()
	}
	return work, nil
}
