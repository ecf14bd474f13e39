package life

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

type fileState struct {
	States map[string]*PlayerState `json:"states"`
}

type store struct {
	mu    sync.RWMutex
	path  string
	rules config.GameRules
	s     fileState
}

// FileRepo persists every player's state in one JSON document,
// <dataDir>/game_states.json. The Repo methods are scoped to a single user;
// ForUser derives further scopes sharing the same store and lock.
type FileRepo struct {
	*store
	userID string
}

var _ Repo = (*FileRepo)(nil)

// NewFileRepo opens (or creates) the state file under dataDir.
func NewFileRepo(dataDir string, rules config.GameRules) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &store{
		path:  filepath.Join(dataDir, "game_states.json"),
		rules: rules,
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return &FileRepo{store: st, userID: "default"}, nil
}

// ForUser returns a repo view scoped to the given user.
func (r *FileRepo) ForUser(userID string) *FileRepo {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "default"
	}
	return &FileRepo{store: r.store, userID: userID}
}

func (st *store) load() error {
	b, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.s = fileState{States: map[string]*PlayerState{}}
			return nil
		}
		return err
	}
	var fs fileState
	if err := json.Unmarshal(b, &fs); err != nil {
		return fmt.Errorf("parse %s: %w", st.path, err)
	}
	if fs.States == nil {
		fs.States = map[string]*PlayerState{}
	}
	for id, ps := range fs.States {
		fs.States[id] = normalizeState(ps, st.rules)
	}
	st.s = fs
	return nil
}

func (st *store) saveLocked() error {
	b, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, b, 0o644)
}

// stateLocked returns the stored state for userID, creating and normalizing
// as needed. Callers must hold the write lock.
func (st *store) stateLocked(userID string) *PlayerState {
	ps, ok := st.s.States[userID]
	if !ok || ps == nil {
		ps = NewPlayerState(st.rules)
	} else {
		ps = normalizeState(ps, st.rules)
	}
	st.s.States[userID] = ps
	return ps
}

func (r *FileRepo) Get() (*PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.s.States[r.userID]
	ps := r.stateLocked(r.userID)
	if !existed {
		if err := r.saveLocked(); err != nil {
			return nil, err
		}
	}
	return ps.Clone(), nil
}

func (r *FileRepo) Put(s *PlayerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.States[r.userID] = normalizeState(s.Clone(), r.rules)
	return r.saveLocked()
}

func (r *FileRepo) Mutate(fn func(s *PlayerState) bool) (*PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.stateLocked(r.userID).Clone()
	if fn(work) {
		r.s.States[r.userID] = work.Clone()
		if err := r.saveLocked(); err != nil {
			return nil, err
		}
	}
	return work, nil
}

// Users lists every user id with a stored state.
func (r *FileRepo) Users() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.s.States))
	for id := range r.s.States {
		out = append(out, id)
	}
	return out
}
