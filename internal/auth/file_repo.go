package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileRepo persists accounts in <dataDir>/users.json, a username-keyed
// document.
type FileRepo struct {
	mu    sync.RWMutex
	path  string
	users map[string]User
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "users.json"),
		users: map[string]User{},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.users = map[string]User{}
			return nil
		}
		return err
	}
	var loaded map[string]User
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded == nil {
		loaded = map[string]User{}
	}
	for name, u := range loaded {
		u.Username = name
		loaded[name] = u
	}
	r.users = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// CreateUser stores u and reports whether the username was free. The map is
// only mutated when the write succeeds.
func (r *FileRepo) CreateUser(u User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Username]; ok {
		return false, nil
	}
	r.users[u.Username] = u
	if err := r.saveLocked(); err != nil {
		delete(r.users, u.Username)
		return false, err
	}
	return true, nil
}

func (r *FileRepo) GetUser(username string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	return u, ok
}

// Usernames returns every account name, sorted.
func (r *FileRepo) Usernames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.users))
	for name := range r.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
