package life

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

func newTestRepo(t *testing.T) (*FileRepo, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewFileRepo(dir, config.Default())
	require.NoError(t, err)
	return repo, dir
}

func TestFileRepo_GetCreatesDefaultState(t *testing.T) {
	repo, dir := newTestRepo(t)

	st, err := repo.ForUser("ada").Get()
	require.NoError(t, err)
	assert.Equal(t, 100, st.Money)
	assert.Equal(t, 1, st.Turn)

	// first access persists the document
	_, err = os.Stat(filepath.Join(dir, "game_states.json"))
	assert.NoError(t, err)
}

func TestFileRepo_PutThenGetRoundTrips(t *testing.T) {
	repo, _ := newTestRepo(t)
	user := repo.ForUser("ada")

	st, err := user.Get()
	require.NoError(t, err)
	st.Money = 321
	st.Items = []string{"Jeans"}
	require.NoError(t, user.Put(st))

	got, err := user.Get()
	require.NoError(t, err)
	assert.Equal(t, 321, got.Money)
	assert.Equal(t, []string{"Jeans"}, got.Items)
	assert.Equal(t, 2, got.Look, "look recomputed on store")
}

func TestFileRepo_SurvivesReopen(t *testing.T) {
	repo, dir := newTestRepo(t)
	user := repo.ForUser("ada")

	_, err := user.Mutate(func(s *PlayerState) bool {
		s.Money = 77
		s.Turn = 5
		return true
	})
	require.NoError(t, err)

	reopened, err := NewFileRepo(dir, config.Default())
	require.NoError(t, err)
	got, err := reopened.ForUser("ada").Get()
	require.NoError(t, err)
	assert.Equal(t, 77, got.Money)
	assert.Equal(t, 5, got.Turn)
}

func TestFileRepo_MutateSkipsPersistWhenDeclined(t *testing.T) {
	repo, _ := newTestRepo(t)
	user := repo.ForUser("ada")

	work, err := user.Mutate(func(s *PlayerState) bool {
		s.Money = 1
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, work.Money, "caller still sees the mutation")

	got, err := user.Get()
	require.NoError(t, err)
	assert.Equal(t, 100, got.Money, "store keeps the old state")
}

func TestFileRepo_UsersAreIsolated(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.ForUser("ada").Mutate(func(s *PlayerState) bool {
		s.Money = 1
		return true
	})
	require.NoError(t, err)

	got, err := repo.ForUser("grace").Get()
	require.NoError(t, err)
	assert.Equal(t, 100, got.Money)

	users := repo.Users()
	assert.ElementsMatch(t, []string{"ada", "grace"}, users)
}

func TestFileRepo_ReturnedStateDoesNotAliasStore(t *testing.T) {
	repo, _ := newTestRepo(t)
	user := repo.ForUser("ada")

	st, err := user.Get()
	require.NoError(t, err)
	st.Money = -999
	st.Items = append(st.Items, "Jeans")

	got, err := user.Get()
	require.NoError(t, err)
	assert.Equal(t, 100, got.Money)
	assert.Empty(t, got.Items)
}

func TestFileRepo_BlankUserFallsBackToDefault(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.Equal(t, "default", repo.ForUser("  ").userID)
}
