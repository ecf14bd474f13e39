package estate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

func newTestHandler() (*Handler, *life.MemoryRepo) {
	rules := config.Default()
	repo := life.NewMemoryRepo(rules)
	return NewHandler(life.NewEngine(rules), repo), repo
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCatalogueEndpoint(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Catalogue(rec, httptest.NewRequest(http.MethodGet, "/api/estate_agent/catalogue", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	flats := body["flats"].([]any)
	require.Len(t, flats, 6)
	penthouse := flats[5].(map[string]any)
	assert.Equal(t, "Luxury Penthouse", penthouse["name"])
	assert.Equal(t, float64(200), penthouse["rent"])
}

func TestRentEndpoint(t *testing.T) {
	// The estate agent opens at 6, so the default 06:00 clock is fine.
	h, repo := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/estate_agent/rent",
		strings.NewReader(`{"tier":1}`))
	h.Rent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Congratulations! You've rented a Dingy Bedsit for £10/turn. No more sleeping rough!", body["message"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, st.FlatTier)
	assert.Equal(t, 10, st.Rent)
	assert.Equal(t, 1260, st.TimeRemaining)
}

func TestRentEndpoint_ClosedLate(t *testing.T) {
	h, repo := newTestHandler()
	_, err := repo.Mutate(func(s *life.PlayerState) bool {
		s.TimeRemaining = 540 // 21:00, after closing
		return true
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/estate_agent/rent",
		strings.NewReader(`{"tier":1}`))
	h.Rent(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "The estate agent is closed! Opening hours: 6:00 - 20:00. Current time: 21:00.", body["detail"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, st.FlatTier)
}

func TestRentEndpoint_InvalidTier(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/estate_agent/rent",
		strings.NewReader(`{"tier":9}`))
	h.Rent(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid flat selection.", body["detail"])
}
