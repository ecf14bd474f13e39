package johnlewis

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
	h.Catalogue(rec, httptest.NewRequest(http.MethodGet, "/api/john_lewis/catalogue", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	items := body["items"].([]any)
	require.Len(t, items, 27)
	first := items[0].(map[string]any)
	assert.Equal(t, "Formal Suit", first["name"])
	assert.Equal(t, "clothing", first["category"])
}

func TestPurchaseEndpoint_RecomputesLook(t *testing.T) {
	h, repo := newTestHandler()
	_, err := repo.Mutate(func(s *life.PlayerState) bool {
		s.Money = 200
		s.Items = []string{"Jeans"} // one piece already, the next lifts look to 2
		s.UpdateLook()
		return true
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/john_lewis/purchase",
		strings.NewReader(`{"item_name":"Polo Shirt"}`))
	h.Purchase(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Jeans", "Polo Shirt"}, st.Items)
	assert.Equal(t, 2, st.Look)
}

func TestPurchaseEndpoint_FurnitureLeavesLookAlone(t *testing.T) {
	h, repo := newTestHandler()
	_, err := repo.Mutate(func(s *life.PlayerState) bool {
		s.Money = 500
		return true
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/john_lewis/purchase",
		strings.NewReader(`{"item_name":"Armchair"}`))
	h.Purchase(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Armchair"}, st.Items)
	assert.Equal(t, 1, st.Look)
}

func TestPurchaseEndpoint_NotEnoughMoney(t *testing.T) {
	h, repo := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/john_lewis/purchase",
		strings.NewReader(`{"item_name":"Armchair"}`))
	h.Purchase(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not enough money to buy Armchair!", body["detail"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1440, st.TimeRemaining)
	assert.Empty(t, st.Items)
}
