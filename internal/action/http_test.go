package action

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/audit"
	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

func newTestHandler(t *testing.T) (*Handler, *life.MemoryRepo, *audit.Logger) {
	t.Helper()
	rules := config.Default()
	auditor := audit.New(t.TempDir(), nil)
	repo := life.NewMemoryRepo(rules)
	h := NewHandler(life.NewEngine(rules), NewRegistry(rules, auditor), repo)
	return h, repo, auditor
}

func postAction(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/action", strings.NewReader(body))
	h.Perform(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPerformEndpoint_RejectsGet(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Perform(rec, httptest.NewRequest(http.MethodGet, "/api/action", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPerformEndpoint_InvalidAction(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := postAction(h, `{"action": "casino"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", decodeBody(t, rec)["detail"])
}

func TestPerformEndpoint_InvalidBody(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := postAction(h, `{"action":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPerformEndpoint_VisitShop(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	_, err := repo.Mutate(func(s *life.PlayerState) bool {
		s.Money = 2
		s.Hunger = 50
		return true
	})
	require.NoError(t, err)

	rec := postAction(h, `{"action": "shop"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "You bought Banana for $2 (105 calories). Hunger reduced by 10! (⏱ 2h)", body["message"])
	assert.Equal(t, false, body["burnout"])

	state := body["state"].(map[string]any)
	assert.Equal(t, float64(0), state["money"])
	assert.Equal(t, float64(40), state["hunger"])
	assert.Equal(t, float64(1260), state["time_remaining"])
	assert.Equal(t, "shop", state["current_location"])
}

func TestPerformEndpoint_RestAtHome(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := postAction(h, `{"action": "home"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You found a spot to rest, but you were already well rested. (⏱ 2h)", body["message"])
}

func TestPerformEndpoint_ClosedLocationLeavesStateUntouched(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	rec := postAction(h, `{"action": "university"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"The university is closed! Opening hours: 8:00 - 18:00. Current time: 06:00.",
		decodeBody(t, rec)["detail"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1440, st.TimeRemaining)
}

func TestPerformEndpoint_BurnoutReplacesMessage(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	_, err := repo.Mutate(func(s *life.PlayerState) bool {
		s.TimeRemaining = 190
		s.Tiredness = 95
		s.Hunger = 60
		return true
	})
	require.NoError(t, err)

	rec := postAction(h, `{"action": "home"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["burnout"])
	assert.Equal(t, "BURNOUT", body["message"], "endgame messages carry no time suffix")
	require.NotNil(t, body["turn_summary"])

	state := body["state"].(map[string]any)
	assert.Equal(t, float64(2), state["turn"], "reset keeps the day counter")
	assert.Equal(t, float64(100), state["money"])
	assert.Equal(t, float64(0), state["tiredness"])
}

func TestPerformEndpoint_RecordsAuditWithUser(t *testing.T) {
	h, _, auditor := newTestHandler(t)
	h.SetUserResolver(func(*http.Request) string { return "dave" })

	rec := postAction(h, `{"action": "home"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := auditor.Read()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dave", entries[0].UserName)
	assert.Equal(t, "rest", entries[0].FunctionCalled)
}
