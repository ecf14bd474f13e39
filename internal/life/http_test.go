package life

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

func newTestHandler() (*Handler, *MemoryRepo) {
	rules := config.Default()
	repo := NewMemoryRepo(rules)
	return NewHandler(NewEngine(rules), repo), repo
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStateEndpoint_ReturnsViewWithLabels(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.State(rec, httptest.NewRequest(http.MethodGet, "/api/game_state", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	state := body["state"].(map[string]any)
	assert.Equal(t, float64(100), state["money"])
	assert.Equal(t, "Content", state["happiness_label"])
	assert.Equal(t, "Shabby", state["look_label"])
	assert.Equal(t, "Homeless", state["flat_name"])
	assert.Equal(t, "06:00", state["current_time"])
}

func TestStateEndpoint_RejectsPost(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.State(rec, httptest.NewRequest(http.MethodPost, "/api/game_state", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPassTimeEndpoint_AdvancesDay(t *testing.T) {
	h, repo := newTestHandler()

	rec := httptest.NewRecorder()
	h.PassTime(rec, httptest.NewRequest(http.MethodPost, "/api/pass_time", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You passed 23h 46m and the day ended...", body["message"])
	assert.Equal(t, false, body["burnout"])

	summary := body["turn_summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["turn"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Turn)
	assert.Equal(t, 25, st.Hunger)
}

func TestPassTimeEndpoint_ReportsBurnout(t *testing.T) {
	h, repo := newTestHandler()
	_, err := repo.Mutate(func(s *PlayerState) bool {
		s.Tiredness = 85
		s.Hunger = 70 // the rollover's +25 pushes this past the threshold
		return true
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.PassTime(rec, httptest.NewRequest(http.MethodPost, "/api/pass_time", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, MessageBurnout, body["message"])
	assert.Equal(t, true, body["burnout"])

	st, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Tiredness)
	assert.Equal(t, 2, st.Turn, "turn survives the reset")
}

func TestTimeInfoEndpoint(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.TimeInfo(rec, httptest.NewRequest(http.MethodGet, "/api/time_info/university", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "university", body["location"])
	assert.Equal(t, float64(60), body["travel_time"])
	assert.Equal(t, float64(120), body["action_time"])
	assert.Equal(t, float64(180), body["total_time"])
	assert.Equal(t, true, body["has_enough_time"])
	assert.Equal(t, "06:00", body["current_time"])
	assert.Equal(t, "07:00", body["arrival_time"])
	assert.Equal(t, "09:00", body["finish_time"])
	assert.Equal(t, float64(8), body["open_hour"])
	assert.Equal(t, float64(18), body["close_hour"])
	assert.Equal(t, false, body["is_open"], "06:00 is before opening")
}

func TestTimeInfoEndpoint_UnaffordableTimesAreNull(t *testing.T) {
	h, repo := newTestHandler()
	_, err := repo.Mutate(func(s *PlayerState) bool {
		s.TimeRemaining = 100
		return true
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.TimeInfo(rec, httptest.NewRequest(http.MethodGet, "/api/time_info/shop", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["has_enough_time"])
	assert.NotNil(t, body["arrival_time"], "100 minutes still covers the travel leg")
	assert.Nil(t, body["finish_time"])
}

func TestTimeInfoEndpoint_InvalidLocation(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.TimeInfo(rec, httptest.NewRequest(http.MethodGet, "/api/time_info/casino", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid location", body["detail"])
}
