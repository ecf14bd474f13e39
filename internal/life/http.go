package life

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Handler serves the game-state endpoints: state snapshot, pass-time and
// per-location time info.
type Handler struct {
	engine       Engine
	repo         Repo
	repoResolver func(*http.Request) Repo
}

// NewHandler builds a handler around the engine and a fallback repo.
func NewHandler(engine Engine, repo Repo) *Handler {
	return &Handler{engine: engine, repo: repo}
}

// SetRepoResolver installs the per-request repo lookup (user scoping).
func (h *Handler) SetRepoResolver(fn func(*http.Request) Repo) {
	h.repoResolver = fn
}

func (h *Handler) repoForRequest(r *http.Request) Repo {
	if h.repoResolver != nil {
		if repo := h.repoResolver(r); repo != nil {
			return repo
		}
	}
	return h.repo
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"detail": msg})
}

// RunVisit executes one validated location visit against repo and writes
// either the 400 failure or the standard action envelope. The state is
// persisted whenever the visit spent time, so a failed rule still keeps the
// travel on the clock. Location packages share it for their POST endpoints.
func RunVisit(w http.ResponseWriter, r *http.Request, repo Repo, e Engine, loc Location, rule RuleFunc, opts ExecOptions) {
	var res Result
	st, err := repo.Mutate(func(s *PlayerState) bool {
		res = e.ExecuteWithValidation(s, loc, rule, opts)
		return res.OK || res.TimeSpent
	})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !res.OK {
		writeErr(w, http.StatusBadRequest, res.Message)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"state":        e.View(st),
		"message":      res.Message,
		"burnout":      res.Burnout,
		"bankruptcy":   res.Bankruptcy,
		"turn_summary": res.TurnSummary,
	})
}

// State handles GET /api/game_state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	st, err := h.repoForRequest(r).Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"state":   h.engine.View(st),
	})
}

// PassTime handles POST /api/pass_time: fast-forward to the next day.
func (h *Handler) PassTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var (
		minutes int
		summary TurnSummary
		end     EndgameResult
	)
	st, err := h.repoForRequest(r).Mutate(func(s *PlayerState) bool {
		minutes, summary = h.engine.PassTime(s)
		end = h.engine.CheckEndgame(s, "")
		return true
	})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	message := end.Message
	if !end.Burnout && !end.Bankruptcy {
		if minutes >= 60 {
			message = fmt.Sprintf("You passed %dh %dm and the day ended...", minutes/60, minutes%60)
		} else {
			message = fmt.Sprintf("You passed %d minutes and the day ended...", minutes)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"state":        h.engine.View(st),
		"message":      message,
		"burnout":      end.Burnout,
		"bankruptcy":   end.Bankruptcy,
		"turn_summary": summary,
	})
}

// TimeInfo handles GET /api/time_info/{location}.
func (h *Handler) TimeInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tail := strings.TrimPrefix(r.URL.Path, "/api/time_info/")
	loc, ok := ParseLocation(strings.Trim(tail, "/"))
	if !ok {
		writeErr(w, http.StatusBadRequest, "Invalid location")
		return
	}

	st, err := h.repoForRequest(r).Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	cost := h.engine.CostFor(loc)
	resp := map[string]any{
		"success":         true,
		"location":        loc,
		"travel_time":     cost.Travel,
		"action_time":     cost.Action,
		"total_time":      cost.Total(),
		"has_enough_time": h.engine.HasEnoughTime(st, loc),
		"time_remaining":  st.TimeRemaining,
		"current_time":    h.engine.FormatTime(st.TimeRemaining),
		"arrival_time":    nil,
		"finish_time":     nil,
	}
	if cost.Travel <= st.TimeRemaining {
		resp["arrival_time"] = h.engine.FormatTime(st.TimeRemaining - cost.Travel)
	}
	if cost.Total() <= st.TimeRemaining {
		resp["finish_time"] = h.engine.FormatTime(st.TimeRemaining - cost.Total())
	}
	if hours := Info(loc).Hours; hours != nil {
		hour := h.engine.CurrentHour(st.TimeRemaining)
		resp["open_hour"] = hours.Open
		resp["close_hour"] = hours.Close
		resp["is_open"] = hour >= hours.Open && hour < hours.Close
	}
	writeJSON(w, http.StatusOK, resp)
}
