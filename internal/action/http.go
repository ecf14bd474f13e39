package action

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// Handler serves POST /api/action: a plain visit to a location, running that
// location's default activity with travel and opening hours applied.
type Handler struct {
	engine       life.Engine
	registry     *Registry
	repo         life.Repo
	repoResolver func(*http.Request) life.Repo
	userResolver func(*http.Request) string
}

// NewHandler builds a handler around the engine, the tool registry and a
// fallback repo.
func NewHandler(engine life.Engine, registry *Registry, repo life.Repo) *Handler {
	return &Handler{engine: engine, registry: registry, repo: repo}
}

// SetRepoResolver installs the per-request repo lookup (user scoping).
func (h *Handler) SetRepoResolver(fn func(*http.Request) life.Repo) {
	h.repoResolver = fn
}

// SetUserResolver installs the per-request username lookup for audit entries.
func (h *Handler) SetUserResolver(fn func(*http.Request) string) {
	h.userResolver = fn
}

func (h *Handler) repoForRequest(r *http.Request) life.Repo {
	if h.repoResolver != nil {
		if repo := h.repoResolver(r); repo != nil {
			return repo
		}
	}
	return h.repo
}

func (h *Handler) userForRequest(r *http.Request) string {
	if h.userResolver != nil {
		return h.userResolver(r)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"detail": msg})
}

// Perform handles POST /api/action.
func (h *Handler) Perform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	loc, ok := life.ParseLocation(req.Action)
	if !ok {
		writeErr(w, http.StatusBadRequest, "Invalid action")
		return
	}
	rule, opts, ok := h.registry.VisitExec(h.userForRequest(r), loc)
	if !ok {
		writeErr(w, http.StatusBadRequest, "Invalid action")
		return
	}

	var res life.Result
	st, err := h.repoForRequest(r).Mutate(func(s *life.PlayerState) bool {
		res = h.engine.ExecuteWithValidation(s, loc, rule, opts)
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

	// The visit already includes travel, but players read the suffix as "how
	// long the activity took", so it shows the action slice only.
	message := res.Message
	if !res.Burnout && !res.Bankruptcy {
		message += fmt.Sprintf(" (⏱ %s)", formatSpan(h.engine.Rules.ActionMinutes))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"state":        h.engine.View(st),
		"message":      message,
		"burnout":      res.Burnout,
		"bankruptcy":   res.Bankruptcy,
		"turn_summary": res.TurnSummary,
	})
}

func formatSpan(minutes int) string {
	if minutes%60 > 0 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dh", minutes/60)
}
