package chat

import (
	"encoding/json"
	"net/http"

	"github.com/annakobylinska4-wq/life-game/internal/action"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// Handler serves POST /api/chat.
type Handler struct {
	service      *Service
	engine       life.Engine
	repo         life.Repo
	repoResolver func(*http.Request) life.Repo
	userResolver func(*http.Request) string
}

// NewHandler builds a handler around the chat service and a fallback repo.
func NewHandler(service *Service, engine life.Engine, repo life.Repo) *Handler {
	return &Handler{service: service, engine: engine, repo: repo}
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

// Chat handles POST /api/chat: one message to the NPC at the given location.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		Action  string `json:"action"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action == "" || req.Message == "" {
		writeErr(w, http.StatusBadRequest, "Missing action or message")
		return
	}
	loc, ok := life.ParseLocation(req.Action)
	if !ok {
		writeErr(w, http.StatusBadRequest, "Invalid action")
		return
	}

	ex, err := h.service.Chat(r.Context(), h.userForRequest(r), loc, req.Message, h.repoForRequest(r))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	calls := ex.ToolCalls
	if calls == nil {
		calls = []action.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"response":   ex.Response,
		"tool_calls": calls,
		"state":      h.engine.View(ex.State),
	})
}
