package johnlewis

import (
	"encoding/json"
	"net/http"

	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// Handler serves the John Lewis endpoints: the catalogue and purchases.
type Handler struct {
	engine       life.Engine
	repo         life.Repo
	repoResolver func(*http.Request) life.Repo
}

// NewHandler builds a handler around the engine and a fallback repo.
func NewHandler(engine life.Engine, repo life.Repo) *Handler {
	return &Handler{engine: engine, repo: repo}
}

// SetRepoResolver installs the per-request repo lookup (user scoping).
func (h *Handler) SetRepoResolver(fn func(*http.Request) life.Repo) {
	h.repoResolver = fn
}

func (h *Handler) repoForRequest(r *http.Request) life.Repo {
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

// Catalogue handles GET /api/john_lewis/catalogue.
func (h *Handler) Catalogue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"items":   Products(),
	})
}

// Purchase handles POST /api/john_lewis/purchase. A clothing purchase changes
// the wardrobe, so the look level is recomputed afterwards.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req struct {
		ItemName string `json:"item_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	life.RunVisit(w, r, h.repoForRequest(r), h.engine, life.LocationJohnLewis,
		PurchaseItem(h.engine.Rules, req.ItemName), life.ExecOptions{
			PostCallback: func(s *life.PlayerState) { s.UpdateLook() },
		})
}
