// Package serverapp assembles the full HTTP handler: auth, game state,
// locations, chat, pages, static files and the admin surface.
package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/annakobylinska4-wq/life-game/internal/action"
	"github.com/annakobylinska4-wq/life-game/internal/audit"
	"github.com/annakobylinska4-wq/life-game/internal/auth"
	"github.com/annakobylinska4-wq/life-game/internal/chat"
	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/estate"
	"github.com/annakobylinska4-wq/life-game/internal/httpmw"
	"github.com/annakobylinska4-wq/life-game/internal/joboffice"
	"github.com/annakobylinska4-wq/life-game/internal/johnlewis"
	"github.com/annakobylinska4-wq/life-game/internal/life"
	"github.com/annakobylinska4-wq/life-game/internal/server"
	"github.com/annakobylinska4-wq/life-game/internal/shop"
	"github.com/annakobylinska4-wq/life-game/internal/university"
	staticfiles "github.com/annakobylinska4-wq/life-game/static"
	"github.com/annakobylinska4-wq/life-game/ui/page"
)

type Options struct {
	Config        *config.Config
	Env           config.Env
	DataDir       string
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger

	// Provider overrides the LLM provider built from Config/Env. Tests use
	// this to inject a scripted provider.
	Provider chat.Provider
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = "data"
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	rules := opts.Config.Game
	engine := life.NewEngine(rules)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "life-game",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	gameRepo, err := life.NewFileRepo(opts.DataDir, rules)
	if err != nil {
		return nil, err
	}
	auditor := audit.New(opts.DataDir, opts.Logger)
	registry := action.NewRegistry(rules, auditor)

	authRepo, err := auth.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	authService := auth.NewService(authRepo, []byte(opts.Env.SessionSecret), opts.Logger)
	authService.SetSessionTTL(opts.Env.SessionTTL)
	authService.SetRegisterHook(func(username string) error {
		// Seed the default save so the first /api/game_state is a read.
		_, err := gameRepo.ForUser(username).Get()
		return err
	})
	logSecurityHints(opts.Logger)

	repoFor := func(r *http.Request) life.Repo {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			return gameRepo
		}
		return gameRepo.ForUser(u.Username)
	}
	userFor := func(r *http.Request) string {
		u, ok := auth.UserFromContext(r.Context())
		if !ok {
			return "default"
		}
		return u.Username
	}

	authHandler := auth.NewHandler(authService)
	server.Handle(mux, rr, "POST /api/register", "Create an account",
		`{"username":"anna","password":"secret"}`, http.HandlerFunc(authHandler.Register))
	server.Handle(mux, rr, "POST /api/login", "Log in and set the session cookie",
		`{"username":"anna","password":"secret"}`, http.HandlerFunc(authHandler.Login))
	server.Handle(mux, rr, "POST /api/logout", "Clear the session cookie", "",
		authService.RequireAPI(http.HandlerFunc(authHandler.Logout)))
	server.Handle(mux, rr, "GET /api/auth/session", "Current session info", "",
		http.HandlerFunc(authHandler.Session))

	lifeHandler := life.NewHandler(engine, gameRepo)
	lifeHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/game_state", "Current game state", "",
		authService.RequireAPI(http.HandlerFunc(lifeHandler.State)))
	server.Handle(mux, rr, "POST /api/pass_time", "Fast-forward to the next day", "",
		authService.RequireAPI(http.HandlerFunc(lifeHandler.PassTime)))
	server.Handle(mux, rr, "GET /api/time_info/{location}", "Travel and activity cost for a location", "",
		authService.RequireAPI(http.HandlerFunc(lifeHandler.TimeInfo)))

	actionHandler := action.NewHandler(engine, registry, gameRepo)
	actionHandler.SetRepoResolver(repoFor)
	actionHandler.SetUserResolver(userFor)
	server.Handle(mux, rr, "POST /api/action", "Visit a location and run its default activity",
		`{"action":"shop"}`, authService.RequireAPI(http.HandlerFunc(actionHandler.Perform)))

	shopHandler := shop.NewHandler(engine, gameRepo)
	shopHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/shop/catalogue", "Food for sale at the corner shop", "",
		authService.RequireAPI(http.HandlerFunc(shopHandler.Catalogue)))
	server.Handle(mux, rr, "POST /api/shop/purchase", "Buy a specific food item",
		`{"item_name":"Apple"}`, authService.RequireAPI(http.HandlerFunc(shopHandler.Purchase)))

	jlHandler := johnlewis.NewHandler(engine, gameRepo)
	jlHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/john_lewis/catalogue", "Clothing and goods at John Lewis", "",
		authService.RequireAPI(http.HandlerFunc(jlHandler.Catalogue)))
	server.Handle(mux, rr, "POST /api/john_lewis/purchase", "Buy a specific John Lewis item",
		`{"item_name":"Formal Suit"}`, authService.RequireAPI(http.HandlerFunc(jlHandler.Purchase)))

	estateHandler := estate.NewHandler(engine, gameRepo)
	estateHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/estate_agent/catalogue", "Flats available to rent", "",
		authService.RequireAPI(http.HandlerFunc(estateHandler.Catalogue)))
	server.Handle(mux, rr, "POST /api/estate_agent/rent", "Rent a flat by tier",
		`{"tier":1}`, authService.RequireAPI(http.HandlerFunc(estateHandler.Rent)))

	uniHandler := university.NewHandler(engine, gameRepo)
	uniHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/university/catalogue", "Courses with eligibility", "",
		authService.RequireAPI(http.HandlerFunc(uniHandler.Catalogue)))
	server.Handle(mux, rr, "POST /api/university/enroll", "Enroll in a course",
		`{"course_id":"middle_school"}`, authService.RequireAPI(http.HandlerFunc(uniHandler.Enroll)))

	jobHandler := joboffice.NewHandler(engine, gameRepo)
	jobHandler.SetRepoResolver(repoFor)
	server.Handle(mux, rr, "GET /api/job_office/jobs", "Jobs with eligibility", "",
		authService.RequireAPI(http.HandlerFunc(jobHandler.Jobs)))
	server.Handle(mux, rr, "POST /api/job_office/apply", "Apply for a job by title",
		`{"job_title":"Shop Assistant"}`, authService.RequireAPI(http.HandlerFunc(jobHandler.Apply)))

	provider := opts.Provider
	if provider == nil {
		provider = chat.NewProvider(opts.Config.LLM,
			opts.Env.OpenAIKey, opts.Env.AnthropicKey,
			opts.Env.OpenAIBaseURL, opts.Env.AnthropicBaseURL)
	}
	chatService := chat.NewService(engine, registry, provider, chat.DefaultPersonas())
	chatHandler := chat.NewHandler(chatService, engine, gameRepo)
	chatHandler.SetRepoResolver(repoFor)
	chatHandler.SetUserResolver(userFor)
	server.Handle(mux, rr, "POST /api/chat", "Talk to the NPC at a location",
		`{"action":"shop","message":"hello"}`, authService.RequireAPI(http.HandlerFunc(chatHandler.Chat)))

	server.Handle(mux, rr, "GET /api/config", "Effective balance config", "",
		authService.RequireAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(opts.Config); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		})))

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := gameRepo.Get(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "state storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "life-game",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("/", templ.Handler(page.LandingPage()))
	mux.Handle("/login", templ.Handler(page.LoginPage()))
	mux.HandleFunc("/app", authService.HandleAppRoute)
	mux.Handle("/game", authService.RequirePage(templ.Handler(page.GamePage())))

	server.RegisterAdminUI(mux, rr, opts.Env.Addr)

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LIFEGAME_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logSecurityHints(logger *log.Logger) {
	if logger == nil {
		return
	}
	env := strings.ToLower(strings.TrimSpace(os.Getenv("LIFEGAME_ENV")))
	cookieSecure := strings.ToLower(strings.TrimSpace(os.Getenv("LIFEGAME_COOKIE_SECURE")))

	if env == "production" || env == "prod" {
		if cookieSecure != "1" && cookieSecure != "true" && cookieSecure != "yes" {
			logger.Printf("[security] LIFEGAME_ENV=%s but LIFEGAME_COOKIE_SECURE is not explicitly true", env)
		}
	}
}
