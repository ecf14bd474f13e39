package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Player-facing authentication messages, surfaced verbatim in the API's
// detail field.
var (
	ErrMissingCredentials = errors.New("Username and password required")
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotLoggedIn        = errors.New("Not logged in")
	ErrSessionInvalid     = errors.New("Invalid or expired session")
)

type Service struct {
	repo   *FileRepo
	logger *log.Logger

	cookieName string
	secret     []byte
	sessionTTL time.Duration

	onRegister func(username string) error
}

// NewService builds the auth service. secret signs session tokens; when
// empty a random one is generated, so sessions will not survive a restart.
func NewService(repo *FileRepo, secret []byte, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if len(secret) == 0 {
		var b [32]byte
		_, _ = rand.Read(b[:])
		secret = b[:]
		logger.Printf("[auth] no session secret configured, using a generated one")
	}
	return &Service{
		repo:       repo,
		logger:     logger,
		cookieName: "session",
		secret:     secret,
		sessionTTL: 24 * time.Hour,
	}
}

// SetSessionTTL overrides the default 24h session lifetime.
func (s *Service) SetSessionTTL(ttl time.Duration) {
	if ttl > 0 {
		s.sessionTTL = ttl
	}
}

// SetRegisterHook installs the callback run after an account is created,
// used to seed the player's game state.
func (s *Service) SetRegisterHook(fn func(username string) error) {
	s.onRegister = fn
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates an account and seeds its game state.
func (s *Service) Register(username, password string, now time.Time) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	created, err := s.repo.CreateUser(User{
		Username:     username,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
	})
	if err != nil {
		return err
	}
	if !created {
		return ErrUsernameTaken
	}
	if s.onRegister != nil {
		if err := s.onRegister(username); err != nil {
			return err
		}
	}
	s.logger.Printf("[auth] registered user %s", username)
	return nil
}

// Login checks the credentials and mints a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(username, password string, now time.Time) (string, time.Time, error) {
	u, ok := s.repo.GetUser(strings.TrimSpace(username))
	if !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}
	sum := hashPassword(password)
	if subtle.ConstantTimeCompare([]byte(sum), []byte(u.PasswordHash)) != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	exp := now.Add(s.sessionTTL)
	token, err := s.signToken(u.Username, now, exp)
	if err != nil {
		return "", time.Time{}, err
	}
	s.logger.Printf("[auth] user %s logged in", u.Username)
	return token, exp, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func (s *Service) signToken(username string, now, exp time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// verifyToken checks the signature and expiry against the supplied clock and
// returns the username.
func (s *Service) verifyToken(token string, now time.Time) (string, bool) {
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", false
	}
	if parsed.ExpiresAt == nil || !parsed.ExpiresAt.Time.After(now) {
		return "", false
	}
	if strings.TrimSpace(parsed.Username) == "" {
		return "", false
	}
	return parsed.Username, true
}

// AuthenticateRequest resolves the session cookie to a user. The error is
// one of ErrNotLoggedIn or ErrSessionInvalid.
func (s *Service) AuthenticateRequest(r *http.Request, now time.Time) (User, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return User{}, ErrNotLoggedIn
	}
	username, ok := s.verifyToken(cookie.Value, now)
	if !ok {
		return User{}, ErrSessionInvalid
	}
	u, ok := s.repo.GetUser(username)
	if !ok {
		return User{}, ErrSessionInvalid
	}
	return u, nil
}

func (s *Service) shouldUseSecureCookie(r *http.Request) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LIFEGAME_COOKIE_SECURE"))) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}

func (s *Service) SetSessionCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.shouldUseSecureCookie(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Service) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.shouldUseSecureCookie(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// RequirePage guards browser routes, bouncing anonymous visitors to /login.
func (s *Service) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := s.AuthenticateRequest(r, time.Now())
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUserContext(r.Context(), u)))
	})
}

// RequireAPI guards JSON routes with a 401 detail payload.
func (s *Service) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := s.AuthenticateRequest(r, time.Now())
		if err != nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"detail": err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(withUserContext(r.Context(), u)))
	})
}

// HandleAppRoute sends visitors to the game when logged in, to the login
// page otherwise.
func (s *Service) HandleAppRoute(w http.ResponseWriter, r *http.Request) {
	if _, err := s.AuthenticateRequest(r, time.Now()); err == nil {
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
