package auth

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newAuthServiceForTests(t *testing.T) *Service {
	t.Helper()
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new auth repo: %v", err)
	}
	return NewService(repo, []byte("test-secret"), log.New(io.Discard, "", 0))
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc := newAuthServiceForTests(t)
	now := time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)

	if err := svc.Register("alice", "hunter2", now); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, exp, err := svc.Login("alice", "hunter2", now)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if want := now.Add(24 * time.Hour); !exp.Equal(want) {
		t.Fatalf("expected expiry %s, got %s", want, exp)
	}

	username, ok := svc.verifyToken(token, now.Add(time.Hour))
	if !ok || username != "alice" {
		t.Fatalf("expected token to verify for alice, got %q ok=%v", username, ok)
	}
}

func TestService_RegisterRejectsMissingFields(t *testing.T) {
	svc := newAuthServiceForTests(t)
	now := time.Now()

	if err := svc.Register("", "pw", now); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials for empty username, got %v", err)
	}
	if err := svc.Register("bob", "", now); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials for empty password, got %v", err)
	}
}

func TestService_RegisterRejectsDuplicate(t *testing.T) {
	svc := newAuthServiceForTests(t)
	now := time.Now()

	if err := svc.Register("alice", "pw1", now); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := svc.Register("alice", "pw2", now); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestService_RegisterRunsSeedHook(t *testing.T) {
	svc := newAuthServiceForTests(t)
	var seeded []string
	svc.SetRegisterHook(func(username string) error {
		seeded = append(seeded, username)
		return nil
	})

	if err := svc.Register("carol", "pw", time.Now()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(seeded) != 1 || seeded[0] != "carol" {
		t.Fatalf("expected seed hook for carol, got %v", seeded)
	}
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthServiceForTests(t)
	now := time.Now()
	if err := svc.Register("alice", "hunter2", now); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login("alice", "wrong", now); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody", "hunter2", now); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestService_AuthenticateRequest(t *testing.T) {
	svc := newAuthServiceForTests(t)
	now := time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
	if err := svc.Register("alice", "hunter2", now); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, exp, err := svc.Login("alice", "hunter2", now)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/game_state", nil)
	req.AddCookie(&http.Cookie{Name: svc.cookieName, Value: token})

	u, err := svc.AuthenticateRequest(req, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.AuthenticateRequest(req, exp.Add(time.Second)); err != ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid after expiry, got %v", err)
	}

	bare := httptest.NewRequest(http.MethodGet, "/api/game_state", nil)
	if _, err := svc.AuthenticateRequest(bare, now); err != ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn without cookie, got %v", err)
	}

	forged := httptest.NewRequest(http.MethodGet, "/api/game_state", nil)
	forged.AddCookie(&http.Cookie{Name: svc.cookieName, Value: "not-a-jwt"})
	if _, err := svc.AuthenticateRequest(forged, now); err != ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for garbage token, got %v", err)
	}
}

func TestService_TokenFromOtherSecretIsRejected(t *testing.T) {
	svc := newAuthServiceForTests(t)
	other := newAuthServiceForTests(t)
	other.secret = []byte("different-secret")
	now := time.Now()

	if err := other.Register("mallory", "pw", now); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := other.Login("mallory", "pw", now)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, ok := svc.verifyToken(token, now); ok {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestService_SessionCookieFlags(t *testing.T) {
	svc := newAuthServiceForTests(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "http://localhost/api/login", nil)

	svc.SetSessionCookie(w, req, "token-123", time.Now().Add(24*time.Hour))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "session" {
		t.Fatalf("expected cookie name session, got %q", c.Name)
	}
	if !c.HttpOnly {
		t.Fatalf("expected HttpOnly cookie")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", c.SameSite)
	}
	if c.Path != "/" {
		t.Fatalf("expected path /, got %q", c.Path)
	}
	if c.MaxAge != 86400 {
		t.Fatalf("expected MaxAge 86400, got %d", c.MaxAge)
	}
	if c.Secure {
		t.Fatalf("expected plain-http request to produce a non-secure cookie")
	}
}

func TestFileRepo_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	created, err := repo.CreateUser(User{Username: "alice", PasswordHash: hashPassword("pw"), CreatedAt: time.Now()})
	if err != nil || !created {
		t.Fatalf("create user: created=%v err=%v", created, err)
	}

	reopened, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("reopen repo: %v", err)
	}
	u, ok := reopened.GetUser("alice")
	if !ok {
		t.Fatalf("expected alice to survive reopen")
	}
	if u.Username != "alice" {
		t.Fatalf("expected username backfilled from the map key, got %q", u.Username)
	}
	if u.PasswordHash != hashPassword("pw") {
		t.Fatalf("unexpected password hash %q", u.PasswordHash)
	}
	if names := reopened.Usernames(); len(names) != 1 || names[0] != "alice" {
		t.Fatalf("unexpected usernames %v", names)
	}
}
