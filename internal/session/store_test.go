package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"wateen/client/internal/keystore"
	"wateen/client/internal/models"
)

func openKeys(t *testing.T, dir string) *keystore.Store {
	t.Helper()
	keys, err := keystore.Open(dir)
	if err != nil {
		t.Fatalf("open keystore: %v", err)
	}
	t.Cleanup(func() { keys.Close() })
	return keys
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "4",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestLoginAuthenticatesAndPersists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(openKeys(t, dir), zerolog.Nop())

	token := signedToken(t, time.Now().Add(time.Hour))
	user := &models.User{ID: 4, Username: "sara", Email: "sara@example.com"}
	if err := store.Login(token, user); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !store.IsAuthenticated() {
		t.Error("login should authenticate the session")
	}
	if store.Token() != token {
		t.Error("token not held in memory")
	}

	// A second store over the same directory sees the durable copy.
	restored := NewStore(openKeys(t, dir), zerolog.Nop())
	if !restored.Restore() {
		t.Fatal("restore should find the persisted session")
	}
	if restored.Token() != token {
		t.Error("durable token does not match the logged-in token")
	}
	if u := restored.User(); u == nil || u.Username != "sara" {
		t.Errorf("restore should rebuild the cached profile, got %+v", u)
	}
}

func TestLogoutClearsDurableState(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(openKeys(t, dir), zerolog.Nop())

	if err := store.Login(signedToken(t, time.Now().Add(time.Hour)), nil); err != nil {
		t.Fatalf("login: %v", err)
	}
	store.Logout()

	if store.IsAuthenticated() {
		t.Error("logout should drop authentication")
	}
	if NewStore(openKeys(t, dir), zerolog.Nop()).Restore() {
		t.Error("restore after logout should find nothing")
	}
}

func TestRestoreDiscardsExpiredToken(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(openKeys(t, dir), zerolog.Nop())

	if err := store.Login(signedToken(t, time.Now().Add(-time.Hour)), nil); err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh := NewStore(openKeys(t, dir), zerolog.Nop())
	if fresh.Restore() {
		t.Error("an expired token must not restore a session")
	}
	if fresh.IsAuthenticated() {
		t.Error("session must stay unauthenticated")
	}
}

func TestRestoreKeepsOpaqueTokens(t *testing.T) {
	// Tokens that are not JWTs carry no readable expiry; the backend
	// stays the judge of their validity.
	dir := t.TempDir()
	store := NewStore(openKeys(t, dir), zerolog.Nop())

	if err := store.Login("opaque-token", nil); err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh := NewStore(openKeys(t, dir), zerolog.Nop())
	if !fresh.Restore() {
		t.Error("opaque tokens should restore")
	}
}

func TestRestoreWithoutStorage(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())
	if store.Restore() {
		t.Error("no storage means no prior session")
	}
	if store.IsAuthenticated() {
		t.Error("must stay unauthenticated")
	}
}
