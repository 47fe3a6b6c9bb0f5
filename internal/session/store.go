package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"wateen/client/internal/keystore"
	"wateen/client/internal/models"
)

const (
	tokenKey   = "auth.token"
	profileKey = "auth.profile"
)

// Store holds the process-wide authentication state. Only its own methods
// mutate it; token and user change together under one lock.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User

	keys *keystore.Store
	log  zerolog.Logger
}

func NewStore(keys *keystore.Store, log zerolog.Logger) *Store {
	return &Store{keys: keys, log: log}
}

// Login records a successful authentication and persists the token and
// profile so a later Restore can rebuild the full session.
func (s *Store) Login(token string, user *models.User) error {
	if err := s.keys.SetSecret(tokenKey, []byte(token)); err != nil {
		return err
	}
	if user != nil {
		profile, err := json.Marshal(user)
		if err == nil {
			if err := s.keys.Set(profileKey, profile); err != nil {
				s.log.Warn().Err(err).Msg("persist profile failed")
			}
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout clears both the in-memory session and the durable entries.
func (s *Store) Logout() {
	if err := s.keys.Delete(tokenKey); err != nil {
		s.log.Warn().Err(err).Msg("delete stored token failed")
	}
	if err := s.keys.Delete(profileKey); err != nil {
		s.log.Warn().Err(err).Msg("delete stored profile failed")
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Restore rebuilds the session from durable storage. Any storage trouble is
// treated as "no prior session". Tokens whose exp claim has passed are
// discarded instead of restored.
func (s *Store) Restore() bool {
	raw, err := s.keys.Get(tokenKey)
	if err != nil {
		if !errors.Is(err, keystore.ErrNotFound) {
			s.log.Debug().Err(err).Msg("token restore failed")
		}
		return false
	}
	token := string(raw)

	if expired(token) {
		s.log.Info().Msg("stored token expired, discarding")
		s.Logout()
		return false
	}

	var user *models.User
	if profile, err := s.keys.Get(profileKey); err == nil {
		var u models.User
		if err := json.Unmarshal(profile, &u); err == nil {
			user = &u
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return true
}

// expired inspects the exp claim without verifying the signature; the
// backend is the authority on validity, this only avoids restoring a
// session the backend is guaranteed to reject.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
