package session

import (
	"encoding/json"
	"sync"

	"github.com/salesdesk/crm-portal/internal/auth"
)

// Persisted keys. Both are written together and removed together; a
// token without a user (or the reverse) is treated as no session at all.
const (
	KeyToken = "crm_token"
	KeyUser  = "crm_user"
)

// Storage is the key-value layer sessions persist through.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session is the authenticated state of the portal: the bearer token and
// the user it belongs to.
type Session struct {
	Token string
	User  auth.User
}

func (s Session) IsZero() bool {
	return s.Token == ""
}

// Store owns the current session and keeps the persisted copy in sync.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	current Session
	loaded  bool
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load restores the session from storage. A missing token, a missing user,
// or a user payload that no longer parses all resolve the same way: both
// keys are discarded and the zero session is returned. Load never fails;
// the worst storage can do is leave the caller logged out.
func (s *Store) Load() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.storage.Get(KeyToken)
	if err != nil || !ok || token == "" {
		s.discardLocked()
		return s.current
	}

	rawUser, ok, err := s.storage.Get(KeyUser)
	if err != nil || !ok {
		s.discardLocked()
		return s.current
	}

	var user auth.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.discardLocked()
		return s.current
	}

	s.current = Session{Token: token, User: user}
	s.loaded = true
	return s.current
}

// Set replaces the session and persists it. The token is written first so
// a failure leaves at most a token without a user, which Load discards.
func (s *Store) Set(token string, user auth.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(KeyToken, token); err != nil {
		return err
	}
	if err := s.storage.Set(KeyUser, string(rawUser)); err != nil {
		return err
	}

	s.current = Session{Token: token, User: user}
	s.loaded = true
	return nil
}

// Clear drops the session from memory and storage.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
}

func (s *Store) discardLocked() {
	_ = s.storage.Delete(KeyToken)
	_ = s.storage.Delete(KeyUser)
	s.current = Session{}
	s.loaded = true
}

// Current returns the in-memory session, loading it on first use.
func (s *Store) Current() Session {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.current
	}
	s.mu.RUnlock()
	return s.Load()
}

func (s *Store) Token() string {
	return s.Current().Token
}

func (s *Store) User() auth.User {
	return s.Current().User
}

// IsAuthenticated reports whether a usable session exists right now.
func (s *Store) IsAuthenticated() bool {
	return !s.Current().IsZero()
}
