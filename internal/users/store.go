// Package users owns the registered user list and the current session.
// The store is an explicit state container: construct it with a storage
// repository and a logger, call Init once, then use Register/Login/Logout.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage"
)

// snapshot is the persisted shape of the store: the full user list plus the
// current session, bundled under a single storage key.
type snapshot struct {
	Users       []User   `json:"users"`
	CurrentUser *Session `json:"currentUser"`
}

type Store struct {
	repo storage.Repository
	log  logging.Logger

	mu          sync.RWMutex
	users       []User
	current     *Session
	initialized bool
}

func NewStore(repo storage.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("store", "users")}
}

// Init loads the persisted snapshot. It runs at most once; repeated calls
// are no-ops. A session referencing a user that is no longer present in the
// list is cleared.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	data, err := s.repo.Get(ctx, storage.KeyUsers)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if data != nil {
		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to decode users snapshot: %w", err)
		}
		s.users = snap.Users
		s.current = snap.CurrentUser
	}

	if s.current != nil && s.findByID(s.current.UserID) == nil {
		s.log.Warn(ctx, "clearing stale session", "userID", s.current.UserID)
		s.current = nil
		if err := s.persist(ctx); err != nil {
			return err
		}
	}

	s.initialized = true
	return nil
}

// Register creates a new user and establishes a session for it. The
// duplicate check is a case-sensitive exact match on the email string; the
// case-insensitive availability check belongs to the validation layer.
func (s *Store) Register(ctx context.Context, email, password string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, common.ErrEmailAlreadyRegistered
		}
	}

	user := User{
		ID:        common.NewID(),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, user)
	s.current = &Session{UserID: user.ID, Email: user.Email}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "userID", user.ID)
	return s.sessionCopy(), nil
}

// Login authenticates against the local user list: exact email match, then
// plaintext password comparison. Failures carry distinct sentinel errors so
// callers can tag the offending form field.
func (s *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *User
	for i := range s.users {
		if s.users[i].Email == email {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	if user.Password != password {
		return nil, common.ErrInvalidPassword
	}

	s.current = &Session{UserID: user.ID, Email: user.Email}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user logged in", "userID", user.ID)
	return s.sessionCopy(), nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.persist(ctx)
}

// IsAuthenticated reports whether a session is currently set.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionCopy()
}

// Users returns a copy of the registered user list, e.g. for the
// registration form's availability check.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]User(nil), s.users...)
}

func (s *Store) sessionCopy() *Session {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

func (s *Store) findByID(id string) *User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// persist writes the full snapshot; callers hold the lock.
func (s *Store) persist(ctx context.Context) error {
	snap := snapshot{Users: s.users, CurrentUser: s.current}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode users snapshot: %w", err)
	}
	if err := s.repo.Set(ctx, storage.KeyUsers, data); err != nil {
		s.log.Error(ctx, "failed to persist users", "error", err)
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
