package memory

import (
	"context"
	"sync"

	"github.com/dicehall/accounts/internal/model"
	"github.com/dicehall/accounts/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It is volatile: contents do not survive the process.
type Storage struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users: make(map[string]*model.User),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return model.ErrUsernameExists
	}
	u := *user
	s.users[user.Username] = &u
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	// Copy so callers can't mutate stored state outside UpdateUser
	u := *user
	return &u, nil
}

func (s *Storage) UpdateUser(ctx context.Context, username string, mutate func(*model.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return model.ErrUserNotFound
	}
	// Mutate a copy so a failed mutator leaves the stored user untouched
	u := *user
	if err := mutate(&u); err != nil {
		return err
	}
	s.users[username] = &u
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, username)
	return nil
}
