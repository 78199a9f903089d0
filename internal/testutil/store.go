// Package testutil provides in-memory fakes shared by package tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/repository"
)

// UserStore is an in-memory user store with the same duplicate email
// semantics as repository.UserRepository.
type UserStore struct {
	mu    sync.Mutex
	users map[string]model.User

	// Err, when set, is returned by every CreateUser call.
	Err error
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

func (s *UserStore) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.users[user.EmailAddress]; exists {
		return nil, repository.ErrDuplicateEmail
	}

	now := time.Now()
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now
	s.users[created.EmailAddress] = created

	return &created, nil
}

// User returns the stored user with the given email address.
func (s *UserStore) User(email string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	return u, ok
}

func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

// WelcomeNotifier records enqueued welcome emails.
type WelcomeNotifier struct {
	mu   sync.Mutex
	Sent []string
	Err  error
}

func (n *WelcomeNotifier) EnqueueWelcomeEmail(_ context.Context, to, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Err != nil {
		return n.Err
	}
	n.Sent = append(n.Sent, to)
	return nil
}
