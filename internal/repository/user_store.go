package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"movie-discovery/internal/models"
)

// UserStore keeps demo accounts in memory, keyed by id and by email.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

// CreateUser stores a new user. Emails are compared case-insensitively.
func (s *UserStore) CreateUser(username, email, passwordHash string) (*models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[key]; ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUserExists, email)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        key,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.byID[user.ID] = user
	s.byEmail[key] = user
	return user, nil
}

// GetUser returns a user by id.
func (s *UserStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	cp := *u
	return &cp, nil
}

// GetUserByEmail returns a user by email.
func (s *UserStore) GetUserByEmail(email string) (*models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[key]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, email)
	}
	cp := *u
	return &cp, nil
}
