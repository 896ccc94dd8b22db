// Package users holds the account registry: registration, credential
// verification, and lookup by username.
package users

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrNotFound      = errors.New("user not found")
)

type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	FullName       string
	HashedPassword string
	Disabled       bool
}

// Repository stores accounts keyed by username.
type Repository interface {
	Create(user User) error
	GetByUsername(username string) (User, error)
}

// memoryRepository keeps accounts in process memory. Accounts do not survive a
// restart.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return ErrUsernameTaken
	}
	r.users[user.Username] = user
	return nil
}

func (r *memoryRepository) GetByUsername(username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}
