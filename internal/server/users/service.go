package users

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// the two cases are indistinguishable to a caller.
var ErrInvalidCredentials = errors.New("incorrect username or password")

type RegistrationInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(in RegistrationInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:             uuid.New(),
		Username:       in.Username,
		Email:          in.Email,
		FullName:       in.FullName,
		HashedPassword: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account.
func (s *Service) Authenticate(username, password string) (User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Get returns the account with the given username.
func (s *Service) Get(username string) (User, error) {
	return s.repo.GetByUsername(username)
}
