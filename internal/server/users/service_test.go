package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_HashesPassword(t *testing.T) {
	s := NewService(NewMemoryRepository())

	user, err := s.Register(RegistrationInput{
		Username: "alice", Email: "a@example.org", FullName: "Alice A.", Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("s3cret")))
	assert.False(t, user.Disabled)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := NewService(NewMemoryRepository())

	_, err := s.Register(RegistrationInput{Username: "alice", Password: "x"})
	require.NoError(t, err)

	_, err = s.Register(RegistrationInput{Username: "alice", Password: "y"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	s := NewService(NewMemoryRepository())
	_, err := s.Register(RegistrationInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := s.Authenticate("alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Authenticate("alice", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Authenticate("bob", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
