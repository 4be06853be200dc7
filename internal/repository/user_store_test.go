package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/models"
)

func TestUserStore(t *testing.T) {
	store := NewUserStore()

	u, err := store.CreateUser("ana", "Ana@Example.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = store.CreateUser("other", "ana@example.com ", "hash")
	assert.ErrorIs(t, err, models.ErrUserExists)

	byID, err := store.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.Username)

	byEmail, err := store.GetUserByEmail("ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = store.GetUser("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = store.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
