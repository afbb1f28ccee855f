package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := createUser(t, repo, "nedmac")
	assert.NotZero(t, u.ID())

	byName, err := repo.GetByUsername(ctx, "nedmac")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID(), byName.ID())
	assert.Equal(t, u.PasswordHash(), byName.PasswordHash())

	byID, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "nedmac", byID.Username())
}

func TestUserRepository_NotFoundReturnsNil(t *testing.T) {
	repo := newTestUserRepository(setupTestDB(t))
	ctx := context.Background()

	u, err := repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetByID(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := newTestUserRepository(setupTestDB(t))
	createUser(t, repo, "alice")

	dup, err := user.NewUser("alice", "$2a$04$other")
	require.NoError(t, err)

	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
	assert.Zero(t, dup.ID())
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := newTestUserRepository(setupTestDB(t))
	ctx := context.Background()
	createUser(t, repo, "alice")

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, exists)

	// a differently cased name is a distinct account
	other := createUser(t, repo, "Alice")
	assert.NotZero(t, other.ID())
}
