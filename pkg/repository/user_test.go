package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/mealscope/pkg/domain"
)

func TestUserRepository_CreateUserDuplicates(t *testing.T) {
	repos := setupTestRepos(t)

	user := &domain.User{Email: "alice@example.com", Username: "alice"}
	require.NoError(t, repos.User.CreateUser(context.Background(), user, "secret123"))

	t.Run("duplicate username", func(t *testing.T) {
		dup := &domain.User{Email: "other@example.com", Username: "alice"}
		err := repos.User.CreateUser(context.Background(), dup, "secret123")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := &domain.User{Email: "alice@example.com", Username: "other"}
		err := repos.User.CreateUser(context.Background(), dup, "secret123")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUserRepository_Authenticate(t *testing.T) {
	repos := setupTestRepos(t)

	user := &domain.User{Email: "alice@example.com", Username: "alice"}
	require.NoError(t, repos.User.CreateUser(context.Background(), user, "secret123"))

	t.Run("valid credentials", func(t *testing.T) {
		got, err := repos.User.Authenticate(context.Background(), "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := repos.User.Authenticate(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := repos.User.Authenticate(context.Background(), "nobody", "secret123")
		assert.ErrorIs(t, err, ErrAuthFailed, "same error as wrong password, no account enumeration")
	})
}

func TestUserRepository_GetUserNotFound(t *testing.T) {
	repos := setupTestRepos(t)

	_, err := repos.User.GetUser(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	repos := setupTestRepos(t)

	user := &domain.User{Email: "alice@example.com", Username: "alice"}
	require.NoError(t, repos.User.CreateUser(context.Background(), user, "secret123"))

	t.Run("update profile and preferences", func(t *testing.T) {
		user.Email = "alice@new.example.com"
		user.ImageURL = "https://img.example.com/alice.png"
		user.Preferences = domain.Preferences{
			Diets:              []string{"Vegan", "Gluten Free"},
			Cuisines:           []string{"Thai"},
			Intolerances:       []string{"Peanut"},
			ExcludeIngredients: "cilantro",
		}
		require.NoError(t, repos.User.UpdateUser(context.Background(), user))

		got, err := repos.User.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@new.example.com", got.Email)
		assert.Equal(t, "https://img.example.com/alice.png", got.ImageURL)
		assert.Equal(t, []string{"Vegan", "Gluten Free"}, got.Preferences.Diets)
		assert.Equal(t, []string{"Thai"}, got.Preferences.Cuisines)
		assert.Equal(t, []string{"Peanut"}, got.Preferences.Intolerances)
		assert.Equal(t, "cilantro", got.Preferences.ExcludeIngredients)
	})

	t.Run("clearing preferences", func(t *testing.T) {
		user.Preferences = domain.Preferences{}
		require.NoError(t, repos.User.UpdateUser(context.Background(), user))

		got, err := repos.User.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.True(t, got.Preferences.Empty())
	})

	t.Run("username collision", func(t *testing.T) {
		other := &domain.User{Email: "bob@example.com", Username: "bob"}
		require.NoError(t, repos.User.CreateUser(context.Background(), other, "secret123"))

		other.Username = "alice"
		err := repos.User.UpdateUser(context.Background(), other)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing user", func(t *testing.T) {
		ghost := &domain.User{ID: 9999, Email: "g@example.com", Username: "ghost"}
		err := repos.User.UpdateUser(context.Background(), ghost)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
