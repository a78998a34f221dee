package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/mealscope/pkg/domain"
)

// setupTestRepos creates repositories backed by an in-memory database
func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
		BcryptCost:      4, // min cost, keeps tests fast
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })

	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)

	require.NoError(t, repos.Ping(context.Background()))

	t.Run("user lifecycle", func(t *testing.T) {
		user := &domain.User{
			Email:    "alice@example.com",
			Username: "alice",
			Preferences: domain.Preferences{
				Diets:              []string{"Vegan"},
				ExcludeIngredients: "egg, cheese",
			},
		}
		require.NoError(t, repos.User.CreateUser(context.Background(), user, "secret123"))
		assert.NotZero(t, user.ID)

		got, err := repos.User.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, []string{"Vegan"}, got.Preferences.Diets)
		assert.Equal(t, "egg, cheese", got.Preferences.ExcludeIngredients)
		assert.Equal(t, domain.DefaultUserImage, got.ImageURL)
	})

	t.Run("favorite lifecycle", func(t *testing.T) {
		user := &domain.User{Email: "bob@example.com", Username: "bob"}
		require.NoError(t, repos.User.CreateUser(context.Background(), user, "secret123"))

		recipe := domain.RecipeSummary{ID: 101, Title: "Vegan Pad Thai", Image: "https://img.example.com/101.jpg"}
		require.NoError(t, repos.Favorite.AddFavorite(context.Background(), user.ID, recipe))

		favorites, err := repos.Favorite.ListFavorites(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, recipe, favorites[0])
	})
}
