package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/mealscope/pkg/domain"
)

// FavoriteRepository handles the favorites ledger. A favorite is a
// (user, recipe) link, recipe summaries are shared rows that survive
// unfavoriting.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(database *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: database}
}

// AddFavorite persists the recipe summary (if absent) and the favorite link
// in one transaction. Favoriting twice is idempotent, the unique index on
// (user_id, recipe_id) makes the second insert a no-op.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, userID int64, recipe domain.RecipeSummary) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO recipes (id, title, image) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING",
			recipe.ID, recipe.Title, recipe.Image); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("persist recipe: %w", err)}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO favorites (recipe_id, user_id) VALUES (?, ?) ON CONFLICT(user_id, recipe_id) DO NOTHING",
			recipe.ID, userID); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert favorite: %w", err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit favorite: %w", err)}
		}
		return nil
	})
}

// RemoveFavorite drops the link for one user. The recipe row stays, other
// users may still have it favorited.
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?", userID, recipeID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns a user's favorite recipes in insertion order
func (r *FavoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]domain.RecipeSummary, error) {
	query := `
		SELECT r.id, r.title, r.image
		FROM favorites f
		JOIN recipes r ON r.id = f.recipe_id
		WHERE f.user_id = ?
		ORDER BY f.id
	`
	var sqlRecipes []recipeSQL
	if err := r.db.SelectContext(ctx, &sqlRecipes, query, userID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	recipes := make([]domain.RecipeSummary, len(sqlRecipes))
	for i, sr := range sqlRecipes {
		recipes[i] = domain.RecipeSummary{ID: sr.ID, Title: sr.Title, Image: sr.Image}
	}
	return recipes, nil
}

// FavoriteIDs returns the set of recipe ids a user has favorited, used to
// mark already-favorited recipes alongside search results
func (r *FavoriteRepository) FavoriteIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, "SELECT recipe_id FROM favorites WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("get favorite ids: %w", err)
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
