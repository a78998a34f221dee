package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/mealscope/pkg/domain"
)

// RecipeRepository handles recipe-related database operations
type RecipeRepository struct {
	db *sqlx.DB
}

// recipeSQL represents a recipe for SQL operations
type recipeSQL struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Image string `db:"image"`
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(database *sqlx.DB) *RecipeRepository {
	return &RecipeRepository{db: database}
}

// UpsertRecipe inserts a recipe summary if it is not persisted yet. Recipe
// summaries are immutable once fetched, an existing row is left untouched.
func (r *RecipeRepository) UpsertRecipe(ctx context.Context, recipe domain.RecipeSummary) error {
	query := `INSERT INTO recipes (id, title, image) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, recipe.ID, recipe.Title, recipe.Image); err != nil {
		return fmt.Errorf("upsert recipe: %w", err)
	}
	return nil
}

// GetRecipe retrieves a persisted recipe summary, ErrNotFound if absent
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (domain.RecipeSummary, error) {
	var sqlRecipe recipeSQL
	err := r.db.GetContext(ctx, &sqlRecipe, "SELECT * FROM recipes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RecipeSummary{}, ErrNotFound
	}
	if err != nil {
		return domain.RecipeSummary{}, fmt.Errorf("get recipe: %w", err)
	}
	return domain.RecipeSummary{ID: sqlRecipe.ID, Title: sqlRecipe.Title, Image: sqlRecipe.Image}, nil
}
