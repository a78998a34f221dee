package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/mealscope/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db         *sqlx.DB
	bcryptCost int
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID                 int64     `db:"id"`
	Email              string    `db:"email"`
	Username           string    `db:"username"`
	PasswordHash       string    `db:"password_hash"`
	ImageURL           string    `db:"image_url"`
	Diet               string    `db:"diet"`
	Intolerances       string    `db:"intolerances"`
	Cuisine            string    `db:"cuisine"`
	ExcludeIngredients string    `db:"exclude_ingredients"`
	CreatedAt          time.Time `db:"created_at"`
}

// NewUserRepository creates a new user repository. Zero cost uses the
// bcrypt default.
func NewUserRepository(database *sqlx.DB, bcryptCost int) *UserRepository {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserRepository{db: database, bcryptCost: bcryptCost}
}

// CreateUser registers a new user with a hashed password. Returns
// ErrAlreadyExists if the username or email is taken.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	imageURL := user.ImageURL
	if imageURL == "" {
		imageURL = domain.DefaultUserImage
	}

	sqlUser := &userSQL{
		Email:              user.Email,
		Username:           user.Username,
		PasswordHash:       string(hash),
		ImageURL:           imageURL,
		Diet:               domain.EncodeSet(user.Preferences.Diets),
		Intolerances:       domain.EncodeSet(user.Preferences.Intolerances),
		Cuisine:            domain.EncodeSet(user.Preferences.Cuisines),
		ExcludeIngredients: user.Preferences.ExcludeIngredients,
	}

	query := `
		INSERT INTO users (email, username, password_hash, image_url, diet, intolerances, cuisine, exclude_ingredients)
		VALUES (:email, :username, :password_hash, :image_url, :diet, :intolerances, :cuisine, :exclude_ingredients)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlUser)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	user.ID = id
	user.ImageURL = imageURL
	user.PasswordHash = string(hash)
	return nil
}

// Authenticate finds a user by username and verifies the password. Returns
// ErrAuthFailed for unknown username and wrong password alike, so callers
// can't enumerate accounts.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAuthFailed
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(sqlUser.PasswordHash), []byte(password)) != nil {
		return nil, ErrAuthFailed
	}
	return r.toDomainUser(&sqlUser), nil
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return r.toDomainUser(&sqlUser), nil
}

// UpdateUser updates profile fields and preferences in one write. Returns
// ErrAlreadyExists if the new username or email collides with another user.
func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = ?, username = ?, image_url = ?,
		    diet = ?, intolerances = ?, cuisine = ?, exclude_ingredients = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Email, user.Username, user.ImageURL,
		domain.EncodeSet(user.Preferences.Diets),
		domain.EncodeSet(user.Preferences.Intolerances),
		domain.EncodeSet(user.Preferences.Cuisines),
		user.Preferences.ExcludeIngredients,
		user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// toDomainUser converts userSQL to domain.User
func (r *UserRepository) toDomainUser(sqlUser *userSQL) *domain.User {
	return &domain.User{
		ID:           sqlUser.ID,
		Email:        sqlUser.Email,
		Username:     sqlUser.Username,
		PasswordHash: sqlUser.PasswordHash,
		ImageURL:     sqlUser.ImageURL,
		Preferences: domain.Preferences{
			Diets:              domain.DecodeSet(sqlUser.Diet),
			Intolerances:       domain.DecodeSet(sqlUser.Intolerances),
			Cuisines:           domain.DecodeSet(sqlUser.Cuisine),
			ExcludeIngredients: sqlUser.ExcludeIngredients,
		},
		CreatedAt: sqlUser.CreatedAt,
	}
}
