package domain

import "time"

// User represents a registered account
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	ImageURL     string
	Preferences  Preferences
	CreatedAt    time.Time
}

// DefaultUserImage is used when a user has not set an avatar
const DefaultUserImage = "/static/user.png"
