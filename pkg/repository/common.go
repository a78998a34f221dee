package repository

import (
	"errors"
	"strings"
)

// ErrNotFound indicates the requested row does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists indicates a unique constraint rejected the write,
// e.g. a taken username or email
var ErrAlreadyExists = errors.New("already exists")

// ErrAuthFailed indicates unknown username or wrong password, deliberately
// not distinguishing the two
var ErrAuthFailed = errors.New("authentication failed")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueViolation checks if an error is a SQLite unique constraint failure
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "SQLITE_CONSTRAINT_UNIQUE")
}
