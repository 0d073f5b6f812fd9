package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindByEmail when no record matches.
var ErrNotFound = errors.New("users: not found")

// ErrDuplicateEmail is returned by Insert when the unique email index
// rejects the write.
var ErrDuplicateEmail = errors.New("users: duplicate email")

// Repository reads and writes user records. It is the only component with
// access to the backing collection.
type Repository interface {
	// FindByEmail returns the record whose email matches exactly
	// (case-sensitive), or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert writes a new record and returns it with its assigned ID.
	// Returns ErrDuplicateEmail if a record with the same email exists.
	Insert(ctx context.Context, user *User) (*User, error)
}
