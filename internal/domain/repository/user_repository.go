// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence. It also
// serves as the credential store: FindByUsername resolves the record whose
// password hash is verified during authentication.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the owned
	// books in insertion order.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error

	// Search returns the users matching the filter, ordered by ID.
	Search(ctx context.Context, filter UserFilter, page Pagination) ([]*entity.User, error)
}
