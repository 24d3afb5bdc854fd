package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrBookAlreadyOwned is returned when an ownership edge for the (user, book)
// pair already exists.
var ErrBookAlreadyOwned = errors.New("book already owned")

// CollectionRepository manages the ownership edges between users and books.
// The edge set is the single source of truth for a user's collection: no
// mutable book list is ever handed out.
type CollectionRepository interface {
	// AddOwnership appends a new edge, preserving insertion order. A duplicate
	// (user, book) pair fails with ErrBookAlreadyOwned.
	AddOwnership(ctx context.Context, userID, bookID int64) error

	// RemoveOwnership deletes the edge if present. Removing an absent edge is
	// a no-op success. Only the edge is removed; the book itself survives.
	RemoveOwnership(ctx context.Context, userID, bookID int64) error

	// ListOwned returns the user's books in insertion order. The returned
	// slice is freshly built per call; mutating it does not affect storage.
	ListOwned(ctx context.Context, userID int64) ([]*entity.Book, error)
}
