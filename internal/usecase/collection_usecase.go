package usecase

import "context"

// CollectionUsecase manages the ownership relation between a user and the
// books in their collection. Both sides must already exist; a missing user or
// book fails with the corresponding not-found error.
type CollectionUsecase interface {
	// AddBook appends the book to the user's collection, rejecting duplicates,
	// and returns the updated user.
	AddBook(ctx context.Context, userID, bookID int64) (*UserOutput, error)

	// RemoveBook removes the book from the user's collection. Removing a book
	// that is not owned succeeds without effect.
	RemoveBook(ctx context.Context, userID, bookID int64) (*UserOutput, error)

	// ListBooks returns the user's collection in insertion order.
	ListBooks(ctx context.Context, userID int64) ([]*BookOutput, error)
}
