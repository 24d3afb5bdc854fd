package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Book, error)

	// FindByISBN retrieves a single book by its ISBN.
	FindByISBN(ctx context.Context, isbn string) (*entity.Book, error)

	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book entity in the storage.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes the book with the given ID.
	Delete(ctx context.Context, id int64) error

	// Search returns the books matching the filter, ordered by ID. An
	// all-unconstrained filter lists the whole catalogue.
	Search(ctx context.Context, filter BookFilter, page Pagination) ([]*entity.Book, error)
}
