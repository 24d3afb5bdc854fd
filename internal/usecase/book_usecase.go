package usecase

import (
	"context"

	"libris/internal/domain/entity"
)

// Page is the paging input shared by the list and search operations.
type Page struct {
	Page  int
	Limit int
}

// --- Input DTOs ---

// BookInput defines the data accepted when creating or updating a book. Year
// and Pages travel as strings and are validated numerically by the entity
// factory.
type BookInput struct {
	ID        int64  `json:"id"`
	Genre     string `json:"genre"`
	Author    string `json:"author"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Pages     string `json:"pages"`
	ISBN      string `json:"isbn"`
}

// SearchBooksInput carries the exact-match triple filter. Empty values
// constrain nothing.
type SearchBooksInput struct {
	Publisher string
	Genre     string
	Year      string
}

// SearchBooksByFieldsInput carries the multi-field filter. Text fields match
// by case-insensitive substring; Year and Pages stay exact. Empty values
// constrain nothing.
type SearchBooksByFieldsInput struct {
	Genre     string
	Author    string
	Image     string
	Title     string
	Subtitle  string
	Publisher string
	Year      string
	Pages     string
	ISBN      string
}

// --- Output DTOs ---

// BookOutput is the outward representation of a book.
type BookOutput struct {
	ID        int64  `json:"id"`
	Genre     string `json:"genre,omitempty"`
	Author    string `json:"author"`
	Image     string `json:"image,omitempty"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Pages     string `json:"pages"`
	ISBN      string `json:"isbn"`
}

// NewBookOutput maps a domain book to its outward representation.
func NewBookOutput(book *entity.Book) *BookOutput {
	return &BookOutput{
		ID:        book.ID,
		Genre:     book.Genre,
		Author:    book.Author,
		Image:     book.Image,
		Title:     book.Title,
		Subtitle:  book.Subtitle,
		Publisher: book.Publisher,
		Year:      book.Year,
		Pages:     book.Pages,
		ISBN:      book.ISBN,
	}
}

// FindByISBNOutput reports the resolved book and whether it was imported from
// the external catalogue on this call.
type FindByISBNOutput struct {
	Book    *BookOutput
	Created bool
}

// BookUsecase defines the catalogue-facing CRUD and search operations.
type BookUsecase interface {
	GetBook(ctx context.Context, id int64) (*BookOutput, error)
	CreateBook(ctx context.Context, input BookInput) (*BookOutput, error)
	UpdateBook(ctx context.Context, id int64, input BookInput) (*BookOutput, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, page Page) ([]*BookOutput, error)
	SearchBooks(ctx context.Context, input SearchBooksInput, page Page) ([]*BookOutput, error)
	SearchBooksByFields(ctx context.Context, input SearchBooksByFieldsInput, page Page) ([]*BookOutput, error)

	// FindByISBN resolves a book by ISBN, consulting the external catalogue on
	// a local miss. Every external failure surfaces as a plain not-found.
	FindByISBN(ctx context.Context, isbn string) (*FindByISBNOutput, error)
}
