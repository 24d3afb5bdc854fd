package entity

import (
	"strconv"
	"time"

	domainerrors "libris/internal/domain/errors"
)

// Book represents a catalogued book. Year and Pages are carried as strings to
// match the external wire format but are validated numerically on construction.
type Book struct {
	ID        int64  // Primary key, immutable once assigned.
	Genre     string // Optional.
	Author    string
	Image     string // Optional cover image URL.
	Title     string
	Subtitle  string
	Publisher string
	Year      string // Integer in (0, current year].
	Pages     string // Positive integer.
	ISBN      string // Natural external key for metadata lookups.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook validates all required fields and returns a new Book.
// Construction fails fast: an invalid book is never instantiated.
func NewBook(author, image, title, subtitle, publisher, year, pages, isbn, genre string) (*Book, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"author", author},
		{"title", title},
		{"subtitle", subtitle},
		{"publisher", publisher},
		{"year", year},
		{"pages", pages},
		{"isbn", isbn},
	} {
		if field.value == "" {
			return nil, domainerrors.NewEmptyFieldError(field.name)
		}
	}

	yearNum, err := strconv.Atoi(year)
	if err != nil || yearNum <= 0 || yearNum > time.Now().Year() {
		return nil, domainerrors.ErrInvalidYear
	}

	pagesNum, err := strconv.Atoi(pages)
	if err != nil || pagesNum <= 0 {
		return nil, domainerrors.ErrPagesQuantity
	}

	return &Book{
		Genre:     genre,
		Author:    author,
		Image:     image,
		Title:     title,
		Subtitle:  subtitle,
		Publisher: publisher,
		Year:      year,
		Pages:     pages,
		ISBN:      isbn,
	}, nil
}
