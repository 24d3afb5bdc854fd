// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	domainerrors "libris/internal/domain/errors"
)

// User represents a reader account that owns a collection of books.
// PasswordHash is the only stored form of the credential and must never be
// serialized outward.
type User struct {
	ID           int64     // Primary key, immutable once assigned.
	Username     string    // Unique login name.
	Name         string    // Display name.
	Birthdate    time.Time // Must be strictly before "now" at construction time.
	PasswordHash string    // bcrypt hash of the password, set by the application layer.
	Books        []*Book   // Owned books in insertion order. Managed through the collection usecase.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates the required fields and returns a new User.
// The password hash is attached separately by the caller, keeping hashing
// concerns out of the entity.
func NewUser(username, name string, birthdate time.Time) (*User, error) {
	if username == "" {
		return nil, domainerrors.NewEmptyFieldError("username")
	}
	if name == "" {
		return nil, domainerrors.NewEmptyFieldError("name")
	}
	if birthdate.IsZero() {
		return nil, domainerrors.NewEmptyFieldError("birthdate")
	}
	if !birthdate.Before(time.Now()) {
		return nil, domainerrors.ErrFutureBirthdate
	}

	return &User{
		Username:  username,
		Name:      name,
		Birthdate: birthdate,
	}, nil
}

// OwnsBook reports whether the user's collection already contains the book.
func (u *User) OwnsBook(bookID int64) bool {
	for _, b := range u.Books {
		if b.ID == bookID {
			return true
		}
	}

	return false
}
