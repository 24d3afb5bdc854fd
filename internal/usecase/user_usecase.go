package usecase

import (
	"context"
	"time"

	"libris/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new user.
type CreateUserInput struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	Password  string    `json:"password"`
}

// UpdateUserInput defines the data accepted when updating a user. The ID must
// match the addressed resource; the stored password is never touched here.
type UpdateUserInput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
}

// SearchUsersInput carries the optional filters for the user search: an exact
// birthdate plus case-insensitive substring matches on name and username.
// Empty or absent values constrain nothing.
type SearchUsersInput struct {
	Birthdate *time.Time
	Name      string
	Username  string
}

// SearchUsersByBirthdateRangeInput carries the optional birthdate range (each
// bound independently optional) and a name substring filter.
type SearchUsersByBirthdateRangeInput struct {
	From *time.Time
	To   *time.Time
	Name string
}

// --- Output DTOs ---

// UserOutput is the outward representation of a user. It never carries the
// password hash.
type UserOutput struct {
	ID        int64        `json:"id"`
	Username  string       `json:"username"`
	Name      string       `json:"name"`
	Birthdate time.Time    `json:"birthdate"`
	Books     []BookOutput `json:"books"`
}

// NewUserOutput maps a domain user to its outward representation.
func NewUserOutput(user *entity.User) *UserOutput {
	books := make([]BookOutput, 0, len(user.Books))
	for _, b := range user.Books {
		books = append(books, *NewBookOutput(b))
	}

	return &UserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Birthdate: user.Birthdate,
		Books:     books,
	}
}

// UserUsecase defines the user-facing CRUD and search operations.
type UserUsecase interface {
	GetUser(ctx context.Context, id int64) (*UserOutput, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*UserOutput, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*UserOutput, error)
	DeleteUser(ctx context.Context, id int64) error
	SearchUsers(ctx context.Context, input SearchUsersInput, page Page) ([]*UserOutput, error)
	SearchUsersByBirthdateRange(ctx context.Context, input SearchUsersByBirthdateRangeInput, page Page) ([]*UserOutput, error)
}
