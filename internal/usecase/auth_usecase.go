// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"libris/internal/domain/entity"
)

// ChangePasswordInput defines the data required to change a user's password.
type ChangePasswordInput struct {
	UserID      int64
	OldPassword string `json:"old_password"`
	NewPassword string `json:"password"`
}

// AuthUsecase verifies credentials and applies password changes.
// This is the contract that the delivery layer (e.g., basic-auth middleware) depends on.
type AuthUsecase interface {
	// Authenticate verifies a username/password pair and returns the
	// authenticated principal. Unknown usernames and wrong passwords fail with
	// the same error.
	Authenticate(ctx context.Context, username, password string) (*entity.Principal, error)

	// ChangePassword validates and applies a password change for the
	// identified user, returning the updated user without credential data.
	ChangePassword(ctx context.Context, input ChangePasswordInput) (*UserOutput, error)
}
