// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/domain/service"
	"libris/internal/usecase"

	"github.com/pkg/errors"
)

// dummyPasswordHash is a well-formed bcrypt hash that is verified against when
// the username is unknown, so the unknown-user and wrong-password paths both
// cost one bcrypt comparison.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface. It is stateless: every
// call reads current credentials from the store.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the username/password pair against the credential
// store. Unknown usernames and wrong passwords fail with the identical error
// value so the response never reveals whether the username exists.
func (srv *authService) Authenticate(ctx context.Context, username, password string) (*entity.Principal, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Burn a comparison anyway to keep both failure paths the same cost.
		srv.hasher.Check(password, dummyPasswordHash)
		srv.log(ctx).Debug("Authentication failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credentials")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Debug("Authentication failed", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return &entity.Principal{Username: user.Username}, nil
}

// ChangePassword validates and applies a password change for the identified
// user. The sequence short-circuits on the first failure: unknown user,
// missing fields, wrong old password, then equal old/new passwords.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for password change")
	}

	if input.OldPassword == "" || input.NewPassword == "" {
		return nil, domainerrors.ErrMissingPasswordFields
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidPassword
	}

	// Compared in plaintext before hashing: two equal inputs would still
	// produce different bcrypt hashes.
	if input.OldPassword == input.NewPassword {
		return nil, domainerrors.ErrSamePassword
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist password change")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}
