package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser() *entity.User {
	return &entity.User{
		ID:           1,
		Username:     "reader",
		Name:         "Avid Reader",
		Birthdate:    time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$2a$10$storedhash",
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("returns the principal on valid credentials", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		user := testUser()
		userRepo.On("FindByUsername", mock.Anything, "reader").Return(user, nil)
		hasher.On("Check", "secret", user.PasswordHash).Return(true)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		principal, err := svc.Authenticate(context.Background(), "reader", "secret")

		require.NoError(t, err)
		assert.Equal(t, "reader", principal.Username)
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("fails with invalid credentials when the password is wrong", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		user := testUser()
		userRepo.On("FindByUsername", mock.Anything, "reader").Return(user, nil)
		hasher.On("Check", "wrong", user.PasswordHash).Return(false)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		principal, err := svc.Authenticate(context.Background(), "reader", "wrong")

		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("fails with the same error when the username is unknown", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)
		// The dummy comparison still runs so both failure paths cost the same.
		hasher.On("Check", "whatever", dummyPasswordHash).Return(false)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		principal, err := svc.Authenticate(context.Background(), "ghost", "whatever")

		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		hasher.AssertExpectations(t)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		userRepo.On("FindByUsername", mock.Anything, "reader").Return(nil, errors.New("connection refused"))

		svc := NewAuthService(userRepo, hasher, discardLogger())
		_, err := svc.Authenticate(context.Background(), "reader", "secret")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Parallel()

	input := func() usecase.ChangePasswordInput {
		return usecase.ChangePasswordInput{UserID: 1, OldPassword: "old-pass", NewPassword: "new-pass"}
	}

	t.Run("hashes and persists the new password", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		user := testUser()
		userRepo.On("FindByID", mock.Anything, int64(1)).Return(user, nil)
		hasher.On("Check", "old-pass", "$2a$10$storedhash").Return(true)
		hasher.On("Hash", "new-pass").Return("$2a$10$newhash", nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash == "$2a$10$newhash"
		})).Return(nil)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		output, err := svc.ChangePassword(context.Background(), input())

		require.NoError(t, err)
		assert.Equal(t, int64(1), output.ID)
		assert.Equal(t, "reader", output.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("fails when the user does not exist", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		userRepo.On("FindByID", mock.Anything, int64(1)).Return(nil, repository.ErrUserNotFound)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		_, err := svc.ChangePassword(context.Background(), input())

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("fails when either password field is empty", func(t *testing.T) {
		t.Parallel()

		for _, in := range []usecase.ChangePasswordInput{
			{UserID: 1, OldPassword: "", NewPassword: "new-pass"},
			{UserID: 1, OldPassword: "old-pass", NewPassword: ""},
			{UserID: 1},
		} {
			userRepo := new(mockUserRepository)
			hasher := new(mockPasswordHasher)
			userRepo.On("FindByID", mock.Anything, int64(1)).Return(testUser(), nil)

			svc := NewAuthService(userRepo, hasher, discardLogger())
			_, err := svc.ChangePassword(context.Background(), in)

			assert.ErrorIs(t, err, domainerrors.ErrMissingPasswordFields)
			hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
		}
	})

	t.Run("fails when the old password does not match", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		userRepo.On("FindByID", mock.Anything, int64(1)).Return(testUser(), nil)
		hasher.On("Check", "old-pass", "$2a$10$storedhash").Return(false)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		_, err := svc.ChangePassword(context.Background(), input())

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("fails when the new password equals the old one", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		userRepo.On("FindByID", mock.Anything, int64(1)).Return(testUser(), nil)
		hasher.On("Check", "same-pass", "$2a$10$storedhash").Return(true)

		svc := NewAuthService(userRepo, hasher, discardLogger())
		_, err := svc.ChangePassword(context.Background(), usecase.ChangePasswordInput{
			UserID:      1,
			OldPassword: "same-pass",
			NewPassword: "same-pass",
		})

		assert.ErrorIs(t, err, domainerrors.ErrSamePassword)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
