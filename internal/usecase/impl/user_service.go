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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser retrieves a user with their owned books.
func (srv *userService) GetUser(ctx context.Context, id int64) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return usecase.NewUserOutput(user), nil
}

// CreateUser validates the input, hashes the password and persists the new
// user. The entity factory rejects invalid fields before anything is stored.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.UserOutput, error) {
	user, err := entity.NewUser(input.Username, input.Name, input.Birthdate)
	if err != nil {
		return nil, err
	}

	if input.Password == "" {
		return nil, domainerrors.NewEmptyFieldError("password")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID), slog.String("username", user.Username))

	return usecase.NewUserOutput(user), nil
}

// UpdateUser modifies an existing user's profile fields. The identifier is
// immutable: an input carrying a different ID is forbidden. The stored
// password hash is untouched here; password changes go through AuthUsecase.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for update")
	}

	if input.ID != 0 && input.ID != id {
		return nil, domainerrors.ErrCannotChangeID
	}

	// Run the same validation as construction before mutating anything.
	validated, err := entity.NewUser(input.Username, input.Name, input.Birthdate)
	if err != nil {
		return nil, err
	}

	user.Username = validated.Username
	user.Name = validated.Name
	user.Birthdate = validated.Birthdate

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(user), nil
}

// DeleteUser removes the user if it exists.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	err := srv.userRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return nil
}

// SearchUsers resolves the exact-birthdate plus substring filters and runs the
// search. All-empty input lists every user.
func (srv *userService) SearchUsers(ctx context.Context, input usecase.SearchUsersInput, page usecase.Page) ([]*usecase.UserOutput, error) {
	filter := repository.UserFilter{
		Username:  repository.Contains(input.Username),
		Name:      repository.Contains(input.Name),
		Birthdate: repository.OnDate(input.Birthdate),
	}

	return srv.search(ctx, filter, page)
}

// SearchUsersByBirthdateRange resolves the birthdate range plus name substring
// filter and runs the search. Each range bound is independently optional.
func (srv *userService) SearchUsersByBirthdateRange(ctx context.Context, input usecase.SearchUsersByBirthdateRangeInput, page usecase.Page) ([]*usecase.UserOutput, error) {
	filter := repository.UserFilter{
		Name:      repository.Contains(input.Name),
		Birthdate: repository.Between(input.From, input.To),
	}

	return srv.search(ctx, filter, page)
}

func (srv *userService) search(ctx context.Context, filter repository.UserFilter, page usecase.Page) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.Search(ctx, filter, toPagination(page))
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}

// toPagination maps the usecase paging input onto the repository contract.
func toPagination(page usecase.Page) repository.Pagination {
	return repository.Pagination{Page: page.Page, Limit: page.Limit}
}
