package impl

import (
	"context"
	"log/slog"

	deliverycontext "libris/internal/delivery/context"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/pkg/errors"
)

// collectionService implements the CollectionUsecase interface. Mutations run
// inside a transaction so the edge write and the re-read of the collection
// observe the same state.
type collectionService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService. It receives all dependencies as interfaces.
func NewCollectionService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository,
	logger *slog.Logger,
) usecase.CollectionUsecase {
	return &collectionService{
		txManager:      txManager,
		userRepo:       userRepo,
		collectionRepo: collectionRepo,
		logger:         logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook appends the book to the user's collection. Both sides must exist and
// the pair must not already be linked.
func (srv *collectionService) AddBook(ctx context.Context, userID, bookID int64) (*usecase.UserOutput, error) {
	var output *usecase.UserOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		if _, err := repoFactory.BookRepo().FindByID(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to load book")
		}

		if err := repoFactory.CollectionRepo().AddOwnership(ctx, userID, bookID); err != nil {
			if errors.Is(err, repository.ErrBookAlreadyOwned) {
				return domainerrors.ErrBookAlreadyOwned
			}

			return err
		}

		books, err := repoFactory.CollectionRepo().ListOwned(ctx, userID)
		if err != nil {
			return err
		}

		user.Books = books
		output = usecase.NewUserOutput(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book added to collection",
		slog.Int64("userID", userID), slog.Int64("bookID", bookID))

	return output, nil
}

// RemoveBook removes the book from the user's collection. Removing a book the
// user does not own succeeds without effect.
func (srv *collectionService) RemoveBook(ctx context.Context, userID, bookID int64) (*usecase.UserOutput, error) {
	var output *usecase.UserOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		if _, err := repoFactory.BookRepo().FindByID(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to load book")
		}

		if err := repoFactory.CollectionRepo().RemoveOwnership(ctx, userID, bookID); err != nil {
			return err
		}

		books, err := repoFactory.CollectionRepo().ListOwned(ctx, userID)
		if err != nil {
			return err
		}

		user.Books = books
		output = usecase.NewUserOutput(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book removed from collection",
		slog.Int64("userID", userID), slog.Int64("bookID", bookID))

	return output, nil
}

// ListBooks returns the user's collection in insertion order. Reads do not
// need the transaction manager.
func (srv *collectionService) ListBooks(ctx context.Context, userID int64) ([]*usecase.BookOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	books, err := srv.collectionRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.BookOutput, 0, len(books))
	for _, book := range books {
		outputs = append(outputs, usecase.NewBookOutput(book))
	}

	return outputs, nil
}
