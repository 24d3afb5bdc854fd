package postgres

import (
	"context"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository
// interface: one row in user_books per ownership edge.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// AddOwnership appends a new edge at the next position. The composite unique
// index on (user_id, book_id) re-checks the no-duplicate invariant under the
// store's isolation guarantee, so a concurrent duplicate insert still fails.
func (repo *collectionRepository) AddOwnership(ctx context.Context, userID, bookID int64) error {
	var nextPosition int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OwnershipModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(position), 0) + 1").
		Scan(&nextPosition).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to compute edge position")
	}

	edge := &model.OwnershipModel{
		UserID:   userID,
		BookID:   bookID,
		Position: nextPosition,
	}

	if err := repo.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBookAlreadyOwned
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ownership edge")
	}

	return nil
}

// RemoveOwnership deletes the edge if present. Zero affected rows is a
// success: removal is idempotent.
func (repo *collectionRepository) RemoveOwnership(ctx context.Context, userID, bookID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&model.OwnershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove ownership edge")
	}

	return nil
}

// ListOwned returns the user's books in edge insertion order. The slice is
// built fresh per call, so callers cannot reach the stored collection through
// it.
func (repo *collectionRepository) ListOwned(ctx context.Context, userID int64) ([]*entity.Book, error) {
	var edges []model.OwnershipModel

	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("position").
		Find(&edges).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owned books")
	}

	books := make([]*entity.Book, 0, len(edges))
	for _, edge := range edges {
		if edge.Book != nil {
			books = append(books, toBookDomain(edge.Book))
		}
	}

	return books, nil
}
