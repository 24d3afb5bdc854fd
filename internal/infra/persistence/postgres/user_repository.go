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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading the
// ownership edges in insertion order.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("OwnedBooks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("user_books.position")
		}).
		Preload("OwnedBooks.Book").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their unique username. This is the
// credential-store lookup used during authentication.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity. The username uniqueness constraint is
// re-checked by the store; a violation maps to the domain conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewEmptyFieldError("user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database. Only the scalar
// columns are written; ownership edges are managed by the collection
// repository.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"username":      userM.Username,
			"name":          userM.Name,
			"birthdate":     userM.Birthdate,
			"password_hash": userM.PasswordHash,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user with the given ID along with their ownership edges.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&model.OwnershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ownership edges")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Search returns the users matching the composed filter, ordered by ID.
func (repo *userRepository) Search(ctx context.Context, filter repository.UserFilter, page repository.Pagination) ([]*entity.User, error) {
	var userModels []model.UserModel

	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})
	tx = applyUserFilter(tx, filter)
	tx = applyPagination(tx, page)

	if err := tx.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	books := make([]*entity.Book, 0, len(data.OwnedBooks))
	for _, edge := range data.OwnedBooks {
		if edge.Book != nil {
			books = append(books, toBookDomain(edge.Book))
		}
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		Birthdate:    data.Birthdate,
		PasswordHash: data.PasswordHash,
		Books:        books,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for
// persistence. Ownership edges are intentionally excluded: they are only
// written through the collection repository.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		Birthdate:    data.Birthdate,
		PasswordHash: data.PasswordHash,
	}
}
