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

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByISBN retrieves the first book with the given ISBN.
func (repo *bookRepository) FindByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("isbn = ?", isbn).
		Order("id").
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by isbn")
	}

	return toBookDomain(&bookM), nil
}

// Create persists a new book entity.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewEmptyFieldError("book")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update modifies an existing book entity in the database.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", bookM.ID).
		Updates(map[string]any{
			"genre":     bookM.Genre,
			"author":    bookM.Author,
			"image":     bookM.Image,
			"title":     bookM.Title,
			"subtitle":  bookM.Subtitle,
			"publisher": bookM.Publisher,
			"year":      bookM.Year,
			"pages":     bookM.Pages,
			"isbn":      bookM.ISBN,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes the book with the given ID along with any ownership edges
// pointing at it.
func (repo *bookRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("book_id = ?", id).
		Delete(&model.OwnershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ownership edges")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Search returns the books matching the composed filter, ordered by ID. With
// every field unconstrained this lists the whole catalogue page by page.
func (repo *bookRepository) Search(ctx context.Context, filter repository.BookFilter, page repository.Pagination) ([]*entity.Book, error) {
	var bookModels []model.BookModel

	tx := repo.db.WithContext(ctx).Model(&model.BookModel{})
	tx = applyBookFilter(tx, filter)
	tx = applyPagination(tx, page)

	if err := tx.Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for i := range bookModels {
		books = append(books, toBookDomain(&bookModels[i]))
	}

	return books, nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:        data.ID,
		Genre:     data.Genre,
		Author:    data.Author,
		Image:     data.Image,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Publisher: data.Publisher,
		Year:      data.Year,
		Pages:     data.Pages,
		ISBN:      data.ISBN,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:        data.ID,
		Genre:     data.Genre,
		Author:    data.Author,
		Image:     data.Image,
		Title:     data.Title,
		Subtitle:  data.Subtitle,
		Publisher: data.Publisher,
		Year:      data.Year,
		Pages:     data.Pages,
		ISBN:      data.ISBN,
	}
}
