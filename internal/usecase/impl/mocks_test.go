package impl

import (
	"context"

	"libris/internal/domain/entity"
	"libris/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) Search(ctx context.Context, filter repository.UserFilter, page repository.Pagination) ([]*entity.User, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *mockBookRepository) FindByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *mockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookRepository) Update(ctx context.Context, book *entity.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookRepository) Search(ctx context.Context, filter repository.BookFilter, page repository.Pagination) ([]*entity.Book, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Book), args.Error(1)
}

type mockCollectionRepository struct {
	mock.Mock
}

func (m *mockCollectionRepository) AddOwnership(ctx context.Context, userID, bookID int64) error {
	return m.Called(ctx, userID, bookID).Error(0)
}

func (m *mockCollectionRepository) RemoveOwnership(ctx context.Context, userID, bookID int64) error {
	return m.Called(ctx, userID, bookID).Error(0)
}

func (m *mockCollectionRepository) ListOwned(ctx context.Context, userID int64) ([]*entity.Book, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Book), args.Error(1)
}

// mockTransactionManager runs the unit of work directly against the supplied
// repositories, standing in for a real database transaction.
type mockTransactionManager struct {
	userRepo       repository.UserRepository
	bookRepo       repository.BookRepository
	collectionRepo repository.CollectionRepository
}

func (m *mockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *mockTransactionManager) UserRepo() repository.UserRepository { return m.userRepo }

func (m *mockTransactionManager) BookRepo() repository.BookRepository { return m.bookRepo }

func (m *mockTransactionManager) CollectionRepo() repository.CollectionRepository {
	return m.collectionRepo
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockBookMetadataService struct {
	mock.Mock
}

func (m *mockBookMetadataService) Lookup(ctx context.Context, isbn string) (*entity.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Book), args.Error(1)
}
