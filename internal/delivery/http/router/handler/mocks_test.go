package handler

import (
	"context"

	"libris/internal/domain/entity"
	"libris/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) GetUser(ctx context.Context, id int64) (*usecase.UserOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

func (m *mockUserUsecase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.UserOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

func (m *mockUserUsecase) UpdateUser(ctx context.Context, id int64, input usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

func (m *mockUserUsecase) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserUsecase) SearchUsers(ctx context.Context, input usecase.SearchUsersInput, page usecase.Page) ([]*usecase.UserOutput, error) {
	args := m.Called(ctx, input, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.UserOutput), args.Error(1)
}

func (m *mockUserUsecase) SearchUsersByBirthdateRange(ctx context.Context, input usecase.SearchUsersByBirthdateRangeInput, page usecase.Page) ([]*usecase.UserOutput, error) {
	args := m.Called(ctx, input, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.UserOutput), args.Error(1)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Authenticate(ctx context.Context, username, password string) (*entity.Principal, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

func (m *mockAuthUsecase) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) (*usecase.UserOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

type mockCollectionUsecase struct {
	mock.Mock
}

func (m *mockCollectionUsecase) AddBook(ctx context.Context, userID, bookID int64) (*usecase.UserOutput, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

func (m *mockCollectionUsecase) RemoveBook(ctx context.Context, userID, bookID int64) (*usecase.UserOutput, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserOutput), args.Error(1)
}

func (m *mockCollectionUsecase) ListBooks(ctx context.Context, userID int64) ([]*usecase.BookOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BookOutput), args.Error(1)
}

type mockBookUsecase struct {
	mock.Mock
}

func (m *mockBookUsecase) GetBook(ctx context.Context, id int64) (*usecase.BookOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) CreateBook(ctx context.Context, input usecase.BookInput) (*usecase.BookOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) UpdateBook(ctx context.Context, id int64, input usecase.BookInput) (*usecase.BookOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) DeleteBook(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookUsecase) ListBooks(ctx context.Context, page usecase.Page) ([]*usecase.BookOutput, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) SearchBooks(ctx context.Context, input usecase.SearchBooksInput, page usecase.Page) ([]*usecase.BookOutput, error) {
	args := m.Called(ctx, input, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) SearchBooksByFields(ctx context.Context, input usecase.SearchBooksByFieldsInput, page usecase.Page) ([]*usecase.BookOutput, error) {
	args := m.Called(ctx, input, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.BookOutput), args.Error(1)
}

func (m *mockBookUsecase) FindByISBN(ctx context.Context, isbn string) (*usecase.FindByISBNOutput, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.FindByISBNOutput), args.Error(1)
}
