package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("creates a user and answers 201", func(t *testing.T) {
		t.Parallel()

		userUC := new(mockUserUsecase)
		birthdate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		userUC.On("CreateUser", mock.Anything, usecase.CreateUserInput{
			Username:  "reader",
			Name:      "Avid Reader",
			Birthdate: birthdate,
			Password:  "secret",
		}).Return(&usecase.UserOutput{ID: 1, Username: "reader", Name: "Avid Reader", Birthdate: birthdate}, nil)

		h := NewUserHandler(userUC, new(mockAuthUsecase), new(mockCollectionUsecase), discardLogger())
		c, rec := newContext(http.MethodPost, "/api/users",
			`{"username":"reader","name":"Avid Reader","birthdate":"1990-05-01","password":"secret"}`)

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"reader"`)
		assert.NotContains(t, rec.Body.String(), "secret")
		userUC.AssertExpectations(t)
	})

	t.Run("rejects a malformed birthdate", func(t *testing.T) {
		t.Parallel()

		userUC := new(mockUserUsecase)
		h := NewUserHandler(userUC, new(mockAuthUsecase), new(mockCollectionUsecase), discardLogger())
		c, rec := newContext(http.MethodPost, "/api/users",
			`{"username":"reader","name":"Avid Reader","birthdate":"01/05/1990","password":"secret"}`)

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		userUC.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("delegates the change to the auth usecase", func(t *testing.T) {
		t.Parallel()

		authUC := new(mockAuthUsecase)
		authUC.On("ChangePassword", mock.Anything, usecase.ChangePasswordInput{
			UserID:      7,
			OldPassword: "old-pass",
			NewPassword: "new-pass",
		}).Return(&usecase.UserOutput{ID: 7, Username: "reader"}, nil)

		h := NewUserHandler(new(mockUserUsecase), authUC, new(mockCollectionUsecase), discardLogger())
		c, rec := newContext(http.MethodPut, "/api/users/7/password",
			`{"old_password":"old-pass","password":"new-pass"}`, "id", "7")

		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		authUC.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		t.Parallel()

		h := NewUserHandler(new(mockUserUsecase), new(mockAuthUsecase), new(mockCollectionUsecase), discardLogger())
		c, _ := newContext(http.MethodPut, "/api/users/abc/password", "", "id", "abc")

		err := h.ChangePassword(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestUserHandler_SearchUsers(t *testing.T) {
	t.Parallel()

	t.Run("passes query filters through", func(t *testing.T) {
		t.Parallel()

		birthdate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		userUC := new(mockUserUsecase)
		userUC.On("SearchUsers", mock.Anything, mock.MatchedBy(func(in usecase.SearchUsersInput) bool {
			return in.Username == "read" && in.Name == "avid" &&
				in.Birthdate != nil && in.Birthdate.Equal(birthdate)
		}), usecase.Page{Page: 2, Limit: 5}).Return([]*usecase.UserOutput{}, nil)

		h := NewUserHandler(userUC, new(mockAuthUsecase), new(mockCollectionUsecase), discardLogger())
		c, rec := newContext(http.MethodGet,
			"/api/users?username=read&name=avid&birthdate=1990-05-01&page=2&limit=5", "")

		require.NoError(t, h.SearchUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		userUC.AssertExpectations(t)
	})

	t.Run("rejects a malformed birthdate filter", func(t *testing.T) {
		t.Parallel()

		h := NewUserHandler(new(mockUserUsecase), new(mockAuthUsecase), new(mockCollectionUsecase), discardLogger())
		c, rec := newContext(http.MethodGet, "/api/users?birthdate=yesterday", "")

		require.NoError(t, h.SearchUsers(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Collection(t *testing.T) {
	t.Parallel()

	t.Run("adds a book to the collection", func(t *testing.T) {
		t.Parallel()

		collectionUC := new(mockCollectionUsecase)
		collectionUC.On("AddBook", mock.Anything, int64(1), int64(7)).
			Return(&usecase.UserOutput{ID: 1, Books: []usecase.BookOutput{{ID: 7, Title: "Dune"}}}, nil)

		h := NewUserHandler(new(mockUserUsecase), new(mockAuthUsecase), collectionUC, discardLogger())
		c, rec := newContext(http.MethodPost, "/api/users/1/books/7", "", "userId", "1", "bookId", "7")

		require.NoError(t, h.AddBook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Dune"`)
	})

	t.Run("lists the collection", func(t *testing.T) {
		t.Parallel()

		collectionUC := new(mockCollectionUsecase)
		collectionUC.On("ListBooks", mock.Anything, int64(1)).
			Return([]*usecase.BookOutput{{ID: 7, Title: "Dune"}}, nil)

		h := NewUserHandler(new(mockUserUsecase), new(mockAuthUsecase), collectionUC, discardLogger())
		c, rec := newContext(http.MethodGet, "/api/users/1/books", "", "userId", "1")

		require.NoError(t, h.ListBooks(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
