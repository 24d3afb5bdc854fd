// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// birthdateLayout is the wire format for dates; timestamps are not accepted.
const birthdateLayout = time.DateOnly

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC       usecase.UserUsecase
	authUC       usecase.AuthUsecase
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(
	userUC usecase.UserUsecase,
	authUC usecase.AuthUsecase,
	collectionUC usecase.CollectionUsecase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUC:       userUC,
		authUC:       authUC,
		collectionUC: collectionUC,
		logger:       logger,
	}
}

type userRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
	Password  string `json:"password"`
}

// CreateUser handles the user registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Birthdate must use the YYYY-MM-DD format")
	}

	output, err := h.userUC.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Username:  req.Username,
		Name:      req.Name,
		Birthdate: birthdate,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User created successfully")
}

// GetUser returns a single user with their collection.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateUser replaces the mutable profile fields of a user.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Birthdate must use the YYYY-MM-DD format")
	}

	output, err := h.userUC.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		ID:        req.ID,
		Username:  req.Username,
		Name:      req.Name,
		Birthdate: birthdate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "User updated successfully")
}

// DeleteUser removes a user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// SearchUsers lists users filtered by username and name substrings plus an
// exact birthdate. Absent parameters constrain nothing, so a bare request
// lists everyone.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	input := usecase.SearchUsersInput{
		Username: c.QueryParam("username"),
		Name:     c.QueryParam("name"),
	}

	if raw := c.QueryParam("birthdate"); raw != "" {
		birthdate, err := parseBirthdate(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Birthdate must use the YYYY-MM-DD format")
		}
		input.Birthdate = &birthdate
	}

	outputs, err := h.userUC.SearchUsers(c.Request().Context(), input, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// SearchUsersByBirthdateRange lists users born within the given range, each
// bound independently optional, optionally narrowed by a name substring.
func (h *UserHandler) SearchUsersByBirthdateRange(c echo.Context) error {
	input := usecase.SearchUsersByBirthdateRangeInput{
		Name: c.QueryParam("name"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := parseBirthdate(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Date 'from' must use the YYYY-MM-DD format")
		}
		input.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := parseBirthdate(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Date 'to' must use the YYYY-MM-DD format")
		}
		input.To = &to
	}

	outputs, err := h.userUC.SearchUsersByBirthdateRange(c.Request().Context(), input, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"password"`
}

// ChangePassword applies a password change for the addressed user.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}

	output, err := h.authUC.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		UserID:      id,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Password changed successfully")
}

// AddBook links a catalogued book to the user's collection.
func (h *UserHandler) AddBook(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	bookID, err := parseIDParam(c, "bookId")
	if err != nil {
		return err
	}

	output, err := h.collectionUC.AddBook(c.Request().Context(), userID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Book added to collection")
}

// RemoveBook unlinks a book from the user's collection.
func (h *UserHandler) RemoveBook(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	bookID, err := parseIDParam(c, "bookId")
	if err != nil {
		return err
	}

	output, err := h.collectionUC.RemoveBook(c.Request().Context(), userID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Book removed from collection")
}

// ListBooks returns the user's collection in insertion order.
func (h *UserHandler) ListBooks(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	outputs, err := h.collectionUC.ListBooks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// parseIDParam reads a positive numeric path parameter. The returned error is
// an echo.HTTPError so the central error handler renders it as a 400.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Path parameter '"+name+"' must be a positive number")
	}

	return id, nil
}

func parseBirthdate(raw string) (time.Time, error) {
	return time.Parse(birthdateLayout, raw)
}

// pageFromQuery reads optional page and limit query parameters; invalid
// values fall back to the defaults applied downstream.
func pageFromQuery(c echo.Context) usecase.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.Page{Page: page, Limit: limit}
}
