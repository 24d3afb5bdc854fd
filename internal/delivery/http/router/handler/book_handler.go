package handler

import (
	"log/slog"
	"net/http"

	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalogue-related handlers.
type BookHandler struct {
	bookUC usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(bookUC usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		bookUC: bookUC,
		logger: logger,
	}
}

// CreateBook adds a new book to the catalogue.
func (h *BookHandler) CreateBook(c echo.Context) error {
	var input usecase.BookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	output, err := h.bookUC.CreateBook(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Book created successfully")
}

// GetBook returns a single catalogued book.
func (h *BookHandler) GetBook(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.bookUC.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdateBook replaces the fields of a catalogued book.
func (h *BookHandler) UpdateBook(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.BookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	output, err := h.bookUC.UpdateBook(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Book updated successfully")
}

// DeleteBook removes a book from the catalogue.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookUC.DeleteBook(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}

// ListBooks lists the catalogue, optionally narrowed by the exact
// publisher/genre/year triple. Absent parameters constrain nothing.
func (h *BookHandler) ListBooks(c echo.Context) error {
	input := usecase.SearchBooksInput{
		Publisher: c.QueryParam("publisher"),
		Genre:     c.QueryParam("genre"),
		Year:      c.QueryParam("year"),
	}
	page := pageFromQuery(c)

	ctx := c.Request().Context()

	var (
		outputs []*usecase.BookOutput
		err     error
	)
	if input == (usecase.SearchBooksInput{}) {
		outputs, err = h.bookUC.ListBooks(ctx, page)
	} else {
		outputs, err = h.bookUC.SearchBooks(ctx, input, page)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// SearchBooks runs the multi-field search: substring matching on text fields,
// exact matching on year and pages.
func (h *BookHandler) SearchBooks(c echo.Context) error {
	input := usecase.SearchBooksByFieldsInput{
		Genre:     c.QueryParam("genre"),
		Author:    c.QueryParam("author"),
		Image:     c.QueryParam("image"),
		Title:     c.QueryParam("title"),
		Subtitle:  c.QueryParam("subtitle"),
		Publisher: c.QueryParam("publisher"),
		Year:      c.QueryParam("year"),
		Pages:     c.QueryParam("pages"),
		ISBN:      c.QueryParam("isbn"),
	}

	outputs, err := h.bookUC.SearchBooksByFields(c.Request().Context(), input, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// FindByISBN resolves a book by ISBN, importing it from the external
// catalogue on a local miss. An imported book answers 201, a known one 200.
func (h *BookHandler) FindByISBN(c echo.Context) error {
	isbn := c.Param("isbn")
	if isbn == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Path parameter 'isbn' is required")
	}

	output, err := h.bookUC.FindByISBN(c.Request().Context(), isbn)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	message := ""
	if output.Created {
		status = http.StatusCreated
		message = "Book imported successfully"
	}

	return response.Success(c, status, output.Book, message)
}
