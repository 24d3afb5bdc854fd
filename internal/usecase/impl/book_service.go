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

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	metadata service.BookMetadataService
	logger   *slog.Logger
}

// NewBookService is the constructor for bookService. It receives all dependencies as interfaces.
func NewBookService(
	bookRepo repository.BookRepository,
	metadata service.BookMetadataService,
	logger *slog.Logger,
) usecase.BookUsecase {
	return &bookService{
		bookRepo: bookRepo,
		metadata: metadata,
		logger:   logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBook retrieves a single book by its identifier.
func (srv *bookService) GetBook(ctx context.Context, id int64) (*usecase.BookOutput, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, domainerrors.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load book")
	}

	return usecase.NewBookOutput(book), nil
}

// CreateBook validates the input through the entity factory and persists the
// new book.
func (srv *bookService) CreateBook(ctx context.Context, input usecase.BookInput) (*usecase.BookOutput, error) {
	book, err := newBookEntity(input)
	if err != nil {
		return nil, err
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book created", slog.Int64("bookID", book.ID), slog.String("isbn", book.ISBN))

	return usecase.NewBookOutput(book), nil
}

// UpdateBook modifies an existing book. The identifier is immutable: an input
// carrying a different ID is forbidden.
func (srv *bookService) UpdateBook(ctx context.Context, id int64, input usecase.BookInput) (*usecase.BookOutput, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, domainerrors.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load book for update")
	}

	if input.ID != 0 && input.ID != id {
		return nil, domainerrors.ErrCannotChangeID
	}

	validated, err := newBookEntity(input)
	if err != nil {
		return nil, err
	}

	validated.ID = book.ID
	if err := srv.bookRepo.Update(ctx, validated); err != nil {
		return nil, err
	}

	return usecase.NewBookOutput(validated), nil
}

// DeleteBook removes the book if it exists.
func (srv *bookService) DeleteBook(ctx context.Context, id int64) error {
	err := srv.bookRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return domainerrors.ErrBookNotFound
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Book deleted", slog.Int64("bookID", id))

	return nil
}

// ListBooks returns a page of the catalogue with no filter applied.
func (srv *bookService) ListBooks(ctx context.Context, page usecase.Page) ([]*usecase.BookOutput, error) {
	return srv.search(ctx, repository.BookFilter{}, page)
}

// SearchBooks resolves the exact-match triple filter and runs the search.
func (srv *bookService) SearchBooks(ctx context.Context, input usecase.SearchBooksInput, page usecase.Page) ([]*usecase.BookOutput, error) {
	filter := repository.BookFilter{
		Publisher: repository.Exact(input.Publisher),
		Genre:     repository.Exact(input.Genre),
		Year:      repository.Exact(input.Year),
	}

	return srv.search(ctx, filter, page)
}

// SearchBooksByFields resolves the multi-field filter: substring matching for
// the text fields, exact matching for year and pages.
func (srv *bookService) SearchBooksByFields(ctx context.Context, input usecase.SearchBooksByFieldsInput, page usecase.Page) ([]*usecase.BookOutput, error) {
	filter := repository.BookFilter{
		Genre:     repository.Contains(input.Genre),
		Author:    repository.Contains(input.Author),
		Image:     repository.Contains(input.Image),
		Title:     repository.Contains(input.Title),
		Subtitle:  repository.Contains(input.Subtitle),
		Publisher: repository.Contains(input.Publisher),
		Year:      repository.Exact(input.Year),
		Pages:     repository.Exact(input.Pages),
		ISBN:      repository.Contains(input.ISBN),
	}

	return srv.search(ctx, filter, page)
}

// FindByISBN resolves a book by ISBN. On a local miss it consults the external
// catalogue, persists the imported book and reports it as created. Any failure
// on the external path surfaces as a plain not-found so callers cannot probe
// the upstream service through error details.
func (srv *bookService) FindByISBN(ctx context.Context, isbn string) (*usecase.FindByISBNOutput, error) {
	book, err := srv.bookRepo.FindByISBN(ctx, isbn)
	if err == nil {
		return &usecase.FindByISBNOutput{Book: usecase.NewBookOutput(book), Created: false}, nil
	}
	if !errors.Is(err, repository.ErrBookNotFound) {
		return nil, errors.Wrap(err, "failed to look up book by isbn")
	}

	imported, err := srv.metadata.Lookup(ctx, isbn)
	if err != nil {
		if !errors.Is(err, service.ErrBookMetadataNotFound) {
			srv.log(ctx).Warn("External catalogue lookup failed",
				slog.String("isbn", isbn), slog.Any("error", err))
		}

		return nil, domainerrors.ErrBookNotFound
	}

	if err := srv.bookRepo.Create(ctx, imported); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book imported from external catalogue",
		slog.Int64("bookID", imported.ID), slog.String("isbn", isbn))

	return &usecase.FindByISBNOutput{Book: usecase.NewBookOutput(imported), Created: true}, nil
}

func (srv *bookService) search(ctx context.Context, filter repository.BookFilter, page usecase.Page) ([]*usecase.BookOutput, error) {
	books, err := srv.bookRepo.Search(ctx, filter, toPagination(page))
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.BookOutput, 0, len(books))
	for _, book := range books {
		outputs = append(outputs, usecase.NewBookOutput(book))
	}

	return outputs, nil
}

func newBookEntity(input usecase.BookInput) (*entity.Book, error) {
	return entity.NewBook(
		input.Author,
		input.Image,
		input.Title,
		input.Subtitle,
		input.Publisher,
		input.Year,
		input.Pages,
		input.ISBN,
		input.Genre,
	)
}
