package service

import (
	"context"
	"errors"

	"libris/internal/domain/entity"
)

// ErrBookMetadataNotFound is returned when the external catalogue has no
// record for the requested ISBN.
var ErrBookMetadataNotFound = errors.New("book metadata not found")

// BookMetadataService looks up book records in an external catalogue by ISBN.
// Transport and parse failures surface as errors; the caller is expected to
// translate them to a plain not-found result rather than propagate them raw.
type BookMetadataService interface {
	Lookup(ctx context.Context, isbn string) (*entity.Book, error)
}
