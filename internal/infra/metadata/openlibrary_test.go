package metadata

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"libris/config"
	"libris/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"ISBN:9780441013593": {
		"title": "Dune",
		"subtitle": "Deluxe Edition",
		"publish_date": "August 1, 1965",
		"number_of_pages": 412,
		"publishers": [{"name": "Ace"}, {"name": "Chilton"}],
		"authors": [{"name": "Frank Herbert"}],
		"cover": {"medium": "https://covers.openlibrary.org/b/id/1-M.jpg"}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) service.BookMetadataService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		OpenLibrary: &config.OpenLibraryConfig{BaseURL: server.URL},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("maps a catalogue record to a book", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ISBN:9780441013593", r.URL.Query().Get("bibkeys"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "data", r.URL.Query().Get("jscmd"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleResponse))
		})

		book, err := client.Lookup(context.Background(), "9780441013593")

		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Deluxe Edition", book.Subtitle)
		assert.Equal(t, "Frank Herbert", book.Author)
		assert.Equal(t, "Ace, Chilton", book.Publisher)
		assert.Equal(t, "1965", book.Year)
		assert.Equal(t, "412", book.Pages)
		assert.Equal(t, "9780441013593", book.ISBN)
		assert.Equal(t, "https://covers.openlibrary.org/b/id/1-M.jpg", book.Image)
	})

	t.Run("an empty object means the ISBN is unknown", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.Lookup(context.Background(), "0000000000")

		assert.ErrorIs(t, err, service.ErrBookMetadataNotFound)
	})

	t.Run("non-200 responses fail without being not-found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.Lookup(context.Background(), "9780441013593")

		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrBookMetadataNotFound)
	})

	t.Run("malformed payloads fail", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := client.Lookup(context.Background(), "9780441013593")

		assert.Error(t, err)
	})

	t.Run("an incomplete record is rejected", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ISBN:123": {"title": "No Author"}}`))
		})

		_, err := client.Lookup(context.Background(), "123")

		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrBookMetadataNotFound)
	})
}

func TestYearFromPublishDate(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"1988":             "1988",
		"October 1, 1988":  "1988",
		"Jan 2004":         "2004",
		"unparseable date": "unparseable date",
	}

	for input, want := range cases {
		assert.Equal(t, want, yearFromPublishDate(input), input)
	}
}
