// Package metadata implements the external book catalogue lookup against the
// Open Library books API.
package metadata

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"libris/config"
	"libris/internal/domain/entity"
	"libris/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://openlibrary.org/api/books"

// Client queries the Open Library books API. The endpoint is taken from
// configuration so tests can point it at a local server.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient is the constructor for Client. It returns the implementation as a
// service.BookMetadataService interface.
func NewClient(cfg *config.Config, logger *slog.Logger) service.BookMetadataService {
	baseURL := defaultBaseURL
	timeout := 10 * time.Second
	if cfg != nil && cfg.OpenLibrary != nil {
		if cfg.OpenLibrary.BaseURL != "" {
			baseURL = cfg.OpenLibrary.BaseURL
		}
		if cfg.OpenLibrary.Timeout > 0 {
			timeout = cfg.OpenLibrary.Timeout
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		baseURL:    baseURL,
	}
}

// bookPayload mirrors the subset of the Open Library "data" response we read.
type bookPayload struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	PublishDate string `json:"publish_date"`
	Pages       int    `json:"number_of_pages"`
	Publishers  []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Cover struct {
		Medium string `json:"medium"`
	} `json:"cover"`
}

// Lookup fetches the record for the given ISBN. A response without the
// requested key yields service.ErrBookMetadataNotFound; transport and decode
// failures are returned wrapped for the caller to translate.
func (c *Client) Lookup(ctx context.Context, isbn string) (*entity.Book, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata endpoint")
	}

	key := "ISBN:" + isbn
	q := reqURL.Query()
	q.Set("bibkeys", key)
	q.Set("format", "json")
	q.Set("jscmd", "data")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build metadata request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "metadata request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("metadata request returned status %d", resp.StatusCode)
	}

	var payload map[string]bookPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode metadata response")
	}

	record, ok := payload[key]
	if !ok {
		c.logger.Debug("ISBN not present in external catalogue", slog.String("isbn", isbn))

		return nil, service.ErrBookMetadataNotFound
	}

	book, err := entity.NewBook(
		joinNames(len(record.Authors), func(i int) string { return record.Authors[i].Name }),
		record.Cover.Medium,
		record.Title,
		record.Subtitle,
		joinNames(len(record.Publishers), func(i int) string { return record.Publishers[i].Name }),
		yearFromPublishDate(record.PublishDate),
		strconv.Itoa(record.Pages),
		isbn,
		"",
	)
	if err != nil {
		return nil, errors.Wrap(err, "external record is not a valid book")
	}

	return book, nil
}

// joinNames concatenates n names into a comma-separated list.
func joinNames(n int, name func(int) string) string {
	parts := make([]string, 0, n)
	for i := range n {
		if v := name(i); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

// yearFromPublishDate extracts the four-digit year from publish dates such as
// "1988" or "October 1, 1988".
func yearFromPublishDate(publishDate string) string {
	for _, token := range strings.FieldsFunc(publishDate, func(r rune) bool {
		return r == ' ' || r == ','
	}) {
		if len(token) == 4 {
			if _, err := strconv.Atoi(token); err == nil {
				return token
			}
		}
	}

	return publishDate
}
