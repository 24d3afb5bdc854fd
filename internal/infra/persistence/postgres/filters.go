package postgres

import (
	"fmt"
	"strings"

	"libris/internal/domain/repository"

	"gorm.io/gorm"
)

// The functions below translate the domain filter vocabulary into SQL
// conditions. An unconstrained filter contributes no condition at all, so a
// fully-empty filter degrades to an unfiltered, ordered listing.

// textCondition builds the SQL fragment for a single text filter. The third
// return value reports whether a condition applies.
func textCondition(column string, filter repository.TextFilter) (string, []any, bool) {
	switch filter.Match {
	case repository.TextExact:
		return fmt.Sprintf("%s = ?", column), []any{filter.Value}, true
	case repository.TextContains:
		pattern := "%" + strings.ToLower(filter.Value) + "%"

		return fmt.Sprintf("LOWER(%s) LIKE ?", column), []any{pattern}, true
	default:
		return "", nil, false
	}
}

// dateConditions builds the SQL fragments for a date filter. A range filter
// contributes one fragment per present bound.
func dateConditions(column string, filter repository.DateFilter) (clauses []string, args []any) {
	switch filter.Match {
	case repository.DateExact:
		clauses = append(clauses, fmt.Sprintf("%s = ?", column))
		args = append(args, filter.On)
	case repository.DateRange:
		if filter.From != nil {
			clauses = append(clauses, fmt.Sprintf("%s >= ?", column))
			args = append(args, *filter.From)
		}
		if filter.To != nil {
			clauses = append(clauses, fmt.Sprintf("%s <= ?", column))
			args = append(args, *filter.To)
		}
	}

	return clauses, args
}

func applyTextFilter(tx *gorm.DB, column string, filter repository.TextFilter) *gorm.DB {
	if clause, args, ok := textCondition(column, filter); ok {
		tx = tx.Where(clause, args...)
	}

	return tx
}

func applyDateFilter(tx *gorm.DB, column string, filter repository.DateFilter) *gorm.DB {
	clauses, args := dateConditions(column, filter)
	for i, clause := range clauses {
		tx = tx.Where(clause, args[i])
	}

	return tx
}

func applyBookFilter(tx *gorm.DB, filter repository.BookFilter) *gorm.DB {
	tx = applyTextFilter(tx, "genre", filter.Genre)
	tx = applyTextFilter(tx, "author", filter.Author)
	tx = applyTextFilter(tx, "image", filter.Image)
	tx = applyTextFilter(tx, "title", filter.Title)
	tx = applyTextFilter(tx, "subtitle", filter.Subtitle)
	tx = applyTextFilter(tx, "publisher", filter.Publisher)
	tx = applyTextFilter(tx, "year", filter.Year)
	tx = applyTextFilter(tx, "pages", filter.Pages)
	tx = applyTextFilter(tx, "isbn", filter.ISBN)

	return tx
}

func applyUserFilter(tx *gorm.DB, filter repository.UserFilter) *gorm.DB {
	tx = applyTextFilter(tx, "username", filter.Username)
	tx = applyTextFilter(tx, "name", filter.Name)
	tx = applyDateFilter(tx, "birthdate", filter.Birthdate)

	return tx
}

// applyPagination orders by primary key for stable pages and applies the
// normalized offset and limit.
func applyPagination(tx *gorm.DB, page repository.Pagination) *gorm.DB {
	offset, limit := page.OffsetLimit()

	return tx.Order("id").Offset(offset).Limit(limit)
}
