package repository

import "time"

// The filter types below form the predicate vocabulary for the search
// operations. A filter is composed in the application layer from raw request
// parameters and translated into SQL by the persistence layer. An absent or
// empty parameter always means "no constraint on this field", never "match the
// empty value".

// TextMatch selects how a text field constraint is evaluated.
type TextMatch int

const (
	// TextUnconstrained applies no condition to the field.
	TextUnconstrained TextMatch = iota

	// TextExact matches the stored value exactly (case-sensitive).
	TextExact

	// TextContains matches when the stored value contains the filter value,
	// case-insensitively.
	TextContains
)

// TextFilter is a single optional constraint on a text column.
type TextFilter struct {
	Match TextMatch
	Value string
}

// Unconstrained returns a filter that matches every record.
func Unconstrained() TextFilter {
	return TextFilter{Match: TextUnconstrained}
}

// Exact returns an exact-equality filter. An empty value yields an
// unconstrained filter.
func Exact(value string) TextFilter {
	if value == "" {
		return Unconstrained()
	}

	return TextFilter{Match: TextExact, Value: value}
}

// Contains returns a case-insensitive substring filter. An empty value yields
// an unconstrained filter.
func Contains(value string) TextFilter {
	if value == "" {
		return Unconstrained()
	}

	return TextFilter{Match: TextContains, Value: value}
}

// DateMatch selects how a date field constraint is evaluated.
type DateMatch int

const (
	// DateUnconstrained applies no condition to the field.
	DateUnconstrained DateMatch = iota

	// DateExact matches the stored date exactly.
	DateExact

	// DateRange matches dates between the two bounds; each bound is
	// independently optional.
	DateRange
)

// DateFilter is a single optional constraint on a date column.
type DateFilter struct {
	Match DateMatch
	On    time.Time
	From  *time.Time
	To    *time.Time
}

// NoDate returns a filter that matches every record.
func NoDate() DateFilter {
	return DateFilter{Match: DateUnconstrained}
}

// OnDate returns an exact-date filter. A nil date yields an unconstrained
// filter.
func OnDate(date *time.Time) DateFilter {
	if date == nil {
		return NoDate()
	}

	return DateFilter{Match: DateExact, On: *date}
}

// Between returns a range filter with independently optional bounds. Both
// bounds absent yields an unconstrained filter.
func Between(from, to *time.Time) DateFilter {
	if from == nil && to == nil {
		return NoDate()
	}

	return DateFilter{Match: DateRange, From: from, To: to}
}

// BookFilter groups the optional constraints for book searches. The same
// structure serves both search modes: the exact triple filter builds Exact
// constraints, the multi-field filter builds Contains constraints with Year
// and Pages kept exact.
type BookFilter struct {
	Genre     TextFilter
	Author    TextFilter
	Image     TextFilter
	Title     TextFilter
	Subtitle  TextFilter
	Publisher TextFilter
	Year      TextFilter
	Pages     TextFilter
	ISBN      TextFilter
}

// UserFilter groups the optional constraints for user searches.
type UserFilter struct {
	Username  TextFilter
	Name      TextFilter
	Birthdate DateFilter
}

// Pagination is the paging contract for filtered queries. Results are always
// ordered by primary key so pages are stable across requests.
type Pagination struct {
	Page  int // 1-based page number.
	Limit int // Maximum records per page.
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// OffsetLimit normalizes the pagination values and returns the SQL offset and
// limit to apply.
func (p Pagination) OffsetLimit() (offset, limit int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * limit, limit
}
