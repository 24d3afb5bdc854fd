package postgres

import (
	"testing"
	"time"

	"libris/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCondition(t *testing.T) {
	t.Parallel()

	t.Run("unconstrained contributes nothing", func(t *testing.T) {
		t.Parallel()

		_, _, ok := textCondition("title", repository.Unconstrained())
		assert.False(t, ok)
	})

	t.Run("exact matches the stored value", func(t *testing.T) {
		t.Parallel()

		clause, args, ok := textCondition("publisher", repository.Exact("Ace"))

		require.True(t, ok)
		assert.Equal(t, "publisher = ?", clause)
		assert.Equal(t, []any{"Ace"}, args)
	})

	t.Run("contains lowers both sides", func(t *testing.T) {
		t.Parallel()

		clause, args, ok := textCondition("title", repository.Contains("DuNe"))

		require.True(t, ok)
		assert.Equal(t, "LOWER(title) LIKE ?", clause)
		assert.Equal(t, []any{"%dune%"}, args)
	})
}

func TestDateConditions(t *testing.T) {
	t.Parallel()

	date := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	later := date.AddDate(10, 0, 0)

	t.Run("unconstrained contributes nothing", func(t *testing.T) {
		t.Parallel()

		clauses, args := dateConditions("birthdate", repository.NoDate())
		assert.Empty(t, clauses)
		assert.Empty(t, args)
	})

	t.Run("exact date", func(t *testing.T) {
		t.Parallel()

		clauses, args := dateConditions("birthdate", repository.OnDate(&date))

		assert.Equal(t, []string{"birthdate = ?"}, clauses)
		assert.Equal(t, []any{date}, args)
	})

	t.Run("closed range", func(t *testing.T) {
		t.Parallel()

		clauses, args := dateConditions("birthdate", repository.Between(&date, &later))

		assert.Equal(t, []string{"birthdate >= ?", "birthdate <= ?"}, clauses)
		assert.Equal(t, []any{date, later}, args)
	})

	t.Run("half-open ranges keep only the present bound", func(t *testing.T) {
		t.Parallel()

		clauses, args := dateConditions("birthdate", repository.Between(&date, nil))
		assert.Equal(t, []string{"birthdate >= ?"}, clauses)
		assert.Equal(t, []any{date}, args)

		clauses, args = dateConditions("birthdate", repository.Between(nil, &later))
		assert.Equal(t, []string{"birthdate <= ?"}, clauses)
		assert.Equal(t, []any{later}, args)
	})
}
