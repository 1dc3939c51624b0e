package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwise/giftwise-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "some_constraint", ColumnName: "some_column"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()

		err := MapError(sql.ErrNoRows)

		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("wrapped no rows maps to not found", func(t *testing.T) {
		t.Parallel()

		err := MapError(fmt.Errorf("query failed: %w", sql.ErrNoRows))

		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()

		err := MapError(pgError(uniqueViolationCode))

		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("foreign key violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()

		err := MapError(pgError(foreignKeyViolationCode))

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "some_constraint")
	})

	t.Run("not null violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()

		err := MapError(pgError(notNullViolationCode))

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "some_column")
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		original := errors.New("connection refused")

		assert.Equal(t, original, MapError(original))
	})
}

func TestViolationChecks(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode)))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsUniqueViolation(errors.New("plain")))

	assert.True(t, IsForeignKeyViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsForeignKeyViolation(pgError(uniqueViolationCode)))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("affected rows pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrSavedGiftNotFound))
	})

	t.Run("zero rows report the sentinel", func(t *testing.T) {
		t.Parallel()

		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrSavedGiftNotFound)

		assert.ErrorIs(t, err, store.ErrSavedGiftNotFound)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		t.Parallel()

		err := CheckRowsAffected(fakeResult{err: errors.New("not supported")}, store.ErrSavedGiftNotFound)

		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrSavedGiftNotFound)
	})
}
