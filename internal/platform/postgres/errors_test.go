package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "posts_user_id_fkey"}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantErr  error
		passThru bool
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation maps to duplicate id",
			err:     pgError(uniqueViolationCode),
			wantErr: store.ErrDuplicateID,
		},
		{
			name:    "foreign key violation maps to invalid entity",
			err:     pgError(foreignKeyViolationCode),
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:     "unknown errors pass through",
			err:      errors.New("connection reset"),
			passThru: true,
		},
		{
			name:     "other pg codes pass through",
			err:      pgError("57014"),
			passThru: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			switch {
			case tc.err == nil:
				assert.NoError(t, got)
			case tc.passThru:
				assert.Equal(t, tc.err, got)
			default:
				assert.ErrorIs(t, got, tc.wantErr)
			}
		})
	}
}

func TestViolationPredicates(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode)))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))

	assert.True(t, IsForeignKeyViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsForeignKeyViolation(pgError(uniqueViolationCode)))

	wrapped := fmt.Errorf("insert: %w", pgError(uniqueViolationCode))
	assert.True(t, IsUniqueViolation(wrapped))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, "user"))
	})

	t.Run("zero rows returns not found", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, "user")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Contains(t, err.Error(), "user")
	})

	t.Run("zero rows without entity name", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows affected error propagates", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("driver does not support")}, "user")
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, "user"))
	})
}
