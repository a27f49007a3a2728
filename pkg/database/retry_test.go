package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: "40001"},
			want: true,
		},
		{
			name: "deadlock detected",
			err:  &pgconn.PgError{Code: "40P01"},
			want: true,
		},
		{
			name: "lock not available",
			err:  &pgconn.PgError{Code: "55P03"},
			want: true,
		},
		{
			name: "wrapped transient error",
			err:  fmt.Errorf("claim failed: %w", &pgconn.PgError{Code: "40001"}),
			want: true,
		},
		{
			name: "unique violation is permanent",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestWithRetry_TransientThenSuccess(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), "claim task", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	permanent := errors.New("relation does not exist")
	err := WithRetry(context.Background(), "claim task", func(ctx context.Context) error {
		calls++
		return permanent
	})
	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_Exhausted(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), "recompute scores", func(ctx context.Context) error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries exhausted")
	assert.Equal(t, retryAttempts, calls)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "40P01", pgErr.Code)
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := WithRetry(ctx, "claim task", func(ctx context.Context) error {
		calls++
		cancel()
		return &pgconn.PgError{Code: "40001"}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
