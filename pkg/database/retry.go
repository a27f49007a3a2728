package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Transient error retry policy: serialization failures and lock waits are
// retried with bounded exponential backoff before surfacing to the caller.
const (
	retryAttempts    = 3
	retryBaseBackoff = 50 * time.Millisecond
)

// Transient PostgreSQL error codes.
const (
	codeSerializationFailure = "40001" // serialization_failure
	codeDeadlockDetected     = "40P01" // deadlock_detected
	codeLockNotAvailable     = "55P03" // lock_not_available
)

// IsTransient reports whether err is a retryable storage error.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}

// WithRetry runs fn, retrying transient storage errors with exponential
// backoff (50ms, 100ms, then fail). Non-transient errors return immediately.
func WithRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	backoff := retryBaseBackoff

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !IsTransient(err) {
			return err
		}
		if attempt == retryAttempts {
			break
		}

		slog.Warn("Transient storage error, retrying",
			"op", op, "attempt", attempt, "backoff", backoff, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("%s: retries exhausted: %w", op, err)
}
