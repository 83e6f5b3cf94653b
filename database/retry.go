package database

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// RetryConfig defines retry behavior
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// nonRetryableStates are SQLSTATE classes where retrying cannot help:
// integrity violations (23xxx) and syntax/access violations (42xxx).
func isNonRetryableState(code string) bool {
	if code == "" {
		return false
	}
	switch {
	case strings.HasPrefix(code, "23"): // integrity_constraint_violation
		return true
	case strings.HasPrefix(code, "42"): // syntax_error_or_access_rule_violation
		return true
	case strings.HasPrefix(code, "22"): // data_exception
		return true
	case code == "P0002": // no_data_found
		return true
	}
	return false
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry context errors (timeout, cancellation)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	// Don't retry "no rows" errors
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	// Driver-level SQLSTATE (bun/pgdriver)
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return !isNonRetryableState(drvErr.Field('C'))
	}

	// pgx-level SQLSTATE (raw pool connections)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return !isNonRetryableState(pgErr.Code)
	}

	// Network errors are worth retrying
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := err.Error()
	retryable := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"unexpected EOF",
		"EOF",
	}
	for _, candidate := range retryable {
		if strings.Contains(errStr, candidate) {
			return true
		}
	}

	return false
}

// WithRetry runs operation, retrying transient failures with exponential
// backoff per DefaultRetryConfig.
func WithRetry(ctx context.Context, operation func() error) error {
	cfg := DefaultRetryConfig()
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !isRetryableError(lastErr) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return lastErr
}
