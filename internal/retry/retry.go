package retry

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sushe-online/sushe-server/internal/logger"
)

// retryableCodes enumerates the PostgreSQL error codes worth retrying:
// serialization failures, deadlocks, lock timeouts, admin shutdown,
// connection-level failures and too-many-connections.
var retryableCodes = map[string]struct{}{
	"40001": {},
	"40P01": {},
	"55P03": {},
	"57P01": {},
	"08000": {},
	"08003": {},
	"08006": {},
	"53300": {},
}

// Config controls the backoff schedule.
type Config struct {
	MaxAttempts int           // Total attempts including the first
	BaseDelay   time.Duration // Delay before the second attempt
	Multiplier  int           // Delay multiplier between attempts
}

// DefaultConfig is the schedule used by the migration runner.
var DefaultConfig = Config{
	MaxAttempts: 4,
	BaseDelay:   200 * time.Millisecond,
	Multiplier:  2,
}

// IsRetryable reports whether err is a transient database or network error.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := retryableCodes[pgErr.Code]
		return ok
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// Do runs fn, retrying on retryable errors with fixed exponential backoff.
// The last error is returned when attempts are exhausted or the context is
// cancelled.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	delay := cfg.BaseDelay

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		logger.Log.Warnw("retrying after transient error",
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= time.Duration(cfg.Multiplier)
	}

	return err
}
