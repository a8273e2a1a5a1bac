package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

const maxBackoff = 2 * time.Second

var errMaxRetriesExceeded = errs.New("transaction failed after max retries")

// RetryPolicy bounds how often a write transaction is replayed after losing a race.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func NewRetryPolicy(cfg config.StoreConfig) RetryPolicy {
	return RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
	}
}

// run calls attempt until it succeeds, fails with a non-retryable error, or the
// policy is exhausted. Exhaustion is reported as errs.ErrConcurrentConflict.
func (p RetryPolicy) run(ctx context.Context, attemptFn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		err = attemptFn(ctx)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == p.MaxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrConcurrentConflict)
		}

		waitTime := calculateBackoff(attempt, p.BaseDelay)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errs.Mark(err, errMaxRetriesExceeded)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := min(base<<min(attempt, 16), maxBackoff)
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	if infra.KindOf(err) == infra.KindConflict || errs.Is(err, errs.ErrConcurrentConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
