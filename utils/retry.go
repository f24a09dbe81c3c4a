package utils

import (
	"time"
)

// RetryConfig bounds a retry loop: at most MaxAttempts calls, starting with
// Delay between attempts and multiplying it by Backoff after each failure.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     float64
}

// DefaultRetry is suitable for short read-after-write races against the
// database.
var DefaultRetry = RetryConfig{MaxAttempts: 3, Delay: 150 * time.Millisecond, Backoff: 2}

// Retry runs fn until it succeeds, the error is not retryable, or the attempt
// budget is exhausted. The last error is returned.
func Retry(cfg RetryConfig, fn func() error, retryable func(error) bool) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Backoff < 1 {
		cfg.Backoff = 1
	}

	delay := cfg.Delay
	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt < cfg.MaxAttempts {
			time.Sleep(delay)
			delay = time.Duration(float64(delay) * cfg.Backoff)
		}
	}
	return err
}
