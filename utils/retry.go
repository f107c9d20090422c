package utils

import "fmt"

// Attempt runs fn up to maxAttempts times, strictly in sequence and with
// no backoff between tries. If fn returns nil it stops immediately;
// otherwise the last error is returned after the attempts are exhausted.
//
// Usage:
//
//	err := utils.Attempt(3, func() error {
//	    return session.DismissLoginModal(ctx)
//	})
func Attempt(maxAttempts int, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt < maxAttempts {
			Warn("Attempt %d/%d failed: %v", attempt, maxAttempts, lastErr)
		}
	}

	return fmt.Errorf("all %d attempts failed — last error: %w", maxAttempts, lastErr)
}
