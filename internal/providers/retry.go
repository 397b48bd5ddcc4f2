package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// backoffBase is the unit for exponential backoff. Tests shrink it.
var backoffBase = time.Second

type rateLimitError struct{}

func (e *rateLimitError) Error() string { return "rate limited" }

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

type serverError struct {
	statusCode int
	body       string
}

func (e *serverError) Error() string {
	return "server error: " + e.body
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	_, ok := err.(*authError)
	return ok
}

// statusToError maps an API status code to the matching error type.
// Every backend routes its responses through here so retry behavior
// stays uniform.
func statusToError(status int, body []byte) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusTooManyRequests:
		return &rateLimitError{}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &authError{message: string(body)}
	case status >= 500:
		return &serverError{statusCode: status, body: string(body)}
	default:
		return fmt.Errorf("API error (status %d): %s", status, body)
	}
}

// isRetryable reports whether a failed attempt is worth repeating.
// Rate limits and upstream 5xx responses are transient; everything
// else, auth failures included, is returned to the caller as-is.
func isRetryable(err error) bool {
	switch err.(type) {
	case *rateLimitError, *serverError:
		return true
	default:
		return false
	}
}

func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !isRetryable(lastErr) {
			return lastErr
		}

		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * backoffBase
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
