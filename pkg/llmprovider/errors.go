package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request: at least one message is required")
	ErrProviderTimeout       = errors.New("provider chain timed out")
)

// ProviderError records which provider the final failure came from.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// retryable is implemented by client errors that know whether a retry can help
// (gemini.APIError, deepseek.APIError).
type retryable interface {
	Retryable() bool
}

// shouldRetry is true unless err says otherwise; transport errors are retried.
func shouldRetry(err error) bool {
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return true
}
