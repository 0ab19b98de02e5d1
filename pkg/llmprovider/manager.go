package llmprovider

import (
	"context"
	"fmt"
	"time"

	"uxo-chatbot/config"
	"uxo-chatbot/pkg/log"
)

var _ Generator = (*Manager)(nil)

// Manager tries providers in priority order. Each provider gets RetryAttempts
// tries with a linearly growing delay before the next one takes over.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries and fallbacks included.
	MaxTotalTimeout time.Duration
}

// ConfigFrom converts the llm config section, parsing its duration strings.
func ConfigFrom(cfg config.LLMConfig) (*Config, error) {
	retryDelay, err := parseOptionalDuration("llm.retry_delay", cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	maxTotal, err := parseOptionalDuration("llm.max_total_timeout", cfg.MaxTotalTimeout)
	if err != nil {
		return nil, err
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, nil
}

func parseOptionalDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func NewManager(providers []Provider, cfg *Config, logger log.Logger) *Manager {
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	return &Manager{providers: providers, config: cfg, logger: logger}
}

// GenerateContent returns the first successful provider response. When every
// provider fails the error wraps ErrAllProvidersFailed and the last ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	switch {
	case len(m.providers) == 0:
		return nil, ErrNoProvidersConfigured
	case req == nil || len(req.Messages) == 0:
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for tried, p := range m.providers {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w after trying %d provider(s): %v", ErrProviderTimeout, tried, ctx.Err())
		}

		start := time.Now()
		resp, err := m.tryProvider(ctx, p, req)
		if err == nil {
			m.logger.Info(ctx, "LLM generation successful",
				"provider", p.Name(),
				"model", p.Model(),
				"latency_ms", time.Since(start).Milliseconds(),
				"input_tokens", resp.Usage.inputTokens(),
				"output_tokens", resp.Usage.outputTokens(),
			)
			return resp, nil
		}

		m.logger.Warn(ctx, "LLM generation failed",
			"provider", p.Name(),
			"model", p.Model(),
			"error", err.Error(),
		)
		lastErr = &ProviderError{Provider: p.Name(), Err: err}
		if !m.config.FallbackEnabled {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// tryProvider retries p until it succeeds, the attempts run out, the error
// is permanent, or ctx ends.
func (m *Manager) tryProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var err error
	for attempt := 1; attempt <= m.config.RetryAttempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * m.config.RetryDelay
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var resp *Response
		if resp, err = p.GenerateContent(ctx, req); err == nil {
			return resp, nil
		}
		if !shouldRetry(err) {
			return nil, err
		}
	}
	return nil, err
}
