package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"uxo-chatbot/config"
	"uxo-chatbot/pkg/deepseek"
	"uxo-chatbot/pkg/gemini"
)

type mockProvider struct {
	name       string
	shouldFail bool
	delay      time.Duration
	text       string
	err        error

	mu        sync.Mutex
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Text:         m.text,
		ProviderName: m.name,
		ModelName:    m.name + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger records Info and Warn messages.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return UserPrompt("", "Xin chào")
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", text: "Hello from primary"}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 100 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" || resp.Text != "Hello from primary" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if primary.calls() != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("unexpected logs: info=%d warn=%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", text: "Hello from secondary"}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.calls())
	}
	if secondary.calls() != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("unexpected logs: info=%d warn=%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_Failures(t *testing.T) {
	tests := []struct {
		name           string
		providers      func() []*mockProvider
		config         *Config
		request        *Request
		wantErr        error
		wantCallCounts []int
	}{
		{
			name: "all providers fail",
			providers: func() []*mockProvider {
				return []*mockProvider{{name: "a", shouldFail: true}, {name: "b", shouldFail: true}}
			},
			config:         &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			request:        helloRequest(),
			wantErr:        ErrAllProvidersFailed,
			wantCallCounts: []int{2, 2},
		},
		{
			name: "no fallback when disabled",
			providers: func() []*mockProvider {
				return []*mockProvider{{name: "a", shouldFail: true}, {name: "b"}}
			},
			config:         &Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: time.Millisecond},
			request:        helloRequest(),
			wantErr:        ErrAllProvidersFailed,
			wantCallCounts: []int{2, 0},
		},
		{
			name:      "no providers configured",
			providers: func() []*mockProvider { return nil },
			config:    &Config{FallbackEnabled: true, RetryAttempts: 3},
			request:   helloRequest(),
			wantErr:   ErrNoProvidersConfigured,
		},
		{
			name: "empty request",
			providers: func() []*mockProvider {
				return []*mockProvider{{name: "a"}}
			},
			config:         &Config{RetryAttempts: 1},
			request:        &Request{},
			wantErr:        ErrInvalidRequest,
			wantCallCounts: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := tt.providers()
			providers := make([]Provider, len(mocks))
			for i, m := range mocks {
				providers[i] = m
			}
			manager := NewManager(providers, tt.config, &mockLogger{})

			resp, err := manager.GenerateContent(context.Background(), tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if resp != nil {
				t.Errorf("Expected nil response, got: %v", resp)
			}
			for i, want := range tt.wantCallCounts {
				if got := mocks[i].calls(); got != want {
					t.Errorf("provider %s: expected %d calls, got %d", mocks[i].name, want, got)
				}
			}
		})
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second}
	never := &mockProvider{name: "never"}
	manager := NewManager([]Provider{slow, never}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, ErrProviderTimeout) {
		t.Errorf("expected ErrProviderTimeout, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("global timeout not honored")
	}
	if never.calls() != 0 {
		t.Errorf("no provider should run after the deadline")
	}
}

func TestConfigFrom(t *testing.T) {
	cfg, err := ConfigFrom(config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "2s",
		MaxTotalTimeout: "1m",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RetryDelay != 2*time.Second || cfg.MaxTotalTimeout != time.Minute || !cfg.FallbackEnabled {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := ConfigFrom(config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestManager_PermanentErrorSkipsRetries(t *testing.T) {
	badKey := &mockProvider{name: "deepseek", err: &deepseek.APIError{StatusCode: 401, Message: "Authentication Fails"}}
	quota := &mockProvider{name: "gemini", err: &gemini.APIError{StatusCode: 429, Body: "quota"}}
	ok := &mockProvider{name: "qwen", text: "Gọi 1800 1741"}

	m := NewManager([]Provider{badKey, quota, ok}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})
	resp, err := m.GenerateContent(context.Background(), UserPrompt("", "hotline Quảng Bình"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "qwen" {
		t.Errorf("expected qwen, got %s", resp.ProviderName)
	}
	if badKey.calls() != 1 {
		t.Errorf("401 should not be retried, got %d calls", badKey.calls())
	}
	if quota.calls() != 3 {
		t.Errorf("429 should be retried, got %d calls", quota.calls())
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport error", errors.New("connection reset"), true},
		{"server error", &deepseek.APIError{StatusCode: 502}, true},
		{"bad request", &gemini.APIError{StatusCode: 400}, false},
		{"wrapped forbidden", fmt.Errorf("qwen: %w", &deepseek.APIError{StatusCode: 403}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetry(tt.err); got != tt.want {
				t.Errorf("shouldRetry() = %v, want %v", got, tt.want)
			}
		})
	}
}
