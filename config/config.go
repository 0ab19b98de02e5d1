package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	// Conversational core
	Session SessionConfig
	Lexicon LexiconConfig

	// Retrieval
	Qdrant    QdrantConfig
	Voyage    VoyageConfig
	Retrieval RetrievalConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	Telegram  TelegramConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DatabaseConfig points at the SQLite file holding admins, chat logs,
// reports and (optionally) sessions.
type DatabaseConfig struct {
	Path string
}

type SessionConfig struct {
	Backend     string // "memory" or "sqlite"
	Window      int
	TTL         time.Duration
	MaxSessions int
}

type LexiconConfig struct {
	// Path to a YAML lexicon; empty uses the embedded default.
	Path string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type RetrievalConfig struct {
	TopK         int
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// Load reads configuration. A .env file in the working directory is loaded
// into the process environment first; then config.yaml is searched in
// ./config, . and /etc/app/, and environment variables override both.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

// LoadFile reads configuration from an explicit YAML path (used by the CLI).
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")

	cfg.Database.Path = v.GetString("database.path")

	cfg.Session.Backend = v.GetString("session.backend")
	cfg.Session.Window = v.GetInt("session.window")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	cfg.Lexicon.Path = v.GetString("lexicon.path")

	cfg.Qdrant.URL = firstNonEmpty(v.GetString("qdrant_url"), v.GetString("qdrant.url"))
	cfg.Qdrant.APIKey = expandEnvVar(v, firstNonEmpty(v.GetString("qdrant_api_key"), v.GetString("qdrant.api_key")))
	cfg.Qdrant.CollectionName = v.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = v.GetInt("qdrant.vector_size")

	cfg.Voyage.APIKey = expandEnvVar(v, firstNonEmpty(v.GetString("voyage_api_key"), v.GetString("voyage.api_key")))
	cfg.Voyage.Model = v.GetString("voyage.model")

	cfg.Retrieval.TopK = v.GetInt("retrieval.top_k")
	cfg.Retrieval.ChunkSize = v.GetInt("retrieval.chunk_size")
	cfg.Retrieval.ChunkOverlap = v.GetInt("retrieval.chunk_overlap")
	cfg.Retrieval.BatchSize = v.GetInt("retrieval.batch_size")

	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = parseProviders(v)

	cfg.Telegram.BotToken = expandEnvVar(v, firstNonEmpty(v.GetString("telegram_bot_token"), v.GetString("telegram.bot_token")))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")

	cfg.Auth.JWTSecret = expandEnvVar(v, firstNonEmpty(v.GetString("jwt_secret"), v.GetString("auth.jwt_secret")))
	cfg.Auth.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.Auth.BcryptCost = v.GetInt("auth.bcrypt_cost")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = v.GetInt("rate_limit.per_minute")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.path", "data/uxo.db")

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.window", 5)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 10000)

	v.SetDefault("qdrant.url", "http://localhost:6333")
	v.SetDefault("qdrant.collection_name", "uxo_documents")
	v.SetDefault("qdrant.vector_size", 1024)
	v.SetDefault("voyage.model", "voyage-3")

	v.SetDefault("retrieval.top_k", 4)
	v.SetDefault("retrieval.chunk_size", 1000)
	v.SetDefault("retrieval.chunk_overlap", 200)
	v.SetDefault("retrieval.batch_size", 64)

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")

	v.SetDefault("auth.token_ttl", "60m")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_minute", 30)
}

func parseProviders(v *viper.Viper) []ProviderConfig {
	raw, ok := v.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}
	var out []ProviderConfig
	for _, p := range raw {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, ProviderConfig{
			Name:     getStringFromMap(m, "name"),
			Enabled:  getBoolFromMap(m, "enabled"),
			Priority: getIntFromMap(m, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(m, "api_key")),
			BaseURL:  getStringFromMap(m, "base_url"),
			Model:    getStringFromMap(m, "model"),
			Timeout:  getStringFromMap(m, "timeout"),
		})
	}
	return out
}

func (c *Config) validate() error {
	if c.Session.Backend != "memory" && c.Session.Backend != "sqlite" {
		return fmt.Errorf("session.backend must be memory or sqlite, got %q", c.Session.Backend)
	}
	if c.Session.Window <= 0 {
		return fmt.Errorf("session.window must be positive")
	}
	if c.Retrieval.ChunkOverlap >= c.Retrieval.ChunkSize {
		return fmt.Errorf("retrieval.chunk_overlap must be smaller than retrieval.chunk_size")
	}
	if len(c.LLM.Providers) > 0 {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, "production")
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	if envValue := os.Getenv(name); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(name)); envValue != "" {
		return envValue
	}
	return ""
}

func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorities := make(map[int]string)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if other, dup := priorities[provider.Priority]; dup {
			return fmt.Errorf("provider %s: duplicate priority %d (also %s)", provider.Name, provider.Priority, other)
		}
		priorities[provider.Priority] = provider.Name
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch n := m[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
