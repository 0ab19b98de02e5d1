// Package app builds the dependency graph shared by the API server and the CLI.
package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"uxo-chatbot/config"
	"uxo-chatbot/internal/admin"
	adminSqlite "uxo-chatbot/internal/admin/repository/sqlite"
	adminUC "uxo-chatbot/internal/admin/usecase"
	"uxo-chatbot/internal/chat"
	chatUC "uxo-chatbot/internal/chat/usecase"
	"uxo-chatbot/internal/chatlog"
	chatlogSqlite "uxo-chatbot/internal/chatlog/repository/sqlite"
	chatlogUC "uxo-chatbot/internal/chatlog/usecase"
	"uxo-chatbot/internal/db"
	"uxo-chatbot/internal/document"
	documentQdrant "uxo-chatbot/internal/document/repository/qdrant"
	documentUC "uxo-chatbot/internal/document/usecase"
	"uxo-chatbot/internal/hotline"
	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/internal/nlu"
	nluUC "uxo-chatbot/internal/nlu/usecase"
	"uxo-chatbot/internal/report"
	reportSqlite "uxo-chatbot/internal/report/repository/sqlite"
	reportUC "uxo-chatbot/internal/report/usecase"
	"uxo-chatbot/internal/session"
	sessionRepo "uxo-chatbot/internal/session/repository"
	sessionMemory "uxo-chatbot/internal/session/repository/memory"
	sessionSqlite "uxo-chatbot/internal/session/repository/sqlite"
	sessionUC "uxo-chatbot/internal/session/usecase"
	"uxo-chatbot/pkg/encrypter"
	"uxo-chatbot/pkg/llmprovider"
	"uxo-chatbot/pkg/log"
	pkgQdrant "uxo-chatbot/pkg/qdrant"
	"uxo-chatbot/pkg/scope"
	"uxo-chatbot/pkg/voyage"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
)

// Core is the conversational service and everything it stands on.
type Core struct {
	DB        *gorm.DB
	Lexicon   *lexicon.Lexicon
	Hotlines  *hotline.Directory
	Sessions  session.UseCase
	NLU       nlu.UseCase
	Documents document.UseCase
	ChatLogs  chatlog.UseCase
	Reports   report.UseCase
	Admins    admin.UseCase
	Tokens    scope.Manager
	Chat      chat.UseCase
}

// OpenDB connects to the configured SQLite file and migrates every table.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	conn, err := db.Connect(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(conn); err != nil {
		_ = db.Close(conn)
		return nil, err
	}
	return conn, nil
}

// NewTokens creates the admin token manager.
func NewTokens(cfg *config.Config) (scope.Manager, error) {
	return scope.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

// NewAdmins builds the admin use case over conn.
func NewAdmins(cfg *config.Config, conn *gorm.DB, tokens scope.Manager, l log.Logger) admin.UseCase {
	return adminUC.New(adminSqlite.New(conn, l), encrypter.New(cfg.Auth.BcryptCost), tokens, l)
}

// NewDocuments builds the retrieval and ingestion use case over Qdrant and Voyage.
func NewDocuments(cfg *config.Config, l log.Logger) (document.UseCase, error) {
	embedder, err := voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
	if err != nil {
		return nil, err
	}
	client := pkgQdrant.NewClient(cfg.Qdrant.URL)
	if cfg.Qdrant.APIKey != "" {
		client = client.WithAPIKey(cfg.Qdrant.APIKey)
	}
	repo := documentQdrant.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l)
	return documentUC.New(l, repo, documentUC.Options{
		ChunkSize:    cfg.Retrieval.ChunkSize,
		ChunkOverlap: cfg.Retrieval.ChunkOverlap,
		BatchSize:    cfg.Retrieval.BatchSize,
		TopK:         cfg.Retrieval.TopK,
	}), nil
}

// NewLLM builds the provider manager with fallback across the enabled providers.
func NewLLM(ctx context.Context, cfg *config.Config, l log.Logger) (llmprovider.Generator, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, err
	}
	mcfg, err := llmprovider.ConfigFrom(cfg.LLM)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, mcfg, l), nil
}

func newSessionBackend(cfg *config.Config, conn *gorm.DB, l log.Logger) (sessionRepo.Backend, error) {
	switch cfg.Session.Backend {
	case "", SessionBackendMemory:
		return sessionMemory.New(cfg.Session.MaxSessions, cfg.Session.TTL), nil
	case SessionBackendSQLite:
		return sessionSqlite.New(conn, l), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Build wires the full service. The caller owns closing Core.DB.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Core, error) {
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Lexicon %s loaded: %d provinces, %d hotlines", lex.Version, len(lex.Provinces), len(lex.Hotlines))

	conn, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	c, err := build(ctx, cfg, l, lex, conn)
	if err != nil {
		_ = db.Close(conn)
		return nil, err
	}
	return c, nil
}

func build(ctx context.Context, cfg *config.Config, l log.Logger, lex *lexicon.Lexicon, conn *gorm.DB) (*Core, error) {
	backend, err := newSessionBackend(cfg, conn, l)
	if err != nil {
		return nil, err
	}
	sessions := sessionUC.New(l, backend, cfg.Session.Window)

	llm, err := NewLLM(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	documents, err := NewDocuments(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("documents: %w", err)
	}

	tokens, err := NewTokens(cfg)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	c := &Core{
		DB:        conn,
		Lexicon:   lex,
		Hotlines:  hotline.FromLexicon(lex),
		Sessions:  sessions,
		NLU:       nluUC.New(l, llm, sessions, lex),
		Documents: documents,
		ChatLogs:  chatlogUC.New(chatlogSqlite.New(conn, l), l),
		Reports:   reportUC.New(reportSqlite.New(conn, l), l),
		Admins:    NewAdmins(cfg, conn, tokens, l),
		Tokens:    tokens,
	}
	c.Chat = chatUC.New(l, chatUC.Deps{
		NLU:       c.NLU,
		Sessions:  sessions,
		Retriever: documents,
		LLM:       llm,
		Hotlines:  c.Hotlines,
		Lexicon:   lex,
		ChatLogs:  c.ChatLogs,
		TopK:      cfg.Retrieval.TopK,
	})
	return c, nil
}

// Ping reports whether the database is reachable.
func (c *Core) Ping(ctx context.Context) error {
	return db.Ping(ctx, c.DB)
}
