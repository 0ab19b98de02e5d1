package sqlite

import (
	"time"

	"gorm.io/gorm"

	"uxo-chatbot/internal/session/repository"
	"uxo-chatbot/pkg/log"
)

type sessionRow struct {
	ID           string `gorm:"primaryKey;size:128"`
	LastIntent   string `gorm:"size:64"`
	LastQuestion string `gorm:"type:text"`
	UpdatedAt    time.Time
}

func (sessionRow) TableName() string { return "chat_sessions" }

type turnRow struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	SessionID string `gorm:"index;size:128;not null"`
	Input     string `gorm:"type:text"`
	Output    string `gorm:"type:text"`
	Intent    string `gorm:"size:64"`
	CreatedAt time.Time
}

func (turnRow) TableName() string { return "chat_session_turns" }

// Models lists the tables owned by this backend, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&sessionRow{}, &turnRow{}}
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a database-backed session backend. The caller migrates Models().
func New(db *gorm.DB, l log.Logger) repository.Backend {
	if db == nil {
		panic("session/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
