package sqlite

import (
	"time"

	"gorm.io/gorm"

	"uxo-chatbot/internal/chatlog/repository"
	"uxo-chatbot/pkg/log"
)

// chatLogRow is the chat_logs table. Entities are stored as a JSON document.
type chatLogRow struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"index;not null"`
	Message    string `gorm:"not null"`
	Response   string `gorm:"not null"`
	Intent     string
	Entities   string
	Confidence float64
	CreatedAt  time.Time `gorm:"index"`
}

func (chatLogRow) TableName() string { return "chat_logs" }

// Models lists the tables owned by this repository.
func Models() []interface{} {
	return []interface{}{&chatLogRow{}}
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed chat log repository.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chatlog/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
