package sqlite

import (
	"time"

	"gorm.io/gorm"

	"uxo-chatbot/internal/admin/repository"
	"uxo-chatbot/pkg/log"
)

type adminRow struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (adminRow) TableName() string { return "admins" }

// Models lists the tables owned by this repository.
func Models() []interface{} {
	return []interface{}{&adminRow{}}
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed admin repository.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("admin/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
