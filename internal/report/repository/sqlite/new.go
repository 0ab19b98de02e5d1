package sqlite

import (
	"time"

	"gorm.io/gorm"

	"uxo-chatbot/internal/report/repository"
	"uxo-chatbot/pkg/log"
)

type reportRow struct {
	ID          uint    `gorm:"primaryKey"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Description string
	Status      string `gorm:"index;not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (reportRow) TableName() string { return "uxo_reports" }

// Models lists the tables owned by this repository.
func Models() []interface{} {
	return []interface{}{&reportRow{}}
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed report repository.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("report/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
