package db

import (
	"fmt"

	"gorm.io/gorm"

	adminSqlite "uxo-chatbot/internal/admin/repository/sqlite"
	chatlogSqlite "uxo-chatbot/internal/chatlog/repository/sqlite"
	reportSqlite "uxo-chatbot/internal/report/repository/sqlite"
	sessionSqlite "uxo-chatbot/internal/session/repository/sqlite"
)

// AllModels returns every GORM model the service stores.
func AllModels() []interface{} {
	var models []interface{}
	models = append(models, adminSqlite.Models()...)
	models = append(models, chatlogSqlite.Models()...)
	models = append(models, reportSqlite.Models()...)
	models = append(models, sessionSqlite.Models()...)
	return models
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
