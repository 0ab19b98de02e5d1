package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"uxo-chatbot/internal/model"
)

func (r *implRepository) Get(ctx context.Context, sessionID string) (model.Session, bool, error) {
	var row sessionRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Session{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "session/repository/sqlite.Get: %v", err)
		return model.Session{}, false, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	var rows []turnRow
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "session/repository/sqlite.Get turns: %v", err)
		return model.Session{}, false, fmt.Errorf("get turns %s: %w", sessionID, err)
	}

	s := model.Session{
		ID:           row.ID,
		LastIntent:   row.LastIntent,
		LastQuestion: row.LastQuestion,
		UpdatedAt:    row.UpdatedAt,
		Turns:        make([]model.Turn, len(rows)),
	}
	for i, t := range rows {
		s.Turns[i] = model.Turn{Input: t.Input, Output: t.Output, Intent: t.Intent, CreatedAt: t.CreatedAt}
	}
	return s, true, nil
}

func (r *implRepository) Append(ctx context.Context, sessionID string, turn model.Turn, window int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := sessionRow{ID: sessionID, LastQuestion: turn.Input, UpdatedAt: turn.CreatedAt}
		updates := []string{"last_question", "updated_at"}
		if turn.Intent != "" {
			row.LastIntent = turn.Intent
			updates = append(updates, "last_intent")
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("upsert session: %w", err)
		}

		if err := tx.Create(&turnRow{
			SessionID: sessionID,
			Input:     turn.Input,
			Output:    turn.Output,
			Intent:    turn.Intent,
			CreatedAt: turn.CreatedAt,
		}).Error; err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}

		if window <= 0 {
			return nil
		}
		keep := tx.Model(&turnRow{}).Select("id").
			Where("session_id = ?", sessionID).
			Order("id DESC").
			Limit(window)
		if err := tx.Where("session_id = ? AND id NOT IN (?)", sessionID, keep).
			Delete(&turnRow{}).Error; err != nil {
			return fmt.Errorf("trim turns: %w", err)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "session/repository/sqlite.Append: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&turnRow{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sessionID).Delete(&sessionRow{}).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "session/repository/sqlite.Delete: %v", err)
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
