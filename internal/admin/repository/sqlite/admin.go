package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"uxo-chatbot/internal/admin"
	repo "uxo-chatbot/internal/admin/repository"
)

func (r *implRepository) CreateAdmin(ctx context.Context, opt repo.CreateAdminOptions) (admin.Admin, error) {
	row := adminRow{Email: opt.Email, PasswordHash: opt.PasswordHash}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.admin.repository.sqlite.CreateAdmin: %v", err)
		return admin.Admin{}, repo.ErrFailedToInsert
	}
	return toAdmin(row), nil
}

func (r *implRepository) GetOneAdmin(ctx context.Context, opt repo.GetOneAdminOptions) (admin.Admin, error) {
	if opt.ID == 0 && opt.Email == "" {
		return admin.Admin{}, repo.ErrNoFilter
	}
	q := r.db.WithContext(ctx).Model(&adminRow{})
	if opt.ID != 0 {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.Email != "" {
		q = q.Where("email = ?", opt.Email)
	}

	var row adminRow
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return admin.Admin{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "internal.admin.repository.sqlite.GetOneAdmin: %v", err)
		return admin.Admin{}, repo.ErrFailedToGet
	}
	return toAdmin(row), nil
}

func toAdmin(row adminRow) admin.Admin {
	return admin.Admin{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
