package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"uxo-chatbot/internal/report"
	repo "uxo-chatbot/internal/report/repository"
)

func (r *implRepository) CreateReport(ctx context.Context, opt repo.CreateReportOptions) (report.Report, error) {
	row := reportRow{
		Latitude:    opt.Latitude,
		Longitude:   opt.Longitude,
		Description: opt.Description,
		Status:      opt.Status,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "internal.report.repository.sqlite.CreateReport: %v", err)
		return report.Report{}, repo.ErrFailedToInsert
	}
	return toReport(row), nil
}

func (r *implRepository) ListReports(ctx context.Context, opt repo.ListReportsOptions) ([]report.Report, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if opt.Status != "" {
		q = q.Where("status = ?", opt.Status)
	}

	var rows []reportRow
	if err := q.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "internal.report.repository.sqlite.ListReports: %v", err)
		return nil, repo.ErrFailedToList
	}

	reports := make([]report.Report, len(rows))
	for i, row := range rows {
		reports[i] = toReport(row)
	}
	return reports, nil
}

func (r *implRepository) UpdateReportStatus(ctx context.Context, opt repo.UpdateReportStatusOptions) (report.Report, error) {
	var row reportRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, opt.ID).Error; err != nil {
			return err
		}
		row.Status = opt.Status
		return tx.Save(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return report.Report{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "internal.report.repository.sqlite.UpdateReportStatus: %v", err)
		return report.Report{}, repo.ErrFailedToUpdate
	}
	return toReport(row), nil
}

func toReport(row reportRow) report.Report {
	return report.Report{
		ID:          row.ID,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Description: row.Description,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
