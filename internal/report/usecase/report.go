package usecase

import (
	"context"
	"strings"

	"uxo-chatbot/internal/report"
	repo "uxo-chatbot/internal/report/repository"
)

// Create files a new pending report.
func (uc *implUseCase) Create(ctx context.Context, input report.CreateInput) (report.Report, error) {
	if input.Latitude < -90 || input.Latitude > 90 {
		return report.Report{}, report.ErrInvalidLatitude
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return report.Report{}, report.ErrInvalidLongitude
	}

	r, err := uc.repo.CreateReport(ctx, repo.CreateReportOptions{
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Description: strings.TrimSpace(input.Description),
		Status:      report.StatusPending,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Create: %v", err)
		return report.Report{}, err
	}
	uc.l.Infof(ctx, "internal.report.usecase.Create: report %d at (%.5f, %.5f)", r.ID, r.Latitude, r.Longitude)
	return r, nil
}

// List returns reports newest first, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input report.ListInput) ([]report.Report, error) {
	if input.Status != "" && !report.IsValidStatus(input.Status) {
		return nil, report.ErrInvalidStatus
	}
	reports, err := uc.repo.ListReports(ctx, repo.ListReportsOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.List: %v", err)
		return nil, err
	}
	return reports, nil
}

// UpdateStatus moves a report to another status.
func (uc *implUseCase) UpdateStatus(ctx context.Context, input report.UpdateStatusInput) (report.Report, error) {
	if !report.IsValidStatus(input.Status) {
		return report.Report{}, report.ErrInvalidStatus
	}

	r, err := uc.repo.UpdateReportStatus(ctx, repo.UpdateReportStatusOptions{ID: input.ID, Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.UpdateStatus: %v", err)
		return report.Report{}, err
	}
	if r.ID == 0 {
		return report.Report{}, report.ErrReportNotFound
	}
	return r, nil
}
