package repository

import (
	"context"

	"uxo-chatbot/internal/report"
)

// Repository stores UXO reports.
type Repository interface {
	CreateReport(ctx context.Context, opt CreateReportOptions) (report.Report, error)
	ListReports(ctx context.Context, opt ListReportsOptions) ([]report.Report, error)
	// UpdateReportStatus returns a zero Report (ID == 0) when id does not exist.
	UpdateReportStatus(ctx context.Context, opt UpdateReportStatusOptions) (report.Report, error)
}
