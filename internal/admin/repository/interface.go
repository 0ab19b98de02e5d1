package repository

import (
	"context"

	"uxo-chatbot/internal/admin"
)

// Repository stores admin accounts.
type Repository interface {
	CreateAdmin(ctx context.Context, opt CreateAdminOptions) (admin.Admin, error)
	// GetOneAdmin returns a zero Admin (ID == 0) when nothing matches.
	GetOneAdmin(ctx context.Context, opt GetOneAdminOptions) (admin.Admin, error)
}
