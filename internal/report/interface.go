package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Report, error)
	List(ctx context.Context, input ListInput) ([]Report, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (Report, error)
}
