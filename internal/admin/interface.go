package admin

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Admin, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Detail(ctx context.Context, id uint) (Admin, error)
}
