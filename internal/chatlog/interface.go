package chatlog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Record(ctx context.Context, input RecordInput) (Log, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
