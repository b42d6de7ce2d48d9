package command

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	ProcessBatch(ctx context.Context, input BatchInput) (BatchOutput, error)
	Examples(ctx context.Context) (ExamplesOutput, error)
	Ready(ctx context.Context) error
}
