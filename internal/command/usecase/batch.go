package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"taskparse/internal/command"
)

const (
	reasonEmptyBatch    = "empty_batch"
	reasonBatchTooLarge = "batch_too_large"
)

// ProcessBatch parses every item against one clock reading. Results keep
// input order. Any invalid item rejects the whole batch before parsing.
func (uc *implUseCase) ProcessBatch(ctx context.Context, input command.BatchInput) (command.BatchOutput, error) {
	if len(input.Items) == 0 {
		uc.metrics.ObserveRejected(reasonEmptyBatch)
		return command.BatchOutput{}, command.ErrEmptyBatch
	}
	if uc.cfg.MaxBatchSize > 0 && len(input.Items) > uc.cfg.MaxBatchSize {
		uc.metrics.ObserveRejected(reasonBatchTooLarge)
		return command.BatchOutput{}, command.ErrBatchTooLarge
	}
	for i, item := range input.Items {
		if err := uc.validate(item); err != nil {
			return command.BatchOutput{}, fmt.Errorf("item %d: %w", i, err)
		}
	}

	now := uc.now()
	results := make([]command.ProcessOutput, len(input.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.BatchConcurrency)
	for i, item := range input.Items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			op, err := uc.run(gctx, item.Source(), now)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = newOutput(item, op)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessBatch: %v", err)
		return command.BatchOutput{}, err
	}

	return command.BatchOutput{Results: results}, nil
}
