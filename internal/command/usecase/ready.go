package usecase

import (
	"context"
	"fmt"

	"taskparse/internal/command"
	"taskparse/internal/model"
)

const readyPhrase = "create task"

// Ready parses a fixed create command straight through the processor. It
// records no command metrics.
func (uc *implUseCase) Ready(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", command.ErrNotReady, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", command.ErrNotReady, err)
	}
	op := uc.processor.ProcessAt(readyPhrase, uc.now())
	if op.Intent != model.IntentCreateTask {
		return fmt.Errorf("%w: %q parsed as %s", command.ErrNotReady, readyPhrase, op.Intent)
	}
	return nil
}
