package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"taskparse/internal/command"
	"taskparse/internal/model"
)

const (
	reasonEmptyText = "empty_text"
	reasonTooLong   = "text_too_long"
	reasonPanic     = "panic"
)

// Process validates and parses one command.
func (uc *implUseCase) Process(ctx context.Context, input command.ProcessInput) (command.ProcessOutput, error) {
	if err := uc.validate(input); err != nil {
		return command.ProcessOutput{}, err
	}

	op, err := uc.run(ctx, input.Source(), uc.now())
	if err != nil {
		return command.ProcessOutput{}, err
	}

	return newOutput(input, op), nil
}

func (uc *implUseCase) validate(input command.ProcessInput) error {
	text := input.Source()
	if strings.TrimSpace(text) == "" {
		uc.metrics.ObserveRejected(reasonEmptyText)
		return command.ErrEmptyText
	}
	if uc.cfg.MaxTextLength > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxTextLength {
		uc.metrics.ObserveRejected(reasonTooLong)
		return command.ErrTextTooLong
	}
	return nil
}

// run is the panic boundary around the pipeline.
func (uc *implUseCase) run(ctx context.Context, text string, now time.Time) (op model.TaskOperation, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.run panic: %v\n%s", r, debug.Stack())
			uc.metrics.ObserveRejected(reasonPanic)
			err = fmt.Errorf("%w: %v", command.ErrProcessingFailed, r)
		}
	}()

	start := time.Now()
	op = uc.processor.ProcessAt(text, now)
	uc.metrics.ObserveCommand(op.Intent.String(), op.Confidence, time.Since(start))
	uc.l.Debugf(ctx, "uc.run: intent=%s confidence=%.2f entities=%d", op.Intent, op.Confidence, len(op.Entities))
	return op, nil
}

func newOutput(input command.ProcessInput, op model.TaskOperation) command.ProcessOutput {
	return command.ProcessOutput{
		Operation:    op,
		OriginalText: input.Echo(),
		UserID:       input.UserID,
		TenantID:     input.TenantID,
	}
}
