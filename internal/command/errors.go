package command

import "errors"

var (
	ErrEmptyText        = errors.New("text cannot be empty")
	ErrTextTooLong      = errors.New("text exceeds maximum length")
	ErrEmptyBatch       = errors.New("batch cannot be empty")
	ErrBatchTooLarge    = errors.New("batch exceeds maximum size")
	ErrProcessingFailed = errors.New("failed to process text")
	ErrNotReady         = errors.New("parser is not ready")
)
