package usecase

import (
	"time"

	"taskparse/internal/model"
	"taskparse/pkg/log"
	"taskparse/pkg/metrics"
)

// Processor parses one command against a fixed clock reading.
type Processor interface {
	ProcessAt(text string, now time.Time) model.TaskOperation
}

// Config bounds what the use case accepts.
type Config struct {
	MaxTextLength    int
	MaxBatchSize     int
	BatchConcurrency int
}

// implUseCase is the private implementation of command.UseCase.
type implUseCase struct {
	l         log.Logger
	processor Processor
	metrics   *metrics.Metrics
	cfg       Config
	now       func() time.Time
}

// New creates a new command UseCase implementation. m may be nil.
func New(l log.Logger, processor Processor, m *metrics.Metrics, cfg Config) *implUseCase {
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	return &implUseCase{
		l:         l,
		processor: processor,
		metrics:   m,
		cfg:       cfg,
		now:       time.Now,
	}
}
